// Package hasher provides string hash functions for bucket assignment.
//
// Every function has the shape func(key string, buckets uint64) uint64 and
// returns an index below buckets. XXHash is the default and the right choice
// for almost all workloads; FNV1a and DJB2 exist for callers that need to
// reproduce the bucket layout of an existing deployment.
package hasher

import (
	"github.com/cespare/xxhash/v2"
)

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// XXHash buckets key by its 64-bit xxHash digest.
func XXHash(key string, buckets uint64) uint64 {
	return xxhash.Sum64String(key) % buckets
}

// FNV1a buckets key by its 64-bit FNV-1a digest.
func FNV1a(key string, buckets uint64) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}
	return h % buckets
}

// DJB2 buckets key with Bernstein's classic multiplicative hash.
func DJB2(key string, buckets uint64) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return h % buckets
}
