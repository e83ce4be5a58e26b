package hashtable

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time snapshot of a table's counters.
//
// Fills is derived, not stored: every filled bucket contributes one fill and
// every collision another, so Fills = BucketsFilled + Collisions.
type Stats struct {
	// NumBuckets is the fixed bucket count.
	NumBuckets uint64

	// BucketsFilled is the number of buckets holding at least one object.
	BucketsFilled uint64

	// Collisions counts inserts that landed in an occupied bucket without
	// matching an existing equivalence class.
	Collisions uint64

	// Duplicates counts inserts that compared equal to an existing object.
	Duplicates uint64

	// SizeBytes is the structural memory estimate, excluding stored objects.
	SizeBytes uint64
}

// Fills returns the total number of distinct equivalence classes stored.
func (s Stats) Fills() uint64 {
	return s.BucketsFilled + s.Collisions
}

// Objects returns the total number of stored objects.
func (s Stats) Objects() uint64 {
	return s.Fills() + s.Duplicates
}

// String renders the snapshot in a single log-friendly line.
func (s Stats) String() string {
	return fmt.Sprintf("buckets=%d/%d collisions=%d duplicates=%d objects=%d size=%s",
		s.BucketsFilled, s.NumBuckets, s.Collisions, s.Duplicates, s.Objects(),
		humanize.IBytes(s.SizeBytes))
}

// Stats returns a snapshot of the table's counters and size estimate. The
// counters are monotonic: lookups never change them and nothing decrements
// them.
func (t *Table[T]) Stats() Stats {
	return Stats{
		NumBuckets:    t.numBuckets,
		BucketsFilled: t.bucketsFilled,
		Collisions:    t.collisions,
		Duplicates:    t.duplicates,
		SizeBytes:     t.SizeEstimate(),
	}
}
