package hashtable

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by FirstMatch when no stored object matches
	// the key.
	ErrNotFound = errors.New("no object matches the key")

	// ErrClosed is returned by any operation on a closed table, including a
	// second Close.
	ErrClosed = errors.New("table is closed")

	// ErrInvalidLimit is returned by Match when the result limit is not
	// positive.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrNoBuckets is returned by New when the bucket count is zero.
	ErrNoBuckets = errors.New("bucket count must be positive")

	// ErrNilCompare is returned by New when no compare function is supplied.
	ErrNilCompare = errors.New("compare function is required")

	// ErrNilSearch is returned by New when no search function is supplied.
	ErrNilSearch = errors.New("search function is required")
)

// ErrHashOutOfRange indicates the configured hash function produced an index
// outside the table's bucket range. This is a defect in the hash function,
// reported as an error so a misbehaving hash cannot corrupt the table.
type ErrHashOutOfRange struct {
	Index   uint64
	Buckets uint64
}

func (e *ErrHashOutOfRange) Error() string {
	return fmt.Sprintf("hash index %d out of range for %d buckets", e.Index, e.Buckets)
}
