package hashtable

import (
	"github.com/jnithsdale/hash-table-generic/hasher"
)

// Options contains the optional configuration for a table. Required behavior
// (compare and search) is passed to New directly; everything here has a
// usable default.
//
// Options are applied through closures:
//
//	ht, err := hashtable.New[*Record](1024, compareRecords, searchRecords,
//	    func(o *hashtable.Options[*Record]) {
//	        o.Hash = hasher.FNV1a
//	        o.Release = releaseRecord
//	    })
type Options[T any] struct {
	// Hash selects the bucket for a key. It must return an index below the
	// bucket count passed to New. Defaults to hasher.XXHash.
	Hash HashFunc

	// Release, if set, is invoked once per stored object during Close. When
	// nil the table never touches the objects it holds; they stay owned by
	// the caller.
	Release ReleaseFunc[T]

	// Logger receives structured operation logs. Defaults to a logger that
	// discards everything.
	Logger *Logger

	// Metrics receives per-operation measurements. Defaults to
	// NoopMetricsCollector.
	Metrics MetricsCollector
}

func defaultOptions[T any]() Options[T] {
	return Options[T]{
		Hash:    hasher.XXHash,
		Logger:  NoopLogger(),
		Metrics: NoopMetricsCollector{},
	}
}

// ensureDefaults backfills fields an option closure reset to nil.
func (o *Options[T]) ensureDefaults() {
	if o.Hash == nil {
		o.Hash = hasher.XXHash
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetricsCollector{}
	}
}
