package hashtable

import (
	"time"
	"unsafe"
)

// HashFunc maps a key string onto a bucket index. The result must be less
// than buckets, and the same key must always produce the same index.
type HashFunc func(key string, buckets uint64) uint64

// CompareFunc is a three-way comparison over stored objects: negative if a
// orders before b, zero if a and b belong to the same equivalence class
// (duplicates), positive if a orders after b. It must be a consistent total
// preorder across all objects inserted into one table.
type CompareFunc[T any] func(a, b T) int

// SearchFunc reports whether an object matches a lookup key. It may be
// coarser or finer than CompareFunc's notion of equality (e.g. substring or
// field match).
type SearchFunc[T any] func(key string, object T) bool

// ReleaseFunc releases one stored object. It is invoked exactly once per
// object during Close and never at any other time.
type ReleaseFunc[T any] func(object T)

// duplicate is one node in a fill's append-only duplicate chain.
type duplicate[T any] struct {
	object T
	next   *duplicate[T]
}

// fill is one distinct equivalence class within a bucket: a representative
// object plus the chain of objects that compared equal to it, in insertion
// order.
type fill[T any] struct {
	object   T
	next     *fill[T]
	firstDup *duplicate[T]
	lastDup  *duplicate[T]
}

// bucket owns the fill chain for one hash index, kept sorted ascending by
// the table's compare function.
type bucket[T any] struct {
	first *fill[T]
}

// Table is a fixed-size hash table mapping string-derived keys to objects of
// type T. Keys that hash to the same bucket are kept in a chain ordered by
// the compare function; objects that compare equal are grouped as duplicates
// of one representative entry.
//
// A Table is not safe for concurrent use. Callers that share a table across
// goroutines must serialize access themselves.
type Table[T any] struct {
	buckets    []*bucket[T]
	numBuckets uint64

	hash    HashFunc
	compare CompareFunc[T]
	search  SearchFunc[T]
	release ReleaseFunc[T]

	logger  *Logger
	metrics MetricsCollector

	// Counters are monotonic for the table's lifetime; no operation
	// decrements them.
	bucketsFilled uint64
	collisions    uint64
	duplicates    uint64

	closed bool
}

// New creates a table with a fixed number of buckets. The bucket count cannot
// be changed afterwards; there is no resizing or rehashing.
//
// compare and search are required. A zero bucket count or a nil compare or
// search is reported as an error rather than a panic. The hash function
// defaults to
// hasher.XXHash and can be overridden through Options.
func New[T any](numBuckets uint64, compare CompareFunc[T], search SearchFunc[T], optFns ...func(o *Options[T])) (*Table[T], error) {
	if numBuckets == 0 {
		return nil, ErrNoBuckets
	}
	if compare == nil {
		return nil, ErrNilCompare
	}
	if search == nil {
		return nil, ErrNilSearch
	}

	opts := defaultOptions[T]()
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.ensureDefaults()

	return &Table[T]{
		buckets:    make([]*bucket[T], numBuckets),
		numBuckets: numBuckets,
		hash:       opts.Hash,
		compare:    compare,
		search:     search,
		release:    opts.Release,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}, nil
}

// NumBuckets returns the fixed bucket count the table was created with.
func (t *Table[T]) NumBuckets() uint64 {
	return t.numBuckets
}

// Insert stores object under key. The key is hashed to select a bucket; the
// compare function then decides where the object lands inside that bucket:
// equal to an existing entry means it is appended to that entry's duplicate
// chain, otherwise a new chain entry is spliced in at its sorted position.
//
// Exactly one of the bucketsFilled, collisions, or duplicates counters is
// incremented per successful insert. A failed insert leaves the table in its
// prior state.
func (t *Table[T]) Insert(object T, key string) error {
	start := time.Now()
	err := t.insert(object, key)
	t.metrics.RecordInsert(time.Since(start), err)
	t.logger.LogInsert(key, err)
	return err
}

func (t *Table[T]) insert(object T, key string) error {
	if t.closed {
		return ErrClosed
	}

	index := t.hash(key, t.numBuckets)
	if index >= t.numBuckets {
		return &ErrHashOutOfRange{Index: index, Buckets: t.numBuckets}
	}

	b := t.buckets[index]
	if b == nil {
		t.buckets[index] = &bucket[T]{first: &fill[T]{object: object}}
		t.bucketsFilled++
		return nil
	}

	// Walk the sorted fill chain. Stop early once an entry orders after the
	// new object; that is the splice point.
	var prev *fill[T]
	cur := b.first
walk:
	for cur != nil {
		switch c := t.compare(cur.object, object); {
		case c == 0:
			d := &duplicate[T]{object: object}
			if cur.lastDup != nil {
				cur.lastDup.next = d
			} else {
				cur.firstDup = d
			}
			cur.lastDup = d
			t.duplicates++
			return nil
		case c < 0:
			prev, cur = cur, cur.next
		default:
			break walk
		}
	}

	f := &fill[T]{object: object, next: cur}
	if prev != nil {
		prev.next = f
	} else {
		b.first = f
	}
	t.collisions++
	return nil
}

// InsertIfAbsent stores object under key only if no existing object matches
// key under the search function. If one does, it is returned with inserted
// set to false and the table is left untouched.
//
// This is a plain composition of Match and Insert, not an atomic operation.
func (t *Table[T]) InsertIfAbsent(object T, key string) (existing T, inserted bool, err error) {
	var zero T

	found, err := t.match(key, 1)
	if err != nil {
		return zero, false, err
	}
	if len(found) > 0 {
		return found[0], false, nil
	}
	if err := t.Insert(object, key); err != nil {
		return zero, false, err
	}
	return zero, true, nil
}

// Match returns the objects stored under key, up to limit. The key's bucket
// is walked in compare order and the first entry whose object satisfies the
// search function wins: the result is that entry's object followed by its
// duplicates in insertion order. Later entries in the bucket are not
// consulted even if they would also match.
//
// A missing bucket or no matching entry yields an empty result and a nil
// error. limit must be positive.
func (t *Table[T]) Match(key string, limit int) ([]T, error) {
	start := time.Now()
	found, err := t.match(key, limit)
	t.metrics.RecordMatch(len(found), time.Since(start), err)
	t.logger.LogMatch(key, limit, len(found), err)
	return found, err
}

func (t *Table[T]) match(key string, limit int) ([]T, error) {
	if t.closed {
		return nil, ErrClosed
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	index := t.hash(key, t.numBuckets)
	if index >= t.numBuckets {
		return nil, &ErrHashOutOfRange{Index: index, Buckets: t.numBuckets}
	}

	b := t.buckets[index]
	if b == nil {
		return nil, nil
	}

	for f := b.first; f != nil; f = f.next {
		if !t.search(key, f.object) {
			continue
		}

		// Size the result to what is actually there, capped at limit. The
		// limit itself is never used as an allocation size.
		n := 1
		for d := f.firstDup; d != nil && n < limit; d = d.next {
			n++
		}

		found := make([]T, 0, n)
		found = append(found, f.object)
		for d := f.firstDup; len(found) < n; d = d.next {
			found = append(found, d.object)
		}
		return found, nil
	}

	return nil, nil
}

// FirstMatch returns the first object stored under key, or ErrNotFound if no
// object matches. It is Match with a limit of one.
func (t *Table[T]) FirstMatch(key string) (T, error) {
	var zero T

	found, err := t.Match(key, 1)
	if err != nil {
		return zero, err
	}
	if len(found) == 0 {
		return zero, ErrNotFound
	}
	return found[0], nil
}

// Close tears the table down. Every stored object is handed to the release
// function, if one was configured; without one the objects remain owned by
// the caller and are not touched. All chain structure is detached so the
// nodes become collectable even if the caller keeps a reference to the table.
//
// Close returns ErrClosed if called twice, and every other operation returns
// ErrClosed after the first Close.
func (t *Table[T]) Close() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true

	released := 0
	for i, b := range t.buckets {
		if b == nil {
			continue
		}
		for f := b.first; f != nil; {
			for d := f.firstDup; d != nil; {
				if t.release != nil {
					t.release(d.object)
					released++
				}
				next := d.next
				d.next = nil
				d = next
			}
			if t.release != nil {
				t.release(f.object)
				released++
			}
			next := f.next
			f.next = nil
			f.firstDup = nil
			f.lastDup = nil
			f = next
		}
		b.first = nil
		t.buckets[i] = nil
	}
	t.buckets = nil

	t.logger.LogClose(released)
	return nil
}

// SizeEstimate returns the number of bytes attributable to table structure:
// the table header, the bucket array, one bucket header per filled bucket,
// every fill node, and every duplicate node. Stored objects themselves are
// not counted.
//
// The estimate is computed from the running counters in O(1); it never walks
// the chains. Fill count follows from the invariants: one fill per filled
// bucket plus one per collision.
func (t *Table[T]) SizeEstimate() uint64 {
	var (
		headerSize    = uint64(unsafe.Sizeof(*t))
		slotSize      = uint64(unsafe.Sizeof((*bucket[T])(nil)))
		bucketSize    = uint64(unsafe.Sizeof(bucket[T]{}))
		fillSize      = uint64(unsafe.Sizeof(fill[T]{}))
		duplicateSize = uint64(unsafe.Sizeof(duplicate[T]{}))
	)

	return headerSize +
		t.numBuckets*slotSize +
		t.bucketsFilled*bucketSize +
		(t.bucketsFilled+t.collisions)*fillSize +
		t.duplicates*duplicateSize
}
