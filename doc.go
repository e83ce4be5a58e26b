// Package hashtable provides a generic, fixed-size hash table with ordered
// collision chains and explicit duplicate grouping.
//
// Keys are strings; stored objects are any type T. Behavior is injected:
// a hash function maps keys to buckets, a three-way compare function orders
// a bucket's entries and decides which objects are duplicates of each other,
// and a search function answers pattern lookups. Objects that compare equal
// are grouped under one representative entry, so a lookup can return a whole
// equivalence class at once.
//
// # Quick start
//
//	compare := func(a, b *User) int { return strings.Compare(a.Name, b.Name) }
//	search := func(key string, u *User) bool { return u.Name == key }
//
//	ht, err := hashtable.New[*User](1024, compare, search)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ht.Close()
//
//	_ = ht.Insert(&User{Name: "smith", ID: 1}, "smith")
//	_ = ht.Insert(&User{Name: "smith", ID: 2}, "smith") // duplicate of the first
//
//	users, _ := ht.Match("smith", 10) // both users, insertion order
//
// # Semantics
//
// The bucket count is fixed for the table's lifetime; there is no resizing.
// Within one bucket, entries are kept sorted ascending under the compare
// function and a lookup stops at the first entry the search function
// accepts. Only one equivalence class is ever returned per lookup. Counters
// (buckets filled, collisions, duplicates) are monotonic and drive the O(1)
// structural size estimate.
//
// A Table is not safe for concurrent use; callers must serialize access.
package hashtable
