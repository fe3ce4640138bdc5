// Package mapkit defines the polymorphic surface every associative
// container in assocmap implements: a Map for keyed storage and an Iterator
// for cursoring over it. A caller picks a concrete implementation
// (rbtree.New, avl.NewTree, skiplist.New, chainhash.New, ...) for its
// performance and ordering profile, then drives it through this interface
// so the rest of a program need not know which one it got.
//
// Optional behavior -- closest-neighbor search, rank selection,
// iterator-driven removal -- is expressed as narrower interfaces a concrete
// Map or Iterator may additionally satisfy (Ordered, Ranked, MutableIterator).
// A caller probes for them with a type assertion; absence is not an error,
// it just means that capability is not offered by this implementation.
package mapkit

// Map is the capability every assocmap container offers: insert, exact
// lookup, remove, clear, traverse, count, and self-verification.
type Map[K any, V any] interface {
	// Insert binds key to its value slot, creating the entry if it did not
	// already exist. inserted reports whether the entry is new; slot is the
	// address of the value cell for key either way, and remains valid until
	// the next structural mutation of the map.
	Insert(key K) (slot *V, inserted bool)

	// Search returns the value slot for key, or nil if key is absent.
	// Search never allocates and never fails structurally.
	Search(key K) (slot *V, ok bool)

	// Remove deletes the entry for key if present, returning the key and
	// value that were stored. removed is false if key was absent.
	Remove(key K) (removedKey K, removedValue V, removed bool)

	// Clear removes every entry, invoking deleteFunc (if non-nil) exactly
	// once per destroyed entry, and returns the number of entries removed.
	Clear(deleteFunc func(K, V)) int

	// Traverse visits entries in this map's natural order, calling visit
	// for each one until visit returns false or every entry has been
	// visited, and returns the number of entries actually visited.
	Traverse(visit func(K, V) bool) int

	// Count returns the number of live entries.
	Count() int

	// Verify reports whether the map's structural invariants currently
	// hold. It never mutates the map.
	Verify() bool
}

// Ordered is implemented by every sorted variant (red-black, AVL,
// weight-balanced, path-reduction, splay, treap, skiplist). IsSorted always
// returns true for these; it exists so a caller holding only a Map can
// still tell sorted and hashed implementations apart without a type
// assertion list.
type Ordered[K any, V any] interface {
	Map[K, V]

	IsSorted() bool

	// SearchLE/SearchLT/SearchGE/SearchGT return the nearest entry on the
	// named side of key, or ok=false if no such entry exists.
	SearchLE(key K) (slot *V, ok bool)
	SearchLT(key K) (slot *V, ok bool)
	SearchGE(key K) (slot *V, ok bool)
	SearchGT(key K) (slot *V, ok bool)
}

// Ranked is implemented by variants that can answer rank-selection queries:
// all Ordered variants support it, some (weight-balanced, path-reduction) in
// O(log n), the rest by an O(n) walk.
type Ranked[K any, V any] interface {
	// Select returns the (n+1)-th smallest entry, for n in [0, Count()).
	Select(n int) (key K, value V, ok bool)
}

// Resizable is implemented by the hash table variants, whose bucket/slot
// count is not fixed for the container's lifetime.
type Resizable interface {
	// Resize grows or shrinks the table to the given size (oahash rounds
	// it up to the next prime in its table), rejecting a shrink below the
	// current entry count. It returns false (table unchanged) for a
	// rejected shrink.
	Resize(size int) bool
}
