package mapkit

// Iterator is a cursor over exactly one Map, tied to that map for its
// lifetime. It starts invalid; First or Last (or a search method on an
// implementation that offers one) must be called before Key/Value are
// meaningful. Any structural mutation of the underlying map other than the
// iterator's own Remove invalidates the iterator; its behavior after that
// is undefined.
type Iterator[K any, V any] interface {
	// Valid reports whether the iterator currently denotes a live entry.
	Valid() bool

	// Invalidate resets the iterator to the invalid state.
	Invalidate()

	// First/Last seed the iterator at the map's first/last entry in its
	// natural order. They report false (and leave the iterator invalid) if
	// the map is empty.
	First() bool
	Last() bool

	// Next/Prev move to the neighboring entry in the map's natural order,
	// reporting false (and invalidating the iterator) if there is none.
	Next() bool
	Prev() bool

	// NextN/PrevN move n steps and return how many steps actually
	// succeeded before running off the end.
	NextN(n int) int
	PrevN(n int) int

	// Key and ValueSlot describe the current entry. Calling either while
	// !Valid() panics.
	Key() K
	ValueSlot() *V
}

// ClosestSeeker is implemented by iterators over ordered variants: it lets
// the iterator itself be seeded at a closest-neighbor position, not just
// First/Last.
type ClosestSeeker[K any, V any] interface {
	Search(key K) bool
	SearchLE(key K) bool
	SearchLT(key K) bool
	SearchGE(key K) bool
	SearchGT(key K) bool
}

// Comparable is implemented by iterators over ordered variants. Compare has
// the sign of the map's comparator applied to the two iterators' keys, with
// the convention that an invalid iterator sorts before any valid one.
type Comparable[K any, V any] interface {
	Compare(other Iterator[K, V]) int
}

// MutableIterator is implemented by iterators that support removing the
// entry they currently denote (skiplist, open-addressing, path-reduction,
// splay, treap). A successful Remove resets this iterator to the invalid
// state. The map's other iterators are not guaranteed to stay valid: the
// open-addressing table may move entries between slots, and the splay and
// path-reduction trees may move a successor's key into the removed node.
type MutableIterator[K any, V any] interface {
	Remove() bool
}
