// Package chainhash implements a chained hash table: a fixed-size bucket
// array whose buckets are singly-linked chains kept in hash-ascending
// order, with comparator order breaking ties between entries that collide
// on hash. No resize happens automatically; callers needing to grow call
// Resize explicitly.
package chainhash

import (
	"assocmap/cmpkit"
	"assocmap/mapkit"
)

// absentHash is the reserved sentinel meaning "this chain slot carries no
// live entry's natural hash"; a computed hash of 0 is remapped to ^uint32(0)
// so it never collides with the sentinel.
const absentHash uint32 = 0

type node[K any, V any] struct {
	key   K
	value V
	hash  uint32
	next  *node[K, V]
}

// Table is a chained hash table keyed by K with values V.
type Table[K any, V any] struct {
	buckets []*node[K, V]
	count   int
	cmp     cmpkit.Comparator[K]
	hash    cmpkit.HashFunc[K]
	alloc   mapkit.Allocator[node[K, V]]
}

func New[K any, V any](cmp cmpkit.Comparator[K], hash cmpkit.HashFunc[K], size int) *Table[K, V] {
	return NewWithAllocator[K, V](cmp, hash, size, mapkit.Allocator[node[K, V]]{})
}

func NewWithAllocator[K any, V any](cmp cmpkit.Comparator[K], hash cmpkit.HashFunc[K], size int, alloc mapkit.Allocator[node[K, V]]) *Table[K, V] {
	if size < 1 {
		size = 1
	}
	return &Table[K, V]{
		buckets: make([]*node[K, V], size),
		cmp:     cmp,
		hash:    hash,
		alloc:   mapkit.Normalize(alloc),
	}
}

func (t *Table[K, V]) IsSorted() bool { return false }
func (t *Table[K, V]) Count() int     { return t.count }
func (t *Table[K, V]) Size() int      { return len(t.buckets) }

func (t *Table[K, V]) hashOf(key K) uint32 {
	h := t.hash(key)
	if h == absentHash {
		h = ^uint32(0)
	}
	return h
}

// Insert binds key to its value slot, creating the entry in hash order
// within its bucket's chain if it did not already exist.
func (t *Table[K, V]) Insert(key K) (*V, bool) {
	h := t.hashOf(key)
	idx := h % uint32(len(t.buckets))

	var prev *node[K, V]
	cur := t.buckets[idx]
	for cur != nil && cur.hash < h {
		prev = cur
		cur = cur.next
	}
	for cur != nil && cur.hash == h {
		c := t.cmp(cur.key, key)
		if c == 0 {
			return cur.ValueSlot(), false
		}
		if c > 0 {
			break
		}
		prev = cur
		cur = cur.next
	}

	n := t.alloc.Alloc()
	n.key = key
	n.hash = h
	n.next = cur
	if prev == nil {
		t.buckets[idx] = n
	} else {
		prev.next = n
	}
	t.count++
	return n.ValueSlot(), true
}

func (n *node[K, V]) ValueSlot() *V { return &n.value }

func (t *Table[K, V]) find(key K) (idx uint32, prev, cur *node[K, V]) {
	h := t.hashOf(key)
	idx = h % uint32(len(t.buckets))
	cur = t.buckets[idx]
	for cur != nil && cur.hash < h {
		prev = cur
		cur = cur.next
	}
	for cur != nil && cur.hash == h {
		if t.cmp(cur.key, key) == 0 {
			return idx, prev, cur
		}
		prev = cur
		cur = cur.next
	}
	return idx, prev, nil
}

func (t *Table[K, V]) Search(key K) (*V, bool) {
	_, _, cur := t.find(key)
	if cur == nil {
		return nil, false
	}
	return cur.ValueSlot(), true
}

// Remove deletes the entry for key if present, in O(1 + chain length).
func (t *Table[K, V]) Remove(key K) (K, V, bool) {
	var zeroK K
	var zeroV V
	idx, prev, cur := t.find(key)
	if cur == nil {
		return zeroK, zeroV, false
	}
	if prev == nil {
		t.buckets[idx] = cur.next
	} else {
		prev.next = cur.next
	}
	removedKey, removedValue := cur.key, cur.value
	t.alloc.Free(cur)
	t.count--
	return removedKey, removedValue, true
}

func (t *Table[K, V]) Clear(deleteFunc func(K, V)) int {
	n := 0
	for i, head := range t.buckets {
		for cur := head; cur != nil; {
			next := cur.next
			if deleteFunc != nil {
				deleteFunc(cur.key, cur.value)
			}
			t.alloc.Free(cur)
			n++
			cur = next
		}
		t.buckets[i] = nil
	}
	t.count = 0
	return n
}

// Traverse visits entries in (bucket, position-in-chain) order, which is
// not the sorted order of keys.
func (t *Table[K, V]) Traverse(visit func(K, V) bool) int {
	n := 0
	for _, head := range t.buckets {
		for cur := head; cur != nil; cur = cur.next {
			n++
			if !visit(cur.key, cur.value) {
				return n
			}
		}
	}
	return n
}

// Resize rebuilds the table at a new bucket count. It rejects a shrink
// below the current entry count.
func (t *Table[K, V]) Resize(newSize int) bool {
	if newSize < t.count {
		return false
	}
	if newSize < 1 {
		newSize = 1
	}

	rebuilt := make([]*node[K, V], newSize)
	for _, head := range t.buckets {
		for cur := head; cur != nil; {
			next := cur.next
			idx := cur.hash % uint32(newSize)

			var prev *node[K, V]
			c := rebuilt[idx]
			for c != nil && c.hash < cur.hash {
				prev = c
				c = c.next
			}
			for c != nil && c.hash == cur.hash && t.cmp(c.key, cur.key) < 0 {
				prev = c
				c = c.next
			}
			cur.next = c
			if prev == nil {
				rebuilt[idx] = cur
			} else {
				prev.next = cur
			}
			cur = next
		}
	}
	t.buckets = rebuilt
	return true
}

// Verify checks that every bucket's chain is hash-ascending (with
// comparator order breaking hash ties) and lands in the correct bucket.
func (t *Table[K, V]) Verify() bool {
	n := 0
	for idx, head := range t.buckets {
		var prev *node[K, V]
		for cur := head; cur != nil; cur = cur.next {
			if cur.hash%uint32(len(t.buckets)) != uint32(idx) {
				return false
			}
			if prev != nil {
				if prev.hash > cur.hash {
					return false
				}
				if prev.hash == cur.hash && t.cmp(prev.key, cur.key) >= 0 {
					return false
				}
			}
			prev = cur
			n++
		}
	}
	return n == t.count
}
