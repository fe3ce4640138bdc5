// Package oahash implements an open-addressing hash table with linear
// probing. An empty cell is identified by hash == 0; a key whose natural
// hash computes to 0 is remapped to ^uint32(0) so the sentinel stays
// unambiguous. Removal is the subtle operation here: emptying a cell can
// shadow entries further down its probe chain, so remove walks forward
// re-inserting any entry whose home bucket the emptied cell could have
// been blocking, stopping at the next empty cell.
package oahash

import (
	"assocmap/cmpkit"
	"assocmap/internal/prime"
)

const emptyHash uint32 = 0

type slot[K any, V any] struct {
	key   K
	value V
	hash  uint32
}

func (s *slot[K, V]) occupied() bool { return s.hash != emptyHash }
func (s *slot[K, V]) ValueSlot() *V  { return &s.value }

// Table is an open-addressing hash table keyed by K with values V.
type Table[K any, V any] struct {
	slots []slot[K, V]
	count int
	cmp   cmpkit.Comparator[K]
	hash  cmpkit.HashFunc[K]
}

func New[K any, V any](cmp cmpkit.Comparator[K], hash cmpkit.HashFunc[K], size int) *Table[K, V] {
	if size < 1 {
		size = 1
	}
	return &Table[K, V]{
		slots: make([]slot[K, V], size),
		cmp:   cmp,
		hash:  hash,
	}
}

func (t *Table[K, V]) IsSorted() bool { return false }
func (t *Table[K, V]) Count() int     { return t.count }
func (t *Table[K, V]) Size() int      { return len(t.slots) }

func (t *Table[K, V]) hashOf(key K) uint32 {
	h := t.hash(key)
	if h == emptyHash {
		h = ^uint32(0)
	}
	return h
}

func (t *Table[K, V]) probe(h uint32) int { return int(h % uint32(len(t.slots))) }

// Insert binds key to its value slot, creating the entry via linear
// probing if it did not already exist. A resize is triggered first if the
// load factor would reach 2/3.
func (t *Table[K, V]) Insert(key K) (*V, bool) {
	if (t.count+1)*3 >= len(t.slots)*2 {
		t.Resize(len(t.slots) * 2)
	}

	h := t.hashOf(key)
	i := t.probe(h)
	for {
		s := &t.slots[i]
		if !s.occupied() {
			s.key = key
			s.hash = h
			t.count++
			return s.ValueSlot(), true
		}
		if s.hash == h && t.cmp(s.key, key) == 0 {
			return s.ValueSlot(), false
		}
		i = (i + 1) % len(t.slots)
	}
}

func (t *Table[K, V]) find(key K) int {
	if len(t.slots) == 0 {
		return -1
	}
	h := t.hashOf(key)
	i := t.probe(h)
	start := i
	for {
		s := &t.slots[i]
		if !s.occupied() {
			return -1
		}
		if s.hash == h && t.cmp(s.key, key) == 0 {
			return i
		}
		i = (i + 1) % len(t.slots)
		if i == start {
			return -1
		}
	}
}

func (t *Table[K, V]) Search(key K) (*V, bool) {
	i := t.find(key)
	if i < 0 {
		return nil, false
	}
	return t.slots[i].ValueSlot(), true
}

// remove empties slot i and repairs the probe chain that follows it using
// Knuth's backward-shift deletion, reporting the removed key/value.
func (t *Table[K, V]) remove(i int) (K, V) {
	removedKey, removedValue := t.slots[i].key, t.slots[i].value
	n := len(t.slots)
	t.slots[i] = slot[K, V]{}
	t.count--

	j := i
	for {
		j = (j + 1) % n
		if !t.slots[j].occupied() {
			break
		}
		home := t.probe(t.slots[j].hash)
		if !inProbeRange(i, j, home, n) {
			t.slots[i] = t.slots[j]
			t.slots[j] = slot[K, V]{}
			i = j
		}
	}
	return removedKey, removedValue
}

// inProbeRange reports whether the cell at home (the natural bucket of
// the entry currently sitting at j) lies in the cyclic range (i, j] --
// i.e. whether that entry's probe from home to j never crosses the
// just-emptied cell i. If so, the entry at j is still reachable and stays
// in place; if not, emptying i broke its probe chain and it is moved into i.
func inProbeRange(i, j, home, n int) bool {
	if i <= j {
		return home > i && home <= j
	}
	return home > i || home <= j
}

func (t *Table[K, V]) reinsertRaw(s slot[K, V]) {
	i := t.probe(s.hash)
	for t.slots[i].occupied() {
		i = (i + 1) % len(t.slots)
	}
	t.slots[i] = s
	t.count++
}

func (t *Table[K, V]) Remove(key K) (K, V, bool) {
	var zeroK K
	var zeroV V
	i := t.find(key)
	if i < 0 {
		return zeroK, zeroV, false
	}
	k, v := t.remove(i)
	return k, v, true
}

func (t *Table[K, V]) Clear(deleteFunc func(K, V)) int {
	n := 0
	for i := range t.slots {
		if t.slots[i].occupied() {
			if deleteFunc != nil {
				deleteFunc(t.slots[i].key, t.slots[i].value)
			}
			t.slots[i] = slot[K, V]{}
			n++
		}
	}
	t.count = 0
	return n
}

// Traverse visits entries in slot-index order.
func (t *Table[K, V]) Traverse(visit func(K, V) bool) int {
	n := 0
	for i := range t.slots {
		if t.slots[i].occupied() {
			n++
			if !visit(t.slots[i].key, t.slots[i].value) {
				break
			}
		}
	}
	return n
}

// Resize grows to the next prime >= requested, rejecting a shrink below
// the current entry count, and rebuilds by re-inserting every occupied
// cell.
func (t *Table[K, V]) Resize(requested int) bool {
	if requested < t.count {
		return false
	}
	newSize := int(prime.GEQ(uint32(requested)))

	old := t.slots
	t.slots = make([]slot[K, V], newSize)
	t.count = 0
	for _, s := range old {
		if s.occupied() {
			t.reinsertRaw(s)
		}
	}
	return true
}

// Verify checks that every occupied cell is reachable by linear probing
// from its natural bucket with no gap before it.
func (t *Table[K, V]) Verify() bool {
	n := len(t.slots)
	count := 0
	for i := 0; i < n; i++ {
		if !t.slots[i].occupied() {
			continue
		}
		count++
		home := t.probe(t.slots[i].hash)
		for j := home; j != i; j = (j + 1) % n {
			if !t.slots[j].occupied() {
				return false
			}
		}
	}
	return count == t.count
}
