// Package splaytree implements a splay tree: plain BST order with no
// additional structural invariant, but every access -- insert, search, or
// remove -- ends by splaying the touched node (or, on a failed search, the
// last node reached) up to the root via zig/zig-zig/zig-zag rotations.
// Frequently-accessed keys end up shallow; this makes a splay tree's reads
// mutating, which is the one variant in this module where that is true.
package splaytree

import (
	"assocmap/cmpkit"
	"assocmap/internal/bst"
	"assocmap/mapkit"
)

// Node is a single splay tree element.
type Node[K any, V any] struct {
	key                 K
	value               V
	left, right, parent *Node[K, V]
}

func (n *Node[K, V]) Left() *Node[K, V]       { return n.left }
func (n *Node[K, V]) Right() *Node[K, V]      { return n.right }
func (n *Node[K, V]) Parent() *Node[K, V]     { return n.parent }
func (n *Node[K, V]) SetLeft(c *Node[K, V])   { n.left = c }
func (n *Node[K, V]) SetRight(c *Node[K, V])  { n.right = c }
func (n *Node[K, V]) SetParent(p *Node[K, V]) { n.parent = p }
func (n *Node[K, V]) Key() K                  { return n.key }
func (n *Node[K, V]) ValueSlot() *V           { return &n.value }

// Tree is a splay tree keyed by K with values V.
type Tree[K any, V any] struct {
	root  *Node[K, V]
	count int
	cmp   cmpkit.Comparator[K]
	alloc mapkit.Allocator[Node[K, V]]
}

func New[K any, V any](cmp cmpkit.Comparator[K]) *Tree[K, V] {
	return NewWithAllocator[K, V](cmp, mapkit.Allocator[Node[K, V]]{})
}

func NewWithAllocator[K any, V any](cmp cmpkit.Comparator[K], alloc mapkit.Allocator[Node[K, V]]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp, alloc: mapkit.Normalize(alloc)}
}

func (t *Tree[K, V]) IsSorted() bool { return true }
func (t *Tree[K, V]) Count() int     { return t.count }

func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) *Node[K, V] {
	parent := x.parent
	y := bst.RotateLeft[*Node[K, V]](x)
	bst.Relink[*Node[K, V]](&t.root, parent, x, y)
	return y
}

func (t *Tree[K, V]) rotateRight(x *Node[K, V]) *Node[K, V] {
	parent := x.parent
	y := bst.RotateRight[*Node[K, V]](x)
	bst.Relink[*Node[K, V]](&t.root, parent, x, y)
	return y
}

// splay moves x to the root via zig, zig-zig, and zig-zag steps. Each
// zig-zig/zig-zag step is the textbook pair of rotations that together
// restructure all six affected links before the next step is considered;
// Go gains nothing from hand-fusing them into one manual pointer swap the
// way the source's C does, so they are expressed as the two rotations that
// produce the identical resulting shape.
func (t *Tree[K, V]) splay(x *Node[K, V]) {
	for x.parent != nil {
		p := x.parent
		gp := p.parent
		switch {
		case gp == nil:
			// zig
			if p.left == x {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case gp.left == p && p.left == x:
			// zig-zig, left-left
			t.rotateRight(gp)
			t.rotateRight(p)
		case gp.right == p && p.right == x:
			// zig-zig, right-right
			t.rotateLeft(gp)
			t.rotateLeft(p)
		case gp.right == p && p.left == x:
			// zig-zag
			t.rotateRight(p)
			t.rotateLeft(gp)
		default:
			// gp.left == p && p.right == x
			t.rotateLeft(p)
			t.rotateRight(gp)
		}
	}
	t.root = x
}

// Insert binds key to its value slot, creating the entry if needed, and
// splays the touched node to the root either way.
func (t *Tree[K, V]) Insert(key K) (*V, bool) {
	if t.root == nil {
		n := t.alloc.Alloc()
		n.key = key
		t.root = n
		t.count++
		return n.ValueSlot(), true
	}

	parent := (*Node[K, V])(nil)
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			t.splay(cur)
			return cur.ValueSlot(), false
		case c < 0:
			parent = cur
			cur = cur.left
		default:
			parent = cur
			cur = cur.right
		}
	}

	n := t.alloc.Alloc()
	n.key = key
	n.parent = parent
	if t.cmp(key, parent.key) < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.count++
	t.splay(n)
	return n.ValueSlot(), true
}

// Search splays the found node to the root on a hit, or the last node
// reached on a miss, then reports whether key was present.
func (t *Tree[K, V]) Search(key K) (*V, bool) {
	if t.root == nil {
		return nil, false
	}
	cur, last := t.root, t.root
	for cur != nil {
		last = cur
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			t.splay(cur)
			return cur.ValueSlot(), true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	t.splay(last)
	return nil, false
}

// SearchLE splays the answer (or the last node visited if there is none)
// to the root and reports whether an answer exists.
func (t *Tree[K, V]) SearchLE(key K) (*V, bool) { return t.closestSearch(key, bst.SearchLE[K, *Node[K, V]]) }
func (t *Tree[K, V]) SearchLT(key K) (*V, bool) { return t.closestSearch(key, bst.SearchLT[K, *Node[K, V]]) }
func (t *Tree[K, V]) SearchGE(key K) (*V, bool) { return t.closestSearch(key, bst.SearchGE[K, *Node[K, V]]) }
func (t *Tree[K, V]) SearchGT(key K) (*V, bool) { return t.closestSearch(key, bst.SearchGT[K, *Node[K, V]]) }

func (t *Tree[K, V]) closestSearch(key K, search func(*Node[K, V], cmpkit.Comparator[K], K) *Node[K, V]) (*V, bool) {
	n := search(t.root, t.cmp, key)
	if n == nil {
		last := t.root
		for cur := t.root; cur != nil; {
			last = cur
			c := t.cmp(key, cur.key)
			if c == 0 {
				break
			}
			if c < 0 {
				cur = cur.left
			} else {
				cur = cur.right
			}
		}
		if last != nil {
			t.splay(last)
		}
		return nil, false
	}
	t.splay(n)
	return n.ValueSlot(), true
}

// Remove deletes the entry for key if present. If the target has two
// children it is swapped with its in-order successor first (key and
// value only, so the node physically removed always has at most one
// child), the victim is unlinked, and the victim's former parent is
// splayed to the root.
func (t *Tree[K, V]) Remove(key K) (K, V, bool) {
	var zeroK K
	var zeroV V
	target := bst.Search[K, V](t.root, t.cmp, key)
	if target == nil {
		return zeroK, zeroV, false
	}

	removedKey, removedValue := target.key, target.value

	victim := target
	if target.left != nil && target.right != nil {
		succ := bst.Min[*Node[K, V]](target.right)
		target.key, target.value = succ.key, succ.value
		victim = succ
	}

	child := victim.left
	if child == nil {
		child = victim.right
	}
	parent := victim.parent
	if child != nil {
		child.parent = parent
	}
	bst.Relink[*Node[K, V]](&t.root, parent, victim, child)

	t.alloc.Free(victim)
	t.count--

	if parent != nil {
		t.splay(parent)
	}
	return removedKey, removedValue, true
}

func (t *Tree[K, V]) Clear(deleteFunc func(K, V)) int {
	n := bst.Clear[K, V](t.root, deleteFunc)
	t.root = nil
	t.count = 0
	return n
}

// Traverse visits entries in ascending key order. Unlike every other
// operation, Traverse deliberately does not splay: mutating the tree shape
// mid-traversal would invalidate the traversal itself.
func (t *Tree[K, V]) Traverse(visit func(K, V) bool) int {
	return bst.Traverse[K, V](t.root, func(k K, v *V) bool { return visit(k, *v) })
}

// Select returns the (n+1)-th smallest entry. Splay trees keep no subtree
// size, so this is an O(n) in-order walk that does not splay.
func (t *Tree[K, V]) Select(n int) (K, V, bool) {
	if n < 0 || n >= t.count {
		var zk K
		var zv V
		return zk, zv, false
	}
	return bst.SelectLinear[K, V](t.root, n)
}

// Verify checks plain BST order and parent-pointer consistency; a splay
// tree has no shape invariant beyond that.
func (t *Tree[K, V]) Verify() bool {
	return verifyNode[K, V](t.root, t.cmp)
}

func verifyNode[K any, V any](n *Node[K, V], cmp cmpkit.Comparator[K]) bool {
	if n == nil {
		return true
	}
	if n.left != nil {
		if cmp(n.left.key, n.key) >= 0 {
			return false
		}
		if n.left.parent != n {
			return false
		}
	}
	if n.right != nil {
		if cmp(n.right.key, n.key) <= 0 {
			return false
		}
		if n.right.parent != n {
			return false
		}
	}
	return verifyNode[K, V](n.left, cmp) && verifyNode[K, V](n.right, cmp)
}
