// Package rbtree implements a red-black tree: root is black, no red node
// has a red child, and every root-to-nil path carries the same number of
// black nodes. Those three invariants keep the tree within a factor of two
// of perfectly balanced, giving O(log n) insert/search/remove.
package rbtree

import (
	"assocmap/cmpkit"
	"assocmap/internal/bst"
	"assocmap/mapkit"
)

type color bool

const (
	red   color = true
	black color = false
)

type node[K any, V any] struct {
	key                 K
	value               V
	color               color
	left, right, parent *node[K, V]
}

func (n *node[K, V]) Left() *node[K, V]            { return n.left }
func (n *node[K, V]) Right() *node[K, V]           { return n.right }
func (n *node[K, V]) Parent() *node[K, V]          { return n.parent }
func (n *node[K, V]) SetLeft(c *node[K, V])        { n.left = c }
func (n *node[K, V]) SetRight(c *node[K, V])       { n.right = c }
func (n *node[K, V]) SetParent(p *node[K, V])      { n.parent = p }
func (n *node[K, V]) Key() K                       { return n.key }
func (n *node[K, V]) ValueSlot() *V                { return &n.value }

// Tree is a red-black tree keyed by K with values V.
type Tree[K any, V any] struct {
	root  *node[K, V]
	count int
	cmp   cmpkit.Comparator[K]
	alloc mapkit.Allocator[node[K, V]]
}

// New returns an empty red-black tree ordered by cmp.
func New[K any, V any](cmp cmpkit.Comparator[K]) *Tree[K, V] {
	return NewWithAllocator[K, V](cmp, mapkit.Allocator[node[K, V]]{})
}

// NewWithAllocator is like New but routes node allocation through alloc.
func NewWithAllocator[K any, V any](cmp cmpkit.Comparator[K], alloc mapkit.Allocator[node[K, V]]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp, alloc: mapkit.Normalize(alloc)}
}

// IsSorted reports that this variant maintains ascending key order.
func (t *Tree[K, V]) IsSorted() bool { return true }

// Count returns the number of live entries.
func (t *Tree[K, V]) Count() int { return t.count }

// Search returns the value slot for key, or ok=false if key is absent.
func (t *Tree[K, V]) Search(key K) (*V, bool) {
	n := bst.Search[K, V](t.root, t.cmp, key)
	if n == nil {
		return nil, false
	}
	return n.ValueSlot(), true
}

func (t *Tree[K, V]) SearchLE(key K) (*V, bool) {
	n := bst.SearchLE[K](t.root, t.cmp, key)
	if n == nil {
		return nil, false
	}
	return n.ValueSlot(), true
}

func (t *Tree[K, V]) SearchLT(key K) (*V, bool) {
	n := bst.SearchLT[K](t.root, t.cmp, key)
	if n == nil {
		return nil, false
	}
	return n.ValueSlot(), true
}

func (t *Tree[K, V]) SearchGE(key K) (*V, bool) {
	n := bst.SearchGE[K](t.root, t.cmp, key)
	if n == nil {
		return nil, false
	}
	return n.ValueSlot(), true
}

func (t *Tree[K, V]) SearchGT(key K) (*V, bool) {
	n := bst.SearchGT[K](t.root, t.cmp, key)
	if n == nil {
		return nil, false
	}
	return n.ValueSlot(), true
}

// Insert binds key to its value slot, creating the entry (colored red,
// then fixed up) if it did not already exist.
func (t *Tree[K, V]) Insert(key K) (*V, bool) {
	if t.root == nil {
		n := t.alloc.Alloc()
		n.key = key
		n.color = black
		t.root = n
		t.count++
		return n.ValueSlot(), true
	}

	parent := (*node[K, V])(nil)
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
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
	n.color = red
	n.parent = parent
	if t.cmp(key, parent.key) < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.count++
	t.insertFixup(n)
	return n.ValueSlot(), true
}

func (t *Tree[K, V]) insertFixup(n *node[K, V]) {
	for n.parent != nil && n.parent.color == red {
		grandparent := n.parent.parent
		if grandparent == nil {
			break
		}
		if n.parent == grandparent.left {
			uncle := grandparent.right
			if uncle != nil && uncle.color == red {
				n.parent.color = black
				uncle.color = black
				grandparent.color = red
				n = grandparent
				continue
			}
			if n == n.parent.right {
				n = n.parent
				t.rotateLeft(n)
			}
			n.parent.color = black
			grandparent.color = red
			t.rotateRight(grandparent)
		} else {
			uncle := grandparent.left
			if uncle != nil && uncle.color == red {
				n.parent.color = black
				uncle.color = black
				grandparent.color = red
				n = grandparent
				continue
			}
			if n == n.parent.left {
				n = n.parent
				t.rotateRight(n)
			}
			n.parent.color = black
			grandparent.color = red
			t.rotateLeft(grandparent)
		}
	}
	t.root.color = black
}

func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	parent := x.parent
	y := bst.RotateLeft[*node[K, V]](x)
	bst.Relink[*node[K, V]](&t.root, parent, x, y)
}

func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	parent := x.parent
	y := bst.RotateRight[*node[K, V]](x)
	bst.Relink[*node[K, V]](&t.root, parent, x, y)
}

// Remove deletes the entry for key if present.
func (t *Tree[K, V]) Remove(key K) (K, V, bool) {
	var zeroK K
	var zeroV V
	target := bst.Search[K, V](t.root, t.cmp, key)
	if target == nil {
		return zeroK, zeroV, false
	}

	removedKey, removedValue := target.key, target.value

	// Standard two-child reduction: swap with in-order successor, then
	// remove the successor, which has at most one child.
	victim := target
	if target.left != nil && target.right != nil {
		succ := bst.Min[*node[K, V]](target.right)
		target.key, target.value = succ.key, succ.value
		victim = succ
	}

	child := victim.left
	if child == nil {
		child = victim.right
	}

	parent := victim.parent
	wasLeftChild := parent != nil && parent.left == victim

	if child != nil {
		child.parent = parent
	}
	bst.Relink[*node[K, V]](&t.root, parent, victim, child)

	if victim.color == black {
		if child != nil {
			t.deleteFixup(child)
		} else if parent != nil {
			t.deleteFixupNil(parent, wasLeftChild)
		}
	}

	t.alloc.Free(victim)
	t.count--
	return removedKey, removedValue, true
}

// deleteFixup restores red-black invariants when the node taking the
// deleted black node's place is non-nil.
func (t *Tree[K, V]) deleteFixup(n *node[K, V]) {
	for n != t.root && n.color == black {
		if n.parent == nil {
			break
		}
		if n == n.parent.left {
			sibling := n.parent.right
			if sibling == nil {
				break
			}
			if sibling.color == red {
				sibling.color = black
				n.parent.color = red
				t.rotateLeft(n.parent)
				sibling = n.parent.right
				if sibling == nil {
					break
				}
			}
			if isBlack(sibling.left) && isBlack(sibling.right) {
				sibling.color = red
				n = n.parent
				continue
			}
			if isBlack(sibling.right) {
				if sibling.left != nil {
					sibling.left.color = black
				}
				sibling.color = red
				t.rotateRight(sibling)
				sibling = n.parent.right
			}
			sibling.color = n.parent.color
			n.parent.color = black
			if sibling.right != nil {
				sibling.right.color = black
			}
			t.rotateLeft(n.parent)
			n = t.root
		} else {
			sibling := n.parent.left
			if sibling == nil {
				break
			}
			if sibling.color == red {
				sibling.color = black
				n.parent.color = red
				t.rotateRight(n.parent)
				sibling = n.parent.left
				if sibling == nil {
					break
				}
			}
			if isBlack(sibling.left) && isBlack(sibling.right) {
				sibling.color = red
				n = n.parent
				continue
			}
			if isBlack(sibling.left) {
				if sibling.right != nil {
					sibling.right.color = black
				}
				sibling.color = red
				t.rotateLeft(sibling)
				sibling = n.parent.left
			}
			sibling.color = n.parent.color
			n.parent.color = black
			if sibling.left != nil {
				sibling.left.color = black
			}
			t.rotateRight(n.parent)
			n = t.root
		}
	}
	n.color = black
}

// deleteFixupNil handles the case where the deleted black node's
// replacement is nil: the double-black token starts on an empty slot, so
// the walk is driven by (parent, which side is vacated) instead of by a
// node, until a rotation or recoloring resolves it or the token reaches
// the root.
func (t *Tree[K, V]) deleteFixupNil(parent *node[K, V], wasLeftChild bool) {
	for parent != nil {
		var sibling *node[K, V]
		if wasLeftChild {
			sibling = parent.right
		} else {
			sibling = parent.left
		}
		if sibling == nil {
			return
		}

		if sibling.color == red {
			sibling.color = black
			parent.color = red
			if wasLeftChild {
				t.rotateLeft(parent)
				sibling = parent.right
			} else {
				t.rotateRight(parent)
				sibling = parent.left
			}
			if sibling == nil {
				return
			}
		}

		if isBlack(sibling.left) && isBlack(sibling.right) {
			sibling.color = red
			if parent.color == red {
				parent.color = black
				return
			}
			wasLeftChild = parent.parent != nil && parent.parent.left == parent
			parent = parent.parent
			continue
		}

		if wasLeftChild {
			if isBlack(sibling.right) {
				if sibling.left != nil {
					sibling.left.color = black
				}
				sibling.color = red
				t.rotateRight(sibling)
				sibling = parent.right
			}
			sibling.color = parent.color
			parent.color = black
			if sibling.right != nil {
				sibling.right.color = black
			}
			t.rotateLeft(parent)
		} else {
			if isBlack(sibling.left) {
				if sibling.right != nil {
					sibling.right.color = black
				}
				sibling.color = red
				t.rotateLeft(sibling)
				sibling = parent.left
			}
			sibling.color = parent.color
			parent.color = black
			if sibling.left != nil {
				sibling.left.color = black
			}
			t.rotateRight(parent)
		}
		return
	}
}

func isBlack[K any, V any](n *node[K, V]) bool {
	return n == nil || n.color == black
}

// Clear removes every entry, invoking deleteFunc once per destroyed entry.
func (t *Tree[K, V]) Clear(deleteFunc func(K, V)) int {
	n := bst.Clear[K, V](t.root, deleteFunc)
	t.root = nil
	t.count = 0
	return n
}

// Traverse visits entries in ascending key order.
func (t *Tree[K, V]) Traverse(visit func(K, V) bool) int {
	return bst.Traverse[K, V](t.root, func(k K, v *V) bool { return visit(k, *v) })
}

// Select returns the (n+1)-th smallest entry. Red-black trees keep no
// subtree size, so this is an O(n) in-order walk.
func (t *Tree[K, V]) Select(n int) (K, V, bool) {
	if n < 0 || n >= t.count {
		var zk K
		var zv V
		return zk, zv, false
	}
	return bst.SelectLinear[K, V](t.root, n)
}

// Verify checks the three red-black invariants without mutating the tree.
func (t *Tree[K, V]) Verify() bool {
	if t.root != nil && t.root.color != black {
		return false
	}
	_, ok := verifyNode[K, V](t.root)
	return ok
}

func verifyNode[K any, V any](n *node[K, V]) (blackHeight int, ok bool) {
	if n == nil {
		return 1, true
	}
	if n.color == red {
		if (n.left != nil && n.left.color == red) || (n.right != nil && n.right.color == red) {
			return 0, false
		}
	}
	lh, lok := verifyNode[K, V](n.left)
	if !lok {
		return 0, false
	}
	rh, rok := verifyNode[K, V](n.right)
	if !rok {
		return 0, false
	}
	if lh != rh {
		return 0, false
	}
	if n.left != nil && n.left.parent != n {
		return 0, false
	}
	if n.right != nil && n.right.parent != n {
		return 0, false
	}
	bh := lh
	if n.color == black {
		bh++
	}
	return bh, true
}
