// Package bst holds the tree skeleton shared by every sorted map
// implementation in assocmap: rotations, the parent-pointer
// predecessor/successor walk, min/max, closest-neighbor search, and the
// traverse/clear visitors. Each concrete tree (red-black, height-balanced,
// weight-balanced, path-reduction, splay) supplies its own node type and its
// own rebalancing policy; this package only ever touches left/right/parent
// links, never a color bit, balance pair, weight, or priority.
package bst

import "assocmap/cmpkit"

// Linker is satisfied by a tree node pointer type that exposes its left and
// right children. P is the node pointer type itself (e.g. rbtree's *node[K, V]);
// the self-referential constraint is what lets these functions work across
// every tree variant without a common base struct.
type Linker[P any] interface {
	comparable
	Left() P
	Right() P
	SetLeft(P)
	SetRight(P)
}

// ParentLinker additionally exposes the parent link, required for the
// amortized-O(1) predecessor/successor walk and for rotations.
type ParentLinker[P any] interface {
	Linker[P]
	Parent() P
	SetParent(P)
}

// Keyed exposes the ordering key of a node, for closest-neighbor search and
// traversal.
type Keyed[K any, P any] interface {
	Linker[P]
	Key() K
}

// Valued exposes the mutable value slot of a node.
type Valued[V any] interface {
	ValueSlot() *V
}

// Min returns the leftmost node of the subtree rooted at n, or the zero
// value of P if n is the zero value.
func Min[P Linker[P]](n P) P {
	var zero P
	if n == zero {
		return zero
	}
	for n.Left() != zero {
		n = n.Left()
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n, or the zero
// value of P if n is the zero value.
func Max[P Linker[P]](n P) P {
	var zero P
	if n == zero {
		return zero
	}
	for n.Right() != zero {
		n = n.Right()
	}
	return n
}

// Successor returns the in-order successor of n using parent links, or the
// zero value of P if n is the maximum node.
func Successor[P ParentLinker[P]](n P) P {
	var zero P
	if n == zero {
		return zero
	}
	if n.Right() != zero {
		return Min[P](n.Right())
	}
	cur, p := n, n.Parent()
	for p != zero && cur == p.Right() {
		cur = p
		p = p.Parent()
	}
	return p
}

// Predecessor returns the in-order predecessor of n using parent links, or
// the zero value of P if n is the minimum node.
func Predecessor[P ParentLinker[P]](n P) P {
	var zero P
	if n == zero {
		return zero
	}
	if n.Left() != zero {
		return Max[P](n.Left())
	}
	cur, p := n, n.Parent()
	for p != zero && cur == p.Left() {
		cur = p
		p = p.Parent()
	}
	return p
}

// RotateLeft performs the classic left rotation around x, rewiring parent
// links on x, x's former right child, and that child's left subtree, and
// returns the node now occupying x's former position. It does not touch
// color bits, balance pairs, weights, or priorities, nor does it hook the
// returned node into x's former parent; callers own that last step (and the
// tree-root update when x was the root) because only they know which
// bookkeeping field needs fixing up afterward.
func RotateLeft[P ParentLinker[P]](x P) P {
	var zero P
	y := x.Right()
	x.SetRight(y.Left())
	if y.Left() != zero {
		y.Left().SetParent(x)
	}
	y.SetParent(x.Parent())
	y.SetLeft(x)
	x.SetParent(y)
	return y
}

// RotateRight is the mirror image of RotateLeft.
func RotateRight[P ParentLinker[P]](x P) P {
	var zero P
	y := x.Left()
	x.SetLeft(y.Right())
	if y.Right() != zero {
		y.Right().SetParent(x)
	}
	y.SetParent(x.Parent())
	y.SetRight(x)
	x.SetParent(y)
	return y
}

// Relink hooks child into parent's slot on the side that old used to
// occupy, or, if parent is the zero value, assigns child to *root instead.
// This is the piece every rotation caller needs to complete a rotation: the
// grandparent side is variant-specific bookkeeping (none), but "which slot
// of the grandparent" is pure plumbing, so it lives here.
func Relink[P ParentLinker[P]](root *P, parent, old, child P) {
	var zero P
	if parent == zero {
		*root = child
		return
	}
	if parent.Left() == old {
		parent.SetLeft(child)
	} else {
		parent.SetRight(child)
	}
}

// Search performs an exact-match descent using cmp, returning the matching
// node or the zero value of P.
func Search[K any, V any, P interface {
	Keyed[K, P]
	Valued[V]
}](root P, cmp cmpkit.Comparator[K], key K) P {
	var zero P
	n := root
	for n != zero {
		c := cmp(key, n.Key())
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.Left()
		default:
			n = n.Right()
		}
	}
	return zero
}
