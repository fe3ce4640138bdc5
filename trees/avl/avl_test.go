package avl

import (
	"math/rand"
	"testing"

	"assocmap/cmpkit"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatting(t *testing.T) {
	Convey("Test recursive formatters", t, func() {
		tr := NewTree[int, int](cmpkit.Int)
		vals := []int{1, 2, 3, 4, 5, 6, 7, 8}
		for _, v := range vals {
			_, inserted := tr.Insert(v)
			So(inserted, ShouldBeTrue)
		}

		Convey("Test preorder traversal", func() {
			s := tr.FormatDFS(PreOrder)
			So(len(s) > 0, ShouldBeTrue)
		})

		Convey("Test inorder traversal is ascending", func() {
			s := tr.FormatDFS(InOrder)
			So(s, ShouldEqual, "1 2 3 4 5 6 7 8 ")
		})

		Convey("Test postorder traversal", func() {
			s := tr.FormatDFS(PostOrder)
			So(len(s) > 0, ShouldBeTrue)
		})

		Convey("Unrecognized traversal should panic", func() {
			forcePanic := func() {
				tr.FormatDFS(DFSOrder(-1))
			}
			So(forcePanic, ShouldPanic)
		})
	})
}

func TestFind(t *testing.T) {
	Convey("Given a tree with a handful of keys", t, func() {
		tr := NewTree[int, int](cmpkit.Int)
		for _, v := range []int{5, 3, 8, 1, 4} {
			tr.Insert(v)
		}

		Convey("When Search is called for an item that exists", func() {
			slot, ok := tr.Search(4)
			So(ok, ShouldBeTrue)
			So(*slot, ShouldEqual, 0)
		})

		Convey("When Search is called for an item that does not exist", func() {
			_, ok := tr.Search(99)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestBalanceInvariant(t *testing.T) {
	Convey("Given a large randomized insert/delete workload", t, func() {
		tr := NewTree[int, int](cmpkit.Int)
		seen := map[int]bool{}
		var keys []int

		for i := 0; i < 2000; i++ {
			k := rand.Intn(5000)
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
			tr.Insert(k)
			So(tr.Verify(), ShouldBeTrue)
		}

		Convey("Removing every key keeps the balance invariant and empties the tree", func() {
			for _, k := range keys {
				_, _, removed := tr.Remove(k)
				So(removed, ShouldBeTrue)
				So(tr.Verify(), ShouldBeTrue)
			}
			So(tr.Count(), ShouldEqual, 0)
		})
	})
}

func TestSelect(t *testing.T) {
	Convey("Given keys 1..1000", t, func() {
		tr := NewTree[int, int](cmpkit.Int)
		for i := 1; i <= 1000; i++ {
			tr.Insert(i)
		}

		Convey("Select(i) returns key i+1 and Select(1000) fails", func() {
			for i := 0; i < 1000; i += 113 {
				k, _, ok := tr.Select(i)
				So(ok, ShouldBeTrue)
				So(k, ShouldEqual, i+1)
			}
			_, _, ok := tr.Select(1000)
			So(ok, ShouldBeFalse)
		})
	})
}
