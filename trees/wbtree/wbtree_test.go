package wbtree

import (
	"math/rand"
	"testing"

	"assocmap/cmpkit"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInsertAndSearch(t *testing.T) {
	Convey("Given an empty weight-balanced tree of strings", t, func() {
		tr := New[string, string](cmpkit.String)
		for _, kv := range [][2]string{{"b", "B"}, {"a", "A"}, {"c", "C"}} {
			slot, _ := tr.Insert(kv[0])
			*slot = kv[1]
		}

		So(tr.Count(), ShouldEqual, 3)

		Convey("Traverse yields ascending order", func() {
			var got []string
			tr.Traverse(func(k, v string) bool {
				got = append(got, k)
				return true
			})
			So(got, ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("Search finds and misses as expected", func() {
			slot, ok := tr.Search("a")
			So(ok, ShouldBeTrue)
			So(*slot, ShouldEqual, "A")

			_, ok = tr.Search("d")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestWeightInvariant(t *testing.T) {
	Convey("Given a large randomized insert/delete workload", t, func() {
		tr := New[int, int](cmpkit.Int)
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

		Convey("Removing every key keeps the invariant and empties the tree", func() {
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
	Convey("Given keys 1..1000 inserted in ascending order", t, func() {
		tr := New[int, int](cmpkit.Int)
		for i := 1; i <= 1000; i++ {
			tr.Insert(i)
		}

		Convey("Select(i) returns key i+1 for every i in [0, 1000)", func() {
			for i := 0; i < 1000; i++ {
				k, _, ok := tr.Select(i)
				So(ok, ShouldBeTrue)
				So(k, ShouldEqual, i+1)
			}
			_, _, ok := tr.Select(1000)
			So(ok, ShouldBeFalse)
		})
	})
}
