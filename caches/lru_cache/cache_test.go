package lru_cache

import (
	"testing"

	"assocmap/cmpkit"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPutAndGet(t *testing.T) {
	Convey("Given a cache with capacity 3", t, func() {
		c, err := New[int, string](3, cmpkit.Int, func(k int) uint32 { return uint32(k) })
		So(err, ShouldBeNil)

		So(c.Put(1, "one"), ShouldBeNil)
		So(c.Put(2, "two"), ShouldBeNil)
		So(c.Put(3, "three"), ShouldBeNil)
		So(c.Len(), ShouldEqual, 3)

		Convey("Get returns the stored value and rotates it to the front", func() {
			v, ok := c.Get(1)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "one")
			So(c.head.key, ShouldEqual, 1)
		})

		Convey("Put of a duplicate key fails", func() {
			So(c.Put(1, "uno"), ShouldEqual, ErrDuplicateItem)
		})

		Convey("Get of a missing key reports false", func() {
			_, ok := c.Get(99)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEvictionAtCapacity(t *testing.T) {
	Convey("Given a cache with capacity 2 holding two entries", t, func() {
		c, _ := New[int, string](2, cmpkit.Int, func(k int) uint32 { return uint32(k) })
		c.Put(1, "one")
		c.Put(2, "two")

		Convey("Putting a third entry evicts the least-recently-used one", func() {
			So(c.Put(3, "three"), ShouldBeNil)
			So(c.Len(), ShouldEqual, 2)

			_, ok := c.Get(1)
			So(ok, ShouldBeFalse)

			v, ok := c.Get(2)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "two")

			v, ok = c.Get(3)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "three")
		})

		Convey("Accessing the older entry protects it from eviction", func() {
			c.Get(1)
			So(c.Put(3, "three"), ShouldBeNil)

			_, ok := c.Get(2)
			So(ok, ShouldBeFalse)

			v, ok := c.Get(1)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "one")
		})
	})
}

func TestRemove(t *testing.T) {
	Convey("Given a populated cache", t, func() {
		c, _ := New[int, string](4, cmpkit.Int, func(k int) uint32 { return uint32(k) })
		c.Put(1, "one")
		c.Put(2, "two")

		Convey("Remove deletes the entry", func() {
			So(c.Remove(1), ShouldBeNil)
			So(c.Len(), ShouldEqual, 1)
			_, ok := c.Get(1)
			So(ok, ShouldBeFalse)
		})

		Convey("Remove of a missing key reports an error", func() {
			So(c.Remove(99), ShouldEqual, ErrItemNotFound)
		})
	})
}

func TestInvalidCapacity(t *testing.T) {
	Convey("A non-positive capacity is rejected", t, func() {
		_, err := New[int, string](0, cmpkit.Int, func(k int) uint32 { return uint32(k) })
		So(err, ShouldEqual, ErrInvalidSize)
	})
}
