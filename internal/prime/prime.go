// Package prime supplies the monotonic prime table consulted by the
// open-addressing hash table when it grows.
package prime

// table is a monotonic sequence of primes spanning small table sizes up to
// just under the uint32 range, doubling roughly each step so that growth
// amortizes to O(1) per insert.
var table = []uint32{
	11, 23, 53, 97, 193, 389, 769, 1543, 3079, 6151,
	12289, 24593, 49157, 98317, 196613, 393241, 786433,
	1572869, 3145739, 6291469, 12582917, 25165843, 50331653,
	100663319, 201326611, 402653189, 805306457, 1610612741,
	3221225473, 4294967291,
}

// GEQ returns the first table entry greater than or equal to n, or the
// largest entry if n exceeds every entry in the table.
func GEQ(n uint32) uint32 {
	for _, p := range table {
		if p >= n {
			return p
		}
	}
	return table[len(table)-1]
}
