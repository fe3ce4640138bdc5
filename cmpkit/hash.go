package cmpkit

// HashFunc maps a key to a 32-bit hash used by the chained and
// open-addressing hash tables.
type HashFunc[K any] func(key K) uint32

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// FNV1a32 is the 32-bit FNV-1a hash over the bytes of s, as used by the
// string-keyed hash table variants.
func FNV1a32(s string) uint32 {
	h := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}

// StringHash adapts FNV1a32 to the HashFunc[string] shape expected by the
// hash table constructors.
func StringHash(s string) uint32 {
	return FNV1a32(s)
}
