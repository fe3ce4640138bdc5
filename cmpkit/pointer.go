package cmpkit

import "unsafe"

// lessAddr orders two non-nil-distinct pointers by their runtime address.
// This is the one place in the package that reaches for unsafe, and only to
// get a total order out of pointer identity rather than to touch memory.
func lessAddr[T any](a, b *T) bool {
	return uintptr(unsafe.Pointer(a)) < uintptr(unsafe.Pointer(b))
}
