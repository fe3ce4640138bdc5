// Package version exposes assocmap's release triple.
package version

import "fmt"

const (
	Major = 1
	Minor = 0
	Patch = 0
)

// String returns "<major>.<minor>.<patch>".
func String() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}
