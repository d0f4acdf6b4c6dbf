// Package support carries the ambient concerns shared by every exported
// package: invariant assertions, hierarchical byte-size reporting, and
// deterministic seeding for reproducible construction.
package support

import "fmt"

// Bug panics with a formatted message. It marks a violated invariant that a
// caller cannot recover from (a programmer error, per the library's error
// taxonomy), never a recoverable runtime condition.
func Bug(format string, args ...any) {
	panic(fmt.Sprintf("BUG: "+format, args...))
}

// BugOn calls Bug when cond is true.
func BugOn(cond bool, format string, args ...any) {
	if cond {
		Bug(format, args...)
	}
}
