// Package stub replaces package-level variables in tests.
package stub

import "testing"

// Replace replaces the value at dst with val
// until the test and its subtests finish.
//
// Tests that use Replace must not run in parallel
// with other tests that read dst.
func Replace[V any](t testing.TB, dst *V, val V) {
	old := *dst
	*dst = val
	t.Cleanup(func() {
		*dst = old
	})
}
