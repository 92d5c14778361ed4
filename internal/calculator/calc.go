// Package calculator provides integer arithmetic for mathops.
//
// Results use Go's native int semantics: a sum that does not fit in int
// wraps around in two's complement rather than failing.
package calculator

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}
