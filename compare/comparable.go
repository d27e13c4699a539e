// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered extends Comparable with a strict ordering. LessThan must be
// irreflexive and consistent with Equals: a value is never less than
// something it equals.
type Ordered[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Compare returns -1 if a sorts before b, 1 if b sorts before a and 0 otherwise.
func Compare[T Ordered[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// IsSorted reports whether items are in non-decreasing order.
func IsSorted[T Ordered[T]](items []T) bool {
	for i := 1; i < len(items); i++ {
		if items[i].LessThan(items[i-1]) {
			return false
		}
	}

	return true
}
