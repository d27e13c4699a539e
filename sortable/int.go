package sortable

// Int is a sortable wrapper type for 64-bit integers.
// It implements the Sortable[Int] interface using numeric order.
//
// To convert back to a regular integer, use a type conversion:
//
//	var s sortable.Int = 42
//	regular := int64(s)
type Int int64

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int64(i) == int64(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int64(i) < int64(other)
}
