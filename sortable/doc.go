// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of ordered containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for the orderings the sorted list supports: [Int] (numeric),
// [String] (byte-wise lexicographic) and [Natural] (digit runs compared by value).
// [github.com/amp-labs/sortedlist/sortedlist.Value] implements Sortable itself and
// delegates to these types for its payload comparisons.
//
// The Sortable interface is [github.com/amp-labs/sortedlist/compare.Ordered]:
// equality plus a strict LessThan.
//
// # Usage
//
//	a, b := sortable.Natural("file2"), sortable.Natural("file10")
//	a.LessThan(b) // true
//
//	x, y := sortable.String("file2"), sortable.String("file10")
//	x.LessThan(y) // false, byte order compares '2' with '1'
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement Equals and LessThan so that a
// value is never less than something it equals:
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
package sortable
