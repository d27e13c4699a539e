package sortable

import "facette.io/natsort"

// Natural orders text naturally: runs of digits compare by numeric value,
// so "file2" sorts before "file10". Equality is still exact.
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan reports whether n sorts strictly before other.
//
// natsort.Compare is not a strict order on its own: it answers true for
// identical inputs and for numerically equal chunks such as "a1" and "a01".
// Whenever it answers the same in both directions, byte order decides.
func (n Natural) LessThan(other Natural) bool {
	a, b := string(n), string(other)
	if a == b {
		return false
	}

	ab := natsort.Compare(a, b)
	if ab == natsort.Compare(b, a) {
		return a < b
	}

	return ab
}
