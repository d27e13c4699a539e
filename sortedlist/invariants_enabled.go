//go:build sortedlist_invariants

package sortedlist

// assertInvariants panics when the chain is inconsistent. Built only with
// -tags sortedlist_invariants.
func (l *List) assertInvariants() {
	if err := l.checkInvariants(); err != nil {
		panic(err)
	}
}
