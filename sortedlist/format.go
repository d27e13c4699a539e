package sortedlist

import (
	"fmt"
	"strings"
)

var (
	_ fmt.Stringer   = (*List)(nil)
	_ fmt.GoStringer = (*List)(nil)
)

// String renders the elements in order, e.g. [1, 2, 3] or ["a", "b"].
func (l *List) String() string {
	var sb strings.Builder

	l.writeElements(&sb)

	return sb.String()
}

// GoString renders the list with its kind, e.g.
// SortedList(kind=integral, elements=[1, 2, 3]). It backs the %#v verb.
func (l *List) GoString() string {
	var sb strings.Builder

	sb.WriteString("SortedList(kind=")
	sb.WriteString(l.kind.String())
	sb.WriteString(", elements=")
	l.writeElements(&sb)
	sb.WriteString(")")

	return sb.String()
}

func (l *List) writeElements(sb *strings.Builder) {
	sb.WriteByte('[')

	for i, v := range l.All() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(v.String())
	}

	sb.WriteByte(']')
}
