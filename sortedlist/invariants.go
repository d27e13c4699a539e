package sortedlist

import (
	"errors"
	"fmt"
)

var errBrokenInvariant = errors.New("sortedlist invariant violated")

// checkInvariants walks the chain and verifies ordering, kind and size.
func (l *List) checkInvariants() error {
	count := 0

	var prev *node

	for current := l.head; current != nil; current = current.next {
		if current.value.kind != l.kind {
			return fmt.Errorf("%w: element %d has kind %s in a %s list",
				errBrokenInvariant, count, current.value.kind, l.kind)
		}

		if prev != nil && l.less(current.value, prev.value) {
			return fmt.Errorf("%w: element %d (%s) sorts before its predecessor (%s)",
				errBrokenInvariant, count, current.value, prev.value)
		}

		prev = current
		count++
	}

	if count != l.size {
		return fmt.Errorf("%w: size is %d but %d nodes are reachable", errBrokenInvariant, l.size, count)
	}

	return nil
}
