// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/sortedlist/compare"
)

// Sortable is satisfied by any type with equality and a strict ordering.
type Sortable[T any] interface {
	compare.Ordered[T]
}
