// Package sortedlist provides a singly linked list that keeps its elements
// in non-decreasing order as they are inserted and removed.
//
// A List holds either integers or strings, never both. The element kind is
// declared with [WithKind] or inferred from the first successful insertion,
// and is kept for the lifetime of the list, including across [List.Clear].
// Inserting a value of the other kind fails with [ErrTypeMismatch] and leaves
// the list unchanged.
//
// Equal elements are kept in arrival order: a new element is linked after
// every element that is less than or equal to it.
//
//	list := sortedlist.NewIntegral()
//	for _, n := range []int64{5, 2, 8, 1} {
//	    _ = list.Insert(sortedlist.Int(n))
//	}
//	fmt.Println(list) // [1, 2, 5, 8]
//
// Every operation is a linear scan at worst; there is no index and no
// internal locking.
package sortedlist
