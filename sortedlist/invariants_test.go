package sortedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_CheckInvariants(t *testing.T) {
	t.Parallel()

	t.Run("healthy list", func(t *testing.T) {
		t.Parallel()

		list := NewIntegral()
		insertInts(t, list, 4, 1, 3, 1)
		require.NoError(t, list.checkInvariants())

		list.Remove(Int(1))
		require.NoError(t, list.checkInvariants())

		list.Clear()
		require.NoError(t, list.checkInvariants())
	})

	t.Run("out of order", func(t *testing.T) {
		t.Parallel()

		list := NewIntegral()
		insertInts(t, list, 1, 8)
		list.head.next.next = &node{value: Int(7)}
		list.size++

		err := list.checkInvariants()
		require.ErrorIs(t, err, errBrokenInvariant)
		assert.Contains(t, err.Error(), "sorts before its predecessor")
	})

	t.Run("foreign kind", func(t *testing.T) {
		t.Parallel()

		list := NewIntegral()
		insertInts(t, list, 1)
		list.head.next = &node{value: Text("x")}
		list.size++

		require.ErrorIs(t, list.checkInvariants(), errBrokenInvariant)
	})

	t.Run("size drift", func(t *testing.T) {
		t.Parallel()

		list := NewText()
		insertTexts(t, list, "a", "b")
		list.size = 5

		err := list.checkInvariants()
		require.ErrorIs(t, err, errBrokenInvariant)
		assert.Contains(t, err.Error(), "size is 5 but 2 nodes are reachable")
	})
}
