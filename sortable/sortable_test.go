package sortable

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(-4).LessThan(Int(3)))
	assert.False(t, Int(3).LessThan(Int(3)))
	assert.True(t, Int(3).Equals(Int(3)))
	assert.False(t, Int(3).Equals(Int(4)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, String("apple").LessThan(String("banana")))
	assert.True(t, String("Zebra").LessThan(String("apple")), "upper case sorts first in byte order")
	assert.True(t, String("file10").LessThan(String("file2")))
	assert.False(t, String("same").LessThan(String("same")))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	t.Run("digits compare numerically", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Natural("file2").LessThan(Natural("file10")))
		assert.False(t, Natural("file10").LessThan(Natural("file2")))
	})

	t.Run("irreflexive", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Natural("file2").LessThan(Natural("file2")))
		assert.True(t, Natural("file2").Equals(Natural("file2")))
	})

	t.Run("plain words", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Natural("apple").LessThan(Natural("banana")))
		assert.False(t, Natural("banana").LessThan(Natural("apple")))
	})

	t.Run("asymmetric for numerically equal chunks", func(t *testing.T) {
		t.Parallel()

		a, b := Natural("a1"), Natural("a01")
		assert.NotEqual(t, a.LessThan(b), b.LessThan(a))
	})

	t.Run("sorts a listing", func(t *testing.T) {
		t.Parallel()

		items := []Natural{"img12", "img10", "img2", "img1"}
		sort.Slice(items, func(i, j int) bool { return items[i].LessThan(items[j]) })

		assert.Equal(t, []Natural{"img1", "img2", "img10", "img12"}, items)
	})
}
