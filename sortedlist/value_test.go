package sortedlist

import (
	"math"
	"testing"

	"github.com/amp-labs/sortedlist/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{name: "int", input: 42, expected: Int(42)},
		{name: "int8", input: int8(-8), expected: Int(-8)},
		{name: "int16", input: int16(16), expected: Int(16)},
		{name: "int32", input: int32(-32), expected: Int(-32)},
		{name: "int64", input: int64(math.MinInt64), expected: Int(math.MinInt64)},
		{name: "uint", input: uint(7), expected: Int(7)},
		{name: "uint8", input: uint8(255), expected: Int(255)},
		{name: "uint16", input: uint16(16), expected: Int(16)},
		{name: "uint32", input: uint32(math.MaxUint32), expected: Int(math.MaxUint32)},
		{name: "uint64", input: uint64(math.MaxInt64), expected: Int(math.MaxInt64)},
		{name: "string", input: "hello", expected: Text("hello")},
		{name: "value", input: Text("x"), expected: Text("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValueOf(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		for _, input := range []any{nil, 1.5, float32(2), true, []byte("x"), struct{}{}, Value{}} {
			_, err := ValueOf(input)
			require.ErrorIs(t, err, ErrUnsupportedKind)
		}
	})

	t.Run("unsigned overflow", func(t *testing.T) {
		t.Parallel()

		_, err := ValueOf(uint64(math.MaxInt64) + 1)
		require.ErrorIs(t, err, ErrUnsupportedKind)
	})
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	n, ok := Int(5).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	_, ok = Int(5).Text()
	assert.False(t, ok)

	s, ok := Text("a").Text()
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	_, ok = Text("a").Int()
	assert.False(t, ok)

	assert.Equal(t, int64(5), Int(5).Any())
	assert.Equal(t, "a", Text("a").Any())
	assert.Nil(t, Value{}.Any())

	assert.Equal(t, KindIntegral, Int(0).Kind())
	assert.Equal(t, KindText, Text("").Kind())
	assert.Equal(t, KindUnset, Value{}.Kind())
}

func TestValue_Equals(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(3).Equals(Int(3)))
	assert.False(t, Int(3).Equals(Int(4)))
	assert.True(t, Text("a").Equals(Text("a")))
	assert.False(t, Text("a").Equals(Text("b")))
	assert.False(t, Int(0).Equals(Text("")), "zero payloads of different kinds")
	assert.False(t, Int(1).Equals(Text("1")))
	assert.True(t, Value{}.Equals(Value{}))
}

func TestValue_LessThan(t *testing.T) {
	t.Parallel()

	t.Run("integers", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Int(-1).LessThan(Int(0)))
		assert.False(t, Int(0).LessThan(Int(0)))
		assert.Equal(t, 1, compare.Compare(Int(9), Int(2)))
	})

	t.Run("text uses byte order", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Text("apple").LessThan(Text("banana")))
		assert.True(t, Text("Zebra").LessThan(Text("apple")))
		assert.True(t, Text("file10").LessThan(Text("file2")))
		assert.False(t, Text("x").LessThan(Text("x")))
	})

	t.Run("natural order is opt in", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Text("file2").lessThan(Text("file10"), TextOrderNatural))
		assert.False(t, Text("file2").lessThan(Text("file10"), TextOrderLexical))
	})

	t.Run("total across kinds", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Int(100).LessThan(Text("0")))
		assert.False(t, Text("0").LessThan(Int(100)))
		assert.True(t, Value{}.LessThan(Int(math.MinInt64)))
		assert.False(t, Value{}.LessThan(Value{}))
	})

	t.Run("sorted slices", func(t *testing.T) {
		t.Parallel()

		assert.True(t, compare.IsSorted([]Value{Int(1), Int(1), Int(3)}))
		assert.False(t, compare.IsSorted([]Value{Text("b"), Text("a")}))
	})
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-12", Int(-12).String())
	assert.Equal(t, `"hi"`, Text("hi").String())
	assert.Equal(t, `"say \"hi\""`, Text(`say "hi"`).String())
	assert.Equal(t, "<unset>", Value{}.String())
}
