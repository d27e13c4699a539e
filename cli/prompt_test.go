package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateNonEmpty("apple"))
	require.ErrorIs(t, ValidateNonEmpty(""), errEmptyInput)
	require.ErrorIs(t, ValidateNonEmpty("   "), errEmptyInput)
}

func TestParseInt64(t *testing.T) {
	t.Parallel()

	val, err := ParseInt64(" -42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), val)

	_, err = ParseInt64("4.2")
	require.Error(t, err)

	require.NoError(t, ValidateInt64("9223372036854775807"))
	require.Error(t, ValidateInt64("9223372036854775808"))
	require.Error(t, ValidateInt64("hello"))
}
