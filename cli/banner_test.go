package cli

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) { //nolint:paralleltest
	t.Setenv("SORTEDLIST_NO_BANNER", "false")

	t.Run("boxes each line", func(t *testing.T) {
		out := Banner("Integer demo\nsecond", 20, AlignLeft)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], boxTopLeft))
		assert.Equal(t, boxSide+"Integer demo      "+boxSide, lines[1])
		assert.Equal(t, boxSide+"second            "+boxSide, lines[2])
		assert.True(t, strings.HasPrefix(lines[3], boxBottomLeft))

		for _, line := range lines {
			assert.Equal(t, 20, utf8.RuneCountInString(line), line)
		}
	})

	t.Run("centers", func(t *testing.T) {
		out := Banner("ab", 8, AlignCenter)
		assert.Contains(t, out, boxSide+"  ab  "+boxSide)
	})

	t.Run("truncates long lines", func(t *testing.T) {
		out := Banner("abcdefghij", 8, AlignLeft)
		assert.Contains(t, out, boxSide+"abcde"+ellipsis+boxSide)
	})

	t.Run("non-positive width uses default", func(t *testing.T) {
		out := Banner("x", 0, AlignLeft)
		first := strings.SplitN(out, "\n", 2)[0]
		assert.Equal(t, DefaultWidth, utf8.RuneCountInString(first))
	})
}

func TestBanner_Suppressed(t *testing.T) { //nolint:paralleltest
	t.Setenv("SORTEDLIST_NO_BANNER", "true")

	assert.Equal(t, "plain\n", Banner("plain", 40, AlignCenter))
	assert.Equal(t, "\n", Divider(40))
}

func TestDivider(t *testing.T) { //nolint:paralleltest
	t.Setenv("SORTEDLIST_NO_BANNER", "0")

	out := Divider(10)
	assert.Equal(t, dividerLeft+strings.Repeat(dividerMiddle, 8)+dividerRight+"\n", out)
}
