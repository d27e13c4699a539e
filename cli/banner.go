// Package cli holds terminal helpers for the demo: boxed banners and
// interactive prompts built on promptui.
package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/sortedlist/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"

	bannerPadding = 2
	minWidth      = bannerPadding + 1
)

// DefaultWidth is used when callers pass a non-positive width.
const DefaultWidth = 60

// Alignment positions banner text inside the box.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

func bannersSuppressed() bool {
	return envutil.Bool("SORTEDLIST_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

func normalizeWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}

	return max(width, minWidth)
}

// Divider returns a horizontal rule of the given width followed by a newline.
func Divider(width int) string {
	if bannersSuppressed() {
		return "\n"
	}

	width = normalizeWidth(width)

	return dividerLeft + strings.Repeat(dividerMiddle, width-bannerPadding) + dividerRight + "\n"
}

// Banner draws s inside a box of the given width. Each line of s becomes one
// row; rows that do not fit are truncated with an ellipsis. With
// SORTEDLIST_NO_BANNER set the text is returned undecorated.
func Banner(s string, width int, alignment Alignment) string {
	if bannersSuppressed() {
		return s + "\n"
	}

	width = normalizeWidth(width)
	inner := width - bannerPadding

	var sb strings.Builder

	sb.WriteString(boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight + "\n")

	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		sb.WriteString(boxSide + pad(line, inner, alignment) + boxSide + "\n")
	}

	sb.WriteString(boxBottomLeft + strings.Repeat(boxBottom, inner) + boxBottomRight + "\n")

	return sb.String()
}

func pad(text string, width int, alignment Alignment) string {
	length := utf8.RuneCountInString(text)

	if length > width {
		runes := []rune(text)
		text = string(runes[:width-1]) + ellipsis
		length = width
	}

	diff := width - length

	if alignment == AlignCenter {
		left := diff / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left)
	}

	return text + strings.Repeat(" ", diff)
}
