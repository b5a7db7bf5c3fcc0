// Package text provides exact-width string primitives for chart layout.
// Widths are display cells, not bytes or runes, so block glyphs and
// multi-byte labels line up in a terminal.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width reports the display width of s in cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Fit right-pads s with spaces and then truncates, so the result is always
// exactly width cells. Fit never fails; a negative width is treated as zero.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		// Truncate can land under width when a wide rune straddles the
		// boundary, so pad afterwards in either case.
		s = runewidth.Truncate(s, width, "")
	}
	if w := runewidth.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// LeftPad prepends pad until s is at least width cells. Strings already at
// or over width are returned unchanged.
func LeftPad(s string, width int, pad rune) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(string(pad), width-w) + s
}
