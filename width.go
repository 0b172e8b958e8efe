package reflow

import (
	"regexp"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ansiEscape matches CSI/SGR escape sequences (e.g. color codes).
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes CSI/SGR escape sequences from s.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// DisplayWidth returns the number of terminal columns s occupies,
// measuring grapheme clusters rather than individual runes so combining
// marks count as zero width and double-width CJK/emoji clusters count
// as two. If stripANSI is true, escape sequences are removed before
// measurement; otherwise they count toward the measured width, per the
// documented behavior for --no-ansi.
func DisplayWidth(s string, stripANSI bool) int {
	if stripANSI {
		s = StripANSI(s)
	}
	width := 0
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() {
		width += runewidth.StringWidth(graphemes.Str())
	}
	return width
}

// CountIndent returns the leading-whitespace column width of line. Each
// space contributes 1; each tab contributes 4-(col mod 4) where col is
// the current column, matching common tab-stop expansion. Mixed
// tabs/spaces are normalized only for this measurement.
func CountIndent(line string) int {
	col := 0
	for _, r := range line {
		switch r {
		case ' ':
			col++
		case '\t':
			col += 4 - (col % 4)
		default:
			return col
		}
	}
	return col
}
