package reflow

import (
	"strings"
)

// PrettyPrint renders a Document back to text: prose is greedily
// word-wrapped to opts.Width, while code, tables, URLs, comments,
// block quotes, and footer trailers pass through verbatim. Chunks are
// separated by a single blank line, per §4.4.
func PrettyPrint(doc Document, opts Options) string {
	var b strings.Builder
	wroteAny := false

	separate := func() {
		if wroteAny {
			b.WriteString("\n\n")
		}
		wroteAny = true
	}

	if doc.Headline != nil {
		separate()
		b.WriteString(strings.TrimRight(doc.Headline.Line.Text, " \t"))
	}

	for _, chunk := range doc.Body {
		separate()
		printChunk(&b, chunk, opts)
	}

	if doc.Footer != nil {
		separate()
		writeVerbatim(&b, doc.Footer.Lines)
	}

	b.WriteString("\n")
	return b.String()
}

func printChunk(b *strings.Builder, chunk Chunk, opts Options) {
	switch chunk.Kind {
	case ChunkParagraph:
		printParagraph(b, chunk.Lines, opts.Width, opts.StripANSI)
	case ChunkList:
		printList(b, chunk.Items, opts)
	case ChunkCode, ChunkTable, ChunkComment, ChunkBlockQuote:
		writeVerbatim(b, chunk.Lines)
	case ChunkURL:
		b.WriteString(chunk.Line.Text)
	}
}

// writeVerbatim emits each line's original text, restoring a stripped
// \r where one was present, joined by newlines with no trailing
// newline.
func writeVerbatim(b *strings.Builder, lines []CatLine) {
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(l.Text)
		if l.HadCR {
			b.WriteString("\r")
		}
	}
}

// printParagraph joins the paragraph's lines into a word stream and
// greedily wraps it to width, but only when the source actually needs
// it: a paragraph whose lines are all already within width is copied
// verbatim line-for-line, so reflowing never touches text that didn't
// need it.
func printParagraph(b *strings.Builder, lines []CatLine, width int, stripANSI bool) {
	needsWrap := false
	for _, l := range lines {
		if DisplayWidth(l.Text, stripANSI) > width {
			needsWrap = true
			break
		}
	}
	if !needsWrap {
		writeVerbatim(b, lines)
		return
	}

	var joined []string
	for _, l := range lines {
		joined = append(joined, strings.TrimSpace(l.Text))
	}
	words := strings.Fields(strings.Join(joined, " "))
	wrapped := wrapWords(words, width, stripANSI)
	b.WriteString(strings.Join(wrapped, "\n"))
}

// wrapWords greedily packs words onto lines no wider than width,
// measured in display columns. A single word wider than width occupies
// its own line unbroken.
func wrapWords(words []string, width int, stripANSI bool) []string {
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
	}

	for _, word := range words {
		wordWidth := DisplayWidth(word, stripANSI)
		if curWidth == 0 {
			cur.WriteString(word)
			curWidth = wordWidth
			continue
		}
		if curWidth+1+wordWidth <= width {
			cur.WriteString(" ")
			cur.WriteString(word)
			curWidth += 1 + wordWidth
			continue
		}
		flush()
		cur.WriteString(word)
		curWidth = wordWidth
	}
	flush()

	return lines
}

// printList renders a list's items at the current nesting level.
func printList(b *strings.Builder, items []ListItemNode, opts Options) {
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		printListItem(b, item, opts)
	}
}

func printListItem(b *strings.Builder, item ListItemNode, opts Options) {
	if item.Intro != nil {
		b.WriteString(strings.TrimSpace(item.Intro.Text))
		b.WriteString("\n")
	}

	prefix := ExtractBulletPrefix(item.Marker.Text)
	textColumn := DisplayWidth(prefix, opts.StripANSI)
	indent := strings.Repeat(" ", textColumn)

	remainder := strings.TrimSpace(item.Marker.Text[len(prefix):])
	var words []string
	if remainder != "" {
		words = append(words, strings.Fields(remainder)...)
	}
	for _, c := range item.Continuation {
		words = append(words, strings.Fields(strings.TrimSpace(c.Text))...)
	}

	innerWidth := opts.Width - textColumn
	if innerWidth < 1 {
		innerWidth = 1
	}
	wrapped := wrapWords(words, innerWidth, opts.StripANSI)

	if len(wrapped) == 0 {
		b.WriteString(strings.TrimRight(prefix, " "))
	} else {
		b.WriteString(prefix)
		b.WriteString(wrapped[0])
		for _, line := range wrapped[1:] {
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString(line)
		}
	}

	for _, nested := range item.Nested {
		b.WriteString("\n")
		printListItem(b, nested, opts)
	}
}
