// Package debugviz renders a classification-overlay SVG for a reflow
// document: one colored row per line held in the document's chunks
// (blank lines between chunks are not drawn), with Code chunk contents
// syntax-highlighted via chroma.
package debugviz

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	reflow "github.com/alnah/commitreflow"
)

const (
	rowHeight  = 16
	charWidth  = 8
	leftMargin = 8
)

// categoryColor assigns a fill color per category for the overlay's
// row background.
var categoryColor = map[reflow.Category]string{
	reflow.Empty:             "#1e1e1e",
	reflow.Headline:          "#569cd6",
	reflow.ProseGeneral:      "#2d2d2d",
	reflow.ProseIntroduction: "#3a3d41",
	reflow.ListItem:          "#4ec9b0",
	reflow.ListContinuation:  "#3a5f58",
	reflow.Code:              "#272822",
	reflow.Table:             "#b5cea8",
	reflow.URL:               "#ce9178",
	reflow.Comment:           "#6a9955",
	reflow.BlockQuote:        "#c586c0",
	reflow.Footer:            "#dcdcaa",
}

type overlayRow struct {
	text string
	cat  reflow.Category
	code bool
}

// Render writes a classification-overlay SVG for doc to path.
func Render(doc reflow.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("debugviz: create %s: %w", path, err)
	}
	defer f.Close()
	return write(f, doc)
}

func write(w io.Writer, doc reflow.Document) error {
	rows := collectRows(doc)

	maxLen := 0
	for _, r := range rows {
		if len(r.text) > maxLen {
			maxLen = len(r.text)
		}
	}
	width := leftMargin*2 + maxLen*charWidth
	height := rowHeight * (len(rows) + 1)

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="monospace" font-size="12">`+"\n", width, height)
	fmt.Fprintf(w, `<rect width="%d" height="%d" fill="#1e1e1e"/>`+"\n", width, height)

	codeLines := codeBlockText(rows)
	lexer := guessLexer(codeLines)
	style := styles.Get("monokai")

	for i, r := range rows {
		y := rowHeight * (i + 1)
		bg := categoryColor[r.cat]
		fmt.Fprintf(w, `<rect x="0" y="%d" width="%d" height="%d" fill="%s"/>`+"\n", y-rowHeight+2, width, rowHeight, bg)

		if r.code && lexer != nil {
			writeTokenizedLine(w, lexer, style, r.text, y)
			continue
		}
		fmt.Fprintf(w, `<text x="%d" y="%d" fill="#d4d4d4">%s</text>`+"\n", leftMargin, y, html.EscapeString(r.text))
	}

	fmt.Fprintln(w, "</svg>")
	return nil
}

// collectRows flattens a Document into one row per line, in document
// order, including nested list items.
func collectRows(doc reflow.Document) []overlayRow {
	var rows []overlayRow

	if doc.Headline != nil {
		rows = append(rows, overlayRow{text: doc.Headline.Line.Text, cat: reflow.Headline})
	}

	for _, chunk := range doc.Body {
		rows = append(rows, chunkRows(chunk)...)
	}

	if doc.Footer != nil {
		for _, l := range doc.Footer.Lines {
			rows = append(rows, overlayRow{text: l.Text, cat: reflow.Footer})
		}
	}

	return rows
}

func chunkRows(chunk reflow.Chunk) []overlayRow {
	var rows []overlayRow
	switch chunk.Kind {
	case reflow.ChunkURL:
		rows = append(rows, overlayRow{text: chunk.Line.Text, cat: reflow.URL})
	case reflow.ChunkCode:
		for _, l := range chunk.Lines {
			rows = append(rows, overlayRow{text: l.Text, cat: reflow.Code, code: true})
		}
	case reflow.ChunkList:
		for _, item := range chunk.Items {
			rows = append(rows, listItemRows(item)...)
		}
	default:
		for _, l := range chunk.Lines {
			rows = append(rows, overlayRow{text: l.Text, cat: l.FinalCat})
		}
	}
	return rows
}

func listItemRows(item reflow.ListItemNode) []overlayRow {
	var rows []overlayRow
	if item.Intro != nil {
		rows = append(rows, overlayRow{text: item.Intro.Text, cat: reflow.ProseIntroduction})
	}
	rows = append(rows, overlayRow{text: item.Marker.Text, cat: reflow.ListItem})
	for _, c := range item.Continuation {
		rows = append(rows, overlayRow{text: c.Text, cat: reflow.ListContinuation})
	}
	for _, nested := range item.Nested {
		rows = append(rows, listItemRows(nested)...)
	}
	return rows
}

func codeBlockText(rows []overlayRow) string {
	var b strings.Builder
	for _, r := range rows {
		if r.code {
			b.WriteString(r.text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func guessLexer(sample string) chroma.Lexer {
	if strings.TrimSpace(sample) == "" {
		return nil
	}
	l := lexers.Analyse(sample)
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// writeTokenizedLine emits a code line as one <tspan> per chroma
// token, colored per the given style.
func writeTokenizedLine(w io.Writer, lexer chroma.Lexer, style *chroma.Style, line string, y int) {
	fmt.Fprintf(w, `<text x="%d" y="%d" fill="#d4d4d4" xml:space="preserve">`, leftMargin, y)
	defer fmt.Fprintln(w, `</text>`)

	iter, err := lexer.Tokenise(nil, line)
	if err != nil {
		fmt.Fprint(w, html.EscapeString(line))
		return
	}
	for _, tok := range iter.Tokens() {
		entry := style.Get(tok.Type)
		color := "#d4d4d4"
		if entry.Colour.IsSet() {
			color = entry.Colour.String()
		}
		fmt.Fprintf(w, `<tspan fill="%s">%s</tspan>`, color, html.EscapeString(tok.Value))
	}
}
