package reflow

import "fmt"

// Width bounds and defaults for Options.
const (
	DefaultWidth         = 72
	DefaultHeadlineWidth = 50
	MinWidth             = 1
)

// Options configures reflow behavior.
type Options struct {
	Width         int  // body wrap width in columns
	HeadlineWidth int  // advisory headline width in columns
	StripANSI     bool // strip ANSI escapes before measuring width
}

// DefaultOptions returns the default body and headline widths with ANSI
// stripping disabled.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		HeadlineWidth: DefaultHeadlineWidth,
	}
}

// Validate checks that the options are usable. Width and HeadlineWidth
// must both be at least MinWidth.
func (o Options) Validate() error {
	if o.Width < MinWidth {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, o.Width)
	}
	if o.HeadlineWidth < MinWidth {
		return fmt.Errorf("%w: %d", ErrInvalidHeadlineWidth, o.HeadlineWidth)
	}
	return nil
}

// Category is a line's classification.
type Category int

// The closed set of line categories.
const (
	Empty Category = iota
	Headline
	ProseGeneral
	ProseIntroduction
	ListItem
	ListContinuation
	Code
	Table
	URL
	Comment
	BlockQuote
	Footer
)

// categoryPrecedence breaks ties when two categories share the max
// probability after classification. Earlier entries win.
var categoryPrecedence = []Category{
	Headline, Footer, Code, Table, ListItem, ListContinuation,
	BlockQuote, Comment, URL, ProseIntroduction, ProseGeneral, Empty,
}

// String returns the category's name.
func (c Category) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Headline:
		return "Headline"
	case ProseGeneral:
		return "ProseGeneral"
	case ProseIntroduction:
		return "ProseIntroduction"
	case ListItem:
		return "ListItem"
	case ListContinuation:
		return "ListContinuation"
	case Code:
		return "Code"
	case Table:
		return "Table"
	case URL:
		return "URL"
	case Comment:
		return "Comment"
	case BlockQuote:
		return "BlockQuote"
	case Footer:
		return "Footer"
	default:
		return "Unknown"
	}
}

// CatLine is one input line carrying its verbatim text, indentation
// depth, and a probability distribution over Category.
type CatLine struct {
	Text       string
	LineNumber int // 1-based
	Indent     int
	HadCR      bool // true if a trailing \r was stripped from Text
	Probs      map[Category]float64
	FinalCat   Category
}

// ChunkKind tags the variant held by a Chunk.
type ChunkKind int

// The tree builder's output node kinds.
const (
	ChunkHeadline ChunkKind = iota
	ChunkParagraph
	ChunkList
	ChunkCode
	ChunkTable
	ChunkURL
	ChunkComment
	ChunkBlockQuote
	ChunkFooter
)

// ListItemNode is one entry of a List chunk: a marker line, its
// continuation lines, an optional nested list, and an optional
// introduction line attached only to a list's first item.
type ListItemNode struct {
	Marker       CatLine
	Continuation []CatLine
	Nested       []ListItemNode
	Intro        *CatLine
}

// Chunk is a contiguous structural unit of the document. Exactly the
// fields relevant to Kind are populated.
type Chunk struct {
	Kind   ChunkKind
	Line   CatLine        // ChunkHeadline, ChunkURL
	Lines  []CatLine      // ChunkParagraph, ChunkCode, ChunkTable, ChunkComment, ChunkBlockQuote, ChunkFooter
	Fenced bool           // ChunkCode
	Items  []ListItemNode // ChunkList
}

// Document is the ordered result of the tree builder: an optional
// headline, zero or more body chunks, and an optional terminal footer.
type Document struct {
	Headline *Chunk
	Body     []Chunk
	Footer   *Chunk
}
