package reflow

import "testing"

func TestLex_Empty(t *testing.T) {
	t.Parallel()

	out := Lex([]string{""}, DefaultOptions())
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].FinalCat != Empty {
		t.Errorf("FinalCat = %v, want Empty", out[0].FinalCat)
	}
}

func TestLex_HeadlineOnlyFirstEligibleLine(t *testing.T) {
	t.Parallel()

	lines := []string{"Fix the bug", "", "More detail here"}
	out := Lex(lines, DefaultOptions())

	if out[0].FinalCat != Headline {
		t.Errorf("line 0 FinalCat = %v, want Headline", out[0].FinalCat)
	}
	if _, ok := out[2].Probs[Headline]; ok {
		t.Errorf("line 2 should not carry Headline probability mass")
	}
}

func TestLex_CommentLineIsNotHeadlineCandidate(t *testing.T) {
	t.Parallel()

	lines := []string{"# a comment", "Fix the bug"}
	out := Lex(lines, DefaultOptions())

	if out[0].FinalCat != Comment {
		t.Errorf("line 0 FinalCat = %v, want Comment", out[0].FinalCat)
	}
	if out[1].FinalCat != Headline {
		t.Errorf("line 1 FinalCat = %v, want Headline", out[1].FinalCat)
	}
}

func TestLex_BulletListItem(t *testing.T) {
	t.Parallel()

	out := Lex([]string{"Add items", "", "- first item"}, DefaultOptions())
	if out[2].FinalCat != ListItem {
		t.Errorf("FinalCat = %v, want ListItem", out[2].FinalCat)
	}
}

func TestLex_NumberedListItem(t *testing.T) {
	t.Parallel()

	out := Lex([]string{"Add items", "", "1. first item"}, DefaultOptions())
	if out[2].FinalCat != ListItem {
		t.Errorf("FinalCat = %v, want ListItem", out[2].FinalCat)
	}
}

func TestLex_FencedCodeDelimiters(t *testing.T) {
	t.Parallel()

	out := Lex([]string{"Add snippet", "", "```go", "x := 1", "```"}, DefaultOptions())
	if out[2].FinalCat != Code {
		t.Errorf("opening delimiter FinalCat = %v, want Code", out[2].FinalCat)
	}
	if out[4].FinalCat != Code {
		t.Errorf("closing delimiter FinalCat = %v, want Code", out[4].FinalCat)
	}
}

func TestLex_URLAboveWrapWidthIsURLCategory(t *testing.T) {
	t.Parallel()

	opts := Options{Width: 20, HeadlineWidth: 50}
	longURL := "https://example.com/a/very/long/path/that/exceeds/the/width"
	out := Lex([]string{"Add link", "", longURL}, opts)
	if out[2].FinalCat != URL {
		t.Errorf("FinalCat = %v, want URL", out[2].FinalCat)
	}
}

func TestLex_URLBelowWrapWidthIsProse(t *testing.T) {
	t.Parallel()

	opts := Options{Width: 72, HeadlineWidth: 50}
	out := Lex([]string{"Add link", "", "https://go.dev"}, opts)
	if out[2].FinalCat != ProseGeneral {
		t.Errorf("FinalCat = %v, want ProseGeneral", out[2].FinalCat)
	}
}

func TestLex_FooterTrailer(t *testing.T) {
	t.Parallel()

	out := Lex([]string{"Signed-off-by: Ada Lovelace <ada@example.com>"}, DefaultOptions())
	if _, ok := out[0].Probs[Footer]; !ok {
		t.Errorf("Probs missing Footer mass: %v", out[0].Probs)
	}
}

func TestLex_IndentedLineScoresBothListAndCode(t *testing.T) {
	t.Parallel()

	out := Lex([]string{"    - deeply indented bullet"}, DefaultOptions())
	if _, ok := out[0].Probs[ListItem]; !ok {
		t.Errorf("missing ListItem mass: %v", out[0].Probs)
	}
	if _, ok := out[0].Probs[Code]; !ok {
		t.Errorf("missing Code mass: %v", out[0].Probs)
	}
}

func TestExtractBulletPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "bullet", line: "- item", want: "- "},
		{name: "numbered", line: "1. item", want: "1. "},
		{name: "numbered parenthesis", line: "2) item", want: "2) "},
		{name: "indented bullet", line: "    - item", want: "    - "},
		{name: "extra spaces collapse into prefix", line: "-   item", want: "-   "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractBulletPrefix(tt.line); got != tt.want {
				t.Errorf("ExtractBulletPrefix(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
