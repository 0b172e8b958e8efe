package reflow

import "testing"

func buildDoc(t *testing.T, lines []string, opts Options) Document {
	t.Helper()
	lexed := Lex(lines, opts)
	classified := Classify(lexed)
	return BuildDocument(classified)
}

func TestBuildDocument_HeadlineAndParagraph(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, []string{"Fix the bug", "", "More context here."}, DefaultOptions())

	if doc.Headline == nil {
		t.Fatal("Headline = nil, want non-nil")
	}
	if doc.Headline.Line.Text != "Fix the bug" {
		t.Errorf("Headline.Line.Text = %q", doc.Headline.Line.Text)
	}
	if len(doc.Body) != 1 || doc.Body[0].Kind != ChunkParagraph {
		t.Fatalf("Body = %+v, want one Paragraph chunk", doc.Body)
	}
}

func TestBuildDocument_FencedCodeIncludesBlankLines(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, []string{
		"Fix the bug",
		"",
		"```go",
		"x := 1",
		"",
		"y := 2",
		"```",
	}, DefaultOptions())

	if len(doc.Body) != 1 || doc.Body[0].Kind != ChunkCode {
		t.Fatalf("Body = %+v, want one Code chunk", doc.Body)
	}
	if !doc.Body[0].Fenced {
		t.Error("Fenced = false, want true")
	}
	if len(doc.Body[0].Lines) != 5 {
		t.Errorf("len(Lines) = %d, want 5 (including the blank line and both delimiters)", len(doc.Body[0].Lines))
	}
}

func TestBuildDocument_ListWithIntroAndFooter(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, []string{
		"Add retry support",
		"",
		"The client now retries:",
		"",
		"- timeouts",
		"- 5xx responses",
		"",
		"Signed-off-by: Ada Lovelace <ada@example.com>",
	}, DefaultOptions())

	if len(doc.Body) != 1 || doc.Body[0].Kind != ChunkList {
		t.Fatalf("Body = %+v, want one List chunk", doc.Body)
	}
	items := doc.Body[0].Items
	if len(items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(items))
	}
	if items[0].Intro == nil {
		t.Fatal("items[0].Intro = nil, want the colon-ended introduction")
	}
	if items[0].Intro.Text != "The client now retries:" {
		t.Errorf("Intro.Text = %q", items[0].Intro.Text)
	}
	if doc.Footer == nil || len(doc.Footer.Lines) != 1 {
		t.Fatalf("Footer = %+v, want one trailer line", doc.Footer)
	}
}

func TestBuildDocument_NestedList(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, []string{
		"Reorganize modules",
		"",
		"- outer item",
		"  - nested item",
		"- second outer item",
	}, DefaultOptions())

	items := doc.Body[0].Items
	if len(items) != 2 {
		t.Fatalf("len(Items) = %d, want 2 top-level items", len(items))
	}
	if len(items[0].Nested) != 1 {
		t.Fatalf("len(items[0].Nested) = %d, want 1", len(items[0].Nested))
	}
}

func TestBuildDocument_TableRun(t *testing.T) {
	t.Parallel()

	doc := buildDoc(t, []string{
		"Document the flags",
		"",
		"| flag | default |",
		"| --- | --- |",
		"| width | 72 |",
	}, DefaultOptions())

	if len(doc.Body) != 1 || doc.Body[0].Kind != ChunkTable {
		t.Fatalf("Body = %+v, want one Table chunk", doc.Body)
	}
	if len(doc.Body[0].Lines) != 3 {
		t.Errorf("len(Lines) = %d, want 3", len(doc.Body[0].Lines))
	}
}
