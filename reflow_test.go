package reflow

import (
	"errors"
	"strings"
	"testing"
)

func TestReflow_InvalidOptionsReturnsError(t *testing.T) {
	t.Parallel()

	_, err := Reflow("anything", Options{Width: 0, HeadlineWidth: 50})
	if !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("err = %v, want ErrInvalidWidth", err)
	}
}

func TestReflow_IsPureFunctionOfInputAndOptions(t *testing.T) {
	t.Parallel()

	input := "Fix the bug\n\nThis explains the fix in more than a few words so it needs wrapping.\n"
	opts := Options{Width: 30, HeadlineWidth: 50}

	first, err := Reflow(input, opts)
	if err != nil {
		t.Fatalf("Reflow() error = %v", err)
	}
	second, err := Reflow(input, opts)
	if err != nil {
		t.Fatalf("Reflow() error = %v", err)
	}
	if first != second {
		t.Errorf("Reflow() not deterministic:\n%q\nvs\n%q", first, second)
	}
}

func TestReflow_EndToEndHeadlineBodyFooter(t *testing.T) {
	t.Parallel()

	input := "Fix the bug\n\nThis is a short body.\n\nSigned-off-by: Ada Lovelace <ada@example.com>\n"
	got, err := Reflow(input, DefaultOptions())
	if err != nil {
		t.Fatalf("Reflow() error = %v", err)
	}

	if !strings.HasPrefix(got, "Fix the bug\n\n") {
		t.Errorf("missing headline/blank-line prefix:\n%s", got)
	}
	if !strings.HasSuffix(got, "Signed-off-by: Ada Lovelace <ada@example.com>\n") {
		t.Errorf("missing footer suffix:\n%s", got)
	}
}

func TestReflow_NeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"\n\n\n",
		"# just a comment\n",
		"- \n- \n",
		"|||\n",
		strings.Repeat("x", 500),
	}

	for _, in := range inputs {
		if _, err := Reflow(in, DefaultOptions()); err != nil {
			t.Errorf("Reflow(%q) error = %v", in, err)
		}
	}
}
