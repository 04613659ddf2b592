package relevance_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mckinzey/atrium/internal/relevance"
)

func TestAssembleCollapsesText(t *testing.T) {
	assembler := relevance.NewAssembler(200, 2)
	candidates := []relevance.Candidate{
		{
			Identifier: "pto_policy",
			Text:       "  PTO Policy  \n\n   Employees receive 15 vacation days.   \n\n",
		},
	}

	got := assembler.Assemble(candidates, "vacation")
	if len(got) != 1 {
		t.Fatalf("expected 1 excerpt, got %d", len(got))
	}
	if got[0].Document != "pto_policy" {
		t.Errorf("document: got %s", got[0].Document)
	}
	want := "PTO Policy\nEmployees receive 15 vacation days."
	if got[0].Text != want {
		t.Errorf("text: got %q, want %q", got[0].Text, want)
	}
}

func TestAssembleHighlightMatchingLines(t *testing.T) {
	assembler := relevance.NewAssembler(200, 2)
	candidates := []relevance.Candidate{
		{
			Identifier: "pto_policy",
			Text: "PTO Policy\n" +
				"  You get vacation time.\n" +
				"Days accrue monthly.\n" +
				"Vacation requests need approval.",
		},
	}

	got := assembler.Assemble(candidates, "vacation days")
	want := "You get vacation time.\nDays accrue monthly."
	if got[0].Highlight != want {
		t.Errorf("highlight: got %q, want %q", got[0].Highlight, want)
	}
}

func TestAssembleHighlightFallback(t *testing.T) {
	assembler := relevance.NewAssembler(200, 2)
	candidates := []relevance.Candidate{
		{Identifier: "org_structure", Text: "No matching words here."},
	}

	// Query words absent from the text fall back to the document opening.
	got := assembler.Assemble(candidates, "vacation")
	if got[0].Highlight != "No matching words here." {
		t.Errorf("highlight: got %q", got[0].Highlight)
	}
}

func TestAssembleHighlightTruncation(t *testing.T) {
	assembler := relevance.NewAssembler(10, 2)
	candidates := []relevance.Candidate{
		{Identifier: "pto_policy", Text: "vacation time is plentiful here"},
	}

	got := assembler.Assemble(candidates, "vacation")
	want := "vacation t..."
	if got[0].Highlight != want {
		t.Errorf("highlight: got %q, want %q", got[0].Highlight, want)
	}
}

func TestAssembleLongFallbackTruncates(t *testing.T) {
	assembler := relevance.NewAssembler(200, 2)
	text := strings.Repeat("a", 300)
	candidates := []relevance.Candidate{
		{Identifier: "employee_handbook", Text: text},
	}

	got := assembler.Assemble(candidates, "zzz")
	if len(got[0].Highlight) != 200 {
		t.Errorf("highlight length: got %d, want 200", len(got[0].Highlight))
	}
}

func TestAssembleMultibyteTruncation(t *testing.T) {
	assembler := relevance.NewAssembler(10, 2)

	t.Run("matched line", func(t *testing.T) {
		text := strings.Repeat("日", 8) + "オフィス"
		candidates := []relevance.Candidate{
			{Identifier: "office_guide", Text: text},
		}

		got := assembler.Assemble(candidates, "オフィス")
		want := strings.Repeat("日", 8) + "オフ" + "..."
		if got[0].Highlight != want {
			t.Errorf("highlight: got %q, want %q", got[0].Highlight, want)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		candidates := []relevance.Candidate{
			{Identifier: "office_guide", Text: strings.Repeat("日", 30)},
		}

		got := assembler.Assemble(candidates, "zzz")
		if want := strings.Repeat("日", 10); got[0].Highlight != want {
			t.Errorf("highlight: got %q, want %q", got[0].Highlight, want)
		}
		if !utf8.ValidString(got[0].Highlight) {
			t.Errorf("highlight is not valid UTF-8: %q", got[0].Highlight)
		}
	})
}

func TestAssemblePreservesOrder(t *testing.T) {
	assembler := relevance.NewAssembler(200, 2)
	candidates := []relevance.Candidate{
		{Identifier: "second_ranked", Text: "b"},
		{Identifier: "first_ranked", Text: "a"},
	}

	got := assembler.Assemble(candidates, "query")
	if got[0].Document != "second_ranked" || got[1].Document != "first_ranked" {
		t.Errorf("order changed: got %s, %s", got[0].Document, got[1].Document)
	}
}
