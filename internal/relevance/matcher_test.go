package relevance_test

import (
	"reflect"
	"testing"

	"github.com/mckinzey/atrium/internal/relevance"
	"github.com/mckinzey/atrium/internal/topics"
)

func defaultMatcher() *relevance.Matcher {
	return relevance.NewMatcher(topics.DefaultPatternTable(), 5, 2.0, 2)
}

func TestQueryTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "drops stopwords and short tokens",
			query: "How can I request time off for the holidays?",
			want:  []string{"request", "time", "off", "holidays?"},
		},
		{
			name:  "lowercases tokens",
			query: "VACATION Days",
			want:  []string{"vacation", "days"},
		},
		{
			name:  "empty query",
			query: "",
			want:  nil,
		},
		{
			name:  "all stopwords",
			query: "what about the and for",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relevance.QueryTerms(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("QueryTerms(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchEmptyCorpus(t *testing.T) {
	got := defaultMatcher().Match("How many vacation days do I get?", nil)
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %d", len(got))
	}
}

func TestMatchVacationQuery(t *testing.T) {
	docs := []relevance.DocumentText{
		{
			Identifier: "pto_policy",
			Text:       "Employees receive 15 vacation days per year.\nVacation days accrue monthly.",
		},
		{
			Identifier: "employee_handbook",
			Text:       "Our dress code is business casual.",
		},
	}

	got := defaultMatcher().Match("How many vacation days do I get?", docs)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}

	c := got[0]
	if c.Identifier != "pto_policy" {
		t.Errorf("identifier: got %s, want pto_policy", c.Identifier)
	}
	if c.NameMatches != 0 {
		t.Errorf("name matches: got %d, want 0", c.NameMatches)
	}
	if c.ContentMatches < 1 {
		t.Errorf("content matches: got %d, want at least 1", c.ContentMatches)
	}
	if c.PatternScore == 0 {
		t.Error("expected pattern score from topic vocabulary")
	}
	if c.Score < 5 {
		t.Errorf("score: got %d, want at least the admission threshold", c.Score)
	}
}

func TestMatchRejectsWeakCandidates(t *testing.T) {
	docs := []relevance.DocumentText{
		{Identifier: "report", Text: "nothing relevant here"},
	}

	// A single name match scores 3, below the admission threshold.
	matcher := relevance.NewMatcher(topics.PatternTable{}, 5, 2.0, 2)
	got := matcher.Match("annual report", docs)
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %d", len(got))
	}
}

func TestMatchNoisyQuery(t *testing.T) {
	docs := []relevance.DocumentText{
		{Identifier: "pto_policy", Text: "Employees receive 15 vacation days per year."},
		{Identifier: "health_benefits", Text: "Medical coverage begins on the first day."},
	}

	got := defaultMatcher().Match("xyz nonsense gibberish", docs)
	if len(got) != 0 {
		t.Errorf("expected no candidates for an unrelated query, got %d", len(got))
	}
}

func TestMatchDominantCandidate(t *testing.T) {
	matcher := relevance.NewMatcher(topics.PatternTable{}, 5, 2.0, 2)

	docs := []relevance.DocumentText{
		{
			Identifier: "travel_expense_report",
			Text:       "To file a travel expense report, attach receipts. Filing deadlines apply.",
		},
		{
			Identifier: "filing_basics",
			Text:       "General filing guidance. Submit each report on time.",
		},
	}

	// Scores 17 and 7: the top candidate exceeds twice the runner-up, so it
	// suppresses the rest.
	got := matcher.Match("travel expense report filing", docs)
	if len(got) != 1 {
		t.Fatalf("expected dominant candidate only, got %d", len(got))
	}
	if got[0].Identifier != "travel_expense_report" {
		t.Errorf("identifier: got %s", got[0].Identifier)
	}
}

func TestMatchCandidateCap(t *testing.T) {
	matcher := relevance.NewMatcher(topics.PatternTable{}, 5, 2.0, 2)

	text := "The report covers quarterly summary data."
	docs := []relevance.DocumentText{
		{Identifier: "alpha_report", Text: text},
		{Identifier: "beta_report", Text: text},
		{Identifier: "gamma_report", Text: text},
	}

	got := matcher.Match("quarterly report summary", docs)
	if len(got) != 2 {
		t.Fatalf("expected candidate cap of 2, got %d", len(got))
	}
	if got[0].Identifier != "alpha_report" || got[1].Identifier != "beta_report" {
		t.Errorf("expected stable order on equal scores, got %s, %s",
			got[0].Identifier, got[1].Identifier)
	}
}

func TestMatchDeterministic(t *testing.T) {
	docs := []relevance.DocumentText{
		{Identifier: "pto_policy", Text: "Employees receive 15 vacation days per year."},
		{Identifier: "health_benefits", Text: "Medical and dental coverage for all employees."},
	}

	matcher := defaultMatcher()
	first := matcher.Match("vacation and dental benefits", docs)
	second := matcher.Match("vacation and dental benefits", docs)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}
