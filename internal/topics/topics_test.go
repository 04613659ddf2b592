package topics_test

import (
	"testing"

	"github.com/mckinzey/atrium/internal/topics"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  topics.Category
	}{
		{"vacation query", "How much vacation do I get?", topics.CategoryPTO},
		{"pto abbreviation", "What is our PTO accrual rate?", topics.CategoryPTO},
		{"health query", "Does my insurance cover dental?", topics.CategoryHealth},
		{"security query", "How do I reset my password?", topics.CategoryITSecurity},
		{"handbook query", "What is the dress code?", topics.CategoryHandbook},
		{"org query", "Who do I contact in Finance?", topics.CategoryOrganization},
		{"ai query", "When should I use Claude at work?", topics.CategoryAIUsage},
		{"unmatched query", "Where is the cafeteria?", topics.CategoryGeneral},
		{"empty query", "", topics.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topics.Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  topics.Category
	}{
		// Queries hitting multiple buckets land in the earliest rule.
		{"leave beats handbook", "employee leave policy", topics.CategoryPTO},
		{"health beats handbook", "health policy details", topics.CategoryHealth},
		{"security beats handbook", "password policy for employees", topics.CategoryITSecurity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topics.Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestTopicAppliesTo(t *testing.T) {
	table := topics.DefaultPatternTable()

	var pto topics.Topic
	for _, topic := range table {
		if topic.Name == "pto_policy" {
			pto = topic
		}
	}

	tests := []struct {
		name       string
		identifier string
		want       bool
	}{
		{"exact family", "pto_policy", true},
		{"shared token", "remote_work_policy", true},
		{"case insensitive", "PTO_Policy", true},
		{"unrelated", "org_structure", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pto.AppliesTo(tt.identifier); got != tt.want {
				t.Errorf("AppliesTo(%q) = %v, want %v", tt.identifier, got, tt.want)
			}
		})
	}
}

func TestTopicKeywordHits(t *testing.T) {
	topic := topics.Topic{Name: "pto_policy", Keywords: []string{"pto", "vacation", "time off"}}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no hits", "dress code", 0},
		{"one hit", "vacation schedule", 1},
		{"multi-word keyword", "requesting time off", 1},
		{"multiple hits", "pto and vacation time off", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topic.KeywordHits(tt.query); got != tt.want {
				t.Errorf("KeywordHits(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}
