// Package topics holds the static topic vocabulary shared by relevance
// scoring and analytics labeling. Topic names are stable identifiers; the
// keyword sets for matching and for classification are maintained
// independently.
package topics

import "strings"

// Topic pairs a stable topic name with the keywords that signal it in a
// query.
type Topic struct {
	Name     string
	Keywords []string
}

// PatternTable is an ordered set of topics used for relevance scoring.
type PatternTable []Topic

// DefaultPatternTable maps corpus document families to their query keywords.
// Topic names align with document identifiers: a topic only boosts documents
// whose identifier shares one of its name tokens.
func DefaultPatternTable() PatternTable {
	return PatternTable{
		{Name: "employee_handbook", Keywords: []string{
			"handbook", "employee", "work hours", "dress code", "performance",
			"mission", "core hours", "collaboration", "growth",
		}},
		{Name: "pto_policy", Keywords: []string{
			"pto", "vacation", "time off", "leave", "holiday",
			"sick days", "personal days", "paid time",
		}},
		{Name: "health_benefits", Keywords: []string{
			"health", "medical", "benefits", "insurance", "healthcare",
			"dental", "vision", "coverage",
		}},
		{Name: "it_security_policy", Keywords: []string{
			"security", "password", "it policy", "network", "vpn",
			"device", "data protection", "cybersecurity",
		}},
		{Name: "claude_usage_policy", Keywords: []string{
			"claude", "ai", "artificial intelligence", "usage policy", "ai guidelines",
		}},
		{Name: "org_structure", Keywords: []string{
			"organization", "structure", "department", "team", "hierarchy", "reporting",
		}},
	}
}

// AppliesTo reports whether the topic's name shares a token with the given
// document identifier. Name tokens are split on underscores and matched as
// substrings of the lowercased identifier.
func (t Topic) AppliesTo(identifier string) bool {
	identifier = strings.ToLower(identifier)
	for _, part := range strings.Split(t.Name, "_") {
		if part != "" && strings.Contains(identifier, part) {
			return true
		}
	}
	return false
}

// KeywordHits counts how many of the topic's keywords appear as substrings
// of the lowercased query.
func (t Topic) KeywordHits(queryLower string) int {
	hits := 0
	for _, kw := range t.Keywords {
		if strings.Contains(queryLower, kw) {
			hits++
		}
	}
	return hits
}
