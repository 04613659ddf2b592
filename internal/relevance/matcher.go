// Package relevance scores corpus documents against employee queries and
// assembles ranked context for answer generation. Matching is a
// deterministic keyword and pattern heuristic; the corpus is small enough
// that every document is scored on every request.
package relevance

import (
	"sort"
	"strings"

	"github.com/mckinzey/atrium/internal/topics"
)

// stopwords are discarded from query terms before scoring.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {},
	"about": {}, "what": {}, "how": {}, "can": {}, "you": {},
}

// DocumentText pairs a document identifier with its extracted text.
type DocumentText struct {
	Identifier string
	Text       string
}

// Candidate is a document admitted by the relevance gate, with its score
// breakdown.
type Candidate struct {
	Identifier     string
	Text           string
	Score          int
	ContentMatches int
	NameMatches    int
	PatternScore   int
}

// Matcher ranks documents against queries using the topic pattern table.
type Matcher struct {
	table          topics.PatternTable
	minScore       int
	dominanceRatio float64
	maxCandidates  int
}

// NewMatcher creates a Matcher. minScore is the admission threshold,
// dominanceRatio controls when a clearly authoritative top candidate
// suppresses the rest, and maxCandidates caps the returned list.
func NewMatcher(table topics.PatternTable, minScore int, dominanceRatio float64, maxCandidates int) *Matcher {
	return &Matcher{
		table:          table,
		minScore:       minScore,
		dominanceRatio: dominanceRatio,
		maxCandidates:  maxCandidates,
	}
}

// QueryTerms normalizes a query into scoring terms: lowercase whitespace
// tokens with stopwords and tokens shorter than three characters removed.
func QueryTerms(query string) []string {
	var terms []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}

// Match scores every document against the query and returns the admitted
// candidates in descending score order. The result holds at most
// maxCandidates entries, or just the top candidate when its score exceeds
// dominanceRatio times the runner-up. Match is pure: identical inputs
// produce identical output.
func (m *Matcher) Match(query string, docs []DocumentText) []Candidate {
	queryLower := strings.ToLower(query)
	terms := QueryTerms(query)

	var candidates []Candidate
	for _, doc := range docs {
		c := m.score(queryLower, terms, doc)
		if c.Score >= m.minScore &&
			(c.NameMatches > 0 || c.ContentMatches > 2 || c.PatternScore > 0) {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) >= 2 &&
		float64(candidates[0].Score) > m.dominanceRatio*float64(candidates[1].Score) {
		return candidates[:1]
	}
	if len(candidates) > m.maxCandidates {
		candidates = candidates[:m.maxCandidates]
	}
	return candidates
}

func (m *Matcher) score(queryLower string, terms []string, doc DocumentText) Candidate {
	textLower := strings.ToLower(doc.Text)
	nameLower := strings.ToLower(doc.Identifier)

	contentMatches := 0
	nameMatches := 0
	for _, term := range terms {
		if strings.Contains(textLower, term) {
			contentMatches++
		}
		if strings.Contains(nameLower, term) {
			nameMatches++
		}
	}

	// The pattern score rewards queries phrased in a topic's vocabulary,
	// but only for documents belonging to that topic family.
	patternScore := 0
	for _, topic := range m.table {
		if !topic.AppliesTo(doc.Identifier) {
			continue
		}
		if score := topic.KeywordHits(queryLower) * 5; score > patternScore {
			patternScore = score
		}
	}

	return Candidate{
		Identifier:     doc.Identifier,
		Text:           doc.Text,
		Score:          contentMatches*2 + nameMatches*3 + patternScore,
		ContentMatches: contentMatches,
		NameMatches:    nameMatches,
		PatternScore:   patternScore,
	}
}
