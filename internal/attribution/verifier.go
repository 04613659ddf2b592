// Package attribution decides which candidate documents were genuinely
// reflected in a generated answer. Documents offered as context but not
// detectably echoed in the response are dropped from the cited sources.
package attribution

import (
	"strings"

	"github.com/mckinzey/atrium/internal/relevance"
)

// Verifier filters candidate sources against generated answer text.
// The thresholds tolerate paraphrasing while rejecting documents with no
// textual echo in the answer.
type Verifier struct {
	keyPhraseCount  int
	minPhraseLength int
	minWordLength   int
	matchThreshold  float64
}

// NewVerifier creates a Verifier. keyPhraseCount caps the sentences sampled
// from each document, minPhraseLength filters trivial fragments,
// minWordLength filters insignificant words, and matchThreshold is the
// word-overlap fraction that marks a document as referenced.
func NewVerifier(keyPhraseCount, minPhraseLength, minWordLength int, matchThreshold float64) *Verifier {
	return &Verifier{
		keyPhraseCount:  keyPhraseCount,
		minPhraseLength: minPhraseLength,
		minWordLength:   minWordLength,
		matchThreshold:  matchThreshold,
	}
}

// Filter returns the subset of excerpts the answer actually drew upon,
// preserving input order.
func (v *Verifier) Filter(answer string, excerpts []relevance.Excerpt) []relevance.Excerpt {
	answerLower := strings.ToLower(answer)

	sources := make([]relevance.Excerpt, 0, len(excerpts))
	for _, excerpt := range excerpts {
		if v.referenced(answerLower, excerpt) {
			sources = append(sources, excerpt)
		}
	}
	return sources
}

func (v *Verifier) referenced(answerLower string, excerpt relevance.Excerpt) bool {
	// A document is referenced outright when the answer names it.
	name := strings.ReplaceAll(strings.ToLower(excerpt.Document), "_", " ")
	for _, part := range strings.Fields(name) {
		if strings.Contains(answerLower, part) {
			return true
		}
	}

	// Otherwise look for a paraphrased echo: sample the document's leading
	// sentences and check how many of their significant words survive into
	// the answer.
	for _, phrase := range v.keyPhrases(excerpt.Text) {
		var significant []string
		for _, word := range strings.Fields(phrase) {
			if len(word) > v.minWordLength {
				significant = append(significant, word)
			}
		}
		if len(significant) < 2 {
			continue
		}

		matching := 0
		for _, word := range significant {
			if strings.Contains(answerLower, word) {
				matching++
			}
		}
		if float64(matching) >= float64(len(significant))*v.matchThreshold {
			return true
		}
	}

	return false
}

func (v *Verifier) keyPhrases(text string) []string {
	var phrases []string
	for _, fragment := range strings.Split(strings.ToLower(text), ".") {
		trimmed := strings.TrimSpace(fragment)
		if len(trimmed) > v.minPhraseLength {
			phrases = append(phrases, trimmed)
		}
		if len(phrases) == v.keyPhraseCount {
			break
		}
	}
	return phrases
}
