package relevance

import (
	"strings"
	"unicode/utf8"
)

// Excerpt packages a candidate document for generation and display. Text is
// the full document content with blank lines stripped; Highlight is a short
// preview of the lines that matched the query.
type Excerpt struct {
	Document  string `json:"document"`
	Text      string `json:"text"`
	Highlight string `json:"highlight"`
}

// Assembler converts ranked candidates into context excerpts.
type Assembler struct {
	previewLength  int
	highlightLines int
}

// NewAssembler creates an Assembler. previewLength bounds the highlight in
// characters and highlightLines bounds the number of matching lines shown.
func NewAssembler(previewLength, highlightLines int) *Assembler {
	return &Assembler{
		previewLength:  previewLength,
		highlightLines: highlightLines,
	}
}

// Assemble builds one excerpt per candidate, preserving rank order. The
// full text is forwarded rather than a snippet so the generator can answer
// from the complete document.
func (a *Assembler) Assemble(candidates []Candidate, query string) []Excerpt {
	// Highlight matching uses every query token longer than two characters,
	// stopwords included, since the preview is for the reader's eye.
	var words []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len(tok) > 2 {
			words = append(words, tok)
		}
	}

	excerpts := make([]Excerpt, 0, len(candidates))
	for _, c := range candidates {
		excerpts = append(excerpts, Excerpt{
			Document:  c.Identifier,
			Text:      collapse(c.Text),
			Highlight: a.highlight(c.Text, words),
		})
	}
	return excerpts
}

// collapse trims every line and drops blank ones, keeping structure without
// excess whitespace.
func collapse(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}

func (a *Assembler) highlight(text string, words []string) string {
	var matched []string
	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(line)
		for _, w := range words {
			if strings.Contains(lineLower, w) {
				matched = append(matched, strings.TrimSpace(line))
				break
			}
		}
		if len(matched) == a.highlightLines {
			break
		}
	}

	highlight := strings.Join(matched, "\n")
	if highlight == "" {
		highlight = firstN(text, a.previewLength)
	}
	if utf8.RuneCountInString(highlight) > a.previewLength {
		highlight = firstN(highlight, a.previewLength) + "..."
	}
	return highlight
}

// firstN truncates on a rune boundary so multi-byte characters are never
// split mid-sequence.
func firstN(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
