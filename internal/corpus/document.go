// Package corpus implements the document corpus domain for Atrium.
// It discovers policy documents in a local folder, derives their
// identifiers and display names, and extracts plain text from the
// supported file formats.
package corpus

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Format identifies a supported document file format.
type Format string

const (
	PlainText  Format = "plain_text"
	Pdf        Format = "pdf"
	WordModern Format = "word_modern"
	WordLegacy Format = "word_legacy"
	RichText   Format = "rich_text"
)

// formatsByExtension maps lowercase file extensions to formats.
// Files with other extensions are not part of the corpus.
var formatsByExtension = map[string]Format{
	".txt":  PlainText,
	".pdf":  Pdf,
	".docx": WordModern,
	".doc":  WordLegacy,
	".rtf":  RichText,
}

// FormatForExtension returns the Format for a file extension and whether
// the extension is supported. The extension comparison is case-insensitive.
func FormatForExtension(ext string) (Format, bool) {
	f, ok := formatsByExtension[strings.ToLower(ext)]
	return f, ok
}

// Document describes a corpus document discovered on disk.
type Document struct {
	Identifier  string    `json:"identifier"`
	DisplayName string    `json:"display_name"`
	Filename    string    `json:"filename"`
	Format      Format    `json:"format"`
	SizeBytes   int64     `json:"size_bytes"`
	Modified    time.Time `json:"modified"`
}

// Identify derives a document identifier from a filename: the extension is
// dropped and spaces and hyphens become underscores.
func Identify(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.ReplaceAll(base, "-", "_")
	return base
}

// DisplayName renders an identifier as a human-readable title: underscores
// become spaces and each word is capitalized.
func DisplayName(identifier string) string {
	words := strings.Split(identifier, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
