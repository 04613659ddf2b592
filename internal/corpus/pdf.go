package corpus

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// extractPdf pulls text literals out of a PDF's page content streams.
// If the file cannot be parsed as a PDF, it falls back to scanning the
// raw bytes for parenthesized literals.
func extractPdf(data []byte) (string, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), nil)
	if err != nil {
		return scanPdfLiterals(data)
	}

	var parts []string
	for page := 1; page <= ctx.PageCount; page++ {
		r, err := pdfcpu.ExtractPageContent(ctx, page)
		if err != nil || r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			continue
		}
		if text, err := scanPdfLiterals(content); err == nil {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return scanPdfLiterals(data)
	}
	return strings.Join(parts, "\n"), nil
}

// scanPdfLiterals collects parenthesized string literals, the carrier of
// visible text in PDF content streams. Escape sequences for parentheses
// and backslashes are honored; literals too short to be prose are dropped.
func scanPdfLiterals(data []byte) (string, error) {
	var parts []string
	var literal strings.Builder
	depth := 0

	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '\\' && depth > 0 && i+1 < len(data):
			i++
			switch data[i] {
			case '(', ')', '\\':
				literal.WriteByte(data[i])
			case 'n':
				literal.WriteByte('\n')
			}
		case c == '(':
			depth++
			if depth == 1 {
				literal.Reset()
			}
		case c == ')' && depth > 0:
			depth--
			if depth == 0 {
				if s := literal.String(); len(s) > 5 && isPrintable(s) {
					parts = append(parts, s)
				}
			}
		case depth > 0:
			literal.WriteByte(c)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text literals found")
	}
	return strings.Join(parts, "\n"), nil
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r != ' ' && !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
