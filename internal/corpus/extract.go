package corpus

import (
	"fmt"
	"strings"
	"unicode"
)

// extractText dispatches to a format-specific extractor. Every extractor is
// best-effort: each falls back to progressively cruder recovery before
// returning an error.
func extractText(data []byte, format Format) (string, error) {
	switch format {
	case PlainText:
		return extractPlainText(data), nil
	case Pdf:
		return extractPdf(data)
	case WordModern:
		return extractDocx(data)
	case WordLegacy:
		return extractDoc(data)
	case RichText:
		return extractRtf(data), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPlainText decodes file bytes as UTF-8, dropping invalid sequences.
func extractPlainText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// extractDoc recovers readable text from a legacy binary Word file by
// scanning for long runs of printable characters. The format is opaque
// without a full OLE parser, so this is an approximation.
func extractDoc(data []byte) (string, error) {
	var parts []string
	var run strings.Builder

	flush := func() {
		s := strings.TrimSpace(run.String())
		if len(s) > 15 {
			parts = append(parts, s)
		}
		run.Reset()
	}

	for _, b := range data {
		r := rune(b)
		if r == ' ' || r == '\t' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
			strings.ContainsRune(".,;:!?-", r) {
			run.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	if len(parts) == 0 {
		return "", fmt.Errorf("no readable text found")
	}
	if len(parts) > 50 {
		parts = parts[:50]
	}
	return strings.Join(parts, "\n"), nil
}

// extractRtf strips RTF control words and group braces, leaving the
// document text.
func extractRtf(data []byte) string {
	content := strings.ToValidUTF8(string(data), "")

	var out strings.Builder
	i := 0
	for i < len(content) {
		c := content[i]
		switch c {
		case '{', '}':
			i++
		case '\\':
			i++
			if i < len(content) && (content[i] == '\\' || content[i] == '{' || content[i] == '}') {
				out.WriteByte(content[i])
				i++
				continue
			}
			// skip the control word and its optional numeric parameter
			for i < len(content) && isAsciiLetter(content[i]) {
				i++
			}
			for i < len(content) && (content[i] == '-' || isAsciiDigit(content[i])) {
				i++
			}
			// a single space terminates a control word
			if i < len(content) && content[i] == ' ' {
				i++
			}
		default:
			out.WriteByte(c)
			i++
		}
	}

	lines := strings.Split(out.String(), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}

func isAsciiLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAsciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
