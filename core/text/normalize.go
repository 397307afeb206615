// Package text provides whitespace normalization and line wrapping for ozdf prose.
package text

import (
	"regexp"
	"strings"
)

// WrapWidth is the column limit applied to paragraphs at serialization time.
const WrapWidth = 80

var (
	whitespaceRun      = regexp.MustCompile(`\s+`)
	paragraphSeparator = regexp.MustCompile(`\n\s*\n`)
)

// Normalize collapses all whitespace runs in s to single spaces and trims
// leading and trailing whitespace. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return whitespaceRun.ReplaceAllString(s, " ")
}

// NormalizeAll applies Normalize to each paragraph in place order,
// returning a new slice.
func NormalizeAll(paragraphs []string) []string {
	out := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = Normalize(p)
	}
	return out
}

// SplitParagraphs splits s on blank lines (one or more whitespace-only
// lines) into paragraphs. Paragraphs are trimmed and empty ones dropped.
func SplitParagraphs(s string) []string {
	var out []string
	for _, p := range paragraphSeparator.Split(s, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Wrap breaks a single normalized paragraph into lines of at most WrapWidth
// columns, wrapping only at spaces. Words longer than WrapWidth are left
// intact on their own line.
func Wrap(paragraph string) string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > WrapWidth {
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = len(word)
		} else {
			b.WriteByte(' ')
			b.WriteString(word)
			lineLen += 1 + len(word)
		}
	}
	return b.String()
}
