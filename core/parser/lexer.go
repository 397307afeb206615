package parser

import (
	"strings"

	"github.com/ozoneforge/ozdf/core/errors"
)

// Header sigils of the line grammar.
const (
	blockSigil = "#### "
	itemSigil  = "==== "
)

// tokenKind classifies one input line.
type tokenKind int

const (
	// tokenContent is any line that is not a header: paragraph text or a
	// blank separator line.
	tokenContent tokenKind = iota
	// tokenBlockHeader is "#### NAME".
	tokenBlockHeader
	// tokenListBlockHeader is "#### [NAME]".
	tokenListBlockHeader
	// tokenExternalListBlockHeader is "#### [[NAME]]".
	tokenExternalListBlockHeader
	// tokenItemHeader is "====" or "==== NAME".
	tokenItemHeader
)

// token is one classified line.
type token struct {
	kind tokenKind
	name string // canonical uppercase name; empty for content and unnamed items
	text string // raw line text, content lines only
	line int    // 1-based line number
}

// classifyLine classifies a single line of input. Lines that begin with a
// header sigil fragment ("###" or "===") without forming a well-formed
// header are rejected rather than treated as content.
func classifyLine(path string, lineNo int, line string) (token, error) {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, blockSigil):
		header := strings.TrimSpace(trimmed[len(blockSigil):])
		if header == "" {
			return token{}, errors.NewAmbiguousHeader(path, lineNo, line)
		}
		if strings.HasPrefix(header, "[[") && strings.HasSuffix(header, "]]") {
			name := strings.TrimSpace(header[2 : len(header)-2])
			if name == "" {
				return token{}, errors.NewAmbiguousHeader(path, lineNo, line)
			}
			return token{kind: tokenExternalListBlockHeader, name: strings.ToUpper(name), line: lineNo}, nil
		}
		if strings.HasPrefix(header, "[") && strings.HasSuffix(header, "]") {
			name := strings.TrimSpace(header[1 : len(header)-1])
			if name == "" {
				return token{}, errors.NewAmbiguousHeader(path, lineNo, line)
			}
			return token{kind: tokenListBlockHeader, name: strings.ToUpper(name), line: lineNo}, nil
		}
		return token{kind: tokenBlockHeader, name: strings.ToUpper(header), line: lineNo}, nil

	case trimmed == "====":
		return token{kind: tokenItemHeader, line: lineNo}, nil

	case strings.HasPrefix(trimmed, itemSigil):
		name := strings.TrimSpace(trimmed[len(itemSigil):])
		return token{kind: tokenItemHeader, name: strings.ToUpper(name), line: lineNo}, nil

	case strings.HasPrefix(trimmed, "###"), strings.HasPrefix(trimmed, "==="):
		// Sigil at wrong depth or malformed shape: an explicit error beats
		// silently treating structure as prose.
		return token{}, errors.NewAmbiguousHeader(path, lineNo, line)

	default:
		return token{kind: tokenContent, text: line, line: lineNo}, nil
	}
}
