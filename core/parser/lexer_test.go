package parser

import (
	"testing"

	"github.com/ozoneforge/ozdf/core/errors"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind tokenKind
		wantName string
	}{
		{"block header", "#### TITLE", tokenBlockHeader, "TITLE"},
		{"block header lowercase", "#### Title", tokenBlockHeader, "TITLE"},
		{"block header multiword", "#### MAIN CHARACTERS", tokenBlockHeader, "MAIN CHARACTERS"},
		{"list block header", "#### [BOOK]", tokenListBlockHeader, "BOOK"},
		{"list block lowercase", "#### [chapters]", tokenListBlockHeader, "CHAPTERS"},
		{"external list block header", "#### [[CHAPTERS]]", tokenExternalListBlockHeader, "CHAPTERS"},
		{"named item header", "==== ONE", tokenItemHeader, "ONE"},
		{"named item lowercase", "==== two", tokenItemHeader, "TWO"},
		{"unnamed item header", "====", tokenItemHeader, ""},
		{"indented header", "   #### TITLE", tokenBlockHeader, "TITLE"},
		{"content", "Little Women", tokenContent, ""},
		{"blank", "", tokenContent, ""},
		{"hash content", "# not a header", tokenContent, ""},
		{"double hash content", "## still content", tokenContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := classifyLine("test.ozdf", 1, tt.line)
			if err != nil {
				t.Fatalf("classifyLine(%q) failed: %v", tt.line, err)
			}
			if tok.kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", tok.kind, tt.wantKind)
			}
			if tok.name != tt.wantName {
				t.Errorf("name = %q, want %q", tok.name, tt.wantName)
			}
		})
	}
}

func TestClassifyLineAmbiguous(t *testing.T) {
	lines := []string{
		"### too few hashes",
		"####no space",
		"#####",
		"####",
		"#### ",
		"=== too few equals",
		"=====",
		"===x",
		"#### []",
		"#### [[]]",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := classifyLine("test.ozdf", 4, line)
			if !errors.Is(err, errors.ErrAmbiguousHeader) {
				t.Errorf("classifyLine(%q) = %v, want ErrAmbiguousHeader", line, err)
			}
			var ambiguous *errors.AmbiguousHeaderError
			if errors.As(err, &ambiguous) {
				if ambiguous.Line != 4 {
					t.Errorf("Line = %d, want 4", ambiguous.Line)
				}
			} else {
				t.Error("error is not *AmbiguousHeaderError")
			}
		})
	}
}

func TestClassifyLineKeepsContentText(t *testing.T) {
	tok, err := classifyLine("test.ozdf", 1, "  indented content  ")
	if err != nil {
		t.Fatal(err)
	}
	if tok.text != "  indented content  " {
		t.Errorf("text = %q, want raw line preserved", tok.text)
	}
}
