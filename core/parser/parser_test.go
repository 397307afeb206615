package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ozoneforge/ozdf/core/errors"
	"github.com/ozoneforge/ozdf/core/ozdf"
)

// writeDoc writes a simple document file into dir and returns its path.
func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestParseSimpleDocument(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### TITLE\nLittle Women\n\n#### [BOOK]\n==== ONE\nFoo.\n\nBar.\n")

	doc, err := ParseDocument(OS, path)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if doc.IsDirectory() {
		t.Error("simple file parsed as directory document")
	}
	if doc.Dirty() {
		t.Error("freshly parsed document should be clean")
	}

	title, err := doc.Block("title")
	if err != nil {
		t.Fatalf("Block(\"title\") failed: %v", err)
	}
	if got := title.Text(); got != "Little Women" {
		t.Errorf("title text = %q, want %q", got, "Little Women")
	}

	book, err := doc.ListBlock("BOOK")
	if err != nil {
		t.Fatalf("ListBlock(\"BOOK\") failed: %v", err)
	}
	if book.Len() != 1 {
		t.Fatalf("BOOK has %d items, want 1", book.Len())
	}
	item := book.Item(0)
	if item.Name() != "ONE" {
		t.Errorf("item name = %q, want ONE", item.Name())
	}
	paras := item.Paragraphs()
	if len(paras) != 2 || paras[0] != "Foo." || paras[1] != "Bar." {
		t.Errorf("item paragraphs = %v, want [Foo. Bar.]", paras)
	}
}

func TestParseNormalizesParagraphs(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### BODY\nline one\ncontinues  with   spaces\n\nsecond para\n")

	doc, err := ParseDocument(OS, path)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	body, err := doc.Block("BODY")
	if err != nil {
		t.Fatal(err)
	}
	paras := body.Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2: %v", len(paras), paras)
	}
	if paras[0] != "line one continues with spaces" {
		t.Errorf("paragraph 0 = %q", paras[0])
	}
	if paras[1] != "second para" {
		t.Errorf("paragraph 1 = %q", paras[1])
	}
}

func TestParseUnnamedItems(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### [LIST]\n====\nfirst item\n\n====\nsecond item\n")

	doc, err := ParseDocument(OS, path)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	lb, err := doc.ListBlock("LIST")
	if err != nil {
		t.Fatal(err)
	}
	if lb.Len() != 2 {
		t.Fatalf("got %d items, want 2", lb.Len())
	}
	for i := 0; i < lb.Len(); i++ {
		if lb.Item(i).Name() != "" {
			t.Errorf("item %d name = %q, want unnamed", i, lb.Item(i).Name())
		}
	}
}

func TestParseComments(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### COMMENT\nraw   spacing kept\n\n#### TITLE\nA Title\n\n#### COMMENT\nanother one\n")

	doc, err := ParseDocument(OS, path)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	var comments []*ozdf.Comment
	for _, e := range doc.Elements() {
		if c, ok := e.(*ozdf.Comment); ok {
			comments = append(comments, c)
		}
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	// Comment bodies are verbatim: internal spacing survives, and the blank
	// separator line before the next header belongs to the body.
	if got := comments[0].Text(); got != "raw   spacing kept\n" {
		t.Errorf("comment 0 text = %q", got)
	}
	if got := comments[1].Text(); got != "another one" {
		t.Errorf("comment 1 text = %q", got)
	}
}

func TestParseAmbiguousHeaderInsideComment(t *testing.T) {
	// Header detection is not suppressed inside comment bodies.
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### COMMENT\nsome text\n### stray sigil\n")

	_, err := ParseDocument(OS, path)
	if !errors.Is(err, errors.ErrAmbiguousHeader) {
		t.Errorf("expected ErrAmbiguousHeader, got %v", err)
	}
}

func TestParseHeaderTerminatesComment(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### COMMENT\nbody\n\n#### TITLE\nA Title\n")

	doc, err := ParseDocument(OS, path)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if _, err := doc.Block("TITLE"); err != nil {
		t.Errorf("TITLE block not found after comment: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "duplicate block name",
			content: "#### GENRE\nfiction\n\n#### Genre\npoetry\n",
			want:    errors.ErrDuplicateName,
		},
		{
			name:    "item header outside list block",
			content: "#### TITLE\nA Title\n\n==== ONE\ncontent\n",
			want:    errors.ErrStructural,
		},
		{
			name:    "item header before any element",
			content: "==== ONE\ncontent\n",
			want:    errors.ErrStructural,
		},
		{
			name:    "empty document",
			content: "",
			want:    errors.ErrEmptyDocument,
		},
		{
			name:    "blank document",
			content: "\n\n\n",
			want:    errors.ErrEmptyDocument,
		},
		{
			name:    "block with no content",
			content: "#### TITLE\n\n#### GENRE\nfiction\n",
			want:    errors.ErrEmptyContent,
		},
		{
			name:    "item with no content",
			content: "#### [LIST]\n==== ONE\n\n==== TWO\ncontent\n",
			want:    errors.ErrEmptyContent,
		},
		{
			name:    "empty inline list block",
			content: "#### [LIST]\n\n#### TITLE\nA Title\n",
			want:    errors.ErrEmptyContent,
		},
		{
			name:    "content before first header",
			content: "stray content\n\n#### TITLE\nA Title\n",
			want:    errors.ErrStructural,
		},
		{
			name:    "header without preceding blank line",
			content: "#### TITLE\nA Title\n#### GENRE\nfiction\n",
			want:    errors.ErrStructural,
		},
		{
			name:    "item without preceding blank line",
			content: "#### [LIST]\n==== ONE\ncontent\n==== TWO\nmore\n",
			want:    errors.ErrStructural,
		},
		{
			name:    "external list block in simple document",
			content: "#### [[CHAPTERS]]\n\n#### TITLE\nA Title\n",
			want:    errors.ErrStructural,
		},
		{
			name:    "malformed sigil line",
			content: "#### TITLE\nA Title\n\n### broken\n",
			want:    errors.ErrAmbiguousHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, t.TempDir(), "test.ozdf", tt.content)

			_, err := ParseDocument(OS, path)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseDocument error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseFirstItemNeedsNoBlankLine(t *testing.T) {
	// The first ==== directly after its list block header is legal.
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### [LIST]\n==== ONE\ncontent\n")

	if _, err := ParseDocument(OS, path); err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
}

func TestParseDirectoryDocument(t *testing.T) {
	dir := t.TempDir()
	docDir := filepath.Join(dir, "novel")
	if err := os.Mkdir(docDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeDoc(t, docDir, ozdf.MetadataFile,
		"#### TITLE\nLittle Women\n\n#### [[CHAPTERS]]\n")
	writeDoc(t, docDir, "CHAPTERS-1.ozdp", "#### DATA\nA\n")
	writeDoc(t, docDir, "CHAPTERS-2.ozdp", "#### NAME\nTwo\n\n#### DATA\nB\n")

	doc, err := ParseDocument(OS, docDir)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if !doc.IsDirectory() {
		t.Error("directory document not detected")
	}
	if doc.Dirty() {
		t.Error("freshly parsed directory document should be clean")
	}

	chapters, err := doc.ListBlock("CHAPTERS")
	if err != nil {
		t.Fatal(err)
	}
	if !chapters.External() {
		t.Error("CHAPTERS should be external")
	}
	if chapters.Len() != 2 {
		t.Fatalf("got %d items, want 2", chapters.Len())
	}

	first := chapters.Item(0)
	if first.Name() != "" {
		t.Errorf("item 1 name = %q, want unnamed", first.Name())
	}
	if got := first.Text(); got != "A" {
		t.Errorf("item 1 text = %q, want A", got)
	}

	second := chapters.Item(1)
	if second.Name() != "TWO" {
		t.Errorf("item 2 name = %q, want TWO", second.Name())
	}
	if got := second.Text(); got != "B" {
		t.Errorf("item 2 text = %q, want B", got)
	}
}

func TestParseDirectoryDocumentWithWritingMarker(t *testing.T) {
	dir := t.TempDir()
	docDir := filepath.Join(dir, "novel")
	if err := os.Mkdir(docDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeDoc(t, docDir, ozdf.MetadataFile, "#### TITLE\nA Title\n")
	writeDoc(t, docDir, ozdf.WritingMarker, "")

	_, err := ParseDocument(OS, docDir)
	if !errors.Is(err, errors.ErrIncompleteWrite) {
		t.Errorf("expected ErrIncompleteWrite, got %v", err)
	}
}

func TestParseErrorCarriesPathAndLine(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "test.ozdf",
		"#### TITLE\nA Title\n\n### broken\n")

	_, err := ParseDocument(OS, path)
	var ambiguous *errors.AmbiguousHeaderError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected *AmbiguousHeaderError, got %v", err)
	}
	if ambiguous.Path != path {
		t.Errorf("Path = %q, want %q", ambiguous.Path, path)
	}
	if ambiguous.Line != 4 {
		t.Errorf("Line = %d, want 4", ambiguous.Line)
	}
}
