package ozdf

import (
	"strings"

	"github.com/ozoneforge/ozdf/core/text"
)

// body is the paragraph container shared by Block and ListItem. It holds a
// lookup handle to the owning document for dirty propagation; the document
// remains the sole owner of the element.
type body struct {
	paragraphs []string
	owner      *Document
}

func (b *body) markDirty() {
	if b.owner != nil {
		b.owner.markDirty()
	}
}

// Paragraphs returns a copy of the stored paragraphs.
func (b *body) Paragraphs() []string {
	out := make([]string, len(b.paragraphs))
	copy(out, b.paragraphs)
	return out
}

// Len returns the number of paragraphs.
func (b *body) Len() int {
	return len(b.paragraphs)
}

// Paragraph returns the paragraph at index i.
func (b *body) Paragraph(i int) string {
	return b.paragraphs[i]
}

// Text returns the full text with paragraphs joined by one blank line.
func (b *body) Text() string {
	return strings.Join(b.paragraphs, "\n\n")
}

// SetText replaces all paragraphs atomically: the text is split on blank
// lines and each resulting paragraph normalized.
func (b *body) SetText(s string) {
	b.paragraphs = text.NormalizeAll(text.SplitParagraphs(s))
	b.markDirty()
}

// SetParagraphs replaces the paragraph sequence with a copy of the given
// slice. Paragraphs are stored as-is; serialization re-normalizes them.
func (b *body) SetParagraphs(paragraphs []string) {
	b.paragraphs = make([]string, len(paragraphs))
	copy(b.paragraphs, paragraphs)
	b.markDirty()
}

// SetParagraph replaces the paragraph at index i with the normalized value.
func (b *body) SetParagraph(i int, s string) {
	b.paragraphs[i] = text.Normalize(s)
	b.markDirty()
}

// AppendParagraph adds a normalized paragraph at the end.
func (b *body) AppendParagraph(s string) {
	b.paragraphs = append(b.paragraphs, text.Normalize(s))
	b.markDirty()
}

// Block is a named paragraph container. Names are stored uppercase and are
// unique within a document.
type Block struct {
	body
	name string
}

func (b *Block) element() {}

// Name returns the canonical (uppercase) block name.
func (b *Block) Name() string {
	return b.name
}

// ListItem is an optionally named paragraph container inside a ListBlock.
// An empty name means the item is unnamed.
type ListItem struct {
	body
	name string
}

// Name returns the canonical (uppercase) item name, or "" for unnamed items.
func (li *ListItem) Name() string {
	return li.name
}
