// Package writer serializes ozdf documents back to their on-disk text form.
//
// Rendering is pure: Render returns the files a document serializes to as
// in-memory (path, text) pairs and never touches the filesystem. Paragraphs
// are re-normalized and wrapped to 80 columns on the way out, so output is
// canonical even when a caller mutated paragraph storage directly.
package writer

import (
	"strconv"
	"strings"

	"github.com/ozoneforge/ozdf/core/errors"
	"github.com/ozoneforge/ozdf/core/ozdf"
	"github.com/ozoneforge/ozdf/core/text"
)

// File is one rendered output: a path relative to the save root and the
// full text to write there.
type File struct {
	Path string
	Text string
}

// Render serializes doc to its output files. A simple document renders to
// one file named after the document; a directory document renders to its
// metadata file plus one part file per external list item, indices densely
// renumbered from 1. Empty blocks, items and inline list blocks are
// rejected because they would not parse back.
func Render(doc *ozdf.Document) ([]File, error) {
	var b strings.Builder
	for _, e := range doc.Elements() {
		switch el := e.(type) {
		case *ozdf.Block:
			if err := renderBlock(&b, doc.Name(), el); err != nil {
				return nil, err
			}
		case *ozdf.Comment:
			renderComment(&b, el)
		case *ozdf.ListBlock:
			if err := renderListBlock(&b, doc.Name(), el); err != nil {
				return nil, err
			}
		}
	}

	if !doc.IsDirectory() {
		return []File{{Path: doc.Name(), Text: b.String()}}, nil
	}

	files := []File{{Path: joinPath(doc.Name(), ozdf.MetadataFile), Text: b.String()}}
	for _, e := range doc.Elements() {
		lb, ok := e.(*ozdf.ListBlock)
		if !ok || !lb.External() {
			continue
		}
		parts, err := renderParts(doc.Name(), lb)
		if err != nil {
			return nil, err
		}
		files = append(files, parts...)
	}
	return files, nil
}

// renderBody writes normalized, wrapped paragraphs, each followed by a
// blank separator line.
func renderBody(b *strings.Builder, paragraphs []string) {
	for _, p := range paragraphs {
		b.WriteString(text.Wrap(text.Normalize(p)))
		b.WriteString("\n\n")
	}
}

func renderBlock(b *strings.Builder, docName string, block *ozdf.Block) error {
	if block.Len() == 0 {
		return errors.NewEmptyContent(docName, "block", block.Name(), 0)
	}
	b.WriteString("#### " + block.Name() + "\n")
	renderBody(b, block.Paragraphs())
	return nil
}

// renderComment emits the raw comment body. The trailing newline is the
// one the parser strips when it collects the body lines.
func renderComment(b *strings.Builder, c *ozdf.Comment) {
	b.WriteString("#### " + ozdf.CommentName + "\n")
	b.WriteString(c.Text())
	b.WriteString("\n")
}

func renderListBlock(b *strings.Builder, docName string, lb *ozdf.ListBlock) error {
	if lb.External() {
		// Item bodies live in part files; the metadata file carries only
		// the header.
		b.WriteString("#### [[" + lb.Name() + "]]\n\n")
		return nil
	}
	if lb.Len() == 0 {
		return errors.NewEmptyContent(docName, "list block", lb.Name(), 0)
	}
	b.WriteString("#### [" + lb.Name() + "]\n")
	for _, item := range lb.Items() {
		if err := renderItem(b, docName, item); err != nil {
			return err
		}
	}
	return nil
}

func renderItem(b *strings.Builder, docName string, item *ozdf.ListItem) error {
	if item.Len() == 0 {
		return errors.NewEmptyContent(docName, "list item", item.Name(), 0)
	}
	if item.Name() != "" {
		b.WriteString("==== " + item.Name() + "\n")
	} else {
		b.WriteString("====\n")
	}
	renderBody(b, item.Paragraphs())
	return nil
}

// renderParts builds the part files of an external list block. Indices are
// a pure function of current item order; whatever numbering the input had
// is discarded. Padding width grows with the item count but never drops
// below two digits.
func renderParts(docName string, lb *ozdf.ListBlock) ([]File, error) {
	width := indexWidth(lb.Len())
	files := make([]File, 0, lb.Len())
	for i, item := range lb.Items() {
		if item.Len() == 0 {
			return nil, errors.NewEmptyContent(docName, "list item", item.Name(), 0)
		}
		var b strings.Builder
		if item.Name() != "" {
			b.WriteString("#### " + partNameField + "\n")
			b.WriteString(item.Name() + "\n\n")
		}
		b.WriteString("#### " + partDataField + "\n")
		renderBody(&b, item.Paragraphs())
		files = append(files, File{
			Path: joinPath(docName, ozdf.PartFileName(lb.Name(), i+1, width)),
			Text: b.String(),
		})
	}
	return files, nil
}

// Part file field names, mirrored by the parser.
const (
	partNameField = "NAME"
	partDataField = "DATA"
)

func indexWidth(count int) int {
	width := len(strconv.Itoa(count))
	if width < 2 {
		width = 2
	}
	return width
}

// joinPath joins rendered output paths with forward slashes regardless of
// host OS; savers translate them with filepath.FromSlash.
func joinPath(parts ...string) string {
	return strings.Join(parts, "/")
}
