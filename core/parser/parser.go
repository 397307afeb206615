// Package parser builds ozdf documents from their on-disk text form.
//
// Parsing is eager: a whole document, including all part files of its
// external list blocks, is loaded in one call. Every error carries the
// originating file path and, where it applies, the line number.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/ozoneforge/ozdf/core/errors"
	"github.com/ozoneforge/ozdf/core/ozdf"
)

// builder accumulates content lines for the element that is currently open.
type builder struct {
	path       string
	headerLine int
	lines      []string
	block      *ozdf.Block
	item       *ozdf.ListItem
	comment    *ozdf.Comment
}

func (b *builder) append(line string) {
	b.lines = append(b.lines, line)
}

// flush applies the accumulated lines to the target element. Blocks and
// list items get normalized paragraph text and must end up non-empty;
// comments keep their body verbatim.
func (b *builder) flush() error {
	joined := strings.Join(b.lines, "\n")
	switch {
	case b.comment != nil:
		b.comment.SetText(joined)
	case b.block != nil:
		b.block.SetText(joined)
		if b.block.Len() == 0 {
			return errors.NewEmptyContent(b.path, "block", b.block.Name(), b.headerLine)
		}
	case b.item != nil:
		b.item.SetText(joined)
		if b.item.Len() == 0 {
			return errors.NewEmptyContent(b.path, "list item", b.item.Name(), b.headerLine)
		}
	}
	return nil
}

// ParseDocument parses the document at path: a simple .ozdf file, or a
// directory document containing a metadata file and part files. The
// returned document is clean.
func ParseDocument(fsys FS, path string) (*ozdf.Document, error) {
	isDir, err := fsys.IsDir(path)
	if err != nil {
		return nil, err
	}

	var doc *ozdf.Document
	filePath := path
	if isDir {
		if fsys.Exists(filepath.Join(path, ozdf.WritingMarker)) {
			return nil, errors.NewIncompleteWrite(path)
		}
		doc = ozdf.NewDirectoryDocument(filepath.Base(path))
		filePath = filepath.Join(path, ozdf.MetadataFile)
	} else {
		doc = ozdf.NewDocument(filepath.Base(path))
	}

	content, err := fsys.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	externals, err := parseBody(doc, filePath, content)
	if err != nil {
		return nil, err
	}

	if len(doc.Elements()) == 0 {
		return nil, errors.NewEmptyDocument(filePath)
	}

	// Second pass: stitch part files into the external list blocks that the
	// metadata file declared. This is the only step that crosses file
	// boundaries.
	for _, lb := range externals {
		if err := populateExternalListBlock(fsys, path, lb); err != nil {
			return nil, err
		}
	}

	doc.MarkClean()
	return doc, nil
}

// parseBody runs the main line loop over a document or metadata file,
// returning the external list blocks that still need their part files.
func parseBody(doc *ozdf.Document, path, content string) ([]*ozdf.ListBlock, error) {
	var (
		cur         *builder
		currentList *ozdf.ListBlock
		externals   []*ozdf.ListBlock
		prevBlank   bool
		// The first header of the file and the first item after a list
		// block header need no preceding blank line.
		blankRequired bool
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		err := cur.flush()
		cur = nil
		return err
	}

	for i, line := range splitLines(content) {
		lineNo := i + 1
		tok, err := classifyLine(path, lineNo, line)
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case tokenBlockHeader, tokenListBlockHeader, tokenExternalListBlockHeader:
			if blankRequired && !prevBlank {
				return nil, errors.NewStructural(path, lineNo, "header must be preceded by a blank line")
			}
			if err := flush(); err != nil {
				return nil, err
			}

			switch tok.kind {
			case tokenExternalListBlockHeader:
				if !doc.IsDirectory() {
					return nil, errors.NewStructural(path, lineNo, "external list blocks are only allowed in directory documents")
				}
				lb, err := doc.AddExternalListBlockLast(tok.name)
				if err != nil {
					return nil, err
				}
				externals = append(externals, lb)
				currentList = nil
				blankRequired = true

			case tokenListBlockHeader:
				lb, err := doc.AddListBlockLast(tok.name)
				if err != nil {
					return nil, err
				}
				currentList = lb
				blankRequired = false

			default:
				currentList = nil
				if tok.name == ozdf.CommentName {
					cur = &builder{path: path, headerLine: lineNo, comment: doc.AddComment("")}
				} else {
					block, err := doc.AddBlockLast(tok.name, "")
					if err != nil {
						return nil, err
					}
					cur = &builder{path: path, headerLine: lineNo, block: block}
				}
				blankRequired = true
			}

		case tokenItemHeader:
			if currentList == nil {
				return nil, errors.NewStructural(path, lineNo, "list item header outside of a list block")
			}
			if blankRequired && !prevBlank {
				return nil, errors.NewStructural(path, lineNo, "list item header must be preceded by a blank line")
			}
			if err := flush(); err != nil {
				return nil, err
			}
			cur = &builder{path: path, headerLine: lineNo, item: currentList.AddItem(tok.name, "")}
			blankRequired = true

		default:
			if cur != nil {
				cur.append(tok.text)
			} else if strings.TrimSpace(tok.text) != "" {
				return nil, errors.NewStructural(path, lineNo, "content line outside any block")
			}
		}

		prevBlank = strings.TrimSpace(line) == ""
	}

	if err := flush(); err != nil {
		return nil, err
	}

	// Inline list blocks must hold at least one item.
	for _, e := range doc.Elements() {
		if lb, ok := e.(*ozdf.ListBlock); ok && !lb.External() && lb.Len() == 0 {
			return nil, errors.NewEmptyContent(path, "list block", lb.Name(), 0)
		}
	}

	return externals, nil
}

// splitLines splits file content into lines without their terminators. A
// trailing newline does not produce a final empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
