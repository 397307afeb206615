package ozdf

import (
	"strings"

	"github.com/ozoneforge/ozdf/core/errors"
)

// DocumentKind distinguishes the two storage variants of a document.
type DocumentKind string

// Document kind constants.
const (
	// SimpleDocument is stored as a single .ozdf file.
	SimpleDocument DocumentKind = "SIMPLE"
	// DirectoryDocument is stored as a directory with a _metadata.ozdf file
	// and .ozdp part files for external list blocks.
	DirectoryDocument DocumentKind = "DIRECTORY"
)

// CommentName is the reserved header name for comment elements. Comments
// are exempt from the uniqueness constraint and excluded from lookup.
const CommentName = "COMMENT"

// Element is an ordered member of a document: *Block, *ListBlock or *Comment.
type Element interface {
	element()
}

// Document is a unit of the corpus: an ordered sequence of blocks, list
// blocks and comments, plus a name index for the first two. Block and list
// block names share one case-insensitive namespace.
type Document struct {
	name       string
	kind       DocumentKind
	blocks     map[string]*Block
	listBlocks map[string]*ListBlock
	elements   []Element
	dirty      bool
}

// NewDocument creates an empty simple document. The document starts dirty
// so that a save emits it.
func NewDocument(name string) *Document {
	return newDocument(name, SimpleDocument)
}

// NewDirectoryDocument creates an empty directory document.
func NewDirectoryDocument(name string) *Document {
	return newDocument(name, DirectoryDocument)
}

func newDocument(name string, kind DocumentKind) *Document {
	return &Document{
		name:       name,
		kind:       kind,
		blocks:     make(map[string]*Block),
		listBlocks: make(map[string]*ListBlock),
		dirty:      true,
	}
}

// Name returns the document name: the file name for simple documents, the
// directory name for directory documents.
func (d *Document) Name() string {
	return d.name
}

// Kind returns the storage variant.
func (d *Document) Kind() DocumentKind {
	return d.kind
}

// IsDirectory reports whether this is a directory document.
func (d *Document) IsDirectory() bool {
	return d.kind == DirectoryDocument
}

// Dirty reports whether the document has been mutated since the last
// MarkClean.
func (d *Document) Dirty() bool {
	return d.dirty
}

// MarkClean clears the dirty flag. The parser calls this after building a
// document; savers call it after a successful write.
func (d *Document) MarkClean() {
	d.dirty = false
}

func (d *Document) markDirty() {
	d.dirty = true
}

// Elements returns a copy of the ordered element sequence.
func (d *Document) Elements() []Element {
	out := make([]Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Block returns the block with the given name, compared case-insensitively.
func (d *Document) Block(name string) (*Block, error) {
	b, ok := d.blocks[strings.ToUpper(name)]
	if !ok {
		return nil, errors.NewLookup(d.name, "block", name)
	}
	return b, nil
}

// ListBlock returns the list block with the given name, compared
// case-insensitively.
func (d *Document) ListBlock(name string) (*ListBlock, error) {
	lb, ok := d.listBlocks[strings.ToUpper(name)]
	if !ok {
		return nil, errors.NewLookup(d.name, "list block", name)
	}
	return lb, nil
}

// checkNameFree returns an error if the canonical name is already taken by
// a block or list block.
func (d *Document) checkNameFree(kind, upper string) error {
	if _, ok := d.blocks[upper]; ok {
		return errors.NewDuplicateName(d.name, kind, upper)
	}
	if _, ok := d.listBlocks[upper]; ok {
		return errors.NewDuplicateName(d.name, kind, upper)
	}
	return nil
}

func (d *Document) insertElement(e Element, first bool) {
	if first {
		d.elements = append([]Element{e}, d.elements...)
	} else {
		d.elements = append(d.elements, e)
	}
}

func (d *Document) addBlock(name, content string, first bool) (*Block, error) {
	upper := strings.ToUpper(name)
	if upper == CommentName {
		return nil, errors.NewStructural(d.name, 0, "COMMENT is reserved for comment elements")
	}
	if err := d.checkNameFree("block", upper); err != nil {
		return nil, err
	}

	b := &Block{body: body{owner: d}, name: upper}
	if content != "" {
		b.SetText(content)
	}
	d.blocks[upper] = b
	d.insertElement(b, first)
	d.markDirty()
	return b, nil
}

// AddBlockFirst adds a block at the beginning of the document.
func (d *Document) AddBlockFirst(name, content string) (*Block, error) {
	return d.addBlock(name, content, true)
}

// AddBlockLast adds a block at the end of the document.
func (d *Document) AddBlockLast(name, content string) (*Block, error) {
	return d.addBlock(name, content, false)
}

// RemoveBlock deletes the named block from the index and the element order.
func (d *Document) RemoveBlock(name string) error {
	upper := strings.ToUpper(name)
	b, ok := d.blocks[upper]
	if !ok {
		return errors.NewLookup(d.name, "block", name)
	}
	delete(d.blocks, upper)
	d.removeElement(b)
	d.markDirty()
	return nil
}

// RenameBlock changes a block's name, keeping its position and content.
func (d *Document) RenameBlock(oldName, newName string) error {
	oldUpper := strings.ToUpper(oldName)
	newUpper := strings.ToUpper(newName)
	b, ok := d.blocks[oldUpper]
	if !ok {
		return errors.NewLookup(d.name, "block", oldName)
	}
	if newUpper == oldUpper {
		return nil
	}
	if newUpper == CommentName {
		return errors.NewStructural(d.name, 0, "COMMENT is reserved for comment elements")
	}
	if err := d.checkNameFree("block", newUpper); err != nil {
		return err
	}
	delete(d.blocks, oldUpper)
	b.name = newUpper
	d.blocks[newUpper] = b
	d.markDirty()
	return nil
}

func (d *Document) addListBlock(name string, external, first bool) (*ListBlock, error) {
	if external && d.kind != DirectoryDocument {
		return nil, errors.NewStructural(d.name, 0, "external list blocks are only allowed in directory documents")
	}
	upper := strings.ToUpper(name)
	if err := d.checkNameFree("list block", upper); err != nil {
		return nil, err
	}

	lb := &ListBlock{name: upper, external: external, owner: d}
	d.listBlocks[upper] = lb
	d.insertElement(lb, first)
	d.markDirty()
	return lb, nil
}

// AddListBlockFirst adds an empty inline list block at the beginning.
func (d *Document) AddListBlockFirst(name string) (*ListBlock, error) {
	return d.addListBlock(name, false, true)
}

// AddListBlockLast adds an empty inline list block at the end.
func (d *Document) AddListBlockLast(name string) (*ListBlock, error) {
	return d.addListBlock(name, false, false)
}

// AddExternalListBlockFirst adds an empty external list block at the
// beginning. Only directory documents may hold external list blocks.
func (d *Document) AddExternalListBlockFirst(name string) (*ListBlock, error) {
	return d.addListBlock(name, true, true)
}

// AddExternalListBlockLast adds an empty external list block at the end.
func (d *Document) AddExternalListBlockLast(name string) (*ListBlock, error) {
	return d.addListBlock(name, true, false)
}

// RemoveListBlock deletes the named list block.
func (d *Document) RemoveListBlock(name string) error {
	upper := strings.ToUpper(name)
	lb, ok := d.listBlocks[upper]
	if !ok {
		return errors.NewLookup(d.name, "list block", name)
	}
	delete(d.listBlocks, upper)
	d.removeElement(lb)
	d.markDirty()
	return nil
}

// RenameListBlock changes a list block's name, keeping position and items.
func (d *Document) RenameListBlock(oldName, newName string) error {
	oldUpper := strings.ToUpper(oldName)
	newUpper := strings.ToUpper(newName)
	lb, ok := d.listBlocks[oldUpper]
	if !ok {
		return errors.NewLookup(d.name, "list block", oldName)
	}
	if newUpper == oldUpper {
		return nil
	}
	if err := d.checkNameFree("list block", newUpper); err != nil {
		return err
	}
	delete(d.listBlocks, oldUpper)
	lb.name = newUpper
	d.listBlocks[newUpper] = lb
	d.markDirty()
	return nil
}

// AddComment appends a comment with the given raw text. Comments are
// repeatable and never indexed by name.
func (d *Document) AddComment(raw string) *Comment {
	c := &Comment{text: raw, owner: d}
	d.elements = append(d.elements, c)
	d.markDirty()
	return c
}

func (d *Document) removeElement(e Element) {
	for i, cur := range d.elements {
		if cur == e {
			d.elements = append(d.elements[:i], d.elements[i+1:]...)
			return
		}
	}
}
