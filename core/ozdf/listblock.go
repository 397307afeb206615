package ozdf

import (
	"strings"

	"github.com/ozoneforge/ozdf/core/errors"
)

// ListBlock is a named container of list items. An inline list block
// serializes its items into the document file; an external one serializes
// each item to a numbered sibling part file.
type ListBlock struct {
	name     string
	external bool
	items    []*ListItem
	owner    *Document
}

func (lb *ListBlock) element() {}

// Name returns the canonical (uppercase) list block name.
func (lb *ListBlock) Name() string {
	return lb.name
}

// External reports whether items live in sibling part files.
func (lb *ListBlock) External() bool {
	return lb.external
}

// Items returns a copy of the item sequence.
func (lb *ListBlock) Items() []*ListItem {
	out := make([]*ListItem, len(lb.items))
	copy(out, lb.items)
	return out
}

// Len returns the number of items.
func (lb *ListBlock) Len() int {
	return len(lb.items)
}

// Item returns the item at index i.
func (lb *ListBlock) Item(i int) *ListItem {
	return lb.items[i]
}

// AddItem appends a new item. name may be empty for an unnamed item; a
// non-empty name is canonicalized to uppercase. content, when non-empty,
// is split into normalized paragraphs.
func (lb *ListBlock) AddItem(name, content string) *ListItem {
	item := &ListItem{
		body: body{owner: lb.owner},
		name: strings.ToUpper(name),
	}
	if content != "" {
		item.SetText(content)
	}
	lb.items = append(lb.items, item)
	lb.markDirty()
	return item
}

// SetItems replaces the item sequence. Every item must belong to the same
// document as this list block.
func (lb *ListBlock) SetItems(items []*ListItem) error {
	for _, item := range items {
		if item.owner != lb.owner {
			return errors.NewStructural(lb.ownerName(), 0, "list item belongs to a different document")
		}
	}
	lb.items = make([]*ListItem, len(items))
	copy(lb.items, items)
	lb.markDirty()
	return nil
}

// RemoveItem deletes the item at index i, preserving the order of the rest.
func (lb *ListBlock) RemoveItem(i int) {
	lb.items = append(lb.items[:i], lb.items[i+1:]...)
	lb.markDirty()
}

func (lb *ListBlock) markDirty() {
	if lb.owner != nil {
		lb.owner.markDirty()
	}
}

func (lb *ListBlock) ownerName() string {
	if lb.owner != nil {
		return lb.owner.Name()
	}
	return ""
}
