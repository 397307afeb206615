package ozdf

import (
	"github.com/ozoneforge/ozdf/core/errors"
)

// Corpus is an ordered collection of documents, optionally bound to a save
// path. Document names are unique within a corpus.
type Corpus struct {
	documents []*Document
	savePath  string
}

// NewCorpus creates an empty corpus. savePath may be empty for a read-only
// corpus; saving such a corpus fails with SaveTargetError.
func NewCorpus(savePath string) *Corpus {
	return &Corpus{savePath: savePath}
}

// SavePath returns the output root this corpus saves to, or "" when the
// corpus was opened without save capability.
func (c *Corpus) SavePath() string {
	return c.savePath
}

// Documents returns a copy of the ordered document sequence.
func (c *Corpus) Documents() []*Document {
	out := make([]*Document, len(c.documents))
	copy(out, c.documents)
	return out
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.documents)
}

// Document returns the document with the given name.
func (c *Corpus) Document(name string) (*Document, error) {
	for _, d := range c.documents {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, errors.NewLookup(name, "document", name)
}

// AddDocument creates a new simple document and adds it to the corpus. The
// document starts dirty so the next save emits it.
func (c *Corpus) AddDocument(filename string) (*Document, error) {
	doc := NewDocument(filename)
	if err := c.Attach(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddDirectoryDocument creates a new directory document and adds it.
func (c *Corpus) AddDirectoryDocument(dirname string) (*Document, error) {
	doc := NewDirectoryDocument(dirname)
	if err := c.Attach(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Attach adds an existing document, enforcing name uniqueness. Loaders use
// this to register parsed documents.
func (c *Corpus) Attach(doc *Document) error {
	for _, d := range c.documents {
		if d.Name() == doc.Name() {
			return errors.NewDuplicateName(c.savePath, "document", doc.Name())
		}
	}
	c.documents = append(c.documents, doc)
	return nil
}
