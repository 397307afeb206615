// Package ozdf contains the in-memory object model for OZDF corpora.
//
// A Corpus is an ordered collection of Documents. A Document owns an ordered
// sequence of elements (Block, ListBlock, Comment) and tracks a dirty flag
// that is set by any mutation reachable from the document. Blocks and list
// items share a paragraph container; paragraph text is normalized on every
// setter so stored paragraphs never contain internal blank lines or
// whitespace runs.
//
// The model is purely in-memory: parsing lives in core/parser and
// serialization in core/writer. It is not safe for concurrent mutation;
// callers sharing a Corpus across goroutines must provide their own locking.
package ozdf
