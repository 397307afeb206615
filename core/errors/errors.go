// Package errors provides standardized error types and helpers for the ozdf codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse/model/save taxonomy
var (
	// ErrAmbiguousHeader indicates a line that starts with a header sigil but is not a well-formed header
	ErrAmbiguousHeader = errors.New("ambiguous header")
	// ErrDuplicateName indicates a block or list block name collision within a document
	ErrDuplicateName = errors.New("duplicate name")
	// ErrStructural indicates an element appearing where the grammar does not allow it
	ErrStructural = errors.New("structural error")
	// ErrEmptyDocument indicates a document with no elements
	ErrEmptyDocument = errors.New("empty document")
	// ErrEmptyContent indicates a block or list item with zero paragraphs
	ErrEmptyContent = errors.New("empty content")
	// ErrMissingField indicates a data part file lacking a required block
	ErrMissingField = errors.New("missing required field")
	// ErrSequence indicates non-contiguous or duplicate data part indices
	ErrSequence = errors.New("bad part sequence")
	// ErrNotFound indicates a block or list block lookup miss
	ErrNotFound = errors.New("not found")
	// ErrNoSaveTarget indicates a save attempt on a corpus without an output root
	ErrNoSaveTarget = errors.New("no save target")
	// ErrIncompleteWrite indicates a leftover writing marker from an interrupted save
	ErrIncompleteWrite = errors.New("incomplete write")
)

// AmbiguousHeaderError reports a malformed sigil line.
type AmbiguousHeaderError struct {
	Path string // File being parsed
	Line int    // 1-based line number
	Text string // Offending line content
}

func (e *AmbiguousHeaderError) Error() string {
	return fmt.Sprintf("%s:%d: malformed header line %q", e.Path, e.Line, e.Text)
}

func (e *AmbiguousHeaderError) Unwrap() error {
	return ErrAmbiguousHeader
}

// DuplicateNameError reports a non-comment name collision within one document.
type DuplicateNameError struct {
	Path string // Document file path or name
	Kind string // "block" or "list block"
	Name string // Canonical (uppercase) name that collided
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: %s %q already exists", e.Path, e.Kind, e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// StructuralError reports an element in an illegal position.
type StructuralError struct {
	Path    string // File being parsed, if any
	Line    int    // 1-based line number, 0 if not applicable
	Message string // Human-readable description
}

func (e *StructuralError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// EmptyDocumentError reports a document that parsed to zero elements.
type EmptyDocumentError struct {
	Path string // Document file path
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("%s: document has no elements", e.Path)
}

func (e *EmptyDocumentError) Unwrap() error {
	return ErrEmptyDocument
}

// EmptyContentError reports a block or list item with zero paragraphs.
type EmptyContentError struct {
	Path string // File being parsed
	Kind string // "block" or "list item"
	Name string // Element name, empty for unnamed list items
	Line int    // Header line number, 0 if unknown
}

func (e *EmptyContentError) Error() string {
	name := e.Name
	if name == "" {
		name = "(unnamed)"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s %s has no content", e.Path, e.Line, e.Kind, name)
	}
	return fmt.Sprintf("%s: %s %s has no content", e.Path, e.Kind, name)
}

func (e *EmptyContentError) Unwrap() error {
	return ErrEmptyContent
}

// MissingFieldError reports a data part file lacking a required block.
type MissingFieldError struct {
	Path  string // Part file path
	Field string // Missing block name (e.g. "DATA")
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required %s block", e.Path, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// SequenceError reports a gap or duplicate in data part file indices.
type SequenceError struct {
	Path     string // Part file whose index broke the sequence
	Expected int    // Index that was expected
	Got      int    // Index that was found
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: part indices must be contiguous from 1: expected %d, got %d", e.Path, e.Expected, e.Got)
}

func (e *SequenceError) Unwrap() error {
	return ErrSequence
}

// LookupError reports an unknown block or list block name on query.
type LookupError struct {
	Document string // Document name
	Kind     string // "block" or "list block"
	Name     string // Name that was queried
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found in document %q", e.Kind, e.Name, e.Document)
}

func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

// SaveTargetError reports a save attempt on a corpus opened without an output root.
type SaveTargetError struct{}

func (e *SaveTargetError) Error() string {
	return "cannot save corpus opened without a save path"
}

func (e *SaveTargetError) Unwrap() error {
	return ErrNoSaveTarget
}

// IncompleteWriteError reports a directory document left behind by an interrupted save.
type IncompleteWriteError struct {
	Path string // Directory document path containing the writing marker
}

func (e *IncompleteWriteError) Error() string {
	return fmt.Sprintf("%s: writing marker present, previous save did not complete", e.Path)
}

func (e *IncompleteWriteError) Unwrap() error {
	return ErrIncompleteWrite
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "list")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for creating common errors

// NewAmbiguousHeader creates an AmbiguousHeaderError
func NewAmbiguousHeader(path string, line int, text string) *AmbiguousHeaderError {
	return &AmbiguousHeaderError{Path: path, Line: line, Text: text}
}

// NewDuplicateName creates a DuplicateNameError
func NewDuplicateName(path, kind, name string) *DuplicateNameError {
	return &DuplicateNameError{Path: path, Kind: kind, Name: name}
}

// NewStructural creates a StructuralError
func NewStructural(path string, line int, message string) *StructuralError {
	return &StructuralError{Path: path, Line: line, Message: message}
}

// NewEmptyDocument creates an EmptyDocumentError
func NewEmptyDocument(path string) *EmptyDocumentError {
	return &EmptyDocumentError{Path: path}
}

// NewEmptyContent creates an EmptyContentError
func NewEmptyContent(path, kind, name string, line int) *EmptyContentError {
	return &EmptyContentError{Path: path, Kind: kind, Name: name, Line: line}
}

// NewMissingField creates a MissingFieldError
func NewMissingField(path, field string) *MissingFieldError {
	return &MissingFieldError{Path: path, Field: field}
}

// NewSequence creates a SequenceError
func NewSequence(path string, expected, got int) *SequenceError {
	return &SequenceError{Path: path, Expected: expected, Got: got}
}

// NewLookup creates a LookupError
func NewLookup(document, kind, name string) *LookupError {
	return &LookupError{Document: document, Kind: kind, Name: name}
}

// NewSaveTarget creates a SaveTargetError
func NewSaveTarget() *SaveTargetError {
	return &SaveTargetError{}
}

// NewIncompleteWrite creates an IncompleteWriteError
func NewIncompleteWrite(path string) *IncompleteWriteError {
	return &IncompleteWriteError{Path: path}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// New wraps errors.New for convenience
func New(text string) error {
	return errors.New(text)
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Join wraps errors.Join for convenience
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
