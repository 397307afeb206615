// Package corpus loads and saves whole corpora: directories whose entries
// are simple .ozdf documents and directory documents.
//
// Open modes mirror the library's save discipline. A read-only corpus has
// no save target. A read-write corpus copies the input to a fresh output
// root immediately, so the input is never mutated in place. A write-only
// corpus starts blank. Saving writes dirty documents only, unless forced.
package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ozoneforge/ozdf/core/errors"
	"github.com/ozoneforge/ozdf/core/ozdf"
	"github.com/ozoneforge/ozdf/core/parser"
	"github.com/ozoneforge/ozdf/internal/logging"
)

// LoadOptions controls corpus load behavior.
type LoadOptions struct {
	// CollectErrors keeps loading after a document fails to parse. The
	// failed documents are skipped and their errors returned joined,
	// alongside the partial corpus.
	CollectErrors bool
}

// OpenReadOnly loads the corpus at path without save capability.
func OpenReadOnly(path string) (*ozdf.Corpus, error) {
	return open(path, "", LoadOptions{})
}

// OpenReadOnlyWith loads the corpus at path with explicit load options.
// With CollectErrors set, the returned corpus may be non-nil even when the
// error is non-nil.
func OpenReadOnlyWith(path string, opts LoadOptions) (*ozdf.Corpus, error) {
	return open(path, "", opts)
}

// OpenReadWrite loads the corpus at input and binds it to output, which
// must not exist yet. The loaded corpus is written to output immediately,
// so output always holds a normalized copy of the input.
func OpenReadWrite(input, output string) (*ozdf.Corpus, error) {
	return open(input, output, LoadOptions{})
}

// OpenWriteOnly creates a blank corpus bound to output, which must not
// exist yet.
func OpenWriteOnly(output string) (*ozdf.Corpus, error) {
	return open("", output, LoadOptions{})
}

// OpenDocument loads a single document without save capability.
func OpenDocument(path string) (*ozdf.Document, error) {
	return parser.ParseDocument(parser.OS, path)
}

// Update opens input read-write against output, applies fn, and saves only
// when fn succeeds. On error nothing is saved beyond the initial normalized
// copy.
func Update(input, output string, fn func(*ozdf.Corpus) error) error {
	c, err := OpenReadWrite(input, output)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return Save(c)
}

func open(input, output string, opts LoadOptions) (*ozdf.Corpus, error) {
	if output != "" {
		if _, err := os.Stat(output); err == nil {
			return nil, errors.NewIO("create", output, os.ErrExist)
		}
	}

	c := ozdf.NewCorpus(output)

	if input != "" {
		start := time.Now()
		loadErr := loadInto(c, input, opts)
		if loadErr != nil && !opts.CollectErrors {
			return nil, loadErr
		}
		logging.CorpusLoaded(input, c.Len(), time.Since(start))
		if loadErr != nil {
			// Partial corpus under CollectErrors.
			return c, loadErr
		}
	}

	if output != "" {
		if err := os.MkdirAll(output, 0755); err != nil {
			return nil, errors.NewIO("mkdir", output, err)
		}
		if err := SaveAll(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func loadInto(c *ozdf.Corpus, root string, opts LoadOptions) error {
	paths, err := discover(root)
	if err != nil {
		return err
	}

	var failures []error
	for _, path := range paths {
		doc, err := parser.ParseDocument(parser.OS, path)
		if err != nil {
			if !opts.CollectErrors {
				return err
			}
			logging.ParseFailure(path, err)
			failures = append(failures, err)
			continue
		}
		if err := c.Attach(doc); err != nil {
			if !opts.CollectErrors {
				return err
			}
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// discover returns the document paths directly under root, sorted by name:
// .ozdf files, plus directories holding a metadata file or a leftover
// writing marker. Marker directories are included so the load surfaces the
// incomplete write instead of silently skipping the document.
func discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.NewIO("stat", root, err)
	}
	if !info.IsDir() {
		return nil, errors.NewIO("stat", root, errors.New("not a directory"))
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.NewIO("readdir", root, err)
	}

	var paths []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			if isDocumentDir(path) {
				paths = append(paths, path)
			}
			continue
		}
		if strings.HasSuffix(entry.Name(), ozdf.DocumentExt) {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func isDocumentDir(path string) bool {
	for _, name := range []string{ozdf.MetadataFile, ozdf.WritingMarker} {
		if _, err := os.Stat(filepath.Join(path, name)); err == nil {
			return true
		}
	}
	return false
}
