package corpus

import (
	"os"
	"path/filepath"

	"github.com/ozoneforge/ozdf/core/errors"
	"github.com/ozoneforge/ozdf/core/ozdf"
	"github.com/ozoneforge/ozdf/core/writer"
	"github.com/ozoneforge/ozdf/internal/fileutil"
	"github.com/ozoneforge/ozdf/internal/logging"
)

// Save writes every dirty document to the corpus save path and marks it
// clean. A corpus opened without a save path cannot be saved.
func Save(c *ozdf.Corpus) error {
	return save(c, false)
}

// SaveAll writes every document regardless of dirty state.
func SaveAll(c *ozdf.Corpus) error {
	return save(c, true)
}

func save(c *ozdf.Corpus, force bool) error {
	root := c.SavePath()
	if root == "" {
		return errors.NewSaveTarget()
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return errors.NewIO("mkdir", root, err)
	}

	for _, doc := range c.Documents() {
		if !force && !doc.Dirty() {
			continue
		}
		if err := SaveDocument(root, doc); err != nil {
			return err
		}
		doc.MarkClean()
	}
	return nil
}

// SaveDocument renders doc and writes its files under root. Simple
// documents are replaced atomically. Directory documents use a marker and
// backup protocol: a writing marker goes down first, prior files move into
// a backup directory, new files are written, then marker and backup are
// removed. A crash mid-save leaves the marker for the next load to detect.
func SaveDocument(root string, doc *ozdf.Document) error {
	files, err := writer.Render(doc)
	if err != nil {
		return err
	}

	if !doc.IsDirectory() {
		f := files[0]
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := fileutil.WriteFileAtomic(path, []byte(f.Text)); err != nil {
			return err
		}
		logging.DocumentSaved(doc.Name(), root, 1)
		return nil
	}

	docDir := filepath.Join(root, doc.Name())
	if err := os.MkdirAll(docDir, 0755); err != nil {
		return errors.NewIO("mkdir", docDir, err)
	}

	marker := filepath.Join(docDir, ozdf.WritingMarker)
	backup := filepath.Join(docDir, ozdf.BackupDir)

	if err := fileutil.Touch(marker); err != nil {
		return err
	}
	prior, err := fileutil.ListFiles(docDir, ozdf.WritingMarker, ozdf.BackupDir)
	if err != nil {
		return err
	}
	if err := fileutil.MoveEntries(docDir, backup, prior); err != nil {
		return err
	}

	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.WriteFile(path, []byte(f.Text), 0644); err != nil {
			return errors.NewIO("write", path, err)
		}
	}

	if err := os.Remove(marker); err != nil {
		return errors.NewIO("remove", marker, err)
	}
	if err := os.RemoveAll(backup); err != nil {
		return errors.NewIO("remove", backup, err)
	}

	logging.DocumentSaved(doc.Name(), root, len(files))
	return nil
}
