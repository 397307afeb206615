// Package fileutil provides the small filesystem operations the savers need:
// atomic single-file replacement and staged directory rewrites.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ozoneforge/ozdf/core/errors"
)

// WriteFileAtomic writes data to path by writing a uniquely named sibling
// temp file first and renaming it into place. Readers never observe a
// partially written file. Parent directories are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO("mkdir", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.NewIO("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.NewIO("rename", path, err)
	}
	return nil
}

// MoveEntries moves the named entries from dir into dst, creating dst
// first. Used to stash a directory's current files before a rewrite.
func MoveEntries(dir, dst string, names []string) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return errors.NewIO("mkdir", dst, err)
	}
	for _, name := range names {
		src := filepath.Join(dir, name)
		if err := os.Rename(src, filepath.Join(dst, name)); err != nil {
			return errors.NewIO("rename", src, err)
		}
	}
	return nil
}

// ListFiles returns the names of the regular files directly inside dir,
// excluding any names in skip.
func ListFiles(dir string, skip ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIO("readdir", dir, err)
	}

	skipSet := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipSet[s] = true
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || skipSet[entry.Name()] {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Touch creates an empty file at path, truncating any existing one.
func Touch(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	return f.Close()
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
