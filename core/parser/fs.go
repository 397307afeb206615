package parser

import (
	"os"
	"sort"

	"github.com/ozoneforge/ozdf/core/errors"
)

// FS is the file access collaborator the parser consumes. The core never
// touches the filesystem directly; handles are acquired, fully drained and
// released within each parse call.
type FS interface {
	// ReadFile returns the full text of the file at path.
	ReadFile(path string) (string, error)
	// List returns the sorted entry names of the directory at path.
	List(path string) ([]string, error)
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
	// Exists reports whether path exists.
	Exists(path string) bool
}

// OS is the default FS backed by the operating system.
var OS FS = osFS{}

type osFS struct{}

func (osFS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIO("read", path, err)
	}
	return string(data), nil
}

func (osFS) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.NewIO("list", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (osFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, errors.NewIO("stat", path, err)
	}
	return info.IsDir(), nil
}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
