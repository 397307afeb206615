package archive

import (
	"archive/tar"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ozoneforge/ozdf/core/ozdf"
)

func buildCorpus(t *testing.T) *ozdf.Corpus {
	t.Helper()
	c := ozdf.NewCorpus("")

	doc, err := c.AddDocument("alpha.ozdf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddBlockLast("TITLE", "Alpha"); err != nil {
		t.Fatal(err)
	}

	dir, err := c.AddDirectoryDocument("novel")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dir.AddBlockLast("TITLE", "Novel"); err != nil {
		t.Fatal(err)
	}
	lb, err := dir.AddExternalListBlockLast("CHAPTERS")
	if err != nil {
		t.Fatal(err)
	}
	lb.AddItem("One", "Chapter text.")

	return c
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, ext := range []string{".tar.gz", ".tar.xz"} {
		t.Run(ext, func(t *testing.T) {
			c := buildCorpus(t)
			dst := filepath.Join(t.TempDir(), "snap"+ext)

			size, err := Snapshot(c, dst)
			if err != nil {
				t.Fatalf("Snapshot failed: %v", err)
			}
			if size <= 0 {
				t.Errorf("size = %d", size)
			}

			data, err := ReadFile(dst, "alpha.ozdf")
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if string(data) != "#### TITLE\nAlpha\n\n" {
				t.Errorf("alpha.ozdf = %q", data)
			}

			part, err := ReadFile(dst, "novel/CHAPTERS-01.ozdp")
			if err != nil {
				t.Fatalf("ReadFile part failed: %v", err)
			}
			if !strings.Contains(string(part), "Chapter text.") {
				t.Errorf("part = %q", part)
			}
		})
	}
}

func TestSnapshotEntriesUnderBaseDir(t *testing.T) {
	c := buildCorpus(t)
	dst := filepath.Join(t.TempDir(), "snap.tar.gz")

	if _, err := Snapshot(c, dst); err != nil {
		t.Fatal(err)
	}

	var names []string
	err := IterateSnapshot(dst, func(header *tar.Header, _ io.Reader) (bool, error) {
		names = append(names, header.Name)
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(names) != 3 {
		t.Fatalf("got %d entries, want 3: %v", len(names), names)
	}
	for _, name := range names {
		if !strings.HasPrefix(name, "snap/") {
			t.Errorf("entry %q not under base dir", name)
		}
	}
}

func TestSnapshotUnsupportedFormat(t *testing.T) {
	c := buildCorpus(t)
	if _, err := Snapshot(c, filepath.Join(t.TempDir(), "snap.zip")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"corpus.tar.xz", "corpus"},
		{"corpus.tar.gz", "corpus"},
		{"/some/dir/backup.tar.xz", "backup"},
	}
	for _, tt := range tests {
		if got := BaseName(tt.path); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsSupportedFormat(t *testing.T) {
	if !IsSupportedFormat("x.tar.xz") || !IsSupportedFormat("x.tar.gz") {
		t.Error("tar.xz and tar.gz must be supported")
	}
	if IsSupportedFormat("x.zip") || IsSupportedFormat("x.tar") {
		t.Error("unexpected formats reported as supported")
	}
}
