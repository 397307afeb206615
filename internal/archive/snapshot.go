// Package archive exports corpus snapshots as compressed tar archives.
// It supports tar.gz and tar.xz output.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/ozoneforge/ozdf/core/ozdf"
	"github.com/ozoneforge/ozdf/core/writer"
	"github.com/ozoneforge/ozdf/internal/logging"
)

// Snapshot renders every document of c and writes the result as a tar
// archive at dstPath. Compression follows the extension: .tar.xz or
// .tar.gz. Entries sit under a base directory derived from the archive
// name. Returns the archive size in bytes.
func Snapshot(c *ozdf.Corpus, dstPath string) (int64, error) {
	base := BaseName(dstPath)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create parent directory: %w", err)
	}
	outFile, err := os.Create(dstPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive file: %w", err)
	}

	var compressor io.WriteCloser
	switch {
	case strings.HasSuffix(dstPath, ".tar.xz"):
		xzw, err := xz.NewWriter(outFile)
		if err != nil {
			outFile.Close()
			return 0, fmt.Errorf("xz writer: %w", err)
		}
		compressor = xzw
	case strings.HasSuffix(dstPath, ".tar.gz"):
		compressor = gzip.NewWriter(outFile)
	default:
		outFile.Close()
		return 0, fmt.Errorf("unsupported archive format: %s", dstPath)
	}

	tw := tar.NewWriter(compressor)
	now := time.Now()

	writeErr := func() error {
		for _, doc := range c.Documents() {
			files, err := writer.Render(doc)
			if err != nil {
				return err
			}
			for _, f := range files {
				header := &tar.Header{
					Name:    base + "/" + f.Path,
					Mode:    0644,
					Size:    int64(len(f.Text)),
					ModTime: now,
				}
				if err := tw.WriteHeader(header); err != nil {
					return err
				}
				if _, err := io.WriteString(tw, f.Text); err != nil {
					return err
				}
			}
		}
		return nil
	}()

	// Close in reverse order so everything flushes before the size stat.
	if err := tw.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if err := compressor.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if err := outFile.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		os.Remove(dstPath)
		return 0, fmt.Errorf("failed to create archive: %w", writeErr)
	}

	info, err := os.Stat(dstPath)
	if err != nil {
		return 0, err
	}
	logging.ArchiveWritten(dstPath, c.Len(), info.Size())
	return info.Size(), nil
}

// BaseName derives the in-archive base directory from an archive path by
// stripping the compression extensions.
func BaseName(dstPath string) string {
	name := filepath.Base(dstPath)
	name = strings.TrimSuffix(name, ".tar.xz")
	name = strings.TrimSuffix(name, ".tar.gz")
	return name
}

// IsSupportedFormat reports whether path names a writable archive format.
func IsSupportedFormat(path string) bool {
	return strings.HasSuffix(path, ".tar.xz") || strings.HasSuffix(path, ".tar.gz")
}
