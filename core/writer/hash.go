package writer

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/ozoneforge/ozdf/core/ozdf"
)

// Fingerprint returns the hex BLAKE3 hash of a document's rendered form.
// Two documents fingerprint equal exactly when they serialize to the same
// files, which makes the fingerprint stable across parse/render cycles.
func Fingerprint(doc *ozdf.Document) (string, error) {
	files, err := Render(doc)
	if err != nil {
		return "", err
	}

	h := blake3.New()
	for _, f := range files {
		// Length-prefix the path so file boundaries hash unambiguously.
		h.Write([]byte{byte(len(f.Path))})
		h.Write([]byte(f.Path))
		h.Write([]byte(f.Text))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum), nil
}
