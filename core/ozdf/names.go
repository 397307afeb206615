package ozdf

import (
	"fmt"
	"strings"
)

// On-disk naming conventions shared by the parser and the writer.
const (
	// DocumentExt is the extension of simple document files and metadata files.
	DocumentExt = ".ozdf"
	// PartExt is the extension of external list block part files.
	PartExt = ".ozdp"
	// MetadataFile is the metadata file name inside a directory document.
	MetadataFile = "_metadata.ozdf"
	// WritingMarker is created in a directory document while a save is in
	// progress; finding one on load means the save never completed.
	WritingMarker = ".ozdf_writing"
	// BackupDir holds the previous files of a directory document during a save.
	BackupDir = ".ozdf_backup"
)

// PartPrefix returns the part file name prefix for a list block: the
// canonical name with spaces replaced by underscores.
func PartPrefix(listName string) string {
	return strings.ReplaceAll(strings.ToUpper(listName), " ", "_")
}

// PartFileName builds a part file name with the index zero-padded to width
// digits, e.g. PartFileName("MY CHAPTERS", 3, 2) == "MY_CHAPTERS-03.ozdp".
func PartFileName(listName string, index, width int) string {
	return fmt.Sprintf("%s-%0*d%s", PartPrefix(listName), width, index, PartExt)
}
