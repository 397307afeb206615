package parser

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ozoneforge/ozdf/core/errors"
	"github.com/ozoneforge/ozdf/core/ozdf"
	"github.com/ozoneforge/ozdf/core/text"
)

// Part file field names.
const (
	partNameField = "NAME"
	partDataField = "DATA"
)

// populateExternalListBlock scans dirPath for the part files of lb and
// parses each one into a list item, in index order. Indices must start at 1
// and be contiguous; zero-padding width does not matter.
func populateExternalListBlock(fsys FS, dirPath string, lb *ozdf.ListBlock) error {
	prefix := ozdf.PartPrefix(lb.Name())
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)` + regexp.QuoteMeta(ozdf.PartExt) + `$`)

	entries, err := fsys.List(dirPath)
	if err != nil {
		return err
	}

	type partRef struct {
		index int
		name  string
	}
	var parts []partRef
	for _, entry := range entries {
		m := pattern.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			return errors.NewStructural(filepath.Join(dirPath, entry), 0, "invalid part index")
		}
		parts = append(parts, partRef{index: index, name: entry})
	}

	// Numeric order, not string order: part 2 sorts before part 10.
	sort.Slice(parts, func(i, j int) bool { return parts[i].index < parts[j].index })

	for i, p := range parts {
		if p.index != i+1 {
			return errors.NewSequence(filepath.Join(dirPath, p.name), i+1, p.index)
		}
	}

	for _, p := range parts {
		partPath := filepath.Join(dirPath, p.name)
		name, data, err := parsePartFile(fsys, partPath)
		if err != nil {
			return err
		}
		item := lb.AddItem(name, "")
		item.SetText(data)
	}

	return nil
}

// parsePartFile reads a .ozdp file and returns the optional NAME text and
// the mandatory DATA text. Part files hold plain blocks and comments only.
func parsePartFile(fsys FS, path string) (name, data string, err error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	fields := make(map[string][]string)
	var (
		curField      string
		curLines      []string
		curHeaderLine int
		inComment     bool
		prevBlank     bool
		blankRequired bool
	)

	flush := func() error {
		if inComment {
			inComment = false
			return nil
		}
		if curField == "" {
			return nil
		}
		joined := strings.Join(curLines, "\n")
		paragraphs := text.SplitParagraphs(joined)
		if len(paragraphs) == 0 {
			return errors.NewEmptyContent(path, "block", curField, curHeaderLine)
		}
		fields[curField] = paragraphs
		curField = ""
		curLines = nil
		return nil
	}

	for i, line := range splitLines(content) {
		lineNo := i + 1
		tok, cerr := classifyLine(path, lineNo, line)
		if cerr != nil {
			return "", "", cerr
		}

		switch tok.kind {
		case tokenBlockHeader:
			if blankRequired && !prevBlank {
				return "", "", errors.NewStructural(path, lineNo, "header must be preceded by a blank line")
			}
			if ferr := flush(); ferr != nil {
				return "", "", ferr
			}
			if tok.name == ozdf.CommentName {
				inComment = true
			} else {
				if _, dup := fields[tok.name]; dup {
					return "", "", errors.NewDuplicateName(path, "block", tok.name)
				}
				curField = tok.name
				curHeaderLine = lineNo
			}
			blankRequired = true

		case tokenListBlockHeader, tokenExternalListBlockHeader, tokenItemHeader:
			return "", "", errors.NewStructural(path, lineNo, "part files may contain only plain blocks")

		default:
			if curField != "" {
				curLines = append(curLines, tok.text)
			} else if !inComment && strings.TrimSpace(tok.text) != "" {
				return "", "", errors.NewStructural(path, lineNo, "content line outside any block")
			}
		}

		prevBlank = strings.TrimSpace(line) == ""
	}
	if ferr := flush(); ferr != nil {
		return "", "", ferr
	}

	dataParagraphs, ok := fields[partDataField]
	if !ok {
		return "", "", errors.NewMissingField(path, partDataField)
	}
	data = strings.Join(dataParagraphs, "\n\n")
	if nameParagraphs, ok := fields[partNameField]; ok {
		name = text.Normalize(strings.Join(nameParagraphs, " "))
	}
	return name, data, nil
}
