// Command ozdf is the CLI tool for working with ozdf corpora: validating,
// normalizing, inspecting and snapshotting them.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/ozoneforge/ozdf/core/corpus"
	"github.com/ozoneforge/ozdf/core/errors"
	"github.com/ozoneforge/ozdf/core/ozdf"
	"github.com/ozoneforge/ozdf/core/writer"
	"github.com/ozoneforge/ozdf/internal/archive"
	"github.com/ozoneforge/ozdf/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for ozdf.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Check   CheckCmd   `cmd:"" help:"Validate every document in a corpus"`
	Fmt     FmtCmd     `cmd:"" help:"Write a normalized copy of a corpus"`
	Info    InfoCmd    `cmd:"" help:"Show per-document structure and fingerprints"`
	Cat     CatCmd     `cmd:"" help:"Print a block's text from a document"`
	Set     SetCmd     `cmd:"" help:"Replace a block's text and save a new corpus"`
	Archive ArchiveCmd `cmd:"" help:"Export a corpus snapshot archive"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func initLogging() {
	level := map[string]logging.Level{
		"debug": logging.LevelDebug,
		"info":  logging.LevelInfo,
		"warn":  logging.LevelWarn,
		"error": logging.LevelError,
	}[CLI.LogLevel]
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

// CheckCmd validates every document in a corpus.
type CheckCmd struct {
	Corpus string `arg:"" help:"Path to corpus directory" type:"existingdir"`
}

func (c *CheckCmd) Run() error {
	crp, err := corpus.OpenReadOnlyWith(c.Corpus, corpus.LoadOptions{CollectErrors: true})
	if err != nil {
		loaded := 0
		if crp != nil {
			loaded = crp.Len()
		}
		fmt.Printf("FAIL %s\n%v\n", c.Corpus, err)
		return errors.Wrapf(err, "%d documents loaded, corpus has errors", loaded)
	}
	fmt.Printf("OK %s: %d documents\n", c.Corpus, crp.Len())
	return nil
}

// FmtCmd writes a normalized copy of a corpus to a new output root.
type FmtCmd struct {
	Corpus string `arg:"" help:"Path to corpus directory" type:"existingdir"`
	Out    string `required:"" help:"Output corpus path (must not exist)" type:"path"`
}

func (c *FmtCmd) Run() error {
	crp, err := corpus.OpenReadWrite(c.Corpus, c.Out)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d documents to %s\n", crp.Len(), c.Out)
	return nil
}

// InfoCmd shows per-document structure counts and fingerprints.
type InfoCmd struct {
	Corpus string `arg:"" help:"Path to corpus directory" type:"existingdir"`
}

func (c *InfoCmd) Run() error {
	crp, err := corpus.OpenReadOnly(c.Corpus)
	if err != nil {
		return err
	}

	for _, doc := range crp.Documents() {
		var blocks, listBlocks, comments int
		for _, e := range doc.Elements() {
			switch e.(type) {
			case *ozdf.Block:
				blocks++
			case *ozdf.ListBlock:
				listBlocks++
			case *ozdf.Comment:
				comments++
			}
		}
		fp, err := writer.Fingerprint(doc)
		if err != nil {
			return errors.Wrapf(err, "fingerprint %s", doc.Name())
		}
		fmt.Printf("%-30s %-9s blocks=%d lists=%d comments=%d blake3=%s\n",
			doc.Name(), doc.Kind(), blocks, listBlocks, comments, fp[:16])
	}
	return nil
}

// CatCmd prints a block's text from a single document.
type CatCmd struct {
	Document string `arg:"" help:"Path to .ozdf file or document directory" type:"path"`
	Block    string `arg:"" help:"Block name (case-insensitive)"`
}

func (c *CatCmd) Run() error {
	doc, err := corpus.OpenDocument(c.Document)
	if err != nil {
		return err
	}
	block, err := doc.Block(c.Block)
	if err != nil {
		return err
	}
	fmt.Println(block.Text())
	return nil
}

// SetCmd replaces a block's text in one document and writes the corpus to
// a new output root.
type SetCmd struct {
	Corpus   string `arg:"" help:"Path to corpus directory" type:"existingdir"`
	Document string `arg:"" help:"Document name within the corpus"`
	Block    string `arg:"" help:"Block name (case-insensitive)"`
	Text     string `required:"" help:"Replacement text"`
	Out      string `required:"" help:"Output corpus path (must not exist)" type:"path"`
}

func (c *SetCmd) Run() error {
	return corpus.Update(c.Corpus, c.Out, func(crp *ozdf.Corpus) error {
		doc, err := crp.Document(c.Document)
		if err != nil {
			return err
		}
		block, err := doc.Block(c.Block)
		if err != nil {
			return err
		}
		block.SetText(c.Text)
		return nil
	})
}

// ArchiveCmd exports a corpus snapshot archive.
type ArchiveCmd struct {
	Corpus string `arg:"" help:"Path to corpus directory" type:"existingdir"`
	Out    string `required:"" help:"Archive path (.tar.xz or .tar.gz)" type:"path"`
}

func (c *ArchiveCmd) Run() error {
	if !archive.IsSupportedFormat(c.Out) {
		return errors.New("output must end in .tar.xz or .tar.gz")
	}
	crp, err := corpus.OpenReadOnly(c.Corpus)
	if err != nil {
		return err
	}
	size, err := archive.Snapshot(crp, c.Out)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes, %d documents)\n", c.Out, size, crp.Len())
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("ozdf version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ozdf"),
		kong.Description("ozdf - line-oriented prose corpus format tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
