// Package cli provides the command-line interface for countstat
package cli

import (
	"github.com/spf13/pflag"

	"github.com/umwelt-studio/countstat/internal/counter"
	"github.com/umwelt-studio/countstat/internal/report"
)

// Options holds the command-line options shared across commands
type Options struct {
	// LogLevel is parsed by logrus; unknown levels fall back to error.
	LogLevel string

	// Directory is the project root. Relative file arguments are resolved
	// against it and its .countstat file holds the project config.
	// If empty, defaults to the current directory (".").
	Directory string

	// IgnoreFile specifies a custom ignore file to use instead of the default .gitignore.
	// If empty, countstat will:
	// - look for .countstatignore first, then
	// - fall back to .gitignore if present
	// - use a sane internal list of ignore patterns (see internal/processor)
	IgnoreFile string

	// Encoding names the binary-to-text encoding of the inputs, see counter.Decode.
	Encoding string

	// Segmenter selects the Japanese word segmenter: lexicon or kagome.
	Segmenter string

	// Report holds what the report shows and how.
	Report report.Options
}

// SetDefaults fills in values that flags leave empty
func (o *Options) SetDefaults() {
	if o.Directory == "" {
		o.Directory = "."
	}
	if o.Report.Format == "" {
		o.Report.Format = report.FormatText
	}
}

// newCounter builds the counter selected by the options.
func (o *Options) newCounter() (*counter.Counter, error) {
	seg, err := counter.NewSegmenter(o.Segmenter)
	if err != nil {
		return nil, err
	}
	return counter.New(counter.WithSegmenter(seg)), nil
}

func addCountFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVar(&opts.Encoding, "encoding", "utf8", "Input encoding: utf8, base64, hex, ascii, latin1, utf16le")
	fs.StringVar(&opts.Segmenter, "segmenter", counter.SegmenterLexicon, "Japanese segmenter: lexicon, kagome")
	fs.BoolVar(&opts.Report.Words, "words", true, "Show word counts")
	fs.BoolVar(&opts.Report.Chars, "chars", true, "Show character counts")
	fs.StringVar(&opts.Report.Format, "format", report.FormatText, "Output format: text, json, yaml")
}

func addReportFlags(fs *pflag.FlagSet, opts *Options) {
	addCountFlags(fs, opts)
	fs.BoolVar(&opts.Report.ShowFile, "show-file", true, "List files")
	fs.BoolVar(&opts.Report.ShowDir, "show-dir", true, "Annotate directories with subtotals")
	fs.BoolVar(&opts.Report.ShowTotal, "show-total", true, "Print the grand total")
	fs.BoolVar(&opts.Report.Tree, "tree", true, "Render a folded tree instead of a flat list")
	fs.StringVar(&opts.IgnoreFile, "ignore", "", "Ignore file (default: .countstatignore, then .gitignore)")
}
