// Package report aggregates per-file counts over a path tree and renders
// them either as a folded tree or as a flat list of paths, followed by a
// grand total. Lines go to a filetree.Sink so callers decide where they end up.
package report

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/umwelt-studio/countstat/internal/counter"
	"github.com/umwelt-studio/countstat/internal/filetree"
	"github.com/umwelt-studio/countstat/internal/util"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// rootPath is the path of an unfolded tree root.
const rootPath = "."

// DataKey is the key carrying node counts in JSON and YAML output.
const DataKey = "_count"

// File is one counted input file.
type File struct {
	Path   string
	Counts counter.Counts
}

// Stat is the payload of every node in a report tree. Directory stats hold
// the sum of their descendants.
type Stat struct {
	counter.Counts `yaml:",inline"`
	File           bool `json:"file" yaml:"file"`
}

// Options selects what a report shows.
type Options struct {
	// Words and Chars toggle the two counts in every annotation.
	Words bool
	Chars bool
	// ShowFile keeps file lines; without it files are removed before folding
	// and only directories remain.
	ShowFile bool
	// ShowDir annotates directory lines with subtotals (tree) or lists them at
	// all (flat).
	ShowDir bool
	// ShowTotal appends the grand total.
	ShowTotal bool
	// Tree renders the folded tree; otherwise a flat list of full paths.
	Tree bool
	// Format is one of FormatText, FormatJSON or FormatYAML.
	Format string
}

// DefaultOptions returns options that show everything as a text tree.
func DefaultOptions() Options {
	return Options{
		Words:     true,
		Chars:     true,
		ShowFile:  true,
		ShowDir:   true,
		ShowTotal: true,
		Tree:      true,
		Format:    FormatText,
	}
}

// Document is the JSON and YAML form of a report.
type Document struct {
	Tree  filetree.Object `json:"tree" yaml:"tree"`
	Total *counter.Counts `json:"total,omitempty" yaml:"total,omitempty"`
}

// Build puts files into a tree, attaches directory subtotals, drops files
// when opts.ShowFile is off, then sorts and folds the tree. It also returns
// the grand total over all files. A path given more than once is counted once,
// and a path that is also the directory of another input is not counted.
func Build(files []File, opts Options) (*filetree.Tree[Stat], counter.Counts) {
	tree := filetree.New[Stat]()
	var total counter.Counts

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	nodes := tree.AddPaths(paths)

	for i, f := range files {
		node := nodes[i]
		if !node.IsLeaf() {
			log.Warnf("report: skipping %s, it is also a directory of other inputs", f.Path)
			continue
		}
		if _, seen := node.Data(); seen {
			log.Debugf("report: skipping duplicate path %s", f.Path)
			continue
		}
		node.SetData(Stat{Counts: f.Counts, File: true})
		total = total.Add(f.Counts)
	}

	tree.WalkDepthFirst(func(n *filetree.Node[Stat]) filetree.WalkControl {
		if n.IsLeaf() {
			return filetree.Continue
		}
		var sum counter.Counts
		for _, c := range n.Children() {
			s, _ := c.Data()
			sum = sum.Add(s.Counts)
		}
		n.SetData(Stat{Counts: sum})
		return filetree.Continue
	})

	if !opts.ShowFile {
		tree.Reject(isFile)
	}

	return tree.Sort().Fold(), total
}

// Write builds the report for files and sends it to sink.
func Write(sink filetree.Sink, files []File, opts Options) error {
	log.Debugf("report: %d files, format %q, tree %v", len(files), opts.Format, opts.Tree)
	tree, total := Build(files, opts)

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		writeText(sink, tree, total, opts)
		return nil
	case FormatJSON:
		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(document(tree, total, opts), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		sink(string(out))
		return nil
	case FormatYAML:
		out, err := yaml.Marshal(document(tree, total, opts))
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		sink(strings.TrimSuffix(string(out), "\n"))
		return nil
	default:
		return fmt.Errorf("unknown report format: %s", opts.Format)
	}
}

func document(tree *filetree.Tree[Stat], total counter.Counts, opts Options) Document {
	doc := Document{
		Tree: tree.ToObject(filetree.ObjectOptions{DataKey: DataKey}),
	}
	if opts.ShowTotal {
		doc.Total = &total
	}
	return doc
}

func writeText(sink filetree.Sink, tree *filetree.Tree[Stat], total counter.Counts, opts Options) {
	root := tree.Root()

	switch {
	case root.IsLeaf() && root.Path() != rootPath:
		// A single input folds into the root, which would otherwise be skipped.
		if _, ok := root.Data(); ok {
			label := root.Name()
			if !opts.Tree {
				label = root.Path()
			}
			sink(util.Annotate(label, annotation(root, opts)))
		}
	case opts.Tree:
		tree.Print(sink, filetree.PrintOptions[Stat]{
			SkipRoot: true,
			Render: func(n *filetree.Node[Stat]) filetree.Label {
				if s := annotation(n, opts); s != "" {
					return filetree.Label{Suffix: ": " + s}
				}
				return filetree.Label{}
			},
		})
	default:
		tree.WalkDepthFirst(func(n *filetree.Node[Stat]) filetree.WalkControl {
			if n.IsRoot() || (!isFile(n) && !opts.ShowDir) {
				return filetree.Continue
			}
			sink(util.Annotate(n.Path(), annotation(n, opts)))
			return filetree.Continue
		})
	}

	if opts.ShowTotal {
		sink(util.Annotate("Total", util.FormatCounts(total, opts.Words, opts.Chars)))
	}
}

// annotation returns the formatted counts for n, or "" when its kind of line
// is not annotated.
func annotation(n *filetree.Node[Stat], opts Options) string {
	s, _ := n.Data()
	if (s.File && !opts.ShowFile) || (!s.File && !opts.ShowDir) {
		return ""
	}
	return util.FormatCounts(s.Counts, opts.Words, opts.Chars)
}

func isFile(n *filetree.Node[Stat]) bool {
	s, _ := n.Data()
	return s.File
}
