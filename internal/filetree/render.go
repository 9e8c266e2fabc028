package filetree

import (
	"fmt"
	"io"
	"strings"
)

const (
	teeGlyph    = "├─ "
	cornerGlyph = "└─ "
	barIndent   = "│   "
	blankIndent = "     "
)

// Label is what a render callback returns for a node. A non-empty Text is
// used as the whole line, tree prefix included (see Node.TreePrefix).
// Otherwise the line is the tree prefix followed by Prefix, the node name and
// Suffix, joined with single spaces and skipping empty parts.
type Label struct {
	Text   string
	Prefix string
	Suffix string
}

// PrintOptions controls how a tree is rendered.
type PrintOptions[T any] struct {
	// SkipRoot omits the root line and un-indents everything else by one level.
	SkipRoot bool
	// Render customizes the label of each node. When nil the node name is used.
	Render func(n *Node[T]) Label
}

// Sink receives rendered lines one at a time.
type Sink func(line string)

// LineWriter writes sunk lines, newline-terminated, to an io.Writer. It keeps
// the first write error and drops every line after it.
type LineWriter struct {
	w   io.Writer
	err error
}

// NewLineWriter returns a LineWriter over w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// Sink is a filetree Sink writing to the underlying writer.
func (lw *LineWriter) Sink(line string) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintln(lw.w, line)
}

// Err returns the first write error, if any.
func (lw *LineWriter) Err() error {
	return lw.err
}

// WriterSink returns a Sink that writes each line, newline-terminated, to w.
// Write errors are dropped; use a LineWriter to observe them.
func WriterSink(w io.Writer) Sink {
	return NewLineWriter(w).Sink
}

// TreePrefix returns the branch glyphs printed before the node's label.
func (n *Node[T]) TreePrefix(skipRoot bool) string {
	lasts := n.lasts()
	if skipRoot && len(lasts) > 0 {
		lasts = lasts[1:]
	}
	return treePrefix(lasts)
}

// Print sends one rendered line per node, in pre-order, to sink.
func (t *Tree[T]) Print(sink Sink, opts PrintOptions[T]) {
	t.Walk(func(n *Node[T]) WalkControl {
		if opts.SkipRoot && n.IsRoot() {
			return Continue
		}
		sink(renderLine(n, opts))
		return Continue
	})
}

// Lines returns the rendered lines of the tree.
func (t *Tree[T]) Lines(opts PrintOptions[T]) []string {
	var lines []string
	t.Print(func(line string) {
		lines = append(lines, line)
	}, opts)
	return lines
}

// Format renders the tree into a newline-separated string.
func (t *Tree[T]) Format(opts PrintOptions[T]) string {
	return strings.Join(t.Lines(opts), "\n")
}

// String renders the whole tree, root included, with node names as labels.
func (t *Tree[T]) String() string {
	return t.Format(PrintOptions[T]{})
}

func renderLine[T any](n *Node[T], opts PrintOptions[T]) string {
	prefix := n.TreePrefix(opts.SkipRoot)
	if opts.Render == nil {
		return prefix + n.name
	}

	label := opts.Render(n)
	if label.Text != "" {
		return label.Text
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{label.Prefix, n.name, label.Suffix} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return prefix + strings.Join(parts, " ")
}

// treePrefix builds the glyphs for a node from the last-sibling flags of its
// rendered ancestors, outermost first, ending with the node's own flag.
func treePrefix(lasts []bool) string {
	if len(lasts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, last := range lasts[:len(lasts)-1] {
		if last {
			b.WriteString(blankIndent)
		} else {
			b.WriteString(barIndent)
		}
	}
	if lasts[len(lasts)-1] {
		b.WriteString(cornerGlyph)
	} else {
		b.WriteString(teeGlyph)
	}
	return b.String()
}
