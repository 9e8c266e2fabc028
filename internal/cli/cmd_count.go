package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/umwelt-studio/countstat/internal/counter"
	"github.com/umwelt-studio/countstat/internal/report"
	"github.com/umwelt-studio/countstat/internal/util"
)

// newCountCmd creates the count command
func newCountCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count words and characters in a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, opts, args)
		},
	}

	addCountFlags(cmd.Flags(), opts)
	return cmd
}

func runCount(cmd *cobra.Command, opts *Options, args []string) error {
	c, err := opts.newCounter()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	label := ""
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("unable to open file: %w", err)
		}
		defer f.Close()
		in = f
		label = args[0]
	}

	stream := c.NewStream(opts.Encoding)
	if _, err := io.Copy(stream, in); err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("unable to count input: %w", err)
	}

	return writeCounts(cmd.OutOrStdout(), label, stream.Counts(), opts.Report)
}

func writeCounts(w io.Writer, label string, counts counter.Counts, opts report.Options) error {
	var out string

	switch strings.ToLower(opts.Format) {
	case "", report.FormatText:
		out = util.FormatCounts(counts, opts.Words, opts.Chars)
		if label != "" {
			out = util.Annotate(label, out)
		}
	case report.FormatJSON:
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(counts)
		if err != nil {
			return fmt.Errorf("failed to marshal counts: %w", err)
		}
		out = string(b)
	case report.FormatYAML:
		b, err := yaml.Marshal(counts)
		if err != nil {
			return fmt.Errorf("failed to marshal counts: %w", err)
		}
		out = strings.TrimSuffix(string(b), "\n")
	default:
		return fmt.Errorf("unknown format: %s", opts.Format)
	}

	_, err := fmt.Fprintln(w, out)
	return err
}
