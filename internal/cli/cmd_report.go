package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/umwelt-studio/countstat/internal/filetree"
	"github.com/umwelt-studio/countstat/internal/processor"
	"github.com/umwelt-studio/countstat/internal/report"
)

// newReportCmd creates the report command
func newReportCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Report word and character counts per file and directory",
		Long: `Report word and character counts per file and directory.

Files are given as arguments or, when there are none, one per line on stdin:

  git ls-files | countstat report --tree=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}

	addReportFlags(cmd.Flags(), opts)
	return cmd
}

func runReport(cmd *cobra.Command, opts *Options, args []string) error {
	paths := args
	if len(paths) == 0 {
		var err error
		if paths, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("unable to read file list: %w", err)
		}
	}

	c, err := opts.newCounter()
	if err != nil {
		return err
	}

	p, err := processor.New(opts.Directory, opts.IgnoreFile, c, opts.Encoding)
	if err != nil {
		return fmt.Errorf("unable to create processor: %w", err)
	}

	files, err := p.Process(paths)
	if err != nil {
		return fmt.Errorf("unable to process files: %w", err)
	}
	log.Debugf("counted %d of %d files", len(files), len(paths))

	out := filetree.NewLineWriter(cmd.OutOrStdout())
	if err := report.Write(out.Sink, files, opts.Report); err != nil {
		return err
	}
	if err := out.Err(); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
