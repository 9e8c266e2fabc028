package cli

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/umwelt-studio/countstat/internal/filetree"
	"github.com/umwelt-studio/countstat/internal/report"
)

type treeOptions struct {
	fold     bool
	foldRoot bool
	sort     bool
	skipRoot bool
	format   string
}

// newTreeCmd creates the tree command
func newTreeCmd() *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render paths read from stdin as a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTree(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.fold, "fold", false, "Collapse every single-child chain")
	cmd.Flags().BoolVar(&opts.foldRoot, "fold-root", false, "Collapse the single-child chain below the root")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "Sort children by name")
	cmd.Flags().BoolVar(&opts.skipRoot, "skip-root", false, "Omit the root line")
	cmd.Flags().StringVar(&opts.format, "format", report.FormatText, "Output format: text, json, yaml")

	return cmd
}

func runTree(cmd *cobra.Command, opts *treeOptions) error {
	paths, err := readLines(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("unable to read paths: %w", err)
	}

	tree := filetree.New[struct{}](paths...)
	if opts.sort {
		tree.Sort()
	}
	if opts.foldRoot {
		tree.FoldRoot()
	}
	if opts.fold {
		tree.Fold()
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(opts.format) {
	case "", report.FormatText:
		lw := filetree.NewLineWriter(out)
		tree.Print(lw.Sink, filetree.PrintOptions[struct{}]{SkipRoot: opts.skipRoot})
		if err := lw.Err(); err != nil {
			return fmt.Errorf("unable to write tree: %w", err)
		}
		return nil
	case report.FormatJSON:
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(tree.ToObject(filetree.ObjectOptions{}), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tree: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case report.FormatYAML:
		b, err := yaml.Marshal(tree.ToObject(filetree.ObjectOptions{}))
		if err != nil {
			return fmt.Errorf("failed to marshal tree: %w", err)
		}
		_, err = fmt.Fprint(out, string(b))
		return err
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}
