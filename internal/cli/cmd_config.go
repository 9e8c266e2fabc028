package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umwelt-studio/countstat/internal/config"
	"github.com/umwelt-studio/countstat/internal/counter"
	"github.com/umwelt-studio/countstat/internal/report"
)

// ConfigOption represents a configuration option
type ConfigOption struct {
	Key         string
	Flag        string // Flag that reads the stored value when not given explicitly
	Description string
	Default     string
	ValidValues []string // For enumerated values like true/false
	Validator   func(string) error
}

var boolValues = []string{"true", "false"}

// Registry of all available configuration options
var configOptions = []ConfigOption{
	{
		Key:         "report.words",
		Flag:        "words",
		Description: "Show word counts",
		Default:     "true",
		ValidValues: boolValues,
		Validator:   validateBoolOption,
	},
	{
		Key:         "report.chars",
		Flag:        "chars",
		Description: "Show character counts",
		Default:     "true",
		ValidValues: boolValues,
		Validator:   validateBoolOption,
	},
	{
		Key:         "report.show_file",
		Flag:        "show-file",
		Description: "List files in the report",
		Default:     "true",
		ValidValues: boolValues,
		Validator:   validateBoolOption,
	},
	{
		Key:         "report.show_dir",
		Flag:        "show-dir",
		Description: "Annotate directories with subtotals",
		Default:     "true",
		ValidValues: boolValues,
		Validator:   validateBoolOption,
	},
	{
		Key:         "report.show_total",
		Flag:        "show-total",
		Description: "Print the grand total",
		Default:     "true",
		ValidValues: boolValues,
		Validator:   validateBoolOption,
	},
	{
		Key:         "report.tree",
		Flag:        "tree",
		Description: "Render a folded tree instead of a flat list",
		Default:     "true",
		ValidValues: boolValues,
		Validator:   validateBoolOption,
	},
	{
		Key:         "report.format",
		Flag:        "format",
		Description: "Output format",
		Default:     report.FormatText,
		ValidValues: []string{report.FormatText, report.FormatJSON, report.FormatYAML},
		Validator:   validateEnumOption(report.FormatText, report.FormatJSON, report.FormatYAML),
	},
	{
		Key:         "count.encoding",
		Flag:        "encoding",
		Description: "Binary-to-text encoding of the inputs",
		Default:     "utf8",
		ValidValues: counter.Encodings(),
		Validator:   validateEncodingOption,
	},
	{
		Key:         "count.segmenter",
		Flag:        "segmenter",
		Description: "Japanese word segmenter (stored globally)",
		Default:     counter.SegmenterLexicon,
		ValidValues: []string{counter.SegmenterLexicon, counter.SegmenterKagome},
		Validator:   validateEnumOption(counter.SegmenterLexicon, counter.SegmenterKagome),
	},
}

// MARK: Sub-commands

// newConfigCmd creates the config command and its subcommands
func newConfigCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage project configuration",
	}

	// Add subcommands
	cmd.AddCommand(
		newConfigListCmd(opts),
		newConfigGetCmd(opts),
		newConfigSetCmd(opts),
		newConfigUnsetCmd(opts),
	)

	return cmd
}

func newConfigListCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigList(cmd.OutOrStdout(), opts.Directory)
		},
	}

	return cmd
}

func runConfigList(w io.Writer, dir string) error {
	cfg, err := config.New(dir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	fmt.Fprintln(w, "Available configuration options:")
	fmt.Fprintln(w)

	for _, option := range configOptions {
		fmt.Fprintf(w, "  %s\n", option.Key)
		fmt.Fprintf(w, "    Description: %s\n", option.Description)
		fmt.Fprintf(w, "    Default: %s\n", option.Default)

		if cfg.Has(option.Key) {
			value := cfg.Get(option.Key)
			fmt.Fprintf(w, "    Current: %s\n", value)
		} else {
			fmt.Fprintf(w, "    Current: %s (default)\n", option.Default)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func newConfigSetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.OutOrStdout(), opts.Directory, args[0], args[1])
		},
		ValidArgsFunction: func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			// For values, provide common completions based on the key
			if len(args) == 1 {
				option := findConfigOption(args[0])
				if option != nil && len(option.ValidValues) > 0 {
					return option.ValidValues, cobra.ShellCompDirectiveNoFileComp
				}
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConfigSet(w io.Writer, dir, key, value string) error {
	// Find the configuration option
	option := findConfigOption(key)
	if option == nil {
		return fmt.Errorf("unknown configuration option: %s\n\nRun 'countstat config list' to see available options", key)
	}

	// Validate the value
	if option.Validator != nil {
		if err := option.Validator(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	cfg, err := config.New(dir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("unable to set config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %s\n", key, value)
	return nil
}

func newConfigGetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.OutOrStdout(), opts.Directory, args[0])
		},
		ValidArgsFunction: func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConfigGet(w io.Writer, dir, key string) error {
	// Validate that the key is a known option
	option := findConfigOption(key)
	if option == nil {
		return fmt.Errorf("unknown configuration option: %s\n\nRun 'countstat config list' to see available options", key)
	}

	cfg, err := config.New(dir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	if !cfg.Has(key) {
		fmt.Fprintf(w, "%s = %s (default)\n", key, option.Default)
		return nil
	}

	value := cfg.Get(key)
	fmt.Fprintf(w, "%s = %s\n", key, value)
	return nil
}

func newConfigUnsetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigUnset(cmd.OutOrStdout(), opts.Directory, args[0])
		},
		ValidArgsFunction: func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConfigUnset(w io.Writer, dir, key string) error {
	cfg, err := config.New(dir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Delete(key); err != nil {
		return fmt.Errorf("unable to unset config: %w", err)
	}

	fmt.Fprintf(w, "Unset %s\n", key)
	return nil
}

// MARK: Helpers

// findConfigOption finds a config option by key
func findConfigOption(key string) *ConfigOption {
	for i := range configOptions {
		if configOptions[i].Key == key {
			return &configOptions[i]
		}
	}
	return nil
}

func configOptionsKeys() []string {
	var keys []string
	for _, option := range configOptions {
		keys = append(keys, option.Key)
	}
	return keys
}

// MARK: Validators

// validateBoolOption validates that a value is either "true" or "false"
func validateBoolOption(value string) error {
	if value != "true" && value != "false" {
		return fmt.Errorf("value must be either 'true' or 'false', got: %s", value)
	}
	return nil
}

func validateEnumOption(values ...string) func(string) error {
	return func(value string) error {
		for _, v := range values {
			if value == v {
				return nil
			}
		}
		return fmt.Errorf("value must be one of %s, got: %s", strings.Join(values, ", "), value)
	}
}

func validateEncodingOption(value string) error {
	if _, err := counter.Decode(nil, value); err != nil {
		return fmt.Errorf("value must be one of %s, got: %s", strings.Join(counter.Encodings(), ", "), value)
	}
	return nil
}
