// Package cli provides the command-line interface for countstat.
package cli

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/umwelt-studio/countstat/internal/config"
)

var (
	// Default version for development/non-release builds
	// GoReleaser overrides this for release builds with the git tag.
	// See .goreleaser.yml
	version = "dev"
)

const envPrefix = "COUNTSTAT"

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	opts := &Options{}
	reportCmd := newReportCmd(opts)

	rootCmd := &cobra.Command{
		Use:          "countstat [files...]",
		Short:        "Word and character counts over a tree of files",
		Version:      version,
		SilenceUsage: true,
		// NB: ArbitraryArgs is required to avoid interpreting the first argument
		// as a subcommand. This is necessary for the use case `countstat [files...]`,
		// where a file would otherwise be interpreted as a subcommand and fail.
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cmd, opts); err != nil {
				return err
			}
			initLogger(cmd.ErrOrStderr(), opts.LogLevel)
			return nil
		},
		// When no subcommand is supplied, execute the report command
		RunE: reportCmd.RunE,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "error", "Log level: trace, debug, info, warning, error")
	rootCmd.PersistentFlags().StringVarP(&opts.Directory, "dir", "C", ".", "Project directory")
	addReportFlags(rootCmd.Flags(), opts)

	// Add commands
	rootCmd.AddCommand(
		reportCmd,
		newCountCmd(opts),
		newTreeCmd(),
		newConfigCmd(opts),
	)

	return rootCmd
}

// initConfig layers stored config values and COUNTSTAT_* environment
// variables under the flags the user did not set.
func initConfig(cmd *cobra.Command, opts *Options) error {
	opts.SetDefaults()

	cfg, err := config.New(opts.Directory)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	stored := make(map[string]any)
	for _, option := range configOptions {
		if cfg.Has(option.Key) {
			stored[option.Flag] = cfg.Get(option.Key)
		}
	}

	v := viper.New()
	if err := v.MergeConfigMap(stored); err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	// Read environment variables that match prefix
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return bindFlags(cmd, v)
}

func initLogger(w io.Writer, level string) {
	ll, err := log.ParseLevel(level)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetOutput(w)
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true})
}

// bindFlags applies the viper value to every flag that is not set on the
// command line and has a value in viper.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("invalid value for %s: %w", f.Name, err)
		}
	})
	return firstErr
}
