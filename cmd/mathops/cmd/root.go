package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/mathops/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	configPath string
	jsonOutput bool
	verbose    bool

	cfg    config.Config
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mathops",
	Short: "Integer arithmetic from the command line",
	Long: `mathops performs integer arithmetic.

Sums use the platform's native signed integer width and wrap around
on overflow.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              usageArgs(cobra.NoArgs),
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $MATHOPS_CONFIG or user config dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
}

// usageError marks failures caused by bad invocation rather than runtime faults.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// usageArgs marks positional argument failures from fn as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func loadSettings(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	loaded, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if jsonOutput {
		loaded.Output = config.OutputJSON
	}
	cfg = loaded

	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", path, "output", cfg.Output)
	return nil
}

// Execute runs the root command and maps its error to an exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return exitSuccess
	}

	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitFailure
}
