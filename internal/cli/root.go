// Package cli provides the Cobra command structure for mdhtml.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdhtml/internal/logging"
	"github.com/yaklabco/mdhtml/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Usage errors. Each wraps ErrInvalidUsage.
var (
	ErrInvalidUsage   = errors.New("invalid usage")
	ErrMissingInput   = fmt.Errorf("%w: no markdown file specified", ErrInvalidUsage)
	ErrTooManyArgs    = fmt.Errorf("%w: too many arguments", ErrInvalidUsage)
	ErrInvalidColor   = fmt.Errorf("%w: --color must be auto, always, or never", ErrInvalidUsage)
	ErrOutputConflict = fmt.Errorf("%w: --stdout cannot be combined with an output path", ErrInvalidUsage)
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	noConfig   bool
	color      string
}

// NewRootCommand creates the root mdhtml command with all subcommands.
// The root command itself converts a file.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := newConvertCommand(globals)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if !pretty.ValidColorMode(globals.color) {
			return fmt.Errorf("%w, got %q", ErrInvalidColor, globals.color)
		}

		level := logging.LevelInfo
		if globals.debug {
			level = logging.LevelDebug
		}
		logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

		return nil
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&globals.noConfig, "no-config", false,
		"do not search for a project config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", pretty.ColorAuto,
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newTokensCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(globals.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// inputArgs accepts between one and maxArgs positional arguments.
func inputArgs(maxArgs int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch {
		case len(args) == 0:
			return ErrMissingInput
		case len(args) > maxArgs:
			return fmt.Errorf("%w: expected at most %d, got %d", ErrTooManyArgs, maxArgs, len(args))
		default:
			return nil
		}
	}
}
