package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdhtml/internal/configloader"
	"github.com/yaklabco/mdhtml/internal/logging"
	"github.com/yaklabco/mdhtml/internal/ui/pretty"
	"github.com/yaklabco/mdhtml/pkg/config"
	"github.com/yaklabco/mdhtml/pkg/convert"
)

type convertFlags struct {
	indent       int
	finalNewline bool
	stdout       bool
	quiet        bool
}

func newConvertCommand(globals *globalFlags) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "mdhtml <input> [output]",
		Short: "Convert a restricted Markdown dialect to indented HTML",
		Long:  convertLongDescription,
		Args:  inputArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, globals, flags)
		},
	}

	cmd.Flags().IntVar(&flags.indent, "indent", config.DefaultIndent, "spaces per nesting level")
	cmd.Flags().BoolVar(&flags.finalNewline, "final-newline", false, "append a newline after </html>")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "write HTML to standard output instead of a file")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "do not print a summary line")

	return cmd
}

const convertLongDescription = `mdhtml converts a small Markdown dialect into an indented HTML document.

Supported constructs are paragraphs, ATX headings (# to ######), setext
headings (=== and --- underlines) and pipe tables. Each line of input maps
to at most one element; the output is wrapped in <html> and indented four
spaces per level by default.

When no output path is given, the input's first extension is replaced with
.html (notes.md becomes notes.html).

Examples:
  mdhtml notes.md                 # Write notes.html
  mdhtml notes.md out/index.html  # Write to an explicit path
  mdhtml notes.md --stdout        # Print HTML instead of writing a file
  mdhtml notes.md --indent 2      # Two-space indentation`

func runConvert(cmd *cobra.Command, args []string, globals *globalFlags, flags *convertFlags) error {
	input := args[0]
	output := ""
	if len(args) > 1 {
		output = args[1]
	}

	if flags.stdout && output != "" {
		return ErrOutputConflict
	}

	cfg, err := loadConfig(cmd, globals, cliConfig(cmd, flags))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opts := convert.Options{Render: cfg.RenderOptions()}

	if cfg.Stdout {
		doc, err := convert.Read(ctx, input, opts)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(doc.HTML); err != nil {
			return fmt.Errorf("%w stdout: %w", convert.ErrWriteOutput, err)
		}
		logging.FromContext(logging.WithFields(ctx, logging.FieldInput, input)).Debug("converted to stdout",
			logging.FieldTokens, len(doc.Tokens),
			logging.FieldBytesOut, len(doc.HTML),
		)
		return nil
	}

	result, err := convert.File(ctx, input, output, opts)
	if err != nil {
		return err
	}

	if !flags.quiet {
		styles := pretty.NewStyles(pretty.IsColorEnabled(globals.color, cmd.OutOrStdout()))
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatResult(result))
	}

	return nil
}

// cliConfig collects only the flags that were explicitly provided.
func cliConfig(cmd *cobra.Command, flags *convertFlags) *config.Config {
	cfg := &config.Config{Stdout: flags.stdout}

	if cmd.Flags().Changed("indent") {
		cfg.Indent = config.IntPtr(flags.indent)
	}
	if cmd.Flags().Changed("final-newline") {
		cfg.FinalNewline = config.BoolPtr(flags.finalNewline)
	}

	return cfg
}

// loadConfig resolves the effective configuration and applies its log level
// unless --debug already raised it.
func loadConfig(cmd *cobra.Command, globals *globalFlags, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        globals.configPath,
		IgnoreProjectConfig: globals.noConfig,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	cfg := loadResult.Config
	if !globals.debug && cfg.LogLevel != "" {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldIndent, cfg.IndentWidth(),
		logging.FieldFinalNewline, cfg.WantFinalNewline(),
		logging.FieldLogLevel, cfg.LogLevel,
	)

	return cfg, nil
}
