package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdhtml/internal/ui/pretty"
	"github.com/yaklabco/mdhtml/pkg/convert"
)

func newTokensCommand(globals *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens <input>",
		Short: "Print the classified token stream of a Markdown file",
		Long: `Print the token stream produced by the line classifier, one token per row.

Each row shows the token kind (prefix, suffix, or literal) and its value.
Long values are truncated to the terminal width when output is a terminal.

Examples:
  mdhtml tokens notes.md                Print a token table
  mdhtml tokens --format json notes.md  Print tokens as JSON`,
		Args: inputArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], format, globals)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")

	return cmd
}

func runTokens(cmd *cobra.Command, input, formatStr string, globals *globalFlags) error {
	format, err := pretty.ParseFormat(formatStr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	doc, err := convert.Read(cmd.Context(), input, convert.DefaultOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if format == pretty.FormatJSON {
		return pretty.WriteTokensJSON(out, input, doc.Tokens)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(globals.color, out))
	table := pretty.NewTokenTable(styles, terminalWidth(out))

	if _, err := io.WriteString(out, table.Format(doc.Tokens)); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}

	return nil
}

// terminalWidth returns the width of w if it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return pretty.TerminalWidthOrDefault(0)
	}
	return width
}
