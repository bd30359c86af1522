package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// Table formatting constants.
const (
	tablePadding     = 2
	kindColumnWidth  = 7 // width of "literal"
	minValueWidth    = 10
	heavySeparator   = "="
	truncationTail   = "..."
	defaultTermWidth = 100
)

// TokenTable formats a token stream as a two-column KIND / VALUE table.
type TokenTable struct {
	styles    *Styles
	termWidth int
}

// NewTokenTable creates a token table formatter.
// A termWidth of zero or less disables truncation.
func NewTokenTable(styles *Styles, termWidth int) *TokenTable {
	return &TokenTable{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Format renders one row per token. Suffix tokens show their marker as value.
// Empty input renders as an empty string.
func (t *TokenTable) Format(tokens []mdast.Token) string {
	if len(tokens) == 0 {
		return ""
	}

	valueWidth := t.valueWidth(tokens)

	var builder strings.Builder

	header := padRight("KIND", kindColumnWidth) + strings.Repeat(" ", tablePadding) + "VALUE"
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(
		strings.Repeat(heavySeparator, kindColumnWidth+tablePadding+valueWidth)))
	builder.WriteString("\n")

	for _, tok := range tokens {
		kind := tok.Kind.String()
		builder.WriteString(t.styles.Kind(tok.Kind).Render(padRight(kind, kindColumnWidth)))
		builder.WriteString(strings.Repeat(" ", tablePadding))
		builder.WriteString(truncate(tok.Text, valueWidth))
		builder.WriteString("\n")
	}

	return builder.String()
}

// valueWidth is the widest value, capped so a row fits the terminal.
func (t *TokenTable) valueWidth(tokens []mdast.Token) int {
	widest := len("VALUE")
	for _, tok := range tokens {
		widest = max(widest, lipgloss.Width(tok.Text))
	}

	if t.termWidth <= 0 {
		return widest
	}

	available := max(t.termWidth-kindColumnWidth-tablePadding, minValueWidth)
	return min(widest, available)
}

// TerminalWidthOrDefault returns width if positive, else a sensible default.
func TerminalWidthOrDefault(width int) int {
	if width <= 0 {
		return defaultTermWidth
	}
	return width
}

// truncate shortens str to maxWidth display cells, adding "..." if shortened.
func truncate(str string, maxWidth int) string {
	if lipgloss.Width(str) <= maxWidth {
		return str
	}
	return ansi.Truncate(str, maxWidth, truncationTail)
}

func padRight(str string, width int) string {
	if gap := width - lipgloss.Width(str); gap > 0 {
		return str + strings.Repeat(" ", gap)
	}
	return str
}
