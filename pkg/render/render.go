// Package render serializes a finished mdast tree as indented HTML.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// DefaultIndent is the per-level indentation used by Render.
const DefaultIndent = "    "

// Options controls serialization cosmetics.
type Options struct {
	// Indent is repeated once per nesting level.
	Indent string

	// FinalNewline appends a newline after the closing root tag.
	FinalNewline bool
}

// DefaultOptions returns the options Render uses.
func DefaultOptions() Options {
	return Options{Indent: DefaultIndent}
}

// IndentSpaces returns an indent of n spaces.
func IndentSpaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Render serializes tree with DefaultOptions.
func Render(tree *mdast.Tree) string {
	return RenderWith(tree, DefaultOptions())
}

// RenderWith serializes tree with the given options.
// Each container renders as an opening tag, one line per child indented one
// level deeper, and a closing tag. Text is written verbatim, without escaping.
func RenderWith(tree *mdast.Tree, opts Options) string {
	var buf strings.Builder
	//nolint:errcheck,revive // strings.Builder never returns write errors
	Write(&buf, tree, opts)
	return buf.String()
}

// Write serializes tree to w.
func Write(writer io.Writer, tree *mdast.Tree, opts Options) error {
	if tree == nil {
		return nil
	}

	lw := &lineWriter{writer: writer, indent: opts.Indent}

	err := mdast.WalkWithContext(tree.Root(),
		func(n mdast.Node) error {
			switch node := n.(type) {
			case *mdast.Container:
				lw.line("<" + node.Tag() + ">")
				lw.depth++
			case *mdast.Text:
				lw.line(textLine(node))
			}
			return lw.err
		},
		func(n mdast.Node) error {
			if _, ok := n.(*mdast.Container); ok {
				lw.depth--
				lw.line("</" + n.Tag() + ">")
			}
			return lw.err
		},
	)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if opts.FinalNewline {
		lw.raw("\n")
	}
	if lw.err != nil {
		return fmt.Errorf("render: %w", lw.err)
	}

	return nil
}

func textLine(leaf *mdast.Text) string {
	if leaf.Tag() == "" {
		return leaf.Literal()
	}
	return "<" + leaf.Tag() + ">" + leaf.Literal() + "</" + leaf.Tag() + ">"
}

// lineWriter writes newline-separated, indented lines and keeps the first error.
type lineWriter struct {
	writer  io.Writer
	indent  string
	depth   int
	started bool
	err     error
}

func (lw *lineWriter) line(text string) {
	if lw.started {
		lw.raw("\n")
	}
	lw.started = true
	lw.raw(strings.Repeat(lw.indent, lw.depth))
	lw.raw(text)
}

func (lw *lineWriter) raw(text string) {
	if lw.err != nil || text == "" {
		return
	}
	_, lw.err = io.WriteString(lw.writer, text)
}
