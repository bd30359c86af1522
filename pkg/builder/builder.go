// Package builder assembles an mdast.Tree from a classified token stream.
//
// The builder makes a single forward pass. It keeps a three-state machine and
// drives the tree through its cursor-relative operations; it never looks back
// at earlier tokens and never buffers the stream.
package builder

import (
	"strings"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// State is the builder's position in the transition table.
type State uint8

const (
	// StateStart is the initial state and the state after every Suffix.
	StateStart State = iota

	// StateAfterPrefix holds a pending heading tag waiting for its Literal.
	StateAfterPrefix

	// StateAfterLiteral follows any Literal.
	StateAfterLiteral
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateAfterPrefix:
		return "AfterPrefix"
	case StateAfterLiteral:
		return "AfterLiteral"
	default:
		return "Unknown"
	}
}

// Element tags emitted by the builder.
const (
	TagParagraph  = "p"
	TagTable      = "table"
	TagRow        = "tr"
	TagHeaderCell = "th"
	TagDataCell   = "td"
)

const cellSeparator = "|"

// Builder consumes tokens one at a time and mutates its tree.
// The zero value is not usable; create one with New.
type Builder struct {
	tree    *mdast.Tree
	state   State
	pending string
}

// New creates a builder over an empty tree.
func New() *Builder {
	return &Builder{
		tree:  mdast.NewTree(),
		state: StateStart,
	}
}

// Build feeds every token to a new builder and returns the resulting tree.
func Build(tokens []mdast.Token) *mdast.Tree {
	b := New()
	for _, tok := range tokens {
		b.Feed(tok)
	}
	return b.Tree()
}

// Tree returns the tree as built so far.
func (b *Builder) Tree() *mdast.Tree {
	return b.tree
}

// State returns the current state.
func (b *Builder) State() State {
	return b.state
}

// Feed applies one token. Malformed sequences degrade to best-effort output.
func (b *Builder) Feed(tok mdast.Token) {
	switch tok.Kind {
	case mdast.TokPrefix:
		// An unconsumed earlier prefix is simply overwritten.
		b.pending = tok.Text
		b.state = StateAfterPrefix
	case mdast.TokLiteral:
		b.literal(tok.Text)
		b.state = StateAfterLiteral
	case mdast.TokSuffix:
		b.suffix(tok.Text)
		b.state = StateStart
	}
}

func (b *Builder) literal(text string) {
	switch {
	case b.state == StateAfterPrefix:
		b.tree.AppendText(b.pending, text)
		b.pending = ""
	case b.tree.CurrentTag() == TagTable:
		b.tree.AppendContainer(TagRow)
		for _, cell := range SplitCells(text) {
			b.tree.AppendText(TagDataCell, cell)
		}
		b.tree.Ascend()
	default:
		b.tree.AppendText(TagParagraph, text)
	}
}

func (b *Builder) suffix(marker string) {
	switch {
	case marker == mdast.MarkEmptyLine:
		if b.tree.CurrentTag() == TagTable {
			b.tree.Ascend()
		}
	case marker == mdast.MarkTable:
		headers, ok := b.tree.TakeLastChildText()
		b.tree.AppendContainer(TagTable)
		b.tree.AppendContainer(TagRow)
		if ok {
			for _, cell := range SplitCells(headers) {
				b.tree.AppendText(TagHeaderCell, cell)
			}
		}
		b.tree.Ascend()
	case mdast.IsHeadingTag(marker):
		// A setext underline with no paragraph above it emits nothing.
		if leaf, ok := b.tree.LastChild().(*mdast.Text); ok && leaf.Tag() == TagParagraph {
			b.tree.RetagLastChild(marker)
		}
	}
}

// SplitCells splits a table row on '|'. Fields that are exactly empty,
// produced by a leading, trailing, or doubled separator, are dropped.
// Whitespace inside a field is preserved.
func SplitCells(row string) []string {
	fields := strings.Split(row, cellSeparator)
	cells := fields[:0]
	for _, field := range fields {
		if field != "" {
			cells = append(cells, field)
		}
	}
	return cells
}
