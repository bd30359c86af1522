// Package convert runs the full markdown to HTML pipeline: classify, build, render.
package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdhtml/internal/logging"
	"github.com/yaklabco/mdhtml/pkg/builder"
	"github.com/yaklabco/mdhtml/pkg/fsutil"
	"github.com/yaklabco/mdhtml/pkg/lexer"
	"github.com/yaklabco/mdhtml/pkg/mdast"
	"github.com/yaklabco/mdhtml/pkg/render"
)

// OutputExt replaces the input's first extension segment when no output path is given.
const OutputExt = ".html"

// Sentinel errors for the file pipeline. Each wraps the underlying cause.
var (
	ErrReadInput   = errors.New("cannot read input")
	ErrWriteOutput = errors.New("cannot write output")
)

// Options controls rendering of converted documents.
type Options struct {
	Render render.Options
}

// DefaultOptions returns options producing the standard four-space layout.
func DefaultOptions() Options {
	return Options{Render: render.DefaultOptions()}
}

// Document is the in-memory result of converting one markdown source.
type Document struct {
	Tokens []mdast.Token
	Tree   *mdast.Tree
	HTML   []byte
}

// Bytes converts markdown content to HTML.
func Bytes(content []byte, opts Options) *Document {
	tokens := lexer.Classify(content)
	tree := builder.Build(tokens)

	return &Document{
		Tokens: tokens,
		Tree:   tree,
		HTML:   []byte(render.RenderWith(tree, opts.Render)),
	}
}

// String converts markdown text using the default options and returns the HTML.
func String(content string) string {
	return string(Bytes([]byte(content), DefaultOptions()).HTML)
}

// Result describes one converted file.
type Result struct {
	Input    string
	Output   string
	Tokens   int
	Nodes    int
	BytesIn  int
	BytesOut int

	// Changed is false when Output already held identical content.
	Changed bool
}

// File converts the markdown file at input and writes the HTML atomically to output.
// An empty output is derived with DeriveOutputPath.
func File(ctx context.Context, input, output string, opts Options) (*Result, error) {
	if output == "" {
		output = DeriveOutputPath(input)
	}

	logger := logging.FromContext(ctx).With(logging.FieldInput, input, logging.FieldOutput, output)

	content, _, err := fsutil.ReadFile(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadInput, input, err)
	}

	doc := Bytes(content, opts)

	changed, err := fsutil.WriteAtomicIfChanged(ctx, output, doc.HTML, 0)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWriteOutput, output, err)
	}

	result := &Result{
		Input:    input,
		Output:   output,
		Tokens:   len(doc.Tokens),
		Nodes:    doc.Tree.Len(),
		BytesIn:  len(content),
		BytesOut: len(doc.HTML),
		Changed:  changed,
	}

	logger.Debug("converted",
		logging.FieldTokens, result.Tokens,
		logging.FieldNodes, result.Nodes,
		logging.FieldBytesIn, result.BytesIn,
		logging.FieldBytesOut, result.BytesOut,
		logging.FieldChanged, result.Changed,
	)

	return result, nil
}

// Read classifies and builds the markdown file at input without writing anything.
func Read(ctx context.Context, input string, opts Options) (*Document, error) {
	content, _, err := fsutil.ReadFile(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadInput, input, err)
	}
	return Bytes(content, opts), nil
}

// DeriveOutputPath replaces the first extension segment of the base name with
// OutputExt, so "notes.md" becomes "notes.html" and "a.tar.gz" becomes "a.html".
// A name without an extension gains one. The directory part is kept, and a
// leading dot (as in ".notes") does not start an extension.
func DeriveOutputPath(input string) string {
	dir, base := filepath.Split(input)

	skip := 0
	if strings.HasPrefix(base, ".") {
		skip = 1
	}

	stem := base
	if idx := strings.IndexByte(base[skip:], '.'); idx >= 0 {
		stem = base[:skip+idx]
	}

	return dir + stem + OutputExt
}
