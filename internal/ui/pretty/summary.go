package pretty

import (
	"fmt"

	"github.com/yaklabco/mdhtml/pkg/convert"
)

// FormatResult formats one conversion as a single line.
// Example: "notes.md -> notes.html (7 tokens, 9 nodes, 312 bytes)".
func (s *Styles) FormatResult(result *convert.Result) string {
	if result == nil {
		return ""
	}

	line := s.FilePath.Render(result.Input) +
		s.Arrow.Render(" -> ") +
		s.FilePath.Render(result.Output) +
		s.Dim.Render(fmt.Sprintf(" (%d %s, %d %s, %d %s)",
			result.Tokens, plural(result.Tokens, "token"),
			result.Nodes, plural(result.Nodes, "node"),
			result.BytesOut, plural(result.BytesOut, "byte")))

	if !result.Changed {
		line += " " + s.Dim.Render("unchanged")
	}

	return line + "\n"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
