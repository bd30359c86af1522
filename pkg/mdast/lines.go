package mdast

// LineInfo holds the byte span of a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
// A trailing newline terminates the last line; it does not open an empty one.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line without trailing newline.
	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// Text returns the content of the line, excluding the newline.
func (l LineInfo) Text(content []byte) string {
	if l.StartOffset < 0 || l.NewlineStart > len(content) || l.StartOffset > l.NewlineStart {
		return ""
	}
	return string(content[l.StartOffset:l.NewlineStart])
}

// SplitLines returns the text of every line in content, without newlines.
func SplitLines(content []byte) []string {
	infos := BuildLines(content)
	lines := make([]string, len(infos))
	for i, info := range infos {
		lines[i] = info.Text(content)
	}
	return lines
}
