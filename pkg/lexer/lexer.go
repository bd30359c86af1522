// Package lexer classifies markdown lines into the mdast token vocabulary.
//
// Classification is per line and never fails: a line that matches no marker
// rule becomes a single Literal token.
package lexer

import (
	"strings"
	"unicode"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// Classify splits content into lines and classifies each one.
// Both LF and CRLF line endings are accepted. Tokens are returned in line order.
func Classify(content []byte) []mdast.Token {
	if len(content) == 0 {
		return nil
	}

	lines := mdast.SplitLines(content)
	tokens := make([]mdast.Token, 0, len(lines))
	for _, line := range lines {
		tokens = append(tokens, ClassifyLine(line)...)
	}

	return tokens
}

// ClassifyString is Classify for in-memory text.
func ClassifyString(text string) []mdast.Token {
	return Classify([]byte(text))
}

// ClassifyLine classifies a single line without its newline.
// The rules are applied in priority order and are mutually exclusive.
func ClassifyLine(line string) []mdast.Token {
	switch {
	case line == "":
		return []mdast.Token{mdast.Suffix(mdast.MarkEmptyLine)}
	case consistsOf(line, "="):
		return []mdast.Token{mdast.Suffix(mdast.HeadingTag(1))}
	case consistsOf(line, "-"):
		return []mdast.Token{mdast.Suffix(mdast.HeadingTag(2))}
	case consistsOf(line, "-|") && strings.Contains(line, "|"):
		return []mdast.Token{mdast.Suffix(mdast.MarkTable)}
	}

	if tag, text, ok := atxHeading(line); ok {
		return []mdast.Token{mdast.Prefix(tag), mdast.Literal(text)}
	}

	return []mdast.Token{mdast.Literal(line)}
}

// atxHeading recognizes "#.. text" lines. The marker must be the first word,
// between one and six '#' long, and followed by at least one more word.
func atxHeading(line string) (tag, text string, ok bool) {
	words := strings.Fields(line)
	if len(words) < 2 {
		return "", "", false
	}

	marker := words[0]
	if !consistsOf(marker, "#") || len(marker) > mdast.MaxHeadingLevel {
		return "", "", false
	}

	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	rest = strings.TrimLeftFunc(rest[len(marker):], unicode.IsSpace)

	return mdast.HeadingTag(len(marker)), rest, true
}

// consistsOf reports whether s is non-empty and every byte of s is in set.
func consistsOf(s, set string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(set, s[i]) < 0 {
			return false
		}
	}
	return true
}
