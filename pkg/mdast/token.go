package mdast

// TokenKind classifies a token produced by the line classifier.
type TokenKind uint8

// Token kinds. The builder interprets a token by its kind first and its text second.
const (
	// TokPrefix is an opening marker consumed together with the Literal that follows it.
	TokPrefix TokenKind = iota

	// TokSuffix is a marker whose meaning depends on what precedes it in the stream.
	TokSuffix

	// TokLiteral is ordinary line text.
	TokLiteral
)

// Suffix and prefix marker values.
const (
	MarkEmptyLine = "empty_line"
	MarkTable     = "table"
)

// String returns the lowercase name of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokPrefix:
		return "prefix"
	case TokSuffix:
		return "suffix"
	case TokLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Token is one classified unit of a markdown line.
// A Suffix token never carries literal text; its Text is the marker name.
type Token struct {
	Kind TokenKind
	Text string
}

// Prefix returns a Prefix token for the given marker.
func Prefix(marker string) Token {
	return Token{Kind: TokPrefix, Text: marker}
}

// Suffix returns a Suffix token for the given marker.
func Suffix(marker string) Token {
	return Token{Kind: TokSuffix, Text: marker}
}

// Literal returns a Literal token carrying text.
func Literal(text string) Token {
	return Token{Kind: TokLiteral, Text: text}
}

// HeadingTag returns the heading tag for level, e.g. "h2", or "" if level is outside 1..6.
func HeadingTag(level int) string {
	if level < 1 || level > MaxHeadingLevel {
		return ""
	}
	return "h" + string(rune('0'+level))
}

// MaxHeadingLevel is the deepest heading level the dialect supports.
const MaxHeadingLevel = 6

// IsHeadingTag reports whether tag is one of "h1".."h6".
func IsHeadingTag(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '0'+MaxHeadingLevel
}
