package pretty

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

// JSONOutput is the top-level JSON structure of a token listing.
type JSONOutput struct {
	Path   string      `json:"path"`
	Tokens []JSONToken `json:"tokens"`
}

// JSONToken is a single classified token.
type JSONToken struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// WriteTokensJSON writes tokens as an indented JSON document followed by a newline.
// HTML characters in values are written unescaped.
func WriteTokensJSON(w io.Writer, path string, tokens []mdast.Token) error {
	output := JSONOutput{
		Path:   path,
		Tokens: make([]JSONToken, 0, len(tokens)),
	}
	for _, tok := range tokens {
		output.Tokens = append(output.Tokens, JSONToken{
			Kind:  tok.Kind.String(),
			Value: tok.Text,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}
