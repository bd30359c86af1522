package pretty_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdhtml/internal/ui/pretty"
	"github.com/yaklabco/mdhtml/pkg/mdast"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    pretty.Format
		wantErr bool
	}{
		{"", pretty.FormatTable, false},
		{"table", pretty.FormatTable, false},
		{"json", pretty.FormatJSON, false},
		{"sarif", "", true},
		{"JSON", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := pretty.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteTokensJSON(t *testing.T) {
	t.Parallel()

	tokens := []mdast.Token{
		mdast.Prefix("h1"),
		mdast.Literal("<b>Title</b>"),
		mdast.Suffix("empty_line"),
	}

	var buf bytes.Buffer
	require.NoError(t, pretty.WriteTokensJSON(&buf, "in.md", tokens))

	assert.Contains(t, buf.String(), `"value": "<b>Title</b>"`)
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])

	var decoded pretty.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, pretty.JSONOutput{
		Path: "in.md",
		Tokens: []pretty.JSONToken{
			{Kind: "prefix", Value: "h1"},
			{Kind: "literal", Value: "<b>Title</b>"},
			{Kind: "suffix", Value: "empty_line"},
		},
	}, decoded)
}

func TestWriteTokensJSON_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, pretty.WriteTokensJSON(&buf, "empty.md", nil))
	assert.Contains(t, buf.String(), `"tokens": []`)
}
