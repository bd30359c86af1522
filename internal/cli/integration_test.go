package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdhtml/internal/cli"
	"github.com/yaklabco/mdhtml/internal/ui/pretty"
	"github.com/yaklabco/mdhtml/pkg/convert"
)

const sampleMarkdown = "# Title\n\nName|Role\n---|---\nAda|Engineer\n"

const sampleHTML = `<html>
    <h1>Title</h1>
    <table>
        <tr>
            <th>Name</th>
            <th>Role</th>
        </tr>
        <tr>
            <td>Ada</td>
            <td>Engineer</td>
        </tr>
    </table>
</html>`

// execute runs mdhtml with args, never consulting a project config file.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-config"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIntegration_ConvertDerivesOutput(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "notes.md", sampleMarkdown)

	stdout, _, err := execute(t, input)
	require.NoError(t, err)

	output := filepath.Join(filepath.Dir(input), "notes.html")
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, sampleHTML, string(got))

	assert.Contains(t, stdout, input+" -> "+output)
}

func TestIntegration_ConvertExplicitOutput(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", "text1\n")
	output := filepath.Join(t.TempDir(), "page.html")

	stdout, _, err := execute(t, "--quiet", input, output)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "<html>\n    <p>text1</p>\n</html>", string(got))
}

func TestIntegration_Stdout(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", sampleMarkdown)

	stdout, _, err := execute(t, "--stdout", input)
	require.NoError(t, err)
	assert.Equal(t, sampleHTML, stdout)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(input), "in.html"))
	assert.True(t, os.IsNotExist(statErr), "--stdout must not write a file")
}

func TestIntegration_RenderFlags(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", "a|b\n-|-\n")

	stdout, _, err := execute(t, "--stdout", "--indent", "2", "--final-newline", input)
	require.NoError(t, err)
	assert.Equal(t, "<html>\n  <table>\n    <tr>\n      <th>a</th>\n      <th>b</th>\n    </tr>\n  </table>\n</html>\n", stdout)
}

func TestIntegration_ConfigFile(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", "# T\n")
	cfgFile := writeInput(t, "mdhtml.yml", "indent: 0\nfinal_newline: true\n")

	stdout, _, err := execute(t, "--config", cfgFile, "--stdout", input)
	require.NoError(t, err)
	assert.Equal(t, "<html>\n<h1>T</h1>\n</html>\n", stdout)

	// CLI flags win over the config file.
	stdout, _, err = execute(t, "--config", cfgFile, "--indent", "1", "--stdout", input)
	require.NoError(t, err)
	assert.Equal(t, "<html>\n <h1>T</h1>\n</html>\n", stdout)
}

func TestIntegration_DebugLogging(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", "text\n")

	_, stderr, err := execute(t, "--debug", "--quiet", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "converted")
	assert.Contains(t, stderr, "tokens=1")

	_, stderr, err = execute(t, "--quiet", input)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "converted")
}

func TestIntegration_Errors(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", "text\n")
	badConfig := writeInput(t, "bad.yml", "indent: 99\n")
	brokenConfig := writeInput(t, "broken.yml", "indent: [\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  error
	}{
		{"missing input", nil, cli.ExitInvalidUsage, cli.ErrMissingInput},
		{"too many args", []string{"a", "b", "c"}, cli.ExitInvalidUsage, cli.ErrTooManyArgs},
		{"unknown flag", []string{"--bogus", input}, cli.ExitInvalidUsage, cli.ErrInvalidUsage},
		{"bad color", []string{"--color", "rainbow", input}, cli.ExitInvalidUsage, cli.ErrInvalidColor},
		{"stdout with output", []string{"--stdout", input, "out.html"}, cli.ExitInvalidUsage, cli.ErrOutputConflict},
		{"unreadable input", []string{filepath.Join(t.TempDir(), "missing.md")}, cli.ExitIOError, convert.ErrReadInput},
		{
			"unwritable output",
			[]string{input, filepath.Join(t.TempDir(), "no", "such", "dir.html")},
			cli.ExitIOError,
			convert.ErrWriteOutput,
		},
		{"invalid config value", []string{"--config", badConfig, input}, cli.ExitConfigError, nil},
		{"invalid config syntax", []string{"--config", brokenConfig, input}, cli.ExitConfigError, nil},
		{"tokens missing input", []string{"tokens"}, cli.ExitInvalidUsage, cli.ErrMissingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCodeFor(err), "error: %v", err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIntegration_Tokens(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", "# Title\n\nbody\n")

	stdout, _, err := execute(t, "tokens", input)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "KIND     VALUE", lines[0])
	assert.Equal(t, "prefix   h1", lines[2])
	assert.Equal(t, "literal  Title", lines[3])
	assert.Equal(t, "suffix   empty_line", lines[4])
	assert.Equal(t, "literal  body", lines[5])
}

func TestIntegration_TokensJSON(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "in.md", "a|b\n-|-\n")

	stdout, _, err := execute(t, "tokens", "--format", "json", input)
	require.NoError(t, err)

	var decoded pretty.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, input, decoded.Path)
	assert.Equal(t, []pretty.JSONToken{
		{Kind: "literal", Value: "a|b"},
		{Kind: "suffix", Value: "table"},
	}, decoded.Tokens)

	_, _, err = execute(t, "tokens", "--format", "xml", input)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFor(err))
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), ".mdhtml.yml")

	_, _, err := execute(t, "init", "--full", "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "indent: 4")

	_, _, err = execute(t, "init", "--output", output)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFor(err))

	_, _, err = execute(t, "init", "--force", "--output", output)
	require.NoError(t, err)

	content, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# indent: 4")

	// The generated file is a valid config.
	input := writeInput(t, "in.md", "x\n")
	_, _, err = execute(t, "--config", output, "--stdout", input)
	require.NoError(t, err)
}

func TestIntegration_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)

	for _, want := range []string{"Usage:", "Commands:", "tokens", "--indent", "Exit Codes:", "64"} {
		assert.Contains(t, stdout, want)
	}
}
