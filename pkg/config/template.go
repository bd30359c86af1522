package config

import (
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its default value.
	// If false, keys are present but commented out.
	Full bool
}

// templateEntry documents one configuration key.
type templateEntry struct {
	key     string
	value   string
	comment string
}

// templateEntries returns the documented keys in file order.
func templateEntries() []templateEntry {
	return []templateEntry{
		{"indent", fmt.Sprint(DefaultIndent), fmt.Sprintf("Spaces per nesting level (0-%d)", MaxIndent)},
		{"final_newline", "false", "Append a newline after the closing </html>"},
		{"log_level", DefaultLogLevel, "Log level: debug, info, warn, or error"},
	}
}

// GenerateTemplate creates a commented configuration file.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf strings.Builder

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n")

	for _, entry := range templateEntries() {
		buf.WriteString("\n# " + entry.comment + "\n")
		if !opts.Full {
			buf.WriteString("# ")
		}
		buf.WriteString(entry.key + ": " + entry.value + "\n")
	}

	return []byte(buf.String())
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdhtml configuration
# See: https://github.com/yaklabco/mdhtml`
}
