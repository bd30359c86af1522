// Package config defines the mdhtml configuration types.
// These are plain data structures; discovery and merging live in internal/configloader.
package config

import "github.com/yaklabco/mdhtml/pkg/render"

// Defaults and limits for configuration values.
const (
	DefaultIndent   = 4
	MaxIndent       = 16
	DefaultLogLevel = "info"
)

// Config is the root configuration structure.
//
// Pointer fields distinguish "unset" from a zero value so that layered
// sources can override each other, including setting indent to 0 or
// final_newline to false.
type Config struct {
	// Indent is the number of spaces per nesting level.
	Indent *int `yaml:"indent,omitempty"`

	// FinalNewline appends a newline after the closing </html>.
	FinalNewline *bool `yaml:"final_newline,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// CLI-level options (not persisted to config files).

	// Stdout writes HTML to standard output instead of a file.
	Stdout bool `yaml:"-"`
}

// NewConfig returns a Config with every field set to its default.
func NewConfig() *Config {
	return &Config{
		Indent:       IntPtr(DefaultIndent),
		FinalNewline: BoolPtr(false),
		LogLevel:     DefaultLogLevel,
	}
}

// IndentWidth returns the configured indent, or DefaultIndent if unset.
func (c *Config) IndentWidth() int {
	if c == nil || c.Indent == nil {
		return DefaultIndent
	}
	return *c.Indent
}

// WantFinalNewline reports whether a trailing newline is configured.
func (c *Config) WantFinalNewline() bool {
	return c != nil && c.FinalNewline != nil && *c.FinalNewline
}

// RenderOptions converts the configuration into serializer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Indent:       render.IndentSpaces(c.IndentWidth()),
		FinalNewline: c.WantFinalNewline(),
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
