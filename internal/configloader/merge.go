package configloader

import "github.com/yaklabco/mdhtml/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Nil pointers and empty strings in override leave base untouched; a set
// pointer always wins, so a later layer can turn final_newline back off.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Indent != nil {
		result.Indent = config.IntPtr(*override.Indent)
	}
	if override.FinalNewline != nil {
		result.FinalNewline = config.BoolPtr(*override.FinalNewline)
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	// CLI-only: can only be switched on.
	if override.Stdout {
		result.Stdout = true
	}

	return result
}
