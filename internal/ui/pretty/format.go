package pretty

import "fmt"

// Format represents a token listing output format.
type Format string

// Output formats supported by the tokens listing.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat parses a format string, returning an error for unknown formats.
// The empty string selects the table format.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: table, json", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}
