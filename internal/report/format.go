package report

import (
	"fmt"
	"strings"
)

// Format selects how a Result is written.
type Format string

// Valid format values
const (
	// FormatText writes one "error: <path>: <message>" line per diagnostic to stderr.
	FormatText Format = "text"
	// FormatJSON writes a single JSON document to stdout.
	FormatJSON Format = "json"
)

var validFormats = map[Format]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidFormatNames returns the accepted format names for display.
func ValidFormatNames() []string {
	return []string{"text", "json"}
}

// ParseFormat normalizes and validates a format string. Empty means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}

	normalized := Format(strings.ToLower(strings.TrimSpace(s)))
	if !validFormats[normalized] {
		return "", fmt.Errorf(
			"invalid format %q; valid options: %s",
			s,
			strings.Join(ValidFormatNames(), ", "),
		)
	}
	return normalized, nil
}

// String implements fmt.Stringer for Format.
func (f Format) String() string {
	return string(f)
}
