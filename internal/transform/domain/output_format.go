package domain

// OutputFormat names the textual encoding of the transform result.
type OutputFormat string

const (
	// FormatHex is lowercase hexadecimal. It is also the fallback for unknown values.
	FormatHex OutputFormat = "hex"
	// FormatHexUpper is uppercase hexadecimal.
	FormatHexUpper OutputFormat = "HEX"
	// FormatBase64 is standard base64 with padding.
	FormatBase64 OutputFormat = "base64"
)

// ParseOutputFormat resolves a caller-supplied format. Matching is exact and
// case-sensitive ("hex" and "HEX" differ); anything unrecognized resolves to
// FormatHex instead of failing.
func ParseOutputFormat(format string) OutputFormat {
	switch OutputFormat(format) {
	case FormatHexUpper:
		return FormatHexUpper
	case FormatBase64:
		return FormatBase64
	default:
		return FormatHex
	}
}
