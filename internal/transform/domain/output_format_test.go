package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.OutputFormat
	}{
		{name: "lowercase hex", input: "hex", expected: domain.FormatHex},
		{name: "uppercase hex", input: "HEX", expected: domain.FormatHexUpper},
		{name: "base64", input: "base64", expected: domain.FormatBase64},
		{name: "empty falls back to hex", input: "", expected: domain.FormatHex},
		{name: "unknown falls back to hex", input: "weird", expected: domain.FormatHex},
		{name: "mixed case is unknown", input: "Hex", expected: domain.FormatHex},
		{name: "uppercase base64 is unknown", input: "BASE64", expected: domain.FormatHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ParseOutputFormat(tt.input))
		})
	}
}
