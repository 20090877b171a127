package service

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// TextEncoder implements Encoder.
type TextEncoder struct{}

// NewEncoder creates a TextEncoder.
func NewEncoder() *TextEncoder {
	return &TextEncoder{}
}

// Encode renders b in the given format. Unknown formats render as lowercase hex.
func (e *TextEncoder) Encode(b []byte, format domain.OutputFormat) string {
	switch format {
	case domain.FormatHexUpper:
		return strings.ToUpper(hex.EncodeToString(b))
	case domain.FormatBase64:
		return base64.StdEncoding.EncodeToString(b)
	default:
		return hex.EncodeToString(b)
	}
}
