// Package domain defines the core models of the hash/cipher transform: the request
// supplied by a caller, the derived mode, output formats, the cipher frame layout,
// the algorithm catalog and the error taxonomy.
package domain

import (
	"fmt"
	"log/slog"
)

// DefaultHashAlgorithm is used in hash mode when no algorithm is named.
const DefaultHashAlgorithm = "sha1"

// Mode selects which transform path a request takes.
type Mode string

const (
	// ModeHash computes a digest of the input.
	ModeHash Mode = "hash"
	// ModeCipher encrypts the input under a passphrase-derived key.
	ModeCipher Mode = "cipher"
)

// Title returns the capitalized mode name used in error messages ("Hash", "Cipher").
func (m Mode) Title() string {
	switch m {
	case ModeCipher:
		return "Cipher"
	default:
		return "Hash"
	}
}

// Request carries the inputs of a single transform call.
//
// CipherKey is a secret: it is masked by String and LogValue and must never be
// echoed back to a caller.
type Request struct {
	Input           string
	HashAlgorithm   string
	CipherAlgorithm string
	CipherKey       string
	OutputFormat    string
}

// Mode derives the transform mode. Cipher mode wins whenever a cipher algorithm
// is named; HashAlgorithm is then ignored.
func (r *Request) Mode() Mode {
	if r.CipherAlgorithm != "" {
		return ModeCipher
	}
	return ModeHash
}

// Algorithm returns the algorithm name the resolved mode will use.
func (r *Request) Algorithm() string {
	if r.Mode() == ModeCipher {
		return r.CipherAlgorithm
	}
	if r.HashAlgorithm == "" {
		return DefaultHashAlgorithm
	}
	return r.HashAlgorithm
}

// String renders the request without the input and with the key masked.
func (r *Request) String() string {
	key := ""
	if r.CipherKey != "" {
		key = MaskedValue
	}
	return fmt.Sprintf(
		"Request{mode=%s, algorithm=%s, output_format=%s, cipher_key=%s}",
		r.Mode(), r.Algorithm(), ParseOutputFormat(r.OutputFormat), key,
	)
}

// LogValue implements slog.LogValuer so requests can be logged directly.
func (r *Request) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("mode", string(r.Mode())),
		slog.String("algorithm", r.Algorithm()),
		slog.String("output_format", string(ParseOutputFormat(r.OutputFormat))),
		slog.Int("input_length", len(r.Input)),
	}
	if r.CipherKey != "" {
		attrs = append(attrs, slog.String("cipher_key", MaskedValue))
	}
	return slog.GroupValue(attrs...)
}
