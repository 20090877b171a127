package service

import (
	"slices"
	"strings"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// cipherFamily selects the implementation behind a cipher name.
type cipherFamily int

const (
	familyAESCBC cipherFamily = iota
	familyAESCTR
	familyAESCFB
	familyAESOFB
	familyAESGCM
	familyChaCha20
	familyChaCha20Poly1305
)

// cipherSpec holds the per-cipher parameters. Adding a cipher only requires a
// new entry here as long as its family is implemented.
type cipherSpec struct {
	family  cipherFamily
	keySize int
	aead    bool
}

var cipherSpecs = map[string]cipherSpec{
	"aes-128-cbc":       {family: familyAESCBC, keySize: 16},
	"aes-192-cbc":       {family: familyAESCBC, keySize: 24},
	"aes-256-cbc":       {family: familyAESCBC, keySize: 32},
	"aes-128-ctr":       {family: familyAESCTR, keySize: 16},
	"aes-192-ctr":       {family: familyAESCTR, keySize: 24},
	"aes-256-ctr":       {family: familyAESCTR, keySize: 32},
	"aes-128-cfb":       {family: familyAESCFB, keySize: 16},
	"aes-192-cfb":       {family: familyAESCFB, keySize: 24},
	"aes-256-cfb":       {family: familyAESCFB, keySize: 32},
	"aes-128-ofb":       {family: familyAESOFB, keySize: 16},
	"aes-192-ofb":       {family: familyAESOFB, keySize: 24},
	"aes-256-ofb":       {family: familyAESOFB, keySize: 32},
	"aes-128-gcm":       {family: familyAESGCM, keySize: 16, aead: true},
	"aes-192-gcm":       {family: familyAESGCM, keySize: 24, aead: true},
	"aes-256-gcm":       {family: familyAESGCM, keySize: 32, aead: true},
	"chacha20":          {family: familyChaCha20, keySize: 32},
	"chacha20-poly1305": {family: familyChaCha20Poly1305, keySize: 32, aead: true},
}

var cipherAliases = map[string]string{
	"aes128": "aes-128-cbc",
	"aes192": "aes-192-cbc",
	"aes256": "aes-256-cbc",
}

// lookupCipher resolves a cipher name case-insensitively.
func lookupCipher(name string) (cipherSpec, error) {
	key := strings.ToLower(name)
	if canonical, ok := cipherAliases[key]; ok {
		key = canonical
	}

	spec, ok := cipherSpecs[key]
	if !ok {
		return cipherSpec{}, domain.ErrUnknownCipher
	}
	return spec, nil
}

// CipherNames returns the canonical cipher names in the table, sorted.
func CipherNames() []string {
	names := make([]string, 0, len(cipherSpecs))
	for name := range cipherSpecs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
