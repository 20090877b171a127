package domain

// Choice is one documented option of a configuration field.
type Choice struct {
	Text    string `json:"text"`
	Value   string `json:"value"`
	Default bool   `json:"default,omitempty"`
}

// Catalog documents the algorithm and format choices offered to callers.
// The choices are not enforced: any name a provider recognizes is accepted.
type Catalog struct {
	Hash         []Choice `json:"hash"`
	Cipher       []Choice `json:"cipher"`
	OutputFormat []Choice `json:"output_format"`
}

// HashChoices lists the documented hash algorithms.
var HashChoices = []Choice{
	{Text: "SHA1 (default)", Value: "sha1", Default: true},
	{Text: "SHA256", Value: "sha256"},
	{Text: "SHA512", Value: "sha512"},
	{Text: "MD5", Value: "md5"},
	{Text: "SHA3-256", Value: "sha3-256"},
	{Text: "BLAKE2b512", Value: "blake2b512"},
}

// CipherChoices lists the documented cipher algorithms.
var CipherChoices = []Choice{
	{Text: "AES-128-CBC", Value: "aes-128-cbc"},
	{Text: "AES-192-CBC", Value: "aes-192-cbc"},
	{Text: "AES-256-CBC", Value: "aes-256-cbc"},
	{Text: "AES-256-GCM", Value: "aes-256-gcm"},
	{Text: "ChaCha20-Poly1305", Value: "chacha20-poly1305"},
}

// OutputFormatChoices lists the supported output encodings.
var OutputFormatChoices = []Choice{
	{Text: "Hexadecimal (lowercase)", Value: string(FormatHex), Default: true},
	{Text: "Hexadecimal (uppercase)", Value: string(FormatHexUpper)},
	{Text: "Base64", Value: string(FormatBase64)},
}

// DefaultCatalog returns the documented choices.
func DefaultCatalog() Catalog {
	return Catalog{
		Hash:         HashChoices,
		Cipher:       CipherChoices,
		OutputFormat: OutputFormatChoices,
	}
}
