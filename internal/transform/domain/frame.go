package domain

import "fmt"

const (
	// IVSize is the length of the random initialization vector that opens every frame.
	IVSize = 16
	// TagSize is the length of the AEAD authentication tag.
	TagSize = 16
	// DerivedKeySize is the length of the passphrase-derived key.
	DerivedKeySize = 32
)

// AssociatedData is bound to every AEAD encryption. Changing it breaks
// verification of every frame produced so far.
var AssociatedData = []byte("directus")

// CipherFrame is the byte layout emitted by the cipher path:
//
//	IV (16) || Tag (16, AEAD only) || Ciphertext
type CipherFrame struct {
	IV         []byte
	Tag        []byte
	Ciphertext []byte
}

// Bytes concatenates the frame in wire order. Tag is omitted when empty.
func (f CipherFrame) Bytes() []byte {
	out := make([]byte, 0, len(f.IV)+len(f.Tag)+len(f.Ciphertext))
	out = append(out, f.IV...)
	out = append(out, f.Tag...)
	out = append(out, f.Ciphertext...)
	return out
}

// ParseCipherFrame splits raw frame bytes. aead tells whether a tag follows the IV.
func ParseCipherFrame(b []byte, aead bool) (CipherFrame, error) {
	header := IVSize
	if aead {
		header += TagSize
	}
	if len(b) < header {
		return CipherFrame{}, fmt.Errorf("%w: got %d bytes, need at least %d", ErrShortFrame, len(b), header)
	}

	frame := CipherFrame{IV: b[:IVSize], Ciphertext: b[header:]}
	if aead {
		frame.Tag = b[IVSize:header]
	}
	return frame, nil
}
