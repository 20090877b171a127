package service

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

type digestConstructor func() (hash.Hash, error)

func plain(fn func() hash.Hash) digestConstructor {
	return func() (hash.Hash, error) { return fn(), nil }
}

// digests maps lowercase digest names to constructors. Names follow the
// OpenSSL digest names, so values such as "sha3-256" or "blake2b512" carry over.
var digests = map[string]digestConstructor{
	"md4":        plain(md4.New),
	"md5":        plain(md5.New),
	"sha1":       plain(sha1.New),
	"sha224":     plain(sha256.New224),
	"sha256":     plain(sha256.New),
	"sha384":     plain(sha512.New384),
	"sha512":     plain(sha512.New),
	"sha512-224": plain(sha512.New512_224),
	"sha512-256": plain(sha512.New512_256),
	"sha3-224":   plain(sha3.New224),
	"sha3-256":   plain(sha3.New256),
	"sha3-384":   plain(sha3.New384),
	"sha3-512":   plain(sha3.New512),
	"blake2b512": func() (hash.Hash, error) { return blake2b.New512(nil) },
	"blake2s256": func() (hash.Hash, error) { return blake2s.New256(nil) },
	"ripemd160":  plain(ripemd160.New),
	"shake128":   plain(func() hash.Hash { return newShake(16, 168, sha3.ShakeSum128) }),
	"shake256":   plain(func() hash.Hash { return newShake(32, 136, sha3.ShakeSum256) }),
}

var digestAliases = map[string]string{
	"sha-1":        "sha1",
	"sha-224":      "sha224",
	"sha-256":      "sha256",
	"sha-384":      "sha384",
	"sha-512":      "sha512",
	"sha2-224":     "sha224",
	"sha2-256":     "sha256",
	"sha2-384":     "sha384",
	"sha2-512":     "sha512",
	"sha2-512/224": "sha512-224",
	"sha2-512/256": "sha512-256",
	"sha512/224":   "sha512-224",
	"sha512/256":   "sha512-256",
	"ripemd":       "ripemd160",
	"ripemd-160":   "ripemd160",
	"rmd160":       "ripemd160",
}

// DigestRegistry implements DigestProvider over the built-in digest table.
type DigestRegistry struct{}

// NewDigestRegistry creates a DigestRegistry.
func NewDigestRegistry() *DigestRegistry {
	return &DigestRegistry{}
}

// New returns a fresh hash for name. Lookup is case-insensitive.
func (r *DigestRegistry) New(name string) (hash.Hash, error) {
	key := strings.ToLower(name)
	if canonical, ok := digestAliases[key]; ok {
		key = canonical
	}

	constructor, ok := digests[key]
	if !ok {
		return nil, domain.ErrUnknownDigest
	}
	return constructor()
}

// DigestNames returns the canonical names the registry recognizes, sorted.
func DigestNames() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// shakeHash adapts a SHAKE XOF to hash.Hash with a fixed output length.
type shakeHash struct {
	buf       []byte
	size      int
	blockSize int
	sum       func(out, data []byte)
}

func newShake(size, blockSize int, sum func(out, data []byte)) *shakeHash {
	return &shakeHash{size: size, blockSize: blockSize, sum: sum}
}

func (s *shakeHash) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *shakeHash) Sum(b []byte) []byte {
	out := make([]byte, s.size)
	s.sum(out, s.buf)
	return append(b, out...)
}

func (s *shakeHash) Reset() { s.buf = s.buf[:0] }

func (s *shakeHash) Size() int { return s.size }

func (s *shakeHash) BlockSize() int { return s.blockSize }
