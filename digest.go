package hmacsha1

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidDigest is returned by ParseHex and ParseBase64 when the input does not encode a Size-byte digest.
var ErrInvalidDigest = errors.New("hmacsha1: invalid digest encoding")

// Digest is a complete HMAC-SHA1 digest. Construct one with Sum, ParseHex, or ParseBase64, and convert it with the
// methods below; the conversions are total and lossless.
type Digest [Size]byte

// Bytes returns the digest as a freshly allocated byte slice.
func (d Digest) Bytes() []byte {
	return append([]byte(nil), d[:]...)
}

// ByteValues returns the digest as a sequence of Size integers, each in [0, 255], in digest byte order.
func (d Digest) ByteValues() []int {
	vs := make([]int, Size)
	for i, b := range d {
		vs[i] = int(b)
	}
	return vs
}

// Hex returns the digest as a 40-character lowercase hexadecimal string.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Base64 returns the digest as a 28-character base64 string, standard alphabet with padding.
func (d Digest) Base64() string {
	return base64.StdEncoding.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// Equal compares the two digests in constant time.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}

// ParseHex parses a 40-character hexadecimal string into a Digest. Both digit cases are accepted; Hex always produces
// lowercase.
func ParseHex(s string) (Digest, error) {
	if len(s) != hex.EncodedLen(Size) {
		return Digest{}, fmt.Errorf("%w: %d hex characters, want %d", ErrInvalidDigest, len(s), hex.EncodedLen(Size))
	}

	var d Digest
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	return d, nil
}

// ParseBase64 parses a base64 string (standard alphabet, with padding) into a Digest. Only the canonical encoding of a
// digest is accepted: exactly 28 characters, no embedded whitespace, zero trailing padding bits.
func ParseBase64(s string) (Digest, error) {
	if len(s) != base64.StdEncoding.EncodedLen(Size) {
		return Digest{}, fmt.Errorf("%w: %d base64 characters, want %d", ErrInvalidDigest, len(s), base64.StdEncoding.EncodedLen(Size))
	}

	raw, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	if len(raw) != Size {
		return Digest{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidDigest, len(raw), Size)
	}

	var d Digest
	copy(d[:], raw)
	return d, nil
}
