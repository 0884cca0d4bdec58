// Package hmacsha1 implements the HMAC message authentication code with SHA-1 as the underlying hash, as specified in
// RFC 2104.
//
// The key is normalized to the 64-byte SHA-1 block (hashed first if longer), XORed with the inner and outer padding
// bytes, and the message is double-hashed: sha1(opad || sha1(ipad || message)).
//
// SHA-1 is deprecated for collision resistance. That does not affect HMAC-SHA1's forgery resistance, but the
// construction is provided for interoperability with existing protocols, not for new designs.
package hmacsha1

import (
	"crypto/sha1"
	"crypto/subtle"
	"hash"

	"github.com/codahale/hmacsha1/internal/mem"
)

const (
	// Size is the size of an HMAC-SHA1 digest in bytes.
	Size = 20

	// BlockSize is the SHA-1 block size in bytes. Keys are normalized to this length before padding.
	BlockSize = 64
)

// RFC 2104 padding bytes, XORed with the block-sized key.
const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// Sum computes the HMAC-SHA1 digest of message under key. Sum is deterministic: equal keys and messages always produce
// equal digests. The key may be of any length, including empty.
func Sum(key, message []byte) Digest {
	m := newMAC(sha1.New, key)
	_, _ = m.Write(message)

	var d Digest
	m.Sum(d[:0])
	return d
}

// New returns a hash.Hash computing HMAC-SHA1 under key. Its Sum appends the 20-byte digest of the bytes written so
// far, and Reset returns it to the freshly keyed state. Like all hash.Hash instances, the returned value must not be
// used from multiple goroutines concurrently.
func New(key []byte) hash.Hash {
	return newMAC(sha1.New, key)
}

// Verify reports whether tag is the HMAC-SHA1 digest of message under key. The comparison is constant time; a tag of
// the wrong length verifies false.
func Verify(key, message, tag []byte) bool {
	if len(tag) != Size {
		return false
	}

	d := Sum(key, message)
	return subtle.ConstantTimeCompare(tag, d[:]) == 1
}

// mac is an incremental HMAC computation. The construction is generic over the hash so that the padding and
// double-hash logic can be tested against a stub; the exported constructors fix the hash to SHA-1.
type mac struct {
	inner, outer hash.Hash
	ipad, opad   []byte
	size         int
	blockSize    int
}

// newMAC returns a mac keyed with key over the hash returned by newHash. A key longer than the hash's block size is
// replaced by its digest; the result is zero-padded to the block size.
func newMAC(newHash func() hash.Hash, key []byte) *mac {
	inner, outer := newHash(), newHash()
	bs := inner.BlockSize()

	folded := make([]byte, bs)
	if len(key) > bs {
		kh := newHash()
		_, _ = kh.Write(key)
		copy(folded, kh.Sum(nil))
	} else {
		copy(folded, key)
	}

	m := &mac{
		inner:     inner,
		outer:     outer,
		ipad:      make([]byte, bs),
		opad:      make([]byte, bs),
		size:      inner.Size(),
		blockSize: bs,
	}
	mem.XORByte(m.ipad, folded, ipadByte)
	mem.XORByte(m.opad, folded, opadByte)
	clear(folded)

	m.Reset()
	return m
}

// Write absorbs message bytes. It never returns an error.
func (m *mac) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

// Sum appends the digest of the message written so far to in and returns the resulting slice. It does not change the
// state, so the caller can keep writing.
func (m *mac) Sum(in []byte) []byte {
	ret, tag := mem.SliceForAppend(in, m.size)

	innerSum := m.inner.Sum(tag[:0])
	m.outer.Reset()
	_, _ = m.outer.Write(m.opad)
	_, _ = m.outer.Write(innerSum)
	m.outer.Sum(tag[:0])

	return ret
}

// Reset returns the mac to its freshly keyed state.
func (m *mac) Reset() {
	m.inner.Reset()
	_, _ = m.inner.Write(m.ipad)
}

// Size returns the digest size in bytes.
func (m *mac) Size() int {
	return m.size
}

// BlockSize returns the underlying hash's block size in bytes.
func (m *mac) BlockSize() int {
	return m.blockSize
}

var _ hash.Hash = (*mac)(nil)
