// Package identity maps arbitrary bytes to the 256-bit digest that acts
// as a user's public key in the Waters scheme.
package identity

import "golang.org/x/crypto/sha3"

// Size is the length in bytes of an Identity digest.
const Size = 32

// Identity is a SHA3-256 digest of caller-supplied bytes, treated
// elsewhere as a 256-bit string, MSB-first within each byte, byte 0 first.
type Identity [Size]byte

// Derive hashes b with SHA3-256 to produce an Identity. No normalization
// beyond taking the bytes as given is performed; equality on the result
// is bytewise.
func Derive(b []byte) Identity {
	return Identity(sha3.Sum256(b))
}

// DeriveString encodes s as UTF-8 and derives its Identity.
func DeriveString(s string) Identity {
	return Derive([]byte(s))
}

// Bytes returns the 32-byte digest.
func (id Identity) Bytes() []byte {
	return id[:]
}

// Equal reports whether id and other are the same digest.
func (id Identity) Equal(other Identity) bool {
	return id == other
}

// Bit returns bit i of the digest, for i in [0, 256), MSB-first within
// each byte: bit 8*j+(7-k) is bit k of byte j.
func (id Identity) Bit(i int) byte {
	byteIndex := i / 8
	bitPos := 7 - (i % 8)
	return (id[byteIndex] >> uint(bitPos)) & 1
}
