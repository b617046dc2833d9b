package waters

import (
	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/ctopt"
	"github.com/privacybydesign/go-waters-ibe/group"
)

// SecretKeySize is the fixed byte size of SecretKey.ToBytes's output.
const SecretKeySize = group.SizeG1

// ToBytes encodes sk's single G1 point.
func (sk *SecretKey) ToBytes() [SecretKeySize]byte {
	return group.EncodeG1(sk.g1prime)
}

// SecretKeyFromBytes decodes a SecretKey, subgroup-checking the point.
func SecretKeyFromBytes(buf [SecretKeySize]byte) (*SecretKey, error) {
	g1prime, ok := group.DecodeG1(buf)
	if !ok {
		return nil, errors.New("waters: invalid secret key encoding")
	}
	return &SecretKey{g1prime: g1prime}, nil
}

// Equal reports whether sk and other encode to the same bytes.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	a, b := sk.ToBytes(), other.ToBytes()
	return ctopt.ConstantTimeEqualBytes(a[:], b[:])
}
