package waters

import (
	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/ctopt"
	"github.com/privacybydesign/go-waters-ibe/group"
)

// CipherTextSize is the fixed byte size of CipherText.ToBytes's output:
// c1 (288) || c2 (96) || c3 (48).
const CipherTextSize = group.SizeGT + group.SizeG2 + group.SizeG1

// ToBytes encodes c in the fixed layout c1 || c2 || c3.
func (c *CipherText) ToBytes() [CipherTextSize]byte {
	var res [CipherTextSize]byte
	off := 0

	c1 := group.EncodeGT(c.c1)
	off += copy(res[off:], c1[:])

	c2 := group.EncodeG2(c.c2)
	off += copy(res[off:], c2[:])

	c3 := group.EncodeG1(c.c3)
	copy(res[off:], c3[:])

	return res
}

// CipherTextFromBytes decodes a CipherText, subgroup-checking every
// constituent point and combining their validity before reporting
// failure.
func CipherTextFromBytes(buf [CipherTextSize]byte) (*CipherText, error) {
	off := 0

	var c1Buf [group.SizeGT]byte
	off += copy(c1Buf[:], buf[off:])
	c1Opt := ctopt.FromBool(group.DecodeGT(c1Buf))

	var c2Buf [group.SizeG2]byte
	off += copy(c2Buf[:], buf[off:])
	c2Opt := ctopt.FromBool(group.DecodeG2(c2Buf))

	var c3Buf [group.SizeG1]byte
	copy(c3Buf[:], buf[off:])
	c3Opt := ctopt.FromBool(group.DecodeG1(c3Buf))

	ok := c1Opt.Choice().
		And(c2Opt.Choice()).
		And(c3Opt.Choice())
	if !ok.Bool() {
		return nil, errors.New("waters: invalid ciphertext encoding")
	}

	c1, _ := c1Opt.Unwrap()
	c2, _ := c2Opt.Unwrap()
	c3, _ := c3Opt.Unwrap()
	return &CipherText{c1: c1, c2: c2, c3: c3}, nil
}

// Equal reports whether c and other encode to the same bytes.
func (c *CipherText) Equal(other *CipherText) bool {
	a, b := c.ToBytes(), other.ToBytes()
	return ctopt.ConstantTimeEqualBytes(a[:], b[:])
}
