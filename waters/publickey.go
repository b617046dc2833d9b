package waters

import (
	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/ctopt"
	"github.com/privacybydesign/go-waters-ibe/group"
)

// PublicKeySize is the fixed byte size of PublicKey.ToBytes's output:
// g (96) || g1 (48) || g2 (96) || u' (48) || u (12288).
const PublicKeySize = group.SizeG2 + group.SizeG1 + group.SizeG2 + group.SizeG1 + parametersSize

// ToBytes encodes pk in the fixed layout g || g1 || g2 || u' || u. Encode
// is total: it never fails.
func (pk *PublicKey) ToBytes() [PublicKeySize]byte {
	var res [PublicKeySize]byte
	off := 0

	g := group.EncodeG2(pk.g)
	off += copy(res[off:], g[:])

	g1 := group.EncodeG1(pk.g1)
	off += copy(res[off:], g1[:])

	g2 := group.EncodeG2(pk.g2)
	off += copy(res[off:], g2[:])

	uprime := group.EncodeG1(pk.uprime)
	off += copy(res[off:], uprime[:])

	u := pk.u.toBytes()
	copy(res[off:], u[:])

	return res
}

// PublicKeyFromBytes decodes a PublicKey, validating every constituent
// point (including its subgroup membership). Every sub-field is decoded
// unconditionally and their validity flags are AND-combined before the
// single branch, at this boundary, that turns the combined flag into an
// error — so a caller cannot learn which sub-field, if any, failed.
func PublicKeyFromBytes(buf [PublicKeySize]byte) (*PublicKey, error) {
	off := 0

	var gBuf [group.SizeG2]byte
	off += copy(gBuf[:], buf[off:])
	gOpt := ctopt.FromBool(group.DecodeG2(gBuf))

	var g1Buf [group.SizeG1]byte
	off += copy(g1Buf[:], buf[off:])
	g1Opt := ctopt.FromBool(group.DecodeG1(g1Buf))

	var g2Buf [group.SizeG2]byte
	off += copy(g2Buf[:], buf[off:])
	g2Opt := ctopt.FromBool(group.DecodeG2(g2Buf))

	var uprimeBuf [group.SizeG1]byte
	off += copy(uprimeBuf[:], buf[off:])
	uprimeOpt := ctopt.FromBool(group.DecodeG1(uprimeBuf))

	var uBuf [parametersSize]byte
	copy(uBuf[:], buf[off:])
	uOpt := ctopt.FromBool(parametersFromBytes(uBuf))

	ok := gOpt.Choice().
		And(g1Opt.Choice()).
		And(g2Opt.Choice()).
		And(uprimeOpt.Choice()).
		And(uOpt.Choice())

	if !ok.Bool() {
		return nil, errors.New("waters: invalid public key encoding")
	}

	g, _ := gOpt.Unwrap()
	g1, _ := g1Opt.Unwrap()
	g2, _ := g2Opt.Unwrap()
	uprime, _ := uprimeOpt.Unwrap()
	u, _ := uOpt.Unwrap()

	return &PublicKey{g: g, g1: g1, g2: g2, uprime: uprime, u: u}, nil
}

// Equal reports whether pk and other encode to the same bytes.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	a, b := pk.ToBytes(), other.ToBytes()
	return ctopt.ConstantTimeEqualBytes(a[:], b[:])
}
