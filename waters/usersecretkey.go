package waters

import (
	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/ctopt"
	"github.com/privacybydesign/go-waters-ibe/group"
)

// UserSecretKeySize is the fixed byte size of UserSecretKey.ToBytes's
// output: d1 (48) || d2 (96).
const UserSecretKeySize = group.SizeG1 + group.SizeG2

// ToBytes encodes usk in the fixed layout d1 || d2.
func (usk *UserSecretKey) ToBytes() [UserSecretKeySize]byte {
	var res [UserSecretKeySize]byte
	d1 := group.EncodeG1(usk.d1)
	off := copy(res[:], d1[:])
	d2 := group.EncodeG2(usk.d2)
	copy(res[off:], d2[:])
	return res
}

// UserSecretKeyFromBytes decodes a UserSecretKey, subgroup-checking both
// constituent points and combining their validity before reporting
// failure.
func UserSecretKeyFromBytes(buf [UserSecretKeySize]byte) (*UserSecretKey, error) {
	var d1Buf [group.SizeG1]byte
	off := copy(d1Buf[:], buf[:])
	d1Opt := ctopt.FromBool(group.DecodeG1(d1Buf))

	var d2Buf [group.SizeG2]byte
	copy(d2Buf[:], buf[off:])
	d2Opt := ctopt.FromBool(group.DecodeG2(d2Buf))

	ok := d1Opt.Choice().And(d2Opt.Choice())
	if !ok.Bool() {
		return nil, errors.New("waters: invalid user secret key encoding")
	}

	d1, _ := d1Opt.Unwrap()
	d2, _ := d2Opt.Unwrap()
	return &UserSecretKey{d1: d1, d2: d2}, nil
}

// Equal reports whether usk and other encode to the same bytes.
func (usk *UserSecretKey) Equal(other *UserSecretKey) bool {
	a, b := usk.ToBytes(), other.ToBytes()
	return ctopt.ConstantTimeEqualBytes(a[:], b[:])
}
