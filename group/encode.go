package group

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Fixed compressed-encoding sizes, in bytes, for each group element type.
const (
	SizeG1 = 48
	SizeG2 = 96
	SizeGT = 288
)

// EncodeG1 returns the 48-byte compressed encoding of p.
func EncodeG1(p G1) [SizeG1]byte {
	return p.Bytes()
}

// DecodeG1 decodes a compressed G1 element, performing both the on-curve
// and prime-order-subgroup checks. ok is false if either check fails; in
// that case value is the zero value and must not be used.
func DecodeG1(buf [SizeG1]byte) (value G1, ok bool) {
	_, err := value.SetBytes(buf[:])
	return value, err == nil
}

// EncodeG2 returns the 96-byte compressed encoding of p.
func EncodeG2(p G2) [SizeG2]byte {
	return p.Bytes()
}

// DecodeG2 decodes a compressed G2 element, performing both the on-curve
// and prime-order-subgroup checks.
func DecodeG2(buf [SizeG2]byte) (value G2, ok bool) {
	_, err := value.SetBytes(buf[:])
	return value, err == nil
}

// EncodeGT returns the 288-byte torus-compressed encoding of a. Torus
// compression halves the 576-byte uncompressed size of a full GT element
// (an Fp12 tower element) by exploiting the fact that every pairing
// output lies in the cyclotomic subgroup.
func EncodeGT(a GT) [SizeGT]byte {
	compressed, err := a.CompressTorus()
	if err != nil {
		// CompressTorus only fails for elements outside the cyclotomic
		// subgroup. Every GT value reachable through this module's public
		// API (pairing outputs, and RandGT's powers of a pairing output)
		// is always in that subgroup, so this is unreachable in practice.
		panic("group: GT element outside cyclotomic subgroup")
	}
	return compressed.Bytes()
}

// DecodeGT decodes a torus-compressed GT element, including the subgroup
// check implied by torus decompression.
func DecodeGT(buf [SizeGT]byte) (value GT, ok bool) {
	var compressed bls12381.E6
	if _, err := compressed.SetBytes(buf[:]); err != nil {
		return GT{}, false
	}
	value, err := compressed.DecompressTorus()
	return value, err == nil
}
