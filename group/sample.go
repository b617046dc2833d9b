package group

import (
	"io"

	"github.com/pkg/errors"
)

// scalarOversampleBytes is the number of random bytes drawn per scalar
// sample before reduction mod the field order. 48 bytes of fresh
// randomness reduced into a ~255-bit field biases the result by at most
// 2^-129, which is negligible for any cryptographic purpose.
const scalarOversampleBytes = 48

// RandScalar draws a uniform element of Z/qZ from rng.
func RandScalar(rng io.Reader) (Scalar, error) {
	var buf [scalarOversampleBytes]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Scalar{}, errors.Wrap(err, "read randomness for scalar")
	}
	var s Scalar
	s.SetBytes(buf[:])
	return s, nil
}

// RandG1 draws a uniform element of G1 from rng.
func RandG1(rng io.Reader) (G1, error) {
	s, err := RandScalar(rng)
	if err != nil {
		return G1{}, err
	}
	g1, _ := Generators()
	return MulG1(g1, s), nil
}

// RandG2 draws a uniform element of G2 from rng.
func RandG2(rng io.Reader) (G2, error) {
	s, err := RandScalar(rng)
	if err != nil {
		return G2{}, err
	}
	_, g2 := Generators()
	return MulG2(g2, s), nil
}

// RandGT draws a uniform element of the order-q subgroup of GT from rng.
//
// This is deliberately not a uniform element of the ambient extension
// field: it is computed as a random power of the canonical pairing of
// the two BLS12-381 generators, so the result is always a genuine member
// of the order-q subgroup that the compressed torus codec expects.
func RandGT(rng io.Reader) (GT, error) {
	s, err := RandScalar(rng)
	if err != nil {
		return GT{}, err
	}
	g1, g2 := Generators()
	base, err := Pairing(g1, g2)
	if err != nil {
		return GT{}, errors.Wrap(err, "pair generators for GT sampling")
	}
	return MulGT(base, s), nil
}
