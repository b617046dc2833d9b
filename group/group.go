// Package group is a thin facade over the BLS12-381 pairing groups
// provided by gnark-crypto. It is the sole place in this module that
// imports the curve library directly; everything above this package
// talks in terms of the aliases and functions exported here.
package group

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1, G2 and GT are the three groups of the type-3 pairing
// e : G1 x G2 -> GT used throughout this module.
type (
	G1 = bls12381.G1Affine
	G2 = bls12381.G2Affine
	GT = bls12381.GT

	// Scalar is an element of the scalar field Z/qZ shared by G1, G2 and GT.
	Scalar = fr.Element
)

// Generators returns the standard BLS12-381 generators of G1 and G2.
func Generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}

// Pairing computes the bilinear pairing e(p, q) in GT.
func Pairing(p G1, q G2) (GT, error) {
	return bls12381.Pair([]G1{p}, []G2{q})
}

// AddG1 returns a+b in G1.
func AddG1(a, b G1) G1 {
	var res G1
	res.Add(&a, &b)
	return res
}

// AddG2 returns a+b in G2.
func AddG2(a, b G2) G2 {
	var res G2
	res.Add(&a, &b)
	return res
}

// MulG1 returns s*p in G1.
func MulG1(p G1, s Scalar) G1 {
	var res G1
	res.ScalarMultiplication(&p, s.BigInt(new(big.Int)))
	return res
}

// MulG2 returns s*p in G2.
func MulG2(p G2, s Scalar) G2 {
	var res G2
	res.ScalarMultiplication(&p, s.BigInt(new(big.Int)))
	return res
}

// MulGT raises a GT element to a scalar power, i.e. repeated addition in
// the additive notation spec.md uses for GT.
func MulGT(a GT, s Scalar) GT {
	var res GT
	res.Exp(a, s.BigInt(new(big.Int)))
	return res
}

// AddGT combines two GT elements under the group operation.
func AddGT(a, b GT) GT {
	var res GT
	res.Mul(&a, &b)
	return res
}

// SubGT computes a-b in GT, i.e. a combined with the inverse of b.
func SubGT(a, b GT) GT {
	var res GT
	res.Div(&a, &b)
	return res
}
