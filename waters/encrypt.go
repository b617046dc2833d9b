package waters

import (
	"io"

	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/group"
	"github.com/privacybydesign/go-waters-ibe/identity"
)

// Encrypt encrypts m to identity v under pk. Each call is independently
// randomized; encrypting the same message to the same identity twice
// produces unlinkable ciphertexts.
func Encrypt(pk *PublicKey, v identity.Identity, m *Message, rng io.Reader) (*CipherText, error) {
	t, err := group.RandScalar(rng)
	if err != nil {
		return nil, errors.Wrap(err, "waters: sample t")
	}

	e := entangle(pk, v)

	base, err := group.Pairing(pk.g1, pk.g2)
	if err != nil {
		return nil, errors.Wrap(err, "waters: pair g1 with g2")
	}
	c1 := group.AddGT(group.MulGT(base, t), m.m)
	c2 := group.MulG2(pk.g, t)
	c3 := group.MulG1(e, t)

	return &CipherText{c1: c1, c2: c2, c3: c3}, nil
}
