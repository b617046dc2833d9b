package waters

import (
	"io"

	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/group"
	"github.com/privacybydesign/go-waters-ibe/identity"
)

// ExtractUserSecretKey derives a user secret key for v. It is
// randomized: two calls with the same (pk, sk, v) but independent rng
// draws yield distinct but equally valid keys, both of which decrypt any
// ciphertext encrypted to v to the same message.
func ExtractUserSecretKey(pk *PublicKey, sk *SecretKey, v identity.Identity, rng io.Reader) (*UserSecretKey, error) {
	r, err := group.RandScalar(rng)
	if err != nil {
		return nil, errors.Wrap(err, "waters: sample r")
	}

	e := entangle(pk, v)
	d1 := group.AddG1(sk.g1prime, group.MulG1(e, r))
	d2 := group.MulG2(pk.g, r)

	return &UserSecretKey{d1: d1, d2: d2}, nil
}
