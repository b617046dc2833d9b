package waters

import (
	"io"

	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/group"
)

// Setup generates a fresh (PublicKey, SecretKey) pair for a Private Key
// Generator. rng must be a cryptographically secure source of
// randomness; a failure to read from it is propagated as an error and
// not retried.
func Setup(rng io.Reader) (*PublicKey, *SecretKey, error) {
	g, err := group.RandG2(rng)
	if err != nil {
		return nil, nil, errors.Wrap(err, "waters: sample g")
	}
	alpha, err := group.RandScalar(rng)
	if err != nil {
		return nil, nil, errors.Wrap(err, "waters: sample alpha")
	}
	g2 := group.MulG2(g, alpha)

	g1, err := group.RandG1(rng)
	if err != nil {
		return nil, nil, errors.Wrap(err, "waters: sample g1")
	}
	uprime, err := group.RandG1(rng)
	if err != nil {
		return nil, nil, errors.Wrap(err, "waters: sample u'")
	}

	var u parameters
	for i := range u.u {
		ui, err := group.RandG1(rng)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "waters: sample u[%d]", i)
		}
		u.u[i] = ui
	}

	g1prime := group.MulG1(g1, alpha)

	pk := &PublicKey{g: g, g1: g1, g2: g2, uprime: uprime, u: u}
	sk := &SecretKey{g1prime: g1prime}
	return pk, sk, nil
}
