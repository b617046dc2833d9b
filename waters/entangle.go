package waters

import (
	"github.com/privacybydesign/go-waters-ibe/ctopt"
	"github.com/privacybydesign/go-waters-ibe/group"
	"github.com/privacybydesign/go-waters-ibe/identity"
)

// entangle computes E(v) = u' + sum_{i=1..256} v_i * u_i, the sole
// bit-dependent computation in the scheme.
//
// It must not branch on v's bits: at every position it computes both the
// "skip" and "add" candidates and uses a constant-time conditional
// select, driven by the bit, to update the running accumulator. No
// variant that dispatches on the bit through ordinary control flow is
// acceptable here, since v's bits derive from the identity being
// encrypted or extracted for and entangle's timing must not leak them.
func entangle(pk *PublicKey, v identity.Identity) group.G1 {
	acc := pk.uprime
	for i := 0; i < paramCount; i++ {
		bit := ctopt.ChoiceFromBit(v.Bit(i))
		withUi := group.AddG1(acc, pk.u.u[i])
		acc = ctopt.SelectG1(bit, acc, withUi)
	}
	return acc
}
