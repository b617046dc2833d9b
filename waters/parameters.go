package waters

import (
	"github.com/privacybydesign/go-waters-ibe/ctopt"
	"github.com/privacybydesign/go-waters-ibe/group"
)

// paramCount is the number of G1 points in a Parameters vector, one per
// bit of a 256-bit identity digest.
const paramCount = 256

// parametersSize is the byte size of a Parameters vector's encoding.
const parametersSize = paramCount * group.SizeG1

// parameters is the public parameter vector u_1..u_256 used to entangle
// an identity with the public key. Its length is a compile-time
// invariant: there is no constructor path that produces any other
// cardinality.
type parameters struct {
	u [paramCount]group.G1
}

func (p parameters) toBytes() [parametersSize]byte {
	var res [parametersSize]byte
	for i, ui := range p.u {
		b := group.EncodeG1(ui)
		copy(res[i*group.SizeG1:(i+1)*group.SizeG1], b[:])
	}
	return res
}

// parametersFromBytes decodes all 256 points unconditionally and combines
// their individual validity flags with And, regardless of which (if any)
// point failed to decode first.
func parametersFromBytes(buf [parametersSize]byte) (parameters, bool) {
	var res parameters
	ok := ctopt.ChoiceFromBit(1)
	for i := 0; i < paramCount; i++ {
		var chunk [group.SizeG1]byte
		copy(chunk[:], buf[i*group.SizeG1:(i+1)*group.SizeG1])
		opt := ctopt.FromBool(group.DecodeG1(chunk))
		point, _ := opt.Unwrap()
		res.u[i] = point
		ok = ok.And(opt.Choice())
	}
	return res, ok.Bool()
}
