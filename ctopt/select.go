package ctopt

import "github.com/privacybydesign/go-waters-ibe/group"

// SelectG1 returns b if choice is 1 and a if choice is 0, in time and
// memory-access pattern independent of choice. It operates limb-by-limb
// on the underlying field coordinates rather than branching, which is
// what lets waters.entangle fold 256 of these into a running accumulator
// without ever branching on an identity bit.
func SelectG1(choice Choice, a, b group.G1) group.G1 {
	mask := choice.mask64()
	var res group.G1
	for i := range a.X {
		res.X[i] = (b.X[i] & mask) | (a.X[i] &^ mask)
	}
	for i := range a.Y {
		res.Y[i] = (b.Y[i] & mask) | (a.Y[i] &^ mask)
	}
	return res
}
