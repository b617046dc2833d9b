// Package ctopt carries the constant-time discipline spec.md demands for
// the entanglement function and every decode path: conditional selection
// instead of branching, and an option carrier whose success flag never
// depends on which sub-field failed.
//
// The design mirrors original_source/waters.rs's use of the Rust `subtle`
// crate (Choice, ConditionallySelectable, CtOption); the leaf bytewise
// comparisons are done with the standard library's crypto/subtle, which
// is the Go ecosystem's equivalent of that crate.
package ctopt

import "crypto/subtle"

// Choice is 0 or 1 and is combined and consumed without ever being used
// as the condition of a Go if/else — only as an arithmetic mask.
type Choice byte

// ChoiceFromBit returns Choice(1) if bit is 1 and Choice(0) if bit is 0.
// bit must already be 0 or 1.
func ChoiceFromBit(bit byte) Choice {
	return Choice(bit & 1)
}

// And combines two choices; the result is 1 only if both inputs are 1.
func (c Choice) And(other Choice) Choice {
	return Choice(byte(c) & byte(other))
}

// Bool converts a Choice to a plain bool. This is the one place the
// constant-time discipline ends: callers need an ordinary bool at the
// public API boundary, after every sub-computation has already combined
// its flags without branching on them individually.
func (c Choice) Bool() bool {
	return c == 1
}

// mask64 returns all-ones if c == 1 and all-zero if c == 0, for use in
// limb-wise conditional select.
func (c Choice) mask64() uint64 {
	return -uint64(c & 1)
}

// ConstantTimeEqualBytes reports whether a and b are equal, in time
// independent of where they first differ. Lengths must match; a length
// mismatch itself is not treated as secret and returns false immediately.
func ConstantTimeEqualBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
