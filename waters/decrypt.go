package waters

import "github.com/privacybydesign/go-waters-ibe/group"

// Decrypt recovers the message encrypted in c under the identity usk was
// extracted for. It performs no validation of c's well-formedness beyond
// whatever decoding already checked: a ciphertext intended for a
// different identity decrypts to some GT element indistinguishable from
// noise, not an error, since the scheme offers no built-in integrity
// check. Decrypt cannot fail.
func Decrypt(usk *UserSecretKey, c *CipherText) *Message {
	num, err := group.Pairing(c.c3, usk.d2)
	if err != nil {
		// usk and c are always well-formed group elements constructed by
		// this package's own Setup/Extract/Encrypt/FromBytes, which already
		// subgroup-check every decoded point; the pairing collaborator
		// cannot fail on such inputs.
		panic("waters: pairing failed on well-formed input")
	}
	dem, err := group.Pairing(usk.d1, c.c2)
	if err != nil {
		panic("waters: pairing failed on well-formed input")
	}

	m := group.SubGT(group.AddGT(c.c1, num), dem)
	return &Message{m: m}
}
