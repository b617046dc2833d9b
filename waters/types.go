package waters

import "github.com/privacybydesign/go-waters-ibe/group"

// PublicKey holds the parameters published by a Private Key Generator
// (PKG). It is produced once by Setup and never mutated afterwards.
type PublicKey struct {
	g      group.G2
	g1     group.G1
	g2     group.G2
	uprime group.G1
	u      parameters
}

// SecretKey is the PKG's master secret, used only to Extract user secret
// keys. It must never be serialized to an untrusted party.
type SecretKey struct {
	g1prime group.G1
}

// UserSecretKey is the per-identity key produced by Extract. Two Extract
// calls for the same identity yield independent, equally valid keys.
type UserSecretKey struct {
	d1 group.G1
	d2 group.G2
}

// Message is a single element of the target group GT, intended as a
// source of symmetric keying material for callers that layer a KEM/DEM
// construction on top of this package.
type Message struct {
	m group.GT
}

// CipherText is the output of Encrypt; only the UserSecretKey for the
// identity it was encrypted to can recover the original Message.
type CipherText struct {
	c1 group.GT
	c2 group.G2
	c3 group.G1
}
