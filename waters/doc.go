// Package waters implements the Waters (EUROCRYPT 2005) Identity-Based
// Encryption scheme over the BLS12-381 pairing.
//
// The package is purely functional: every operation takes its inputs
// (and, where randomness is needed, an injected io.Reader) and returns
// a new value. Nothing here holds ambient state, caches anything, or
// performs blocking I/O beyond reading from the supplied randomness
// source, so any number of goroutines may call any operation
// concurrently on disjoint inputs.
//
//	pk, sk, err := waters.Setup(rand.Reader)
//	id := identity.DeriveString("email:w.geraedts@sarif.nl")
//	usk, err := waters.ExtractUserSecretKey(pk, sk, id, rand.Reader)
//	m, err := waters.GenerateMessage(rand.Reader)
//	ct, err := waters.Encrypt(pk, id, m, rand.Reader)
//	m2 := waters.Decrypt(usk, ct)
package waters
