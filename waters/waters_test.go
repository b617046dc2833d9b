package waters_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacybydesign/go-waters-ibe/identity"
	"github.com/privacybydesign/go-waters-ibe/waters"
)

const testIdentity = "email:w.geraedts@sarif.nl"

func seededReader(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// perform_default from spec.md scenario 1/2: seed a single deterministic
// rng, run the whole pipeline once, and keep every intermediate value for
// the assertions that follow.
type defaultResults struct {
	id  identity.Identity
	m   *waters.Message
	pk  *waters.PublicKey
	sk  *waters.SecretKey
	usk *waters.UserSecretKey
	ct  *waters.CipherText
}

func performDefault(t *testing.T, seed int64) defaultResults {
	t.Helper()
	rng := seededReader(seed)

	id := identity.DeriveString(testIdentity)
	m, err := waters.GenerateMessage(rng)
	require.NoError(t, err)

	pk, sk, err := waters.Setup(rng)
	require.NoError(t, err)

	usk, err := waters.ExtractUserSecretKey(pk, sk, id, rng)
	require.NoError(t, err)

	ct, err := waters.Encrypt(pk, id, m, rng)
	require.NoError(t, err)

	return defaultResults{id: id, m: m, pk: pk, sk: sk, usk: usk, ct: ct}
}

// Scenario 1: Decrypt(Extract(pk,sk,v), Encrypt(pk,v,m)) == m.
func TestScenarioEncryptDecryptRoundTrip(t *testing.T) {
	r := performDefault(t, 0)
	decrypted := waters.Decrypt(r.usk, r.ct)
	assert.True(t, decrypted.Equal(r.m))
}

// Scenario 2: every type round-trips through ToBytes/FromBytes.
func TestScenarioSerializationRoundTrip(t *testing.T) {
	r := performDefault(t, 0)

	m2, err := waters.MessageFromBytes(r.m.ToBytes())
	require.NoError(t, err)
	assert.True(t, r.m.Equal(m2))

	pk2, err := waters.PublicKeyFromBytes(r.pk.ToBytes())
	require.NoError(t, err)
	assert.True(t, r.pk.Equal(pk2))

	sk2, err := waters.SecretKeyFromBytes(r.sk.ToBytes())
	require.NoError(t, err)
	assert.True(t, r.sk.Equal(sk2))

	usk2, err := waters.UserSecretKeyFromBytes(r.usk.ToBytes())
	require.NoError(t, err)
	assert.True(t, r.usk.Equal(usk2))

	ct2, err := waters.CipherTextFromBytes(r.ct.ToBytes())
	require.NoError(t, err)
	assert.True(t, r.ct.Equal(ct2))
}

// Scenario 3: corrupting a byte inside the Parameters region of a
// serialized PublicKey must make FromBytes fail.
func TestScenarioCorruptedPublicKeyParametersRejected(t *testing.T) {
	r := performDefault(t, 0)
	buf := r.pk.ToBytes()

	// Parameters starts after g (96) + g1 (48) + g2 (96) + u' (48) = 288.
	const parametersOffset = 288
	mid := parametersOffset + waters.PublicKeySize/4
	buf[mid] ^= 0xFF

	_, err := waters.PublicKeyFromBytes(buf)
	assert.Error(t, err)
}

// Scenario 4: two independent Extract calls for the same identity both
// decrypt a ciphertext for that identity, and the two keys differ.
func TestScenarioIndependentExtractionsBothDecrypt(t *testing.T) {
	rng := seededReader(7)
	id := identity.DeriveString(testIdentity)

	pk, sk, err := waters.Setup(rng)
	require.NoError(t, err)

	uskA, err := waters.ExtractUserSecretKey(pk, sk, id, rng)
	require.NoError(t, err)
	uskB, err := waters.ExtractUserSecretKey(pk, sk, id, rng)
	require.NoError(t, err)
	assert.False(t, uskA.Equal(uskB))

	m, err := waters.GenerateMessage(rng)
	require.NoError(t, err)
	ct, err := waters.Encrypt(pk, id, m, rng)
	require.NoError(t, err)

	assert.True(t, waters.Decrypt(uskA, ct).Equal(m))
	assert.True(t, waters.Decrypt(uskB, ct).Equal(m))
}

// Scenario 5: decrypting a ciphertext from PKG A with a key extracted by
// an independent PKG B for the same identity must not recover the
// message.
func TestScenarioCrossPKGDecryptionFails(t *testing.T) {
	rng := seededReader(11)
	id := identity.DeriveString(testIdentity)

	pkA, _, err := waters.Setup(rng)
	require.NoError(t, err)
	pkB, skB, err := waters.Setup(rng)
	require.NoError(t, err)

	uskB, err := waters.ExtractUserSecretKey(pkB, skB, id, rng)
	require.NoError(t, err)

	m, err := waters.GenerateMessage(rng)
	require.NoError(t, err)
	ct, err := waters.Encrypt(pkA, id, m, rng)
	require.NoError(t, err)

	decrypted := waters.Decrypt(uskB, ct)
	assert.False(t, decrypted.Equal(m))
}

// Scenario 6: the empty identity still produces a valid pipeline end to
// end. SHA3-256("") is not the all-zero digest, so this does not exercise
// E(v) = u'; TestEntangleAllZeroIdentityEqualsUPrime covers that case.
func TestScenarioEmptyIdentity(t *testing.T) {
	rng := seededReader(13)
	id := identity.DeriveString("")

	pk, sk, err := waters.Setup(rng)
	require.NoError(t, err)
	usk, err := waters.ExtractUserSecretKey(pk, sk, id, rng)
	require.NoError(t, err)

	m, err := waters.GenerateMessage(rng)
	require.NoError(t, err)
	ct, err := waters.Encrypt(pk, id, m, rng)
	require.NoError(t, err)

	assert.True(t, waters.Decrypt(usk, ct).Equal(m))
}

// A ciphertext for one identity must not decrypt correctly under a user
// secret key extracted for a different identity.
func TestWrongIdentityDoesNotDecrypt(t *testing.T) {
	rng := seededReader(17)
	v := identity.DeriveString("alice@example.com")
	vOther := identity.DeriveString("bob@example.com")

	pk, sk, err := waters.Setup(rng)
	require.NoError(t, err)

	uskOther, err := waters.ExtractUserSecretKey(pk, sk, vOther, rng)
	require.NoError(t, err)

	m, err := waters.GenerateMessage(rng)
	require.NoError(t, err)
	ct, err := waters.Encrypt(pk, v, m, rng)
	require.NoError(t, err)

	decrypted := waters.Decrypt(uskOther, ct)
	assert.False(t, decrypted.Equal(m))
}

func TestEncryptIsRandomized(t *testing.T) {
	rng := seededReader(19)
	id := identity.DeriveString(testIdentity)

	pk, _, err := waters.Setup(rng)
	require.NoError(t, err)

	m, err := waters.GenerateMessage(rng)
	require.NoError(t, err)

	ct1, err := waters.Encrypt(pk, id, m, rng)
	require.NoError(t, err)
	ct2, err := waters.Encrypt(pk, id, m, rng)
	require.NoError(t, err)

	assert.False(t, ct1.Equal(ct2))
}
