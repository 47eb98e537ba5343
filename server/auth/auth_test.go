package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"testing"

	"github.com/basaltmc/basalt/server/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	profile *auth.GameProfile
}

func (s *stubVerifier) Verify(name, hash string) (*auth.GameProfile, error) {
	return s.profile, nil
}

func TestLoginEncryptionScenario(t *testing.T) {
	store, err := auth.NewKeyStore()
	require.NoError(t, err)
	require.NotEmpty(t, store.PublicKeyDER)

	parsed, err := x509.ParsePKIXPublicKey(store.PublicKeyDER)
	require.NoError(t, err)
	pub, ok := parsed.(*rsa.PublicKey)
	require.True(t, ok)

	sharedSecret := make([]byte, 16)
	_, err = rand.Read(sharedSecret)
	require.NoError(t, err)
	verifyToken := make([]byte, 4)
	_, err = rand.Read(verifyToken)
	require.NoError(t, err)

	encSecret, err := rsa.EncryptPKCS1v15(rand.Reader, pub, sharedSecret)
	require.NoError(t, err)
	encToken, err := rsa.EncryptPKCS1v15(rand.Reader, pub, verifyToken)
	require.NoError(t, err)

	gotSecret, err := store.Decrypt(encSecret)
	require.NoError(t, err)
	require.Equal(t, sharedSecret, gotSecret)

	gotToken, err := store.Decrypt(encToken)
	require.NoError(t, err)
	require.Equal(t, verifyToken, gotToken)

	hash := store.DigestSecret(gotSecret)
	require.NotEmpty(t, hash)

	profileUUID := uuid.New()
	verifier := &stubVerifier{profile: &auth.GameProfile{UUID: profileUUID, Name: "Steve"}}
	profile, err := verifier.Verify("Steve", hash)
	require.NoError(t, err)
	require.Equal(t, profileUUID, profile.UUID)
}

func TestDigestSecretSpread(t *testing.T) {
	store, err := auth.NewKeyStore()
	require.NoError(t, err)
	sawNegative, sawPositive := false, false
	for i := byte(0); i < 64; i++ {
		secret := []byte{i, i, i, i, i, i, i, i, i, i, i, i, i, i, i, i}
		h := store.DigestSecret(secret)
		require.NotEmpty(t, h)
		if h[0] == '-' {
			sawNegative = true
		} else {
			sawPositive = true
		}
	}
	require.True(t, sawNegative && sawPositive)
}
