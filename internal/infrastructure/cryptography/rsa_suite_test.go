//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelegard/rsabench/internal/domain/bench"
	"github.com/lelegard/rsabench/internal/pkg/testutil"
)

const testKeySize = 2048

func setupRSASuite(t *testing.T) bench.RSASuite {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	suite, err := NewRSASuite(logger)
	require.NoError(t, err)
	return suite
}

func generateKey(t *testing.T, bits int) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)
	return key
}

func TestRSASuite(t *testing.T) {
	suite := setupRSASuite(t)
	key := generateKey(t, testKeySize)

	t.Run("EncryptDecryptRoundTrip", func(t *testing.T) {
		plainText := make([]byte, key.PublicKey.Size()/2)
		for i := range plainText {
			plainText[i] = 0xA5
		}

		cipherText, err := suite.EncryptOAEP(plainText, &key.PublicKey)
		assert.NoError(t, err)
		assert.Len(t, cipherText, key.PublicKey.Size())

		decrypted, err := suite.DecryptOAEP(cipherText, key)
		assert.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EncryptOversizedPlaintext", func(t *testing.T) {
		plainText := make([]byte, key.PublicKey.Size())

		_, err := suite.EncryptOAEP(plainText, &key.PublicKey)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OAEP limit")
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		cipherText, err := suite.EncryptOAEP([]byte("secret"), &key.PublicKey)
		assert.NoError(t, err)

		wrongKey := generateKey(t, testKeySize)
		_, err = suite.DecryptOAEP(cipherText, wrongKey)
		assert.Error(t, err)
	})

	t.Run("SignAndVerify", func(t *testing.T) {
		data := []byte("benchmark input data")

		signature, err := suite.SignPSS(data, key)
		assert.NoError(t, err)
		assert.Len(t, signature, key.PublicKey.Size())

		valid, err := suite.VerifyPSS(data, signature, &key.PublicKey)
		assert.NoError(t, err)
		assert.True(t, valid)

		tampered := []byte("benchmark input datA")
		valid, err = suite.VerifyPSS(tampered, signature, &key.PublicKey)
		assert.Error(t, err)
		assert.False(t, valid)
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := suite.EncryptOAEP([]byte("x"), nil)
		assert.Error(t, err)

		_, err = suite.DecryptOAEP([]byte("x"), nil)
		assert.Error(t, err)

		_, err = suite.SignPSS([]byte("x"), nil)
		assert.Error(t, err)

		_, err = suite.VerifyPSS([]byte("x"), []byte("y"), nil)
		assert.Error(t, err)
	})
}

func TestRSASuiteCheckKeyPair(t *testing.T) {
	suite := setupRSASuite(t)

	key := generateKey(t, testKeySize)
	assert.NoError(t, suite.CheckKeyPair(key, &key.PublicKey))

	// Keys of the same size are consistent even when unrelated: the check is
	// on sizes, not on the key material.
	other := generateKey(t, testKeySize)
	assert.NoError(t, suite.CheckKeyPair(key, &other.PublicKey))

	smaller := generateKey(t, 1024)
	err := suite.CheckKeyPair(key, &smaller.PublicKey)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent key sizes")

	assert.Error(t, suite.CheckKeyPair(nil, &key.PublicKey))
	assert.Error(t, suite.CheckKeyPair(key, nil))
}

func TestRSASuiteReadKeys(t *testing.T) {
	suite := setupRSASuite(t)
	tmpDir := t.TempDir()

	privPath, pubPath := testutil.WriteRSAKeyPair(t, tmpDir, testKeySize)

	privateKey, err := suite.ReadPrivateKey(privPath)
	require.NoError(t, err)
	assert.Equal(t, testKeySize, privateKey.N.BitLen())

	publicKey, err := suite.ReadPublicKey(pubPath)
	require.NoError(t, err)
	assert.Equal(t, testKeySize, publicKey.N.BitLen())

	assert.NoError(t, suite.CheckKeyPair(privateKey, publicKey))

	t.Run("MissingFile", func(t *testing.T) {
		_, err := suite.ReadPrivateKey(filepath.Join(tmpDir, "absent.pem"))
		assert.Error(t, err)

		_, err = suite.ReadPublicKey(filepath.Join(tmpDir, "absent.pem"))
		assert.Error(t, err)
	})

	t.Run("NotPEM", func(t *testing.T) {
		badPath := filepath.Join(tmpDir, "garbage.pem")
		require.NoError(t, testutil.CreateTestFile(badPath, []byte("not a pem file")))

		_, err := suite.ReadPrivateKey(badPath)
		assert.Error(t, err)

		_, err = suite.ReadPublicKey(badPath)
		assert.Error(t, err)
	})
}
