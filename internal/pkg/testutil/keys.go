package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lelegard/rsabench/internal/domain/bench"
)

// GenerateRSAKey generates a throwaway RSA key pair for tests.
func GenerateRSAKey(t *testing.T, bits int) (*rsa.PrivateKey, *rsa.PublicKey) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)
	return privateKey, &privateKey.PublicKey
}

// WriteRSAKeyPair generates an RSA key pair and writes it into dir using the
// benchmark file naming convention. Returns the private and public key paths.
func WriteRSAKeyPair(t *testing.T, dir string, bits int) (string, string) {
	t.Helper()

	privateKey, publicKey := GenerateRSAKey(t, bits)

	privPath := filepath.Join(dir, bench.PrivateKeyFileName(bits))
	privBlock := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	require.NoError(t, CreateTestFile(privPath, pem.EncodeToMemory(privBlock)))

	pubBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	pubPath := filepath.Join(dir, bench.PublicKeyFileName(bits))
	pubBlock := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubBytes,
	}
	require.NoError(t, CreateTestFile(pubPath, pem.EncodeToMemory(pubBlock)))

	return privPath, pubPath
}
