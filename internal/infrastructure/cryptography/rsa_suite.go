package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lelegard/rsabench/internal/domain/bench"
	"github.com/lelegard/rsabench/internal/pkg/logger"
)

// rsaSuite struct that implements the RSASuite interface
type rsaSuite struct {
	logger logger.Logger
}

// NewRSASuite creates and returns a new instance of rsaSuite
func NewRSASuite(logger logger.Logger) (bench.RSASuite, error) {
	return &rsaSuite{
		logger: logger,
	}, nil
}

// oaepOverhead is the fixed OAEP padding cost with SHA-256: 2*hLen+2 bytes.
const oaepOverhead = 2*sha256.Size + 2

// EncryptOAEP encrypts plaintext using RSA-OAEP (SHA-256) with the public key.
// The plaintext must fit in a single block; the benchmark always feeds half the
// modulus size, which fits for every supported key size.
func (r *rsaSuite) EncryptOAEP(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	maxSize := publicKey.Size() - oaepOverhead
	if len(plainText) > maxSize {
		return nil, fmt.Errorf("plaintext of %d bytes exceeds the %d byte OAEP limit for this key", len(plainText), maxSize)
	}

	cipherText, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, plainText, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	return cipherText, nil
}

// DecryptOAEP decrypts RSA-OAEP (SHA-256) ciphertext using the private key.
func (r *rsaSuite) DecryptOAEP(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	plainText, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	return plainText, nil
}

// SignPSS creates an RSA-PSS signature over the SHA-256 digest of data.
// The salt length equals the hash length.
func (r *rsaSuite) SignPSS(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	signature, err := rsa.SignPSS(rand.Reader, privateKey, crypto.SHA256, hashed[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	return signature, nil
}

// VerifyPSS verifies an RSA-PSS signature using the public key.
// Returns true if the signature is valid, false otherwise.
func (r *rsaSuite) VerifyPSS(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	err := rsa.VerifyPSS(publicKey, crypto.SHA256, hashed[:], signature, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
	})
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	return true, nil
}

// CheckKeyPair verifies that the private and public key agree on modulus bit
// length and byte size, the consistency condition required before a run.
func (r *rsaSuite) CheckKeyPair(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) error {
	if privateKey == nil || publicKey == nil {
		return errors.New("key pair cannot contain nil keys")
	}

	if privateKey.N.BitLen() != publicKey.N.BitLen() || privateKey.Size() != publicKey.Size() {
		return fmt.Errorf("inconsistent key sizes: private %d bits, public %d bits",
			privateKey.N.BitLen(), publicKey.N.BitLen())
	}

	return nil
}

// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 format).
func (r *rsaSuite) ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error) {
	privKeyPEM, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	block, _ := pem.Decode(privKeyPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the private key in %s", privateKeyPath)
	}

	// First try to parse as PKCS#1 format
	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		r.logger.Info("Loaded RSA private key from ", privateKeyPath)
		return privateKey, nil
	}

	// If PKCS#1 parsing fails, try parsing as PKCS#8 format
	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key %s in either PKCS#1 or PKCS#8 format: %w", privateKeyPath, err)
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key in %s is not of type RSA", privateKeyPath)
	}

	r.logger.Info("Loaded RSA private key from ", privateKeyPath)
	return privateKey, nil
}

// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKIX format).
func (r *rsaSuite) ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error) {
	pubKeyPEM, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	block, _ := pem.Decode(pubKeyPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the public key in %s", publicKeyPath)
	}

	// Try to parse as PKCS#1 format first
	publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err == nil {
		r.logger.Info("Loaded RSA public key from ", publicKeyPath)
		return publicKey, nil
	}

	// If PKCS#1 parsing fails, try parsing as PKIX format
	pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key %s in either PKCS#1 or PKIX format: %w", publicKeyPath, err)
	}

	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key in %s is not of type RSA", publicKeyPath)
	}

	r.logger.Info("Loaded RSA public key from ", publicKeyPath)
	return publicKey, nil
}
