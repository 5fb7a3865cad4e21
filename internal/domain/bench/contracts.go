package bench

import (
	"context"
	"crypto/rsa"
	"io"
)

// RSASuite wraps the RSA primitives exercised by the benchmark.
// All cryptographic work is delegated to the underlying library; the suite only
// adds key file handling and fixed padding/hash choices (OAEP and PSS over SHA-256).
type RSASuite interface {
	// ReadPrivateKey reads an RSA private key from a PEM-encoded file
	// (PKCS#1 format, with PKCS#8 fallback).
	ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error)

	// ReadPublicKey reads an RSA public key from a PEM-encoded file
	// (PKCS#1 format, with PKIX fallback).
	ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error)

	// CheckKeyPair verifies that a private and a public key agree on modulus
	// bit length and byte size.
	CheckKeyPair(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) error

	// EncryptOAEP encrypts plaintext using RSA-OAEP (SHA-256) with the public key.
	// The plaintext must fit in a single block.
	EncryptOAEP(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// DecryptOAEP decrypts RSA-OAEP (SHA-256) ciphertext using the private key.
	DecryptOAEP(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// SignPSS creates an RSA-PSS signature (SHA-256, salt length equals hash
	// length) with the private key.
	SignPSS(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// VerifyPSS verifies an RSA-PSS signature using the public key.
	// Returns true if the signature is valid, false otherwise.
	VerifyPSS(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error)
}

// CPUMeter samples the CPU time consumed by the current process.
// CPU time, not wall-clock time, is the timing basis of every measurement.
type CPUMeter interface {
	// CPUTime returns accumulated user+system CPU time in microseconds.
	CPUTime() (int64, error)
}

// BenchService runs timed benchmark loops and produces reports.
type BenchService interface {
	// RunKeySize benchmarks all operations for one key size and returns the report.
	RunKeySize(ctx context.Context, bits int) (*Report, error)

	// RunAll benchmarks every configured key size in order, writing each report to w.
	RunAll(ctx context.Context, w io.Writer) error
}
