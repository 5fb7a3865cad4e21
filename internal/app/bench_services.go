package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lelegard/rsabench/internal/domain/bench"
	"github.com/lelegard/rsabench/internal/pkg/config"
	"github.com/lelegard/rsabench/internal/pkg/keyfs"
	"github.com/lelegard/rsabench/internal/pkg/logger"
)

// benchService implements the BenchService interface for running timed RSA loops
type benchService struct {
	suite    bench.RSASuite
	meter    bench.CPUMeter
	settings *config.BenchSettings
	logger   logger.Logger
}

// NewBenchService creates a new benchService instance
func NewBenchService(
	suite bench.RSASuite,
	meter bench.CPUMeter,
	settings *config.BenchSettings,
	logger logger.Logger,
) (bench.BenchService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bench settings: %w", err)
	}

	return &benchService{
		suite:    suite,
		meter:    meter,
		settings: settings,
		logger:   logger,
	}, nil
}

// RunAll benchmarks every configured key size in order, writing each report to w.
func (s *benchService) RunAll(ctx context.Context, w io.Writer) error {
	for _, bits := range s.settings.KeySizes {
		report, err := s.RunKeySize(ctx, bits)
		if err != nil {
			return err
		}
		if err := report.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// RunKeySize benchmarks the four RSA operations for one key size.
// Both key files are loaded from the keys directory, checked for consistency,
// then each operation runs in a timed loop over a fixed input buffer of half
// the modulus size, filled with 0xA5.
func (s *benchService) RunKeySize(ctx context.Context, bits int) (*bench.Report, error) {
	if !bench.KeySizeSupported(bits) {
		return nil, fmt.Errorf("unsupported RSA key size: %d", bits)
	}

	keysDir, err := s.keysDir()
	if err != nil {
		return nil, err
	}

	privateKey, err := s.suite.ReadPrivateKey(filepath.Join(keysDir, bench.PrivateKeyFileName(bits)))
	if err != nil {
		return nil, err
	}

	publicKey, err := s.suite.ReadPublicKey(filepath.Join(keysDir, bench.PublicKeyFileName(bits)))
	if err != nil {
		return nil, err
	}

	if err := s.suite.CheckKeyPair(privateKey, publicKey); err != nil {
		return nil, err
	}

	// Input of half the modulus size, the usual scheme for asymmetric
	// primitives: RSA-2048 -> 256 byte blocks -> 128 byte payload.
	input := bytes.Repeat([]byte{0xA5}, privateKey.Size()/2)

	report := &bench.Report{
		RunID:      uuid.New().String(),
		Algorithm:  bench.AlgorithmRSA,
		KeyBits:    privateKey.N.BitLen(),
		DataSize:   len(input),
		OutputSize: privateKey.Size(),
	}

	s.logger.Info(fmt.Sprintf("Benchmarking %s-%d", report.Algorithm, report.KeyBits))

	// OAEP encryption. The last ciphertext feeds the decryption loop.
	var cipherText []byte
	m, err := s.measure(ctx, bench.OperationOAEPEncrypt, len(input), func() error {
		out, err := s.suite.EncryptOAEP(input, publicKey)
		cipherText = out
		return err
	})
	if err != nil {
		return nil, err
	}
	report.Measurements = append(report.Measurements, m)

	// OAEP decryption, with a round-trip check on the final output.
	var decrypted []byte
	m, err = s.measure(ctx, bench.OperationOAEPDecrypt, len(cipherText), func() error {
		out, err := s.suite.DecryptOAEP(cipherText, privateKey)
		decrypted = out
		return err
	})
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(decrypted, input) {
		return nil, errors.New("decrypted output does not match the original input")
	}
	report.Measurements = append(report.Measurements, m)

	// PSS signing. The last signature feeds the verification loop.
	var signature []byte
	m, err = s.measure(ctx, bench.OperationPSSSign, len(input), func() error {
		out, err := s.suite.SignPSS(input, privateKey)
		signature = out
		return err
	})
	if err != nil {
		return nil, err
	}
	report.Measurements = append(report.Measurements, m)

	// PSS verification.
	m, err = s.measure(ctx, bench.OperationPSSVerify, len(input), func() error {
		valid, err := s.suite.VerifyPSS(input, signature, publicKey)
		if err != nil {
			return err
		}
		if !valid {
			return errors.New("signature did not verify against the signed input")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.Measurements = append(report.Measurements, m)

	return report, nil
}

// measure repeats inner batches of calls until the minimum CPU time has
// elapsed, then returns the accumulated counters.
func (s *benchService) measure(ctx context.Context, operation string, bytesPerCall int, call func() error) (bench.Measurement, error) {
	minElapsed := int64(s.settings.MinCPUSeconds * bench.MicrosecondsPerSecond)

	start, err := s.meter.CPUTime()
	if err != nil {
		return bench.Measurement{}, err
	}

	var count, byteCount, elapsed int64
	for {
		if err := ctx.Err(); err != nil {
			return bench.Measurement{}, fmt.Errorf("%s interrupted: %w", operation, err)
		}

		for i := 0; i < s.settings.InnerLoop; i++ {
			if err := call(); err != nil {
				return bench.Measurement{}, fmt.Errorf("%s failed: %w", operation, err)
			}
		}
		count += int64(s.settings.InnerLoop)
		byteCount += int64(s.settings.InnerLoop) * int64(bytesPerCall)

		now, err := s.meter.CPUTime()
		if err != nil {
			return bench.Measurement{}, err
		}
		if now-start >= minElapsed {
			elapsed = now - start
			break
		}
	}

	m := bench.Measurement{
		Operation: operation,
		Count:     count,
		Bytes:     byteCount,
		Elapsed:   elapsed,
	}
	s.logger.Info(fmt.Sprintf("%s: %d calls in %d microseconds (%.1f ops/s)",
		operation, m.Count, m.Elapsed, m.OpsPerSecond()))
	return m, nil
}

// keysDir resolves the keys directory: an explicit setting wins, otherwise
// discovery walks upward from the executable.
func (s *benchService) keysDir() (string, error) {
	if s.settings.KeysDir != "" {
		if err := keyfs.Validate(s.settings.KeysDir); err != nil {
			return "", err
		}
		return s.settings.KeysDir, nil
	}
	return keyfs.Discover()
}
