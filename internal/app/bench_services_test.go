//go:build unit && (linux || darwin)

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelegard/rsabench/internal/domain/bench"
	"github.com/lelegard/rsabench/internal/infrastructure/cryptography"
	"github.com/lelegard/rsabench/internal/infrastructure/meter"
	"github.com/lelegard/rsabench/internal/pkg/config"
	"github.com/lelegard/rsabench/internal/pkg/testutil"
)

// Short measurement window so the full four-operation cycle stays fast.
func testSettings(keysDir string) *config.BenchSettings {
	return &config.BenchSettings{
		KeySizes:      []int{2048},
		KeysDir:       keysDir,
		MinCPUSeconds: 0.05,
		InnerLoop:     2,
	}
}

func setupBenchService(t *testing.T, settings *config.BenchSettings) bench.BenchService {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	suite, err := cryptography.NewRSASuite(logger)
	require.NoError(t, err)

	service, err := NewBenchService(suite, meter.NewCPUMeter(), settings, logger)
	require.NoError(t, err)
	return service
}

func TestBenchServiceRunKeySize(t *testing.T) {
	keysDir := t.TempDir()
	testutil.WriteRSAKeyPair(t, keysDir, 2048)

	service := setupBenchService(t, testSettings(keysDir))

	report, err := service.RunKeySize(context.Background(), 2048)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, bench.AlgorithmRSA, report.Algorithm)
	assert.Equal(t, 2048, report.KeyBits)
	assert.Equal(t, 128, report.DataSize)
	assert.Equal(t, 256, report.OutputSize)

	require.Len(t, report.Measurements, 4)
	assert.Equal(t, bench.Operations(), []string{
		report.Measurements[0].Operation,
		report.Measurements[1].Operation,
		report.Measurements[2].Operation,
		report.Measurements[3].Operation,
	})

	for _, m := range report.Measurements {
		assert.GreaterOrEqual(t, m.Count, int64(2), m.Operation)
		assert.Greater(t, m.Elapsed, int64(0), m.Operation)
		assert.Greater(t, m.OpsPerSecond(), 0.0, m.Operation)
		assert.Greater(t, m.BitsPerSecond(), 0.0, m.Operation)
	}
}

func TestBenchServiceRunAll(t *testing.T) {
	keysDir := t.TempDir()
	testutil.WriteRSAKeyPair(t, keysDir, 2048)

	service := setupBenchService(t, testSettings(keysDir))

	var out bytes.Buffer
	require.NoError(t, service.RunAll(context.Background(), &out))

	assert.Contains(t, out.String(), "algo: RSA")
	assert.Contains(t, out.String(), "key-size: 2048")
	assert.Contains(t, out.String(), "oaep-encrypt-count: ")
	assert.Contains(t, out.String(), "pss-verify-microsec: ")
}

func TestBenchServiceErrors(t *testing.T) {
	t.Run("missing key files", func(t *testing.T) {
		service := setupBenchService(t, testSettings(t.TempDir()))

		_, err := service.RunKeySize(context.Background(), 2048)
		assert.Error(t, err)
	})

	t.Run("missing keys directory", func(t *testing.T) {
		keysDir := t.TempDir()
		settings := testSettings(keysDir + "/absent")
		service := setupBenchService(t, settings)

		_, err := service.RunKeySize(context.Background(), 2048)
		assert.Error(t, err)
	})

	t.Run("inconsistent key sizes", func(t *testing.T) {
		keysDir := t.TempDir()
		testutil.WriteRSAKeyPair(t, keysDir, 2048)

		// Replace the public key with one of a different size.
		otherDir := t.TempDir()
		_, otherPub := testutil.WriteRSAKeyPair(t, otherDir, 3072)
		pubPEM, err := os.ReadFile(otherPub)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(keysDir, bench.PublicKeyFileName(2048)), pubPEM, 0600))

		service := setupBenchService(t, testSettings(keysDir))

		_, err = service.RunKeySize(context.Background(), 2048)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inconsistent key sizes")
	})

	t.Run("unsupported key size", func(t *testing.T) {
		service := setupBenchService(t, testSettings(t.TempDir()))

		_, err := service.RunKeySize(context.Background(), 1024)
		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		keysDir := t.TempDir()
		testutil.WriteRSAKeyPair(t, keysDir, 2048)
		service := setupBenchService(t, testSettings(keysDir))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.RunKeySize(ctx, 2048)
		assert.Error(t, err)
	})

	t.Run("invalid settings rejected", func(t *testing.T) {
		logger := testutil.SetupTestLogger(t)
		suite, err := cryptography.NewRSASuite(logger)
		require.NoError(t, err)

		bad := &config.BenchSettings{KeySizes: []int{1024}, MinCPUSeconds: 2, InnerLoop: 10}
		_, err = NewBenchService(suite, meter.NewCPUMeter(), bad, logger)
		assert.Error(t, err)
	})
}
