//go:build unit
// +build unit

package bench

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementRates(t *testing.T) {
	m := &Measurement{
		Operation: OperationOAEPEncrypt,
		Count:     2000,
		Bytes:     2000 * 128,
		Elapsed:   2 * MicrosecondsPerSecond,
	}

	assert.InDelta(t, 1000.0, m.OpsPerSecond(), 0.001)
	assert.InDelta(t, 1000.0*128*8, m.BitsPerSecond(), 0.001)

	assert.Greater(t, m.OpsPerSecond(), 0.0)
	assert.False(t, math.IsInf(m.OpsPerSecond(), 0))
	assert.False(t, math.IsNaN(m.BitsPerSecond()))
}

func TestMeasurementRatesZeroElapsed(t *testing.T) {
	m := &Measurement{Operation: OperationPSSSign, Count: 10}

	assert.Zero(t, m.OpsPerSecond())
	assert.Zero(t, m.BitsPerSecond())
}

func TestReportWrite(t *testing.T) {
	report := &Report{
		RunID:      "7a3f9f3e-0000-0000-0000-000000000000",
		Algorithm:  AlgorithmRSA,
		KeyBits:    2048,
		DataSize:   128,
		OutputSize: 256,
		Measurements: []Measurement{
			{Operation: OperationOAEPEncrypt, Count: 1000, Bytes: 128000, Elapsed: 2000000},
			{Operation: OperationOAEPDecrypt, Count: 500, Bytes: 128000, Elapsed: 2100000},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "run-id: 7a3f9f3e")
	assert.Contains(t, out, "algo: RSA\n")
	assert.Contains(t, out, "key-size: 2048\n")
	assert.Contains(t, out, "data-size: 128\n")
	assert.Contains(t, out, "output-size: 256\n")
	assert.Contains(t, out, "oaep-encrypt-microsec: 2000000\n")
	assert.Contains(t, out, "oaep-encrypt-count: 1000\n")
	assert.Contains(t, out, "oaep-encrypt-rate: 500.00\n")
	assert.Contains(t, out, "oaep-decrypt-count: 500\n")
}

func TestKeySizeHelpers(t *testing.T) {
	for _, bits := range SupportedKeySizes() {
		assert.True(t, KeySizeSupported(bits))
	}
	assert.False(t, KeySizeSupported(1024))
	assert.False(t, KeySizeSupported(0))

	assert.Equal(t, "rsa-2048-prv.pem", PrivateKeyFileName(2048))
	assert.Equal(t, "rsa-4096-pub.pem", PublicKeyFileName(4096))
	assert.Len(t, Operations(), 4)
}
