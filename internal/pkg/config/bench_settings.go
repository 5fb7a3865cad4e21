package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/lelegard/rsabench/internal/pkg/validators"
)

// Default measurement window and batching, matching the historical benchmark
// convention: batches of 10 calls until at least 2 seconds of CPU time elapsed.
const (
	DefaultMinCPUSeconds = 2.0
	DefaultInnerLoop     = 10
)

// BenchSettings holds configuration settings for a benchmark run: which key
// sizes to measure, where the key files live and the measurement window.
type BenchSettings struct {
	KeySizes      []int   `mapstructure:"key_sizes" validate:"required,min=1,dive,rsakeysize"`
	KeysDir       string  `mapstructure:"keys_dir"`
	MinCPUSeconds float64 `mapstructure:"min_cpu_seconds" validate:"gt=0"`
	InnerLoop     int     `mapstructure:"inner_loop" validate:"gte=1,lte=10000"`
}

// DefaultBenchSettings returns settings reproducing the flag-less behavior:
// all supported key sizes, keys directory discovered from the executable path.
func DefaultBenchSettings() *BenchSettings {
	return &BenchSettings{
		KeySizes:      []int{2048, 3072, 4096},
		MinCPUSeconds: DefaultMinCPUSeconds,
		InnerLoop:     DefaultInnerLoop,
	}
}

// Validate checks that all fields in BenchSettings are valid
func (s *BenchSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("rsakeysize", validators.RSAKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BenchSettings: %w", err)
	}

	return nil
}
