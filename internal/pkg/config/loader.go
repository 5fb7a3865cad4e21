package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// BenchConfig is the root of the optional benchmark YAML configuration file.
type BenchConfig struct {
	Logger LoggerSettings `mapstructure:"logger"`
	Bench  BenchSettings  `mapstructure:"bench"`
}

// AnalysisConfig is the root of the analysis YAML configuration file.
type AnalysisConfig struct {
	Logger   LoggerSettings   `mapstructure:"logger"`
	Analysis AnalysisSettings `mapstructure:"analysis"`
}

// InitializeBenchConfig loads the benchmark configuration from a YAML file.
// Fields absent from the file keep their defaults.
func InitializeBenchConfig(configPath string) (*BenchConfig, error) {
	cfg := &BenchConfig{
		Logger: *DefaultLoggerSettings(),
		Bench:  *DefaultBenchSettings(),
	}

	if err := loadInto(configPath, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Logger.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Bench.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// InitializeAnalysisConfig loads the analysis configuration from a YAML file.
// The machine list has no default: the file is mandatory for analysis.
func InitializeAnalysisConfig(configPath string) (*AnalysisConfig, error) {
	cfg := &AnalysisConfig{
		Logger: *DefaultLoggerSettings(),
	}

	if err := loadInto(configPath, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Logger.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadInto(configPath string, target interface{}) error {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(target); err != nil {
		return fmt.Errorf("failed to unmarshal config file %s: %w", configPath, err)
	}

	return nil
}
