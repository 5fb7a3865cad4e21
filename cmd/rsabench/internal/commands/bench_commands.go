package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lelegard/rsabench/internal/app"
	"github.com/lelegard/rsabench/internal/infrastructure/cryptography"
	"github.com/lelegard/rsabench/internal/infrastructure/meter"
	"github.com/lelegard/rsabench/internal/pkg/config"
)

// RunBenchCmd runs the benchmark for every requested key size and writes the
// reports to standard output. Without flags it reproduces the default run:
// all supported key sizes, keys directory discovered from the executable path.
func RunBenchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveBenchConfig(cmd)
	if err != nil {
		return err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return err
	}

	suite, err := cryptography.NewRSASuite(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create RSA suite: %w", err)
	}

	service, err := app.NewBenchService(suite, meter.NewCPUMeter(), &cfg.Bench, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create bench service: %w", err)
	}

	// Engine identification line, part of the result file format.
	fmt.Fprintf(os.Stdout, "engine: go-crypto %s, %s/%s\n\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return service.RunAll(cmd.Context(), os.Stdout)
}

// resolveBenchConfig builds the run configuration: YAML file when given,
// defaults otherwise, with explicit flags overriding either.
func resolveBenchConfig(cmd *cobra.Command) (*config.BenchConfig, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	var cfg *config.BenchConfig
	if configPath != "" {
		cfg, err = config.InitializeBenchConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = &config.BenchConfig{
			Logger: *config.DefaultLoggerSettings(),
			Bench:  *config.DefaultBenchSettings(),
		}
	}

	if cmd.Flags().Changed("key-size") {
		keySizes, err := cmd.Flags().GetIntSlice("key-size")
		if err != nil {
			return nil, fmt.Errorf("invalid key-size flag: %w", err)
		}
		cfg.Bench.KeySizes = keySizes
	}
	if cmd.Flags().Changed("keys-dir") {
		keysDir, err := cmd.Flags().GetString("keys-dir")
		if err != nil {
			return nil, fmt.Errorf("invalid keys-dir flag: %w", err)
		}
		cfg.Bench.KeysDir = keysDir
	}
	if cmd.Flags().Changed("min-cpu-time") {
		minCPUTime, err := cmd.Flags().GetFloat64("min-cpu-time")
		if err != nil {
			return nil, fmt.Errorf("invalid min-cpu-time flag: %w", err)
		}
		cfg.Bench.MinCPUSeconds = minCPUTime
	}
	if cmd.Flags().Changed("inner-loop") {
		innerLoop, err := cmd.Flags().GetInt("inner-loop")
		if err != nil {
			return nil, fmt.Errorf("invalid inner-loop flag: %w", err)
		}
		cfg.Bench.InnerLoop = innerLoop
	}

	if err := cfg.Bench.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// InitBenchCommands registers the benchmark command
func InitBenchCommands(rootCmd *cobra.Command) {
	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the RSA throughput benchmark",
		RunE:  RunBenchCmd,
	}
	runCmd.Flags().IntSliceP("key-size", "", nil, "RSA key sizes to benchmark (default 2048, 3072 and 4096)")
	runCmd.Flags().StringP("keys-dir", "", "", "Directory holding the rsa-<bits>-prv.pem and rsa-<bits>-pub.pem files (default: search upward from the executable)")
	runCmd.Flags().Float64P("min-cpu-time", "", config.DefaultMinCPUSeconds, "Minimum CPU time per measurement, in seconds")
	runCmd.Flags().IntP("inner-loop", "", config.DefaultInnerLoop, "Number of calls per timed batch")
	runCmd.Flags().StringP("config", "", "", "Path to a YAML configuration file")
	rootCmd.AddCommand(runCmd)
}
