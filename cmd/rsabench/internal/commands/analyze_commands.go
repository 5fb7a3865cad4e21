package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lelegard/rsabench/internal/infrastructure/analysis"
	"github.com/lelegard/rsabench/internal/pkg/config"
)

// RunAnalyzeCmd aggregates result files from several machines into ranked
// comparison tables, one per key size and metric.
func RunAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}
	inputDir, err := cmd.Flags().GetString("input-dir")
	if err != nil {
		return fmt.Errorf("invalid input-dir flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	cfg, err := config.InitializeAnalysisConfig(configPath)
	if err != nil {
		return err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return err
	}

	a, err := analysis.Load(&cfg.Analysis, inputDir, loggerInstance)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		file, err := os.Create(filepath.Clean(outputPath))
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				loggerInstance.Warn("failed to close output file: ", err)
			}
		}()
		out = file
	}

	return a.RenderTables(out)
}

// InitAnalyzeCommands registers the analysis command
func InitAnalyzeCommands(rootCmd *cobra.Command) {
	var analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate result files into comparison tables",
		RunE:  RunAnalyzeCmd,
	}
	analyzeCmd.Flags().StringP("config", "", "", "Path to the YAML machine list (required)")
	analyzeCmd.Flags().StringP("input-dir", "", ".", "Directory holding the result files")
	analyzeCmd.Flags().StringP("output", "", "", "Output file (default: standard output)")
	_ = analyzeCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(analyzeCmd)
}
