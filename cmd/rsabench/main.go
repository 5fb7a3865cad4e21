// Package main is the entry point for the rsabench application.
// It initializes the root command, registers the benchmark and analysis
// sub-commands, then executes the command-line interface.
package main

import (
	"log"

	"github.com/spf13/cobra"

	commands "github.com/lelegard/rsabench/cmd/rsabench/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsabench",
		Short: "RSA throughput benchmark",
		Long: `rsabench measures the throughput of RSA public-key primitives:
OAEP encryption and decryption, PSS signing and verification, for 2048, 3072
and 4096 bit keys. Results are key-value lines on standard output; the analyze
sub-command aggregates result files from several machines into ranked tables.`,
		SilenceUsage: true,
	}

	commands.InitBenchCommands(rootCmd)
	commands.InitAnalyzeCommands(rootCmd)

	return rootCmd.Execute()
}
