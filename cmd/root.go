package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/ringscan/internal/config"
	"github.com/agentic-research/ringscan/internal/logger"
	"github.com/agentic-research/ringscan/internal/pipeline"
)

var (
	memoryMB  int
	workers   int
	tempDir   string
	batchSize int
	verbose   bool
)

func init() {
	defaults := config.Default()
	rootCmd.Flags().IntVar(&memoryMB, "memory-mb", defaults.Resources.MemoryLimitMB, "Store cache ceiling in MB during bulk load")
	rootCmd.Flags().IntVar(&workers, "workers", defaults.Resources.Workers, "Matcher goroutines (1 = sequential)")
	rootCmd.Flags().StringVar(&tempDir, "temp-dir", "", "Spill directory for the store engine")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", defaults.Store.BatchSize, "Rows per insert transaction")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   "ringscan [galaxy.json] [output.db]",
	Short: "Scan a galaxy dump for uninhabited systems with landable ringed bodies",
	Long: `ringscan reads a galaxy dump (JSON array or newline-delimited records),
keeps uninhabited systems whose body list contains at least one ringed,
landable body with an atmosphere, and writes the matches to an indexed
SQLite database sorted by distance from the origin.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		cfg.InputPath = args[0]
		cfg.OutputPath = args[1]
		cfg.Resources.MemoryLimitMB = memoryMB
		cfg.Resources.Workers = workers
		cfg.Resources.TempDir = tempDir
		cfg.Store.BatchSize = batchSize

		report, err := pipeline.New(cfg, newLogger()).Run()
		if err != nil {
			return err
		}

		fmt.Print(report.String())
		fmt.Printf("Database saved as single file: %s\n", cfg.OutputPath)
		fmt.Printf("Query it with: ringscan stats %s\n", cfg.OutputPath)
		return nil
	},
}

func newLogger() *logger.Logger {
	log := logger.Default()
	if verbose {
		log.SetLevel(logger.LevelDebug)
	}
	return log
}

func Execute() error {
	return rootCmd.Execute()
}
