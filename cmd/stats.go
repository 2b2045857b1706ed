package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/agentic-research/ringscan/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [output.db]",
	Short: "Summarize a finished scan database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.ReadStats(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Systems: %s\n", humanize.Comma(s.Systems))
		if s.Systems > 0 {
			fmt.Printf("Distance from origin: %.2f - %.2f ly\n", s.MinDistance, s.MaxDistance)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
