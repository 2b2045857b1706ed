package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/ringscan/internal/jsonpath"
	"github.com/agentic-research/ringscan/internal/store"
)

var inspectLimit int

// inspectCmd evaluates a JSONPath expression against the retained body list
// of each stored system. Useful for digging into fields the scan itself
// never looked at.
var inspectCmd = &cobra.Command{
	Use:   "inspect [output.db] [jsonpath]",
	Short: "Evaluate a JSONPath expression against stored system bodies",
	Example: `  ringscan inspect out.db '$[*].subType'
  ringscan inspect out.db '$[?(@.isLandable == true)].name'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := jsonpath.Parse(args[1])
		if err != nil {
			return err
		}

		printed := 0
		err = store.StreamRows(args[0], func(r store.Row) error {
			if inspectLimit > 0 && printed >= inspectLimit {
				return nil
			}
			doc, err := jsonpath.ParseDocument(r.SystemData)
			if err != nil {
				return fmt.Errorf("system %s: %w", r.SystemName, err)
			}
			hits := expr.Get(doc)
			if len(hits) == 0 {
				return nil
			}
			for _, h := range hits {
				fmt.Printf("%s\t%s\n", r.SystemName, jsonpath.Render(h))
			}
			printed++
			return nil
		})
		return err
	},
}

func init() {
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "Stop after this many systems with matches (0 = all)")
	rootCmd.AddCommand(inspectCmd)
}
