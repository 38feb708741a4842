package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/mxfile"
)

// statsCommand reports diagram statistics.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show cell, edge, group, and layer statistics",
		Long: `Stats loads a diagram and prints its structural summary: cell counts
by kind, label coverage, bounding box of all vertices, and per-layer
distribution.

Examples:
  drawio stats diagram.drawio
  drawio stats --json diagram.drawio | jq .total_cells`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			m := model.New()
			if _, err := mxfile.Import(m, text); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			stats := m.GetStats()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			printStats(stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit statistics as JSON")
	return cmd
}
