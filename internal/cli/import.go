package cli

import (
	"github.com/spf13/cobra"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/mxfile"
)

// importCommand validates a diagram file by loading it into a model.
func (c *CLI) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Parse a draw.io file and report what was loaded",
		Long: `Import parses a draw.io interchange file (mxfile or bare mxGraphModel,
with plain or compressed pages) and reports the merged page, cell, and
layer counts. Multi-page files merge into a single model: later pages
win cell-id collisions, layers merge first-wins.

Examples:
  drawio import diagram.drawio
  cat diagram.drawio | drawio import -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(loggerFromContext(cmd.Context()))

			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			m := model.New()
			result, err := mxfile.Import(m, text)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			p.done("Imported diagram")
			printSuccess("%d page(s), %d cell(s), %d layer(s)", result.Pages, result.Cells, result.Layers)
			printInfo("%s", summaryLine(m.GetStats()))
			return nil
		},
	}
}
