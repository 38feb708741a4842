package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/placeholder"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	shapesFile string // extra shape library (TOML)
	output     string // output file path (stdout if empty)
	list       bool   // list placeholders without rewriting
}

// resolveCommand substitutes placeholder shapes in a serialized diagram
// with final styles from the shape library. Resolution is all-or-
// nothing: any unknown shape leaves the document untouched and reports
// every failure.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Substitute placeholder shapes with library styles",
		Long: `Resolve scans a draw.io file for placeholder cells (style token
placeholder=1, id prefix placeholder-) and rewrites their styles with
the shape library's final content. Shape names come from the cell ids,
so relabeled placeholders still resolve.

The built-in library is extended by ~/.config/drawio/shapes.toml when
present, and by --shapes.

Examples:
  drawio resolve diagram.drawio -o resolved.drawio
  drawio resolve --shapes custom.toml diagram.drawio
  drawio resolve --list diagram.drawio`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			lib, err := c.loadShapes(opts.shapesFile)
			if err != nil {
				return err
			}

			if opts.list {
				found := placeholder.FindInXML(text)
				if len(found) == 0 {
					printInfo("no placeholders found")
					return nil
				}
				for _, p := range found {
					_, known := lib.Lookup(p.ShapeName)
					if known {
						printSuccess("%s (%s)", p.ShapeName, p.ID)
					} else {
						printWarning("%s (%s) is not in the library", p.ShapeName, p.ID)
					}
				}
				return nil
			}

			p := newProgress(c.Logger)
			out, err := placeholder.ResolveInXML(text, lib.Resolver())
			if err != nil {
				var resErr *placeholder.ResolveError
				if stderrors.As(err, &resErr) {
					for _, f := range resErr.Failures {
						printError("%s (%s)", f.ShapeName, f.ID)
					}
					printWarning("document left unchanged")
				}
				return err
			}

			if err := writeOutput(opts.output, out); err != nil {
				return err
			}
			p.done("Resolved placeholders")
			if opts.output != "" {
				printFile(opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.shapesFile, "shapes", "", "extra shape library (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list placeholders without rewriting")

	return cmd
}
