package cli

import (
	"github.com/spf13/cobra"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/deflate"
)

// compressCommand runs the legacy page codec forward: percent-encode,
// raw deflate, base64.
func (c *CLI) compressCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compress <file>",
		Short: "Compress text with the legacy draw.io page encoding",
		Long: `Compress applies the encoding draw.io uses for compressed diagram
pages: percent-encoding, raw deflate, then base64. The output is the
opaque text found inside a compressed <diagram> element.

Examples:
  drawio compress page.xml
  echo '<mxGraphModel/>' | drawio compress -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			out, err := deflate.Compress(text)
			if err != nil {
				return err
			}
			return writeOutput(output, out+"\n")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// decompressCommand runs the codec in reverse.
func (c *CLI) decompressCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decompress <file>",
		Short: "Decompress legacy draw.io page text",
		Long: `Decompress inverts the legacy page encoding: base64 decode, raw
inflate, percent-decode. Surrounding whitespace is tolerated.

Examples:
  drawio decompress page.txt
  pbpaste | drawio decompress -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			out, err := deflate.Decompress(text)
			if err != nil {
				printError("input is not valid compressed page text")
				return err
			}
			return writeOutput(output, out+"\n")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
