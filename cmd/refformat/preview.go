package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/internal/process"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render the entry-boundary preview as HTML",
	Long: `Preview shows how the input splits into bibliographic entries before
committing to a format: each detected entry becomes a colored block in
an HTML document. With --formatted the input is cleaned and renumbered
first, which makes the detection exact.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	p := process.New(fontsFromConfig(), logger)

	var html string
	if formatted, _ := cmd.Flags().GetBool("formatted"); formatted {
		formatName, _ := cmd.Flags().GetString("format")
		html = p.FormattedSplitPreview(raw, numbering.ByName(formatName))
	} else {
		html = p.SplitPreview(raw)
	}

	if html == "" {
		fmt.Fprintln(os.Stderr, "no entries found in input")
		return nil
	}

	out, _ := cmd.Flags().GetString("out")
	return writeOutput(out, html)
}

func init() {
	previewCmd.Flags().Bool("formatted", false, "format the input before boundary detection")
	previewCmd.Flags().String("format", "plain", "numbering format used with --formatted")
	previewCmd.Flags().String("out", "", "write the preview HTML to this file instead of stdout")

	rootCmd.AddCommand(previewCmd)
}
