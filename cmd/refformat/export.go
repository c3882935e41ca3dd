// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/refformat/internal/export"
	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/internal/process"
	"github.com/pdiddy/refformat/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Format a reference list and write it as a Word document file",
	Long: `Export runs the full formatting pipeline and writes the result as a
Word-compatible HTML document with the configured fonts, sizes, and
paragraph spacing. The write is atomic: a failed export leaves any
existing destination file untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return fmt.Errorf("destination required: use --out")
	}

	formatName, _ := cmd.Flags().GetString("format")
	f := numbering.ByName(formatName)

	p := process.New(fontsFromConfig(), logger)
	result := p.Process(raw, f)
	if len(result.Entries) == 0 {
		return fmt.Errorf("no entries found in input")
	}

	opts := exportOptsFromFlags(cmd)

	if err := export.Write(out, result.Entries, f, opts); err != nil {
		if errors.Is(err, export.ErrResourceUnavailable) {
			return fmt.Errorf("%w\nclose the destination file if it is open in Word, or check its permissions", err)
		}
		return err
	}

	fmt.Fprintf(os.Stderr, "exported %d entries to %s\n", len(result.Entries), out)
	return nil
}

// exportOptsFromFlags merges flag values over config-file defaults.
func exportOptsFromFlags(cmd *cobra.Command) types.ExportOptions {
	opts := types.DefaultExportOptions()
	opts.FontConfig = fontsFromConfig()

	if v := viper.GetFloat64("export.line_spacing"); v > 0 {
		opts.LineSpacing = v
	}
	if v := viper.GetFloat64("export.item_spacing_pt"); v > 0 {
		opts.ItemSpacingPt = v
	}
	if v := viper.GetFloat64("export.hanging_indent_pt"); v > 0 {
		opts.HangingIndentPt = v
	}

	if v, _ := cmd.Flags().GetFloat64("chinese-size"); v > 0 {
		opts.ChineseSizePt = v
	}
	if v, _ := cmd.Flags().GetFloat64("english-size"); v > 0 {
		opts.EnglishSizePt = v
	}
	if v, _ := cmd.Flags().GetFloat64("line-spacing"); v > 0 {
		opts.LineSpacing = v
	}
	if v, _ := cmd.Flags().GetFloat64("item-spacing"); v > 0 {
		opts.ItemSpacingPt = v
	}
	if v, _ := cmd.Flags().GetFloat64("hanging-indent"); v > 0 {
		opts.HangingIndentPt = v
	}
	if v, _ := cmd.Flags().GetString("title"); v != "" {
		opts.Title = v
	}
	if v, _ := cmd.Flags().GetFloat64("title-size"); v > 0 {
		opts.TitleSizePt = v
	}
	if v, _ := cmd.Flags().GetString("title-align"); v != "" {
		opts.TitleAlign = v
	}

	return opts
}

func init() {
	exportCmd.Flags().String("out", "", "destination document file (required)")
	exportCmd.Flags().String("format", "plain", "numbering format: bracket, plain, or paren")
	exportCmd.Flags().Float64("chinese-size", 0, "Chinese font size in points")
	exportCmd.Flags().Float64("english-size", 0, "English font size in points")
	exportCmd.Flags().Float64("line-spacing", 0, "line height multiplier")
	exportCmd.Flags().Float64("item-spacing", 0, "gap between entries in points")
	exportCmd.Flags().Float64("hanging-indent", 0, "hanging indent in points")
	exportCmd.Flags().String("title", "", "optional heading above the list")
	exportCmd.Flags().Float64("title-size", 0, "heading size in points")
	exportCmd.Flags().String("title-align", "", "heading alignment: left, center, or right")

	rootCmd.AddCommand(exportCmd)
}
