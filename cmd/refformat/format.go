// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refformat/internal/history"
	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/internal/process"
	"github.com/pdiddy/refformat/pkg/types"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Clean, renumber, and render a reference list",
	Long: `Format reads pasted reference text from a file or stdin, strips any
pre-existing numbering, normalizes mixed-script punctuation, and prints
the renumbered plain-text listing. The Word-compatible styled document
can be written alongside with --html-out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	f := numbering.ByName(formatName)

	p := process.New(fontsFromConfig(), logger)
	result := p.Process(raw, f)

	if result.Plain == "" {
		fmt.Fprintln(os.Stderr, "no entries found in input")
		return nil
	}

	if result.WasStripped {
		fmt.Fprintln(os.Stderr, "stripped pre-existing numbering")
	}

	htmlOut, _ := cmd.Flags().GetString("html-out")
	if htmlOut != "" {
		if err := writeOutput(htmlOut, result.Styled); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "styled document written to %s\n", htmlOut)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveRun(cmd.Context(), f.Name, result); err != nil {
			return err
		}
	}

	return writeOutput("", result.Plain)
}

func saveRun(ctx context.Context, formatName string, result types.Result) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := history.Open(types.HistoryConfig{DBPath: historyDBPath()})
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(ctx, history.Run{
		Format:      formatName,
		EntryCount:  len(result.Entries),
		WasStripped: result.WasStripped,
		Plain:       result.Plain,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "saved as run %d\n", id)
	return nil
}

func init() {
	formatCmd.Flags().String("format", "plain", "numbering format: bracket, plain, or paren")
	formatCmd.Flags().String("html-out", "", "write the styled HTML document to this file")
	formatCmd.Flags().Bool("save", false, "record this run in the history database")

	rootCmd.AddCommand(formatCmd)
}
