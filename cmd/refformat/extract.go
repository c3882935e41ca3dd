package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refformat/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Recover entry text from a styled HTML document",
	Long: `Extract reads a previously generated styled document and recovers the
clean entry texts: tags are stripped, entities unescaped, and font
metadata discarded. Entries print one per line, or as a JSON array
with --json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	markup, err := readInput(args)
	if err != nil {
		return err
	}

	entries := extract.Entries(markup)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no entries found in document")
		return nil
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, entry := range entries {
		fmt.Println(entry)
	}
	return nil
}

func init() {
	extractCmd.Flags().Bool("json", false, "output entries as a JSON array")

	rootCmd.AddCommand(extractCmd)
}
