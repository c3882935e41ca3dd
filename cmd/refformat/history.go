// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refformat/internal/history"
	"github.com/pdiddy/refformat/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recall past formatting runs",
	Long: `History manages the local SQLite database of formatting runs recorded
with format --save. Use subcommands to list runs, show a run's output,
or export the full history.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-20s  %-8s  %-7s  %s\n", "ID", "Created", "Format", "Entries", "Stripped")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-6d  %-20s  %-8s  %-7d  %v\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Format, r.EntryCount, r.WasStripped)
	}
	return nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the plain-text output of one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q", args[0])
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Show(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Println(run.Plain)
	return nil
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full run history as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		return store.ExportYAML(context.Background(), os.Stdout)
	},
}

func openHistory() (*history.Store, error) {
	return history.Open(types.HistoryConfig{DBPath: historyDBPath()})
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum runs to list (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
