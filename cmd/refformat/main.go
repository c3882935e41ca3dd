// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the refformat CLI, a tool that
// reformats pasted academic reference lists into consistently numbered,
// dual-script (Chinese/English) output for Word.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/refformat/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the process-wide logging facade. A nop logger unless
// --verbose is given; no behavior depends on it.
var logger = zap.NewNop()

// rootCmd is the base command for the refformat CLI.
var rootCmd = &cobra.Command{
	Use:   "refformat",
	Short: "Normalize and renumber academic reference lists",
	Long: `refformat cleans pasted bibliography text: it strips pre-existing
numbering, corrects mixed full-width/half-width punctuation by script,
renumbers the entries, and renders both a plain-text listing and a
Word-compatible styled document with per-script fonts.

Each operation is a subcommand: format, preview, extract, export, and
history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger = l
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./refformat.yaml or ~/.config/refformat/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("refformat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "refformat"))
		}
	}

	viper.SetEnvPrefix("REFFORMAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// fontsFromConfig resolves the font pairing from config with the
// conventional defaults.
func fontsFromConfig() types.FontConfig {
	return types.FontConfig{
		ChineseFont: viper.GetString("fonts.chinese_font"),
		EnglishFont: viper.GetString("fonts.english_font"),
	}.Normalized()
}

// historyDBPath resolves the history database location: config value
// first, then the per-user data directory.
func historyDBPath() string {
	if p := viper.GetString("history.db_path"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "refformat-history.db"
	}
	return filepath.Join(home, ".local", "share", "refformat", "history.db")
}

// readInput reads the raw reference text from the first argument (a
// file path, or "-" for stdin) or from stdin when no argument is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// writeOutput writes s to path, or to stdout when path is empty.
func writeOutput(path, s string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, s)
		if err == nil && !strings.HasSuffix(s, "\n") {
			fmt.Println()
		}
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
