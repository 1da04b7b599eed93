package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sexpfmt/internal/diag"
	"sexpfmt/internal/diagfmt"
	"sexpfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Tokenize a list file",
	Long:  `Tokenize breaks down a list file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		fmt.Fprintln(os.Stderr, diag.RenderBag(result.Bag, result.FileSet, useColor(cmd, os.Stderr)))
	}

	switch outputFormat {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}
