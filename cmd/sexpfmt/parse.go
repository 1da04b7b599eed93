package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sexpfmt/internal/diag"
	"sexpfmt/internal/diagfmt"
	"sexpfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>",
	Short: "Parse a list file and output its tree",
	Long:  `Parse reads one list file and prints the generic tree it contains`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|sexpr|json|msgpack)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, parseErr := driver.Parse(args[0], maxDiagnostics)
	if result == nil {
		return fmt.Errorf("parsing failed: %w", parseErr)
	}

	// Диагностика в stderr, дерево (если есть) в stdout.
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		fmt.Fprintln(os.Stderr, diag.RenderBag(result.Bag, result.FileSet, useColor(cmd, os.Stderr)))
	}
	if parseErr != nil {
		return fmt.Errorf("parsing failed: %w", parseErr)
	}

	switch outputFormat {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, result.Root, result.FileSet)
	case "sexpr":
		return diagfmt.FormatTreeSexpr(os.Stdout, result.Root)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Root)
	case "msgpack":
		return diagfmt.FormatTreeMsgpack(os.Stdout, result.Root)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}
