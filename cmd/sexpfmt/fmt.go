package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sexpfmt/internal/diag"
	"sexpfmt/internal/driver"
	"sexpfmt/internal/format"
	"sexpfmt/internal/project"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Rewrite list files into the canonical layout",
	Long: `Fmt re-renders KiCad-style list files in place. Directories are walked
recursively for configured extensions; glob patterns are supported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that would change without rewriting them")
	fmtCmd.Flags().Bool("stdout", false, "print formatted content to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("compact", false, "use the compact short-form layout (overrides project config)")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto, overrides project config)")
	fmtCmd.Flags().Bool("no-cache", false, "disable the canonical-verdict disk cache")
	fmtCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	// Проектный конфиг задаёт умолчания, флаги их перекрывают.
	cfg, _, err := project.LoadFromDir(".")
	if err != nil {
		return err
	}
	compact := cfg.Format.Compact
	if cmd.Flags().Changed("compact") {
		compact, _ = cmd.Flags().GetBool("compact")
	}
	jobs := cfg.Run.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}

	var cache *driver.DiskCache
	if !noCache {
		// Недоступный кеш не повод отказывать в форматировании.
		cache, _ = driver.OpenDiskCache("sexpfmt")
	}

	opts := driver.FormatOptions{
		Check:          check,
		Stdout:         writeToStdout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Options:        format.Options{CompactSave: compact},
		Cache:          cache,
	}

	var results []driver.FormatResult
	interactive := shouldUseTUI(mode) && outputFormat == "text" && !writeToStdout && !quiet
	if interactive {
		results, err = runFmtWithUI(cmd, args, cfg, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, cfg, opts)
	}
	if err != nil {
		return err
	}

	colorize := useColor(cmd, os.Stderr)
	for _, res := range results {
		if res.Bag != nil && (res.Bag.HasErrors() || res.Bag.HasWarnings()) {
			fmt.Fprintln(os.Stderr, diag.RenderBag(res.Bag, res.FileSet, colorize))
		}
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, check); err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				hasErrors = true
			}
			if res.Changed {
				hasChanges = true
			}
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
