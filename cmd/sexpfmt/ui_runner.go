package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sexpfmt/internal/driver"
	"sexpfmt/internal/project"
	"sexpfmt/internal/ui"
)

type fmtOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFmtWithUI runs FormatPaths under an interactive progress display.
// Результаты приходят по OnResult и транслируются в события модели.
func runFmtWithUI(cmd *cobra.Command, paths []string, cfg project.Config, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	files, err := driver.CollectFiles(cmd.Context(), paths, cfg)
	if err != nil {
		return nil, err
	}

	events := make(chan ui.Event, 256)
	outcomeCh := make(chan fmtOutcome, 1)

	opts.OnResult = func(res driver.FormatResult) {
		status := ui.StatusClean
		switch {
		case res.Err != nil:
			status = ui.StatusError
		case res.Changed:
			status = ui.StatusRewritten
		}
		events <- ui.Event{File: res.Path, Status: status}
	}

	go func() {
		results, err := driver.FormatPaths(cmd.Context(), paths, cfg, opts)
		outcomeCh <- fmtOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("sexpfmt", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
