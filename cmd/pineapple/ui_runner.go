package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"pineapple/internal/driver"
	"pineapple/internal/ui"
)

type tokenizeOutcome struct {
	results []driver.TokenizeDirResult
	err     error
}

// runTokenizeDirWithUI runs TokenizeDir in the background and renders its
// progress to out until it finishes.
func runTokenizeDirWithUI(ctx context.Context, out io.Writer, dir string, opts driver.Options, jobs int) ([]driver.TokenizeDirResult, error) {
	files, err := driver.SourceFiles(dir)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.TokenizeDir(ctx, dir, opts, jobs)
		outcomeCh <- tokenizeOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("tokenize", dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(ctx))
	_, uiErr := program.Run()
	return awaitTokenize(uiErr, events, outcomeCh)
}

// awaitTokenize waits for the background run once the UI has exited. The
// UI may stop early (ctrl+c or a render error), so events are drained
// whatever Run returned.
func awaitTokenize(uiErr error, events <-chan driver.Event, outcomeCh <-chan tokenizeOutcome) ([]driver.TokenizeDirResult, error) {
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
