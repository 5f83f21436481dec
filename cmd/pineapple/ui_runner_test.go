package main

import (
	"errors"
	"testing"
	"time"

	"pineapple/internal/driver"
)

func TestAwaitTokenizeDrainsAfterCleanQuit(t *testing.T) {
	events := make(chan driver.Event)
	outcomeCh := make(chan tokenizeOutcome, 1)
	go func() {
		// unbuffered: each send blocks until someone reads
		for i := 0; i < 1000; i++ {
			events <- driver.Event{File: "a.pineapple", Stage: driver.StageLex, Status: driver.StatusWorking}
		}
		outcomeCh <- tokenizeOutcome{results: []driver.TokenizeDirResult{{}}}
		close(events)
	}()

	done := make(chan struct{})
	var (
		res []driver.TokenizeDirResult
		err error
	)
	go func() {
		res, err = awaitTokenize(nil, events, outcomeCh)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("tokenize run blocked on progress events after the UI quit")
	}
	if err != nil || len(res) != 1 {
		t.Fatalf("unexpected outcome: %v, %d results", err, len(res))
	}
}

func TestAwaitTokenizePrefersRunError(t *testing.T) {
	uiErr := errors.New("ui failed")
	runErr := errors.New("run failed")

	events := make(chan driver.Event)
	close(events)
	outcomeCh := make(chan tokenizeOutcome, 1)
	outcomeCh <- tokenizeOutcome{err: runErr}
	if _, err := awaitTokenize(uiErr, events, outcomeCh); !errors.Is(err, runErr) {
		t.Fatalf("expected run error, got %v", err)
	}

	outcomeCh <- tokenizeOutcome{}
	if _, err := awaitTokenize(uiErr, events, outcomeCh); !errors.Is(err, uiErr) {
		t.Fatalf("expected ui error, got %v", err)
	}
}
