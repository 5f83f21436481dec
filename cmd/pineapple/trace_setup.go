package main

import (
	"fmt"
	"io"

	"pineapple/internal/project"
	"pineapple/internal/trace"
)

// setupTracing builds the tracer described by cfg. The returned cleanup
// flushes and closes it.
func setupTracing(cfg project.TraceConfig, errOut io.Writer) (trace.Tracer, func(), error) {
	level, err := trace.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if level == trace.LevelOff {
		return trace.Nop, func() {}, nil
	}
	format, err := trace.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, err
	}
	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: cfg.Output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cleanup := func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
	}
	return tracer, cleanup, nil
}
