// Package observ measures wall time per pipeline phase.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer accumulates durations by phase name. It is safe for concurrent use
// and a nil *Timer ignores everything.
type Timer struct {
	mu     sync.Mutex
	order  []string
	phases map[string]*phase
}

type phase struct {
	total time.Duration
	count int
}

func NewTimer() *Timer {
	return &Timer{phases: make(map[string]*phase)}
}

// Track starts measuring name; call the returned func to stop.
func (t *Timer) Track(name string) func() {
	if t == nil {
		return func() {}
	}
	start := time.Now()
	return func() { t.Add(name, time.Since(start)) }
}

func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.phases[name]
	if !ok {
		p = &phase{}
		t.phases[name] = p
		t.order = append(t.order, name)
	}
	p.total += d
	p.count++
}

// PhaseReport is one line of a Report.
type PhaseReport struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	TotalMS float64 `json:"total_ms"`
}

// Report lists phases in first-seen order.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	r := Report{Phases: make([]PhaseReport, 0, len(t.order))}
	var total time.Duration
	for _, name := range t.order {
		p := t.phases[name]
		total += p.total
		r.Phases = append(r.Phases, PhaseReport{Name: name, Count: p.count, TotalMS: millis(p.total)})
	}
	r.TotalMS = millis(total)
	return r
}

// Summary renders the report as an aligned table.
func (t *Timer) Summary() string {
	r := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-12s %9.3f ms  x%d\n", p.Name, p.TotalMS, p.Count)
	}
	fmt.Fprintf(&b, "  %-12s %9.3f ms\n", "total", r.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
