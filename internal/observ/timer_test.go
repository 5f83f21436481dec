package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAggregates(t *testing.T) {
	tm := NewTimer()
	tm.Add("lex", 2*time.Millisecond)
	tm.Add("classify", time.Millisecond)
	tm.Add("lex", 3*time.Millisecond)

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "lex" || r.Phases[1].Name != "classify" {
		t.Fatalf("unexpected phases %+v", r.Phases)
	}
	if r.Phases[0].Count != 2 || r.Phases[0].TotalMS != 5 {
		t.Fatalf("unexpected lex stats %+v", r.Phases[0])
	}
	if r.TotalMS != 6 {
		t.Fatalf("unexpected total %v", r.TotalMS)
	}
	if s := tm.Summary(); !strings.Contains(s, "lex") || !strings.Contains(s, "x2") {
		t.Fatalf("unexpected summary:\n%s", s)
	}
}

func TestTimerConcurrentTrack(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stop := tm.Track("lex")
			stop()
		}()
	}
	wg.Wait()
	if got := tm.Report().Phases[0].Count; got != 16 {
		t.Fatalf("expected 16 samples, got %d", got)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("lex")()
	tm.Add("lex", time.Second)
	if len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer must report nothing")
	}
}
