package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"pineapple/internal/diag"
	"pineapple/internal/lexer"
	"pineapple/internal/source"
	"pineapple/internal/token"
	"pineapple/internal/trace"
)

func TestTokenizeClassifies(t *testing.T) {
	res := TokenizeText("a.pineapple", "fnc add(a: int) -> Int", Options{})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Tokens) != 9 {
		t.Fatalf("expected 9 tokens, got %d", len(res.Tokens))
	}
	if res.Tokens[0].Type != token.TypeKeyword {
		t.Fatalf("fnc should be a keyword, got %v", res.Tokens[0].Type)
	}
	add := res.Tokens[1]
	if add.Type != token.TypeFunction || !add.Modifiers.Has(token.ModDefinition) {
		t.Fatalf("add should be function+definition, got %v %v", add.Type, add.Modifiers)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %v", res.Bag.Items())
	}
}

func TestTokenizeLexFailure(t *testing.T) {
	res := TokenizeText("a.pineapple", "x = \"unterminated", Options{})
	if !errors.Is(res.Err, lexer.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", res.Err)
	}
	if res.Tokens == nil || len(res.Tokens) != 0 {
		t.Fatalf("expected empty token list, got %#v", res.Tokens)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexNoMatch {
		t.Fatalf("expected one LEX1001 diagnostic, got %v", res.Bag.Items())
	}
}

func TestTokenizeTracesPhases(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)
	TokenizeText("a.pineapple", "x", Options{Tracer: tr})
	out := buf.String()
	for _, want := range []string{"→ lex", "← lex {tokens=1}", "→ classify", "← classify"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in trace:\n%s", want, out)
		}
	}
}

func TestTokenizeFileMissing(t *testing.T) {
	if _, err := TokenizeFile(filepath.Join(t.TempDir(), "nope.pineapple"), Options{}); err == nil {
		t.Fatal("expected load error")
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, text string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("b.pineapple", "type Foo { x: Int }")
	write("a.pineapple", "x = 1")
	write("nested/c.pineapple", "x = \"bad")
	write("notes.txt", "ignored")

	results, err := TokenizeDir(context.Background(), dir, Options{}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	names := []string{"a.pineapple", "b.pineapple", filepath.Join("nested", "c.pineapple")}
	for i, want := range names {
		if rel, _ := filepath.Rel(dir, results[i].Path); rel != want {
			t.Fatalf("result %d: expected %s, got %s", i, want, rel)
		}
	}
	if len(results[1].Tokens) != 7 {
		t.Fatalf("expected 7 tokens in b, got %d", len(results[1].Tokens))
	}
	if results[2].Err == nil || !results[2].Bag.HasErrors() {
		t.Fatal("expected lex failure in nested/c")
	}
}

func TestTokenizeDirLoadFailureReported(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.pineapple"), []byte("x = 1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "b.pineapple")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	results, err := TokenizeDir(context.Background(), dir, Options{}, 2)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(results) != 2 || results[0].Err != nil {
		t.Fatalf("unexpected results %+v", results)
	}
	broken := results[1]
	if broken.Err == nil || broken.File != nil {
		t.Fatalf("expected load failure, got %+v", broken)
	}
	items := broken.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError || items[0].Path != broken.Path {
		t.Fatalf("unexpected diagnostics %+v", items)
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	results, err := TokenizeDir(context.Background(), t.TempDir(), Options{}, 0)
	if err != nil || len(results) != 0 {
		t.Fatalf("expected no results, got %v %v", results, err)
	}
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.pineapple"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TokenizeDir(ctx, dir, Options{}, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingSink) OnEvent(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func TestTokenizeDirProgress(t *testing.T) {
	dir := t.TempDir()
	for name, text := range map[string]string{"ok.pineapple": "x", "bad.pineapple": "\""} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	sink := &recordingSink{}
	if _, err := TokenizeDir(context.Background(), dir, Options{Progress: sink}, 1); err != nil {
		t.Fatal(err)
	}

	final := make(map[string]Status)
	queued := 0
	for _, ev := range sink.events {
		if ev.Status == StatusQueued {
			queued++
		}
		final[filepath.Base(ev.File)] = ev.Status
	}
	if queued != 2 {
		t.Fatalf("expected 2 queued events, got %d", queued)
	}
	if final["ok.pineapple"] != StatusDone || final["bad.pineapple"] != StatusError {
		t.Fatalf("unexpected final states %v", final)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a", Status: StatusDone})
	if ev := <-ch; ev.File != "a" {
		t.Fatalf("unexpected event %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{}) // nil channel is a no-op
}

func TestTokenizeBareCRStartsNewLine(t *testing.T) {
	res := TokenizeText("cr.pineapple", "a\rb\r\nc", Options{})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	got := token.Positions(res.Tokens)
	want := []source.Position{{Line: 0, Col: 0}, {Line: 1, Col: 0}, {Line: 2, Col: 0}}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d %q at %v, want %v", i, res.Tokens[i].Text, got[i], want[i])
		}
	}
}
