package diag

import (
	"errors"
	"testing"

	"go.lsp.dev/protocol"

	"pineapple/internal/lexer"
	"pineapple/internal/source"
)

func TestFromLexErrorNoMatch(t *testing.T) {
	_, err := lexer.Lex(source.FromText("a.pineapple", "x = \"oops"))
	if err == nil {
		t.Fatal("expected lex error")
	}
	d, ok := FromLexError("a.pineapple", err)
	if !ok {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
	if d.Code != LexNoMatch || d.Code.ID() != "LEX1001" {
		t.Fatalf("unexpected code %v", d.Code)
	}
	if d.Severity != SevError {
		t.Fatalf("expected error severity, got %v", d.Severity)
	}
	want := source.Span{
		Start: source.Position{Line: 0, Col: 4},
		End:   source.Position{Line: 0, Col: 9},
	}
	if d.Primary != want {
		t.Fatalf("expected span %v, got %v", want, d.Primary)
	}
}

func TestFromLexErrorNoProgress(t *testing.T) {
	err := &lexer.Error{Kind: lexer.ErrNoProgress, Rule: "space", Rest: "x"}
	d, ok := FromLexError("", err)
	if !ok || d.Code != LexNoProgress {
		t.Fatalf("expected LexNoProgress, got %v (ok=%v)", d.Code, ok)
	}
}

func TestFromLexErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := FromLexError("", errors.New("boom")); ok {
		t.Fatal("plain errors must not convert")
	}
}

func TestReportLexError(t *testing.T) {
	_, err := lexer.Lex(source.FromText("a.pineapple", "x = \"oops"))
	bag := NewBag(4)
	if !ReportLexError(BagReporter{Bag: bag, Path: "a.pineapple"}, err) {
		t.Fatal("expected lexer error to be reported")
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != LexNoMatch || items[0].Path != "a.pineapple" || items[0].Primary.Start.Col != 4 {
		t.Fatalf("unexpected diagnostics %+v", items)
	}
	if ReportLexError(BagReporter{Bag: bag}, errors.New("boom")) || bag.Len() != 1 {
		t.Fatal("plain errors must not be reported")
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag, Path: "b"}
	r.Report(LexNoMatch, SevError, source.Span{Start: source.Position{Line: 3}}, "late")
	r.Report(LexNoMatch, SevError, source.Span{Start: source.Position{Line: 1}}, "early")
	r.Report(LexNoMatch, SevError, source.Span{}, "dropped")
	if bag.Len() != 2 || bag.Dropped() != 1 {
		t.Fatalf("expected 2 kept and 1 dropped, got %d/%d", bag.Len(), bag.Dropped())
	}
	bag.Sort()
	if bag.Items()[0].Message != "early" {
		t.Fatalf("expected sorted by position, got %+v", bag.Items())
	}
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	d := Diagnostic{Severity: SevError, Code: LexNoMatch, Path: "a"}
	bag.Add(d)
	bag.Add(d)
	bag.Dedup()
	if bag.Len() != 1 {
		t.Fatalf("expected 1 after dedup, got %d", bag.Len())
	}
}

func TestCodeString(t *testing.T) {
	if got := LexNoProgress.String(); got != "LEX1002 lexer rule consumed nothing" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Code(9999).ID(); got != "E0000" {
		t.Fatalf("unexpected %q", got)
	}
	if got := IOLoadFileError.ID(); got != "IO4001" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestBagWorstAndMerge(t *testing.T) {
	a := NewBag(1)
	if _, ok := a.Worst(); ok {
		t.Fatal("empty bag has no worst severity")
	}
	a.Add(Diagnostic{Severity: SevWarning, Code: LexInfo, Path: "a"})
	b := NewBag(1)
	b.Add(Diagnostic{Severity: SevError, Code: LexNoMatch, Path: "b"})
	a.Merge(b)
	if a.Len() != 2 || a.Limit() != 2 {
		t.Fatalf("merge must raise the limit, got len=%d limit=%d", a.Len(), a.Limit())
	}
	if sev, _ := a.Worst(); sev != SevError {
		t.Fatalf("expected worst ERROR, got %v", sev)
	}
}

func TestSeverityProtocol(t *testing.T) {
	if SevError.Protocol() != protocol.DiagnosticSeverityError || SevHint.Protocol() != protocol.DiagnosticSeverityHint {
		t.Fatal("unexpected protocol mapping")
	}
	if Severity(42).String() != "UNKNOWN" {
		t.Fatal("out of range severity must render UNKNOWN")
	}
}
