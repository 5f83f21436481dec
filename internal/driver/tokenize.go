package driver

import (
	"strconv"

	"pineapple/internal/classify"
	"pineapple/internal/diag"
	"pineapple/internal/lexer"
	"pineapple/internal/observ"
	"pineapple/internal/source"
	"pineapple/internal/token"
	"pineapple/internal/trace"
)

// Options tune a single pipeline run.
type Options struct {
	Tracer         trace.Tracer
	Parent         uint64 // span to nest lex/classify under
	MaxDiagnostics int
	Timer          *observ.Timer // nil disables timings
	Progress       ProgressSink  // TokenizeDir only
}

func (o Options) tracer() trace.Tracer {
	if o.Tracer == nil {
		return trace.Nop
	}
	return o.Tracer
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// TokenizeResult is the outcome of lexing and classifying one document.
// On a lexer failure Tokens is empty, Err holds the *lexer.Error and Bag the
// matching diagnostic.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Err    error
	Bag    *diag.Bag
}

// Tokenize runs the full pipeline over file: lex, then classify.
func Tokenize(file *source.File, opts Options) *TokenizeResult {
	tr := opts.tracer()
	res := &TokenizeResult{
		File: file,
		Bag:  diag.NewBag(opts.maxDiagnostics()),
	}

	lexSpan := trace.Begin(tr, trace.ScopePhase, "lex", opts.Parent)
	stop := opts.Timer.Track("lex")
	toks, err := lexer.Lex(file)
	stop()
	if err != nil {
		lexSpan.Fail().End(err.Error())
		res.Err = err
		res.Tokens = []token.Token{}
		diag.ReportLexError(diag.BagReporter{Bag: res.Bag, Path: file.Path}, err)
		return res
	}
	lexSpan.WithExtra("tokens", strconv.Itoa(len(toks))).End("")

	clsSpan := trace.Begin(tr, trace.ScopePhase, "classify", opts.Parent)
	stop = opts.Timer.Track("classify")
	classify.Classify(toks)
	stop()
	clsSpan.End("")

	res.Tokens = toks
	return res
}

// TokenizeText tokenizes an in-memory buffer.
func TokenizeText(name, text string, opts Options) *TokenizeResult {
	return Tokenize(source.FromText(name, text), opts)
}

// TokenizeFile loads path from disk and tokenizes it.
func TokenizeFile(path string, opts Options) (*TokenizeResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return Tokenize(file, opts), nil
}
