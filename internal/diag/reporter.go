package diag

import "pineapple/internal/source"

// Reporter - минимальный контракт получения диагностик.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}

// BagReporter - адаптер, который пишет в *Bag.
type BagReporter struct {
	Bag  *Bag
	Path string
}

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Path: r.Path,
	})
}

// ReportLexError reports a lexer failure through r. It returns false when
// err is not a *lexer.Error.
func ReportLexError(r Reporter, err error) bool {
	d, ok := FromLexError("", err)
	if !ok {
		return false
	}
	r.Report(d.Code, d.Severity, d.Primary, d.Message)
	return true
}
