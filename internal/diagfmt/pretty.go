package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pineapple/internal/diag"
	"pineapple/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span.
// files maps a diagnostic Path to its loaded text; a missing entry just
// skips the source excerpt.
func Pretty(w io.Writer, bag *diag.Bag, files map[string]*source.File, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := palette{enabled: opts.Color}
	for _, d := range bag.Items() {
		loc := fmt.Sprintf("%s:%d:%d", displayPath(d.Path, opts.PathMode, opts.BaseDir), d.Primary.Start.Line+1, d.Primary.Start.Col+1)
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", p.paint(colorPath, loc), p.severity(d.Severity), d.Code.ID(), d.Message); err != nil {
			return err
		}
		file := files[d.Path]
		if file == nil || d.Code == diag.IOLoadFileError {
			continue
		}
		if err := excerpt(w, p, file, d.Primary); err != nil {
			return err
		}
	}
	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "... %d more diagnostic(s) over the limit\n", n); err != nil {
			return err
		}
	}
	return nil
}

// excerpt prints the first line of sp with a caret underline. Columns are
// UTF-16 units; the underline is laid out in terminal cells.
func excerpt(w io.Writer, p palette, file *source.File, sp source.Span) error {
	line := file.Line(int(sp.Start.Line))
	gutter := fmt.Sprintf("%d", sp.Start.Line+1)
	pad := strings.Repeat(" ", len(gutter))

	before, marked := splitAtUTF16(line, sp.Start.Col)
	switch {
	case sp.Empty():
		marked = ""
	case sp.End.Line == sp.Start.Line && sp.End.Col > sp.Start.Col:
		marked, _ = splitAtUTF16(marked, sp.End.Col-sp.Start.Col)
	}
	width := runewidth.StringWidth(marked)
	if width == 0 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)

	_, err := fmt.Fprintf(w, "%s %s %s\n%s %s %s%s\n",
		p.paint(colorLineNo, gutter), p.paint(colorLineNo, "|"), line,
		pad, p.paint(colorLineNo, "|"), strings.Repeat(" ", runewidth.StringWidth(before)), p.paint(colorCaret, underline))
	return err
}

// splitAtUTF16 splits s after n UTF-16 code units.
func splitAtUTF16(s string, n uint32) (string, string) {
	var units uint32
	for i, r := range s {
		if units >= n {
			return s[:i], s[i:]
		}
		units += source.UTF16Len(string(r))
	}
	return s, ""
}
