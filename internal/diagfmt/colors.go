package diagfmt

import (
	"github.com/fatih/color"

	"pineapple/internal/diag"
	"pineapple/internal/token"
)

// palette holds one color per role; disabled palettes print plain text.
type palette struct {
	enabled bool
}

func (p palette) paint(c *color.Color, s string) string {
	if !p.enabled {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

var (
	colorPath     = color.New(color.Bold)
	colorError    = color.New(color.FgRed, color.Bold)
	colorWarning  = color.New(color.FgYellow, color.Bold)
	colorInfo     = color.New(color.FgCyan, color.Bold)
	colorCaret    = color.New(color.FgRed)
	colorLineNo   = color.New(color.FgBlue)
	colorModifier = color.New(color.Faint)
)

var typeColors = map[token.SemanticType]*color.Color{
	token.TypeKeyword:   color.New(color.FgMagenta, color.Bold),
	token.TypeVariable:  color.New(color.FgWhite),
	token.TypeFunction:  color.New(color.FgBlue),
	token.TypeOperator:  color.New(color.Faint),
	token.TypeParameter: color.New(color.FgCyan),
	token.TypeType:      color.New(color.FgYellow),
	token.TypeString:    color.New(color.FgGreen),
	token.TypeNumber:    color.New(color.FgHiRed),
}

func (p palette) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return p.paint(colorError, sev.String())
	case diag.SevWarning:
		return p.paint(colorWarning, sev.String())
	default:
		return p.paint(colorInfo, sev.String())
	}
}

func (p palette) semantic(t token.SemanticType, s string) string {
	c, ok := typeColors[t]
	if !ok {
		return s
	}
	return p.paint(c, s)
}
