package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity. Each level includes the ones below it.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // only spans that failed
	LevelPhase        // requests and lex/classify/encode
	LevelDetail       // plus per-document events
	LevelDebug        // plus per-token events
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel is case-insensitive; "" means off.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelOff, nil
	}
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil // #nosec G115 -- len(levelNames) < 256
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass at this level.
// LevelError is handled by the tracer, which looks at the Failed flag.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePhase
	case LevelDetail:
		return scope <= ScopeDocument
	case LevelDebug:
		return true
	}
	return false
}
