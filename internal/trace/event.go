package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint // instant event
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower values are coarser.
type Scope uint8

const (
	ScopeRequest  Scope = iota + 1 // one JSON-RPC message or CLI command
	ScopePhase                     // lex, classify, encode
	ScopeDocument                  // per-document bookkeeping
	ScopeToken                     // per-token, debug only
)

func (s Scope) String() string {
	switch s {
	case ScopeRequest:
		return "request"
	case ScopePhase:
		return "phase"
	case ScopeDocument:
		return "document"
	case ScopeToken:
		return "token"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	Name     string // "lex", "textDocument/didChange", ...
	Detail   string
	Failed   bool
	Extra    map[string]string
}
