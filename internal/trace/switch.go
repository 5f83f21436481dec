package trace

import "sync/atomic"

// Switch wraps a Tracer so it can be toggled at runtime. A disabled switch
// reports LevelOff and drops events.
type Switch struct {
	inner Tracer
	on    atomic.Bool
}

func NewSwitch(inner Tracer, on bool) *Switch {
	if inner == nil {
		inner = Nop
	}
	s := &Switch{inner: inner}
	s.on.Store(on)
	return s
}

// Set turns the switch on or off.
func (s *Switch) Set(on bool) { s.on.Store(on) }

func (s *Switch) On() bool { return s.on.Load() }

func (s *Switch) Emit(ev *Event) {
	if s.on.Load() {
		s.inner.Emit(ev)
	}
}

func (s *Switch) Flush() error { return s.inner.Flush() }

func (s *Switch) Close() error { return s.inner.Close() }

func (s *Switch) Level() Level {
	if !s.on.Load() {
		return LevelOff
	}
	return s.inner.Level()
}

func (s *Switch) Enabled() bool { return s.Level() > LevelOff }
