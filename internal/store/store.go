// Package store keeps the latest classified token list per open document.
package store

import (
	"sync"

	"pineapple/internal/token"
)

// Entry is the result of the most recent full re-lex of one document.
type Entry struct {
	Version int32
	Tokens  []token.Token
	// Err is the lexer failure of the last run, nil on success.
	Err error
	// Stale is set when Tokens come from an earlier successful run
	// because the latest one failed.
	Stale bool
}

// Store maps document URIs to entries. Readers always see a whole entry,
// either the previous or the new one.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func New() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Put replaces the entry for uri.
func (s *Store) Put(uri string, e Entry) {
	s.mu.Lock()
	s.entries[uri] = e
	s.mu.Unlock()
}

// PutResult records a run. When keepStale is set and the run failed, the
// previous good tokens stay in place and the entry is marked stale.
func (s *Store) PutResult(uri string, version int32, toks []token.Token, err error, keepStale bool) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := Entry{Version: version, Tokens: toks, Err: err}
	if err != nil && keepStale {
		if prev, ok := s.entries[uri]; ok && len(prev.Tokens) > 0 {
			e.Tokens = prev.Tokens
			e.Stale = true
		}
	}
	if e.Tokens == nil {
		e.Tokens = []token.Token{}
	}
	s.entries[uri] = e
	return e
}

func (s *Store) Get(uri string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[uri]
	return e, ok
}

// Tokens returns the stored list, or an empty one for unknown URIs.
func (s *Store) Tokens(uri string) []token.Token {
	if e, ok := s.Get(uri); ok {
		return e.Tokens
	}
	return []token.Token{}
}

func (s *Store) Delete(uri string) {
	s.mu.Lock()
	delete(s.entries, uri)
	s.mu.Unlock()
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	clear(s.entries)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
