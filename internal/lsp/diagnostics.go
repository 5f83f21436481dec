package lsp

import (
	"strconv"

	"go.lsp.dev/protocol"

	"pineapple/internal/diag"
	"pineapple/internal/driver"
	"pineapple/internal/source"
)

const diagnosticSource = "pineapple"

// refresh re-lexes the whole document, replaces its store entry and
// publishes the outcome.
func (s *Server) refresh(uri string, doc document) error {
	name := uriToPath(uri)
	if name == "" {
		name = uri
	}
	res := driver.TokenizeText(name, doc.text, driver.Options{
		Tracer:         s.tracer,
		Parent:         s.requestSpan,
		MaxDiagnostics: s.maxDiagnostics,
	})
	s.mu.Lock()
	keepStale := s.keepStale
	s.mu.Unlock()
	entry := s.store.PutResult(uri, doc.version, res.Tokens, res.Err, keepStale)
	if res.Err != nil {
		s.log.Warningf("lex %s@%d: %v", uri, doc.version, res.Err)
	}
	if s.tracer.Enabled() {
		detail := strconv.Itoa(len(entry.Tokens)) + " tokens"
		if entry.Stale {
			detail += " (stale)"
		}
		tracePoint(s.tracer, "store.put", detail, s.requestSpan)
	}
	return s.publishDiagnostics(uri, doc.uri, res.Bag)
}

// publishDiagnostics sends the bag for uri under the client's spelling of
// it. An empty bag is only sent when something was published before, to
// clear it.
func (s *Server) publishDiagnostics(uri, clientURI string, bag *diag.Bag) error {
	if clientURI == "" {
		clientURI = uri
	}
	list := toLSPDiagnostics(bag)
	s.mu.Lock()
	prev, had := s.published[uri]
	if len(list) > 0 {
		s.published[uri] = clientURI
	} else {
		delete(s.published, uri)
	}
	s.mu.Unlock()
	if len(list) == 0 && !had {
		return nil
	}
	if had && prev != clientURI {
		// клиент сменил написание URI, старое тоже чистим
		if err := s.sendPublish(prev, nil); err != nil {
			return err
		}
	}
	return s.sendPublish(clientURI, list)
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	uris := make([]string, 0, len(s.published))
	for _, clientURI := range s.published {
		uris = append(uris, clientURI)
	}
	clear(s.published)
	s.mu.Unlock()
	for _, uri := range uris {
		if err := s.sendPublish(uri, nil); err != nil {
			s.log.Errorf("failed to clear diagnostics: %v", err)
		}
	}
}

func (s *Server) sendPublish(uri string, list []protocol.Diagnostic) error {
	if list == nil {
		list = []protocol.Diagnostic{}
	}
	return s.sendNotification("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: list,
	})
}

func toLSPDiagnostics(bag *diag.Bag) []protocol.Diagnostic {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	out := make([]protocol.Diagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, protocol.Diagnostic{
			Range:    toLSPRange(d.Primary),
			Severity: d.Severity.Protocol(),
			Code:     d.Code.ID(),
			Source:   diagnosticSource,
			Message:  d.Message,
		})
	}
	return out
}

func toLSPRange(sp source.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: sp.Start.Line, Character: sp.Start.Col},
		End:   protocol.Position{Line: sp.End.Line, Character: sp.End.Col},
	}
}
