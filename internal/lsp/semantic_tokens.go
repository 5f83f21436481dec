package lsp

import (
	"encoding/json"
	"strconv"

	"go.lsp.dev/protocol"

	"pineapple/internal/semtok"
	"pineapple/internal/trace"
)

// handleSemanticTokensFull encodes whatever the store holds for the
// document. Unknown documents get an empty payload.
func (s *Server) handleSemanticTokensFull(msg *rpcMessage) error {
	var params protocol.SemanticTokensParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	uri := canonicalURI(string(params.TextDocument.URI))
	toks := s.store.Tokens(uri)

	span := trace.Begin(s.tracer, trace.ScopePhase, "encode", s.requestSpan)
	data := semtok.Encode(toks)
	span.WithExtra("tokens", strconv.Itoa(len(toks))).End("")

	return s.sendResponse(msg.ID, protocol.SemanticTokens{Data: data})
}

func tracePoint(t trace.Tracer, name, detail string, parent uint64) {
	trace.Point(t, trace.ScopeDocument, name, detail, parent)
}
