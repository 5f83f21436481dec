package lsp

import (
	"encoding/json"
	"strings"

	"go.lsp.dev/protocol"
)

const memberTrigger = "hello."

var (
	memberCompletions  = []string{"world", "friend"}
	defaultCompletions = []string{"pineapple", "hello"}
)

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params protocol.CompletionParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	uri := canonicalURI(string(params.TextDocument.URI))
	s.mu.Lock()
	enabled := s.completion
	doc := s.docs[uri]
	s.mu.Unlock()
	if !enabled {
		return s.sendResponse(msg.ID, protocol.CompletionList{Items: []protocol.CompletionItem{}})
	}
	line := lineAt(doc.text, params.Position.Line)
	return s.sendResponse(msg.ID, protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(line),
	})
}

// completionItems looks only at the text of the cursor line.
func completionItems(line string) []protocol.CompletionItem {
	labels := defaultCompletions
	if strings.HasSuffix(strings.TrimSpace(line), memberTrigger) {
		labels = memberCompletions
	}
	items := make([]protocol.CompletionItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, protocol.CompletionItem{
			Label: label,
			Kind:  protocol.CompletionItemKindText,
		})
	}
	return items
}
