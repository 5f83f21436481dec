package lsp

import (
	"encoding/json"
	"strings"
)

// handleDidChangeConfiguration never fails the notification; bad payloads
// are logged and dropped.
func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.log.Warningf("didChangeConfiguration: %v", err)
		return nil
	}
	s.applySettings(params.Settings)
	return nil
}

// applySettings reads the "pineapple" section. Absent keys keep their
// current value, so clients may send partial updates.
func (s *Server) applySettings(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Warningf("ignoring malformed settings: %v", err)
		return
	}

	var changed []string
	s.mu.Lock()
	if v := settings.Pineapple.LSP.Trace; v != nil {
		s.traceLSP = *v
		s.tracer.Set(*v)
		changed = append(changed, "lsp.trace")
	}
	if v := settings.Pineapple.LSP.KeepStaleTokens; v != nil {
		s.keepStale = *v
		changed = append(changed, "lsp.keepStaleTokens")
	}
	if v := settings.Pineapple.Completion.Enabled; v != nil {
		s.completion = *v
		changed = append(changed, "completion.enabled")
	}
	s.mu.Unlock()

	if len(changed) > 0 {
		s.log.Infof("settings updated: %s", strings.Join(changed, ", "))
	}
}
