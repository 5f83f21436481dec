package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/tliron/commonlog"
	"go.lsp.dev/protocol"

	"pineapple/internal/semtok"
	"pineapple/internal/store"
	"pineapple/internal/trace"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown signals an "exit" without a preceding "shutdown".
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

// ServerOptions configures LSP server behavior.
type ServerOptions struct {
	// Store holds the per-document token lists; a fresh one is created when nil.
	Store *store.Store
	// KeepStaleTokens serves the last good token list while a document
	// fails to lex, instead of an empty one.
	KeepStaleTokens   bool
	DisableCompletion bool
	MaxDiagnostics    int
	Logger            commonlog.Logger
	Tracer            trace.Tracer
	// TraceLSP starts with request tracing and verbose lifecycle logs on.
	TraceLSP bool
	Version  string
}

type document struct {
	// uri is the client's spelling; maps are keyed by canonicalURI
	uri     string
	text    string
	version int32
}

// Server handles stdio JSON-RPC for the Pineapple LSP. Messages are handled
// one at a time, in arrival order.
type Server struct {
	conn *conn
	mu   sync.Mutex

	docs      map[string]document
	published map[string]string // canonical URI -> URI the diagnostics went out under
	store     *store.Store

	keepStale         bool
	completion        bool
	maxDiagnostics    int
	shutdownRequested bool
	traceLSP          bool
	version           string

	log    commonlog.Logger
	tracer *trace.Switch
	// span of the message being handled, parent for pipeline spans
	requestSpan uint64
}

// NewServer constructs a new LSP server.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	st := opts.Store
	if st == nil {
		st = store.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = commonlog.GetLogger("pineapple.lsp")
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}
	return &Server{
		conn:           newConn(in, out),
		docs:           make(map[string]document),
		published:      make(map[string]string),
		store:          st,
		keepStale:      opts.KeepStaleTokens,
		completion:     !opts.DisableCompletion,
		maxDiagnostics: maxDiagnostics,
		traceLSP:       opts.TraceLSP,
		version:        opts.Version,
		log:            logger,
		tracer:         trace.NewSwitch(opts.Tracer, opts.TraceLSP),
	}
}

// Run serves LSP requests until exit, EOF or ctx cancellation.
func (s *Server) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		payload, err := s.conn.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.log.Errorf("failed to parse message: %v", err)
			continue
		}
		if msg.Method == "" {
			continue
		}
		if err := s.dispatch(&msg); err != nil {
			return err
		}
	}
}

func (s *Server) dispatch(msg *rpcMessage) error {
	span := trace.Begin(s.tracer, trace.ScopeRequest, msg.Method, 0)
	s.requestSpan = span.ID()
	err := s.handleMessage(msg)
	s.requestSpan = 0
	if err != nil && !errors.Is(err, ErrExit) {
		span.Fail()
	}
	span.End("")
	return err
}

func (s *Server) handleMessage(msg *rpcMessage) error {
	s.mu.Lock()
	down := s.shutdownRequested
	s.mu.Unlock()
	if down && msg.Method != "exit" {
		if len(msg.ID) > 0 {
			return s.sendError(msg.ID, codeInvalidRequest, "server is shutting down")
		}
		return nil
	}

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		return s.handleShutdown(msg)
	case "exit":
		if down {
			return ErrExit
		}
		return ErrExitWithoutShutdown
	case "workspace/didChangeConfiguration":
		return s.handleDidChangeConfiguration(msg)
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/semanticTokens/full":
		return s.handleSemanticTokensFull(msg)
	case "textDocument/completion":
		return s.handleCompletion(msg)
	default:
		if len(msg.ID) > 0 {
			return s.sendError(msg.ID, codeMethodNotFound, "method not found")
		}
		return nil
	}
}

func (s *Server) handleInitialize(msg *rpcMessage) error {
	var params initializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	if len(params.InitializationOptions) > 0 {
		s.applySettings(params.InitializationOptions)
	}
	s.log.Infof("initialize: root=%q", params.RootURI)

	result := initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync: textDocumentSyncOptions{
				OpenClose: true,
				Change:    syncIncremental,
			},
			CompletionProvider: &completionOptions{
				TriggerCharacters: []string{"."},
			},
			SemanticTokensProvider: &semanticTokensOptions{
				Legend: semtok.Legend(),
				Full:   true,
			},
		},
		ServerInfo: &serverInfo{Name: "pineapple", Version: s.version},
	}
	return s.sendResponse(msg.ID, result)
}

func (s *Server) handleShutdown(msg *rpcMessage) error {
	s.mu.Lock()
	s.shutdownRequested = true
	clear(s.docs)
	s.mu.Unlock()
	s.store.Clear()
	s.clearPublishedDiagnostics()
	s.log.Infof("shutdown")
	return s.sendResponse(msg.ID, nil)
}

func (s *Server) handleDidOpen(msg *rpcMessage) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.log.Warningf("didOpen: %v", err)
		return nil
	}
	uri := canonicalURI(string(params.TextDocument.URI))
	if uri == "" {
		return nil
	}
	doc := document{
		uri:     string(params.TextDocument.URI),
		text:    params.TextDocument.Text,
		version: params.TextDocument.Version,
	}
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	s.logf("didOpen: uri=%s version=%d", uri, doc.version)
	return s.refresh(uri, doc)
}

func (s *Server) handleDidChange(msg *rpcMessage) error {
	var params didChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.log.Warningf("didChange: %v", err)
		return nil
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	doc.uri = params.TextDocument.URI
	doc.text = applyChanges(doc.text, params.ContentChanges)
	doc.version = params.TextDocument.Version
	s.docs[uri] = doc
	s.mu.Unlock()
	s.logf("didChange: uri=%s version=%d changes=%d", uri, doc.version, len(params.ContentChanges))
	return s.refresh(uri, doc)
}

func (s *Server) handleDidClose(msg *rpcMessage) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.log.Warningf("didClose: %v", err)
		return nil
	}
	uri := canonicalURI(string(params.TextDocument.URI))
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	delete(s.docs, uri)
	publishedAs, hadDiagnostics := s.published[uri]
	delete(s.published, uri)
	s.mu.Unlock()
	s.store.Delete(uri)
	s.logf("didClose: uri=%s", uri)
	if hadDiagnostics {
		if err := s.sendPublish(publishedAs, nil); err != nil {
			s.log.Errorf("failed to clear diagnostics: %v", err)
		}
	}
	return nil
}

func (s *Server) sendResponse(id json.RawMessage, result any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	return s.send(msg)
}

func (s *Server) sendError(id json.RawMessage, code int, message string) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": rpcError{
			Code:    code,
			Message: message,
		},
	}
	return s.send(msg)
}

func (s *Server) sendNotification(method string, params any) error {
	return s.send(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	})
}

func (s *Server) send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.conn.write(payload)
}

// logf пишет только при включённом pineapple.lsp.trace.
func (s *Server) logf(format string, args ...any) {
	if s.currentTrace() {
		s.log.Infof(format, args...)
	}
}

func (s *Server) currentTrace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceLSP
}
