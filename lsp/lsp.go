// Package lsp serves sum documents over the Language Server Protocol.
// Parse errors are published as diagnostics and hovering a sum shows
// its total.
package lsp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/parsec/calc"
	"github.com/dhamidi/parsec/diag"
	"github.com/dhamidi/parsec/text"
)

const lsName = "parsec"

var log = commonlog.GetLogger("parsec.lsp")

type document struct {
	source string
	sums   []text.Located[calc.Sum]
	err    error
}

func parseDocument(source string) *document {
	sums, err := calc.ParseDocument(source)
	return &document{source: source, sums: sums, err: err}
}

type Server struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document

	handler protocol.Handler
	server  *server.Server
	version string
}

type Option func(*Server)

func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

func NewServer(opts ...Option) *Server {
	ls := &Server{
		documents: make(map[protocol.DocumentUri]*document),
		version:   "0.1.0",
	}
	for _, opt := range opts {
		opt(ls)
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s %s initialized", lsName, ls.version)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := ls.document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	offset := offsetAt(doc.source, params.Position)
	for _, sum := range doc.sums {
		if offset < sum.Range.Start.ByteOffset() || offset > sum.Range.End.ByteOffset() {
			continue
		}
		rng := toRange(doc.source, sum.Range)
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindPlainText,
				Value: fmt.Sprintf("%s = %d", sum.Target, sum.Target.Total()),
			},
			Range: &rng,
		}, nil
	}
	return nil, nil
}

func (ls *Server) document(uri protocol.DocumentUri) *document {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	return ls.documents[uri]
}

// update reparses the document and publishes its diagnostics. An empty
// diagnostics list clears errors reported for an earlier version.
func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, source string) {
	doc := parseDocument(source)

	ls.mu.Lock()
	ls.documents[uri] = doc
	ls.mu.Unlock()

	log.Debugf("parsed %s: %d sums, err=%v", uri, len(doc.sums), doc.err)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *document) []protocol.Diagnostic {
	result := []protocol.Diagnostic{}
	if doc.err == nil {
		return result
	}

	d := diag.FromError("", doc.err)
	message := d.Message
	if len(d.Hints) > 0 {
		message += "\n" + strings.Join(d.Hints, "\n")
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return append(result, protocol.Diagnostic{
		Range:    toRange(doc.source, d.Range),
		Severity: &severity,
		Source:   &source,
		Message:  message,
	})
}
