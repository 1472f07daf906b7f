package main

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/signadot/parenrestore/block"
	"github.com/signadot/parenrestore/dialect"
	"github.com/signadot/parenrestore/token"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	path    string
	content string
	version int32
	dialect *dialect.Dialect
	forms   []block.Span
	// err is the scan error of content, if any.
	err error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(docURI string, content string, version int32) *document {
	path := uri.URI(docURI).Filename()
	d := dialect.ForPath(path)
	if d == nil {
		d = dialect.Clojure
	}
	doc := &document{
		uri:     docURI,
		path:    path,
		content: content,
		version: version,
		dialect: d,
	}
	err := d.Scanner().Scan(content, func(f block.Span) {
		doc.forms = append(doc.forms, f)
	})
	if err != nil {
		doc.forms = nil
		doc.err = err
	} else {
		doc.forms = block.Merge(doc.forms)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[docURI] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	}
	if pos := errorPos(doc.err); pos != nil {
		at := position(doc.content, pos)
		diagnostic.Range = protocol.Range{
			Start: at,
			End:   protocol.Position{Line: at.Line, Character: at.Character + 1},
		}
	}
	return append(diagnostics, diagnostic)
}

func errorPos(err error) *token.Pos {
	var ie *token.ErrImbalancedStructure
	if errors.As(err, &ie) {
		return ie.Pos()
	}
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &te.Pos
	}
	return nil
}

// position converts pos to an LSP position, whose character offsets count
// UTF-16 code units.
func position(content string, pos *token.Pos) protocol.Position {
	line, col := pos.LineCol()
	lineStart := pos.I - col
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len([]byte(content[lineStart:pos.I]))),
	}
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, sz := utf8.DecodeRune(b)
		b = b[sz:]
		if r >= 0x10000 {
			n += 2
			continue
		}
		n++
	}
	return n
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole document
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
