package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const (
	docURI = "file:///src/app/core.clj"

	headText = `
(foo
  )

(foo
  (+ 1 2)
  ; hello world
  )
`
	editedText = `
(foo)
  

(comment
  "stuff wasnt here before")

(foo
  (+ 1 2))
  ; hello world
  
`
	restoredText = `
(foo
  )

(comment
  "stuff wasnt here before")

(foo
  (+ 1 2)
  ; hello world
  )
`
)

func testServer(head string) *Server {
	s := NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.head = func(path string) (string, error) {
		if path != "/src/app/core.clj" {
			return "", errors.New("unexpected path " + path)
		}
		return head, nil
	}
	return s
}

func open(t *testing.T, s *Server, text string) {
	t.Helper()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  docURI,
			Text: text,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestFormattingRestores(t *testing.T) {
	s := testServer(headText)
	open(t, s, editedText)
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	if diff := cmp.Diff(restoredText, edits[0].NewText); diff != "" {
		t.Errorf("formatted (-want +got):\n%s", diff)
	}
	if edits[0].Range.Start != (protocol.Position{}) {
		t.Errorf("edit starts at %v", edits[0].Range.Start)
	}
}

func TestFormattingNothingToRestore(t *testing.T) {
	s := testServer(headText)
	open(t, s, headText)
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 0 {
		t.Errorf("got edits %v", edits)
	}
}

func TestDiagnostics(t *testing.T) {
	s := testServer("")
	open(t, s, "(a)\n  (b]")
	diags := validateDocument(s.docs.get(docURI))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 5},
	}
	if diff := cmp.Diff(want, diags[0].Range); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}

	s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: docURI},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "(a)\n  (b)"}},
	})
	if diags := validateDocument(s.docs.get(docURI)); len(diags) != 0 {
		t.Errorf("got diagnostics %v after fix", diags)
	}
}

func TestFoldingAndHover(t *testing.T) {
	s := testServer("")
	open(t, s, editedText)
	ctx := context.Background()
	id := protocol.TextDocumentIdentifier{URI: docURI}

	folds, err := s.FoldingRanges(ctx, &protocol.FoldingRangeParams{TextDocument: id})
	if err != nil {
		t.Fatal(err)
	}
	want := []protocol.FoldingRange{
		{StartLine: 4, EndLine: 5, Kind: protocol.RegionFoldingRange},
		{StartLine: 7, EndLine: 8, Kind: protocol.RegionFoldingRange},
	}
	if diff := cmp.Diff(want, folds); diff != "" {
		t.Errorf("folding ranges (-want +got):\n%s", diff)
	}

	h, err := s.Hover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: id,
			Position:     protocol.Position{Line: 5, Character: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil || h.Contents.Value != "**clojure** form, lines 5-6" {
		t.Errorf("got hover %+v", h)
	}
}

func TestSemanticTokens(t *testing.T) {
	s := testServer("")
	open(t, s, ";c\n(a \"s\" #\"é\")")
	toks, err := s.SemanticTokensFull(context.Background(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{
		0, 0, 2, commentType, 0,
		1, 3, 3, stringType, 0,
		0, 5, 3, stringType, 0,
	}
	if diff := cmp.Diff(want, toks.Data); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
}

func TestSemanticTokensMultiline(t *testing.T) {
	doc := testServer("").docs.put(docURI, "(a \"x\n yz\")", 1)
	got := collectSemanticTokens(doc, 1, 2)
	want := []tokenInfo{{line: 1, character: 0, length: 4, tokenType: stringType}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(tokenInfo{})); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
}
