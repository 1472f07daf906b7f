package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/signadot/parenrestore/gitrepo"
	"go.lsp.dev/protocol"
)

func gitHead(path string) (string, error) {
	repo, err := gitrepo.Open(filepath.Dir(path))
	if err != nil {
		return "", err
	}
	rel, err := repo.Rel(path)
	if err != nil {
		return "", err
	}
	return repo.HeadText(rel)
}

// Formatting restores the HEAD layout of every form whose structure the
// editor left unchanged.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}

	oldText, err := s.head(doc.path)
	if err != nil {
		s.log.Debug("no head text", "path", doc.path, "error", err)
		return nil, nil
	}
	res, err := doc.dialect.Reconciler().Reconcile(oldText, doc.content)
	if err != nil {
		s.log.Warn("reconcile failed", "path", doc.path, "error", err)
		return nil, nil
	}
	if res.Count == 0 || res.Text == doc.content {
		return []protocol.TextEdit{}, nil
	}
	s.log.Info("restored", "path", doc.path, "blocks", res.Count)

	// Return a single edit that replaces the entire document
	lines := strings.Count(doc.content, "\n")
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines + 1),
					Character: 0,
				},
			},
			NewText: res.Text,
		},
	}, nil
}
