package main

import (
	"context"
	"fmt"

	"github.com/signadot/parenrestore/block"
	"go.lsp.dev/protocol"
)

func formAt(doc *document, line int) (block.Span, bool) {
	for _, f := range doc.forms {
		if f.Start <= line && line < f.End {
			return f, true
		}
	}
	return block.Span{}, false
}

// Hover describes the top-level form under the cursor.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	f, ok := formAt(doc, int(params.Position.Line))
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: fmt.Sprintf("**%s** form, lines %d-%d", doc.dialect.Name, f.Start+1, f.End),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(f.Start)},
			End:   protocol.Position{Line: uint32(f.End)},
		},
	}, nil
}

// FoldingRanges folds every top-level form spanning more than one line.
func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	var res []protocol.FoldingRange
	for _, f := range doc.forms {
		if f.Len() < 2 {
			continue
		}
		res = append(res, protocol.FoldingRange{
			StartLine: uint32(f.Start),
			EndLine:   uint32(f.End - 1),
			Kind:      protocol.RegionFoldingRange,
		})
	}
	return res, nil
}
