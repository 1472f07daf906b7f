package main

import (
	"bytes"
	"context"

	"github.com/signadot/parenrestore/token"
	"go.lsp.dev/protocol"
)

const (
	commentType uint32 = iota
	stringType
)

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType uint32
}

// collectSemanticTokens returns the comments and string literals of doc
// restricted to lines [from, to), one entry per source line of each.
func collectSemanticTokens(doc *document, from, to uint32) []tokenInfo {
	src := []byte(doc.content)
	toks, err := token.Tokenize(nil, src, doc.dialect.Syntax)
	if err != nil {
		return nil
	}
	var res []tokenInfo
	for i := range toks {
		tok := &toks[i]
		var tt uint32
		switch tok.Type {
		case token.TComment, token.TBlockComment:
			tt = commentType
		case token.TString, token.TChar:
			tt = stringType
		default:
			continue
		}
		line, col := tok.Pos.LineCol()
		char := utf16Len(src[tok.Pos.I-col : tok.Pos.I])
		for j, part := range bytes.Split(tok.Bytes, []byte("\n")) {
			if j > 0 {
				char = 0
			}
			l := uint32(line + j)
			if n := utf16Len(part); n > 0 && l >= from && l < to {
				res = append(res, tokenInfo{
					line:      l,
					character: uint32(char),
					length:    uint32(n),
					tokenType: tt,
				})
			}
		}
	}
	return res
}

// encodeSemanticTokens delta encodes tokens, which are in document order.
func encodeSemanticTokens(tokenList []tokenInfo) []uint32 {
	tokens := make([]uint32, 0, 5*len(tokenList))
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, ti.tokenType, 0)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc, 0, ^uint32(0))),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc, r.Start.Line, r.End.Line+1)),
	}, nil
}
