// Package scan finds the top-level forms of Lisp source text.
package scan

import (
	"github.com/signadot/parenrestore/block"
	"github.com/signadot/parenrestore/debug"
	"github.com/signadot/parenrestore/token"
)

// Reader is a block.Scanner for one dialect's syntax.
type Reader struct {
	syn token.Syntax
}

func New(syn token.Syntax) *Reader {
	return &Reader{syn: syn}
}

// Scan reports the line range of every top-level bracketed form of text:
// from the line of its opening bracket through the line of its closing
// bracket.  Atoms, strings and comments at top level are not forms.
func (r *Reader) Scan(text string, onForm func(block.Span)) error {
	toks, err := token.Tokenize(nil, []byte(text), r.syn)
	if err != nil {
		return err
	}
	if debug.Scan() {
		token.PrintTokens(debug.Output(), toks, "scan")
	}
	var (
		stack []*token.Token
		start int
	)
	for i := range toks {
		tok := &toks[i]
		switch tok.Type {
		case token.TOpen:
			if len(stack) == 0 {
				start = tok.Pos.Line()
			}
			stack = append(stack, tok)
		case token.TClose:
			if len(stack) == 0 {
				return &token.ErrImbalancedStructure{Close: tok}
			}
			open := stack[len(stack)-1]
			if !token.Closes(open.Bytes[0], tok.Bytes[0]) {
				return &token.ErrImbalancedStructure{Open: open, Close: tok}
			}
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				continue
			}
			span := block.Span{Start: start, End: tok.Pos.Line() + 1}
			if debug.Scan() {
				debug.Logf("scan: form %s opened at %s\n", span, open.Pos)
			}
			onForm(span)
		}
	}
	if len(stack) != 0 {
		return &token.ErrImbalancedStructure{Open: stack[len(stack)-1]}
	}
	return nil
}

// Forms returns the top-level form ranges of text.
func Forms(text string, syn token.Syntax) ([]block.Span, error) {
	var res []block.Span
	err := New(syn).Scan(text, func(s block.Span) {
		res = append(res, s)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
