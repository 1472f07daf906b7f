package parenmode

import (
	"bytes"
	"unicode/utf8"

	"github.com/signadot/parenrestore/debug"
	"github.com/signadot/parenrestore/token"
)

// Formatter canonicalizes text in one dialect's syntax.  It satisfies
// restore.Canonicalizer.
type Formatter struct {
	syn token.Syntax
}

func New(syn token.Syntax) *Formatter {
	return &Formatter{syn: syn}
}

// Format is shorthand for New(syn).Canonicalize(text).
func Format(text string, syn token.Syntax) (string, error) {
	return New(syn).Canonicalize(text)
}

func (f *Formatter) Canonicalize(text string) (string, error) {
	toks, err := token.Tokenize(nil, []byte(text), f.syn)
	if err != nil {
		return "", err
	}
	st := newState()
	for i := range toks {
		if err := st.token(&toks[i]); err != nil {
			return "", err
		}
	}
	st.endLine()
	if n := len(st.stack); n != 0 {
		return "", &token.ErrImbalancedStructure{Open: st.stack[n-1].tok}
	}
	res := string(bytes.Join(st.lines, []byte{'\n'}))
	if debug.Canon() && res != text {
		debug.Logf("canon: %q\n    -> %q\n", text, res)
	}
	return res, nil
}

type opener struct {
	tok *token.Token
	x   int
}

// trail is the run of close brackets following the last code token of a
// line.  [start,end) are byte offsets in lines[line]; maxIndent is the
// column of the outermost opener the trail closed, or -1.
type trail struct {
	line       int
	start, end int
	maxIndent  int
}

type state struct {
	lines     [][]byte
	stack     []opener
	tr        trail
	indenting bool
}

func newState() *state {
	return &state{
		lines:     [][]byte{nil},
		tr:        trail{line: -1, maxIndent: -1},
		indenting: true,
	}
}

func (s *state) cur() int {
	return len(s.lines) - 1
}

func (s *state) write(b []byte) {
	c := s.cur()
	s.lines[c] = append(s.lines[c], b...)
}

// writeMulti writes a token which may span lines.
func (s *state) writeMulti(b []byte) {
	parts := bytes.Split(b, []byte{'\n'})
	s.write(parts[0])
	for _, p := range parts[1:] {
		s.endLine()
		s.lines = append(s.lines, append([]byte(nil), p...))
	}
}

func (s *state) resetTrail() {
	c := s.cur()
	n := len(s.lines[c])
	s.tr = trail{line: c, start: n, end: n, maxIndent: -1}
}

func (s *state) token(tok *token.Token) error {
	switch tok.Type {
	case token.TNewline:
		s.endLine()
		s.lines = append(s.lines, nil)
		s.indenting = true
		return nil
	case token.TSpace:
		s.write(tok.Bytes)
		return nil
	case token.TComment:
		s.indenting = false
		s.write(tok.Bytes)
		return nil
	case token.TBlockComment:
		s.indenting = false
		s.writeMulti(tok.Bytes)
		s.resetTrail()
		return nil
	case token.TClose:
		return s.close(tok)
	}
	s.indent()
	if tok.Type == token.TOpen {
		s.stack = append(s.stack, opener{tok: tok, x: utf8.RuneCount(s.lines[s.cur()])})
	}
	s.writeMulti(tok.Bytes)
	s.resetTrail()
	return nil
}

// indent clamps the indentation of the current line before its first code
// token.
func (s *state) indent() {
	if !s.indenting {
		return
	}
	s.indenting = false
	if len(s.stack) == 0 {
		return
	}
	c := s.cur()
	ind := utf8.RuneCount(s.lines[c])
	want := ind
	if s.tr.maxIndent >= 0 {
		want = min(want, s.tr.maxIndent)
	}
	want = max(want, s.stack[len(s.stack)-1].x+1)
	if want == ind {
		return
	}
	if debug.Canon() {
		debug.Logf("canon: line %d indent %d -> %d\n", c, ind, want)
	}
	s.lines[c] = bytes.Repeat([]byte{' '}, want)
}

func (s *state) close(tok *token.Token) error {
	n := len(s.stack)
	if n == 0 {
		return &token.ErrImbalancedStructure{Close: tok}
	}
	op := s.stack[n-1]
	if !token.Closes(op.tok.Bytes[0], tok.Bytes[0]) {
		return &token.ErrImbalancedStructure{Open: op.tok, Close: tok}
	}
	s.stack = s.stack[:n-1]
	if s.indenting {
		// leading close: move it to the previous trail
		l := s.lines[s.tr.line]
		nl := make([]byte, 0, len(l)+len(tok.Bytes))
		nl = append(nl, l[:s.tr.end]...)
		nl = append(nl, tok.Bytes...)
		nl = append(nl, l[s.tr.end:]...)
		s.lines[s.tr.line] = nl
		s.tr.end += len(tok.Bytes)
		s.tr.maxIndent = op.x
		return nil
	}
	if s.tr.line != s.cur() {
		s.resetTrail()
	}
	s.write(tok.Bytes)
	s.tr.end = len(s.lines[s.cur()])
	s.tr.maxIndent = op.x
	return nil
}

// endLine drops the whitespace inside the current line's trail.
func (s *state) endLine() {
	c := s.cur()
	if s.tr.line != c || s.tr.start == s.tr.end {
		return
	}
	l := s.lines[c]
	nl := make([]byte, 0, len(l))
	nl = append(nl, l[:s.tr.start]...)
	for _, b := range l[s.tr.start:s.tr.end] {
		if token.IsClose(b) {
			nl = append(nl, b)
		}
	}
	end := len(nl)
	nl = append(nl, l[s.tr.end:]...)
	s.lines[c] = nl
	s.tr.end = end
}
