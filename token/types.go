package token

import (
	"bytes"
	"fmt"
)

type TokenType int

const (
	TSpace TokenType = iota
	TNewline
	TOpen
	TClose
	TString
	TComment
	TBlockComment
	TChar
	TAtom
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TSpace:        "TSpace",
		TNewline:      "TNewline",
		TOpen:         "TOpen",
		TClose:        "TClose",
		TString:       "TString",
		TComment:      "TComment",
		TBlockComment: "TBlockComment",
		TChar:         "TChar",
		TAtom:         "TAtom",
	}[t]
}

// IsCode reports whether a token of this type counts as code, as opposed to
// whitespace and comments.
func (t TokenType) IsCode() bool {
	switch t {
	case TSpace, TNewline, TComment, TBlockComment:
		return false
	}
	return true
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// EndLine returns the line on which the token's last byte lies.
func (t *Token) EndLine() int {
	return t.Pos.Line() + bytes.Count(t.Bytes, []byte{'\n'})
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}
func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
