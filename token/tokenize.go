package token

import (
	"unicode"
	"unicode/utf8"
)

type tokenizer struct {
	syn Syntax
	d   []byte
	pd  *PosDoc
	i   int
}

// Tokenize appends the tokens of src to dst.  Every byte of src belongs to
// exactly one token.
func Tokenize(dst []Token, src []byte, syn Syntax) ([]Token, error) {
	tk := &tokenizer{syn: syn, d: src, pd: NewPosDoc(src)}
	n := len(src)
	for tk.i < n {
		start := tk.i
		typ, err := tk.next()
		if err != nil {
			return nil, err
		}
		dst = append(dst, Token{
			Type:  typ,
			Pos:   tk.pd.Pos(start),
			Bytes: src[start:tk.i],
		})
	}
	return dst, nil
}

func (tk *tokenizer) peek(off int) byte {
	if tk.i+off >= len(tk.d) {
		return 0
	}
	return tk.d[tk.i+off]
}

func (tk *tokenizer) next() (TokenType, error) {
	c := tk.d[tk.i]
	switch {
	case c == '\n':
		tk.i++
		return TNewline, nil
	case isSpace(c):
		for tk.i < len(tk.d) && isSpace(tk.d[tk.i]) {
			tk.i++
		}
		return TSpace, nil
	case c == '"':
		return TString, tk.quoted()
	case tk.syn.BlockComments && c == '#' && tk.peek(1) == '|':
		return TBlockComment, tk.blockComment()
	case c == tk.syn.LineComment:
		for tk.i < len(tk.d) && tk.d[tk.i] != '\n' {
			tk.i++
		}
		return TComment, nil
	case tk.syn.BacktickStrings && c == '`':
		return TString, tk.backtick()
	case tk.syn.CharLiterals && c == '\\':
		return TChar, tk.char(tk.i + 1)
	case tk.syn.QuestionChars && c == '?' && tk.i+1 < len(tk.d):
		from := tk.i + 1
		if tk.d[from] == '\\' {
			from++
		}
		return TChar, tk.char(from)
	case IsOpen(c):
		tk.i++
		return TOpen, nil
	case IsClose(c):
		tk.i++
		return TClose, nil
	}
	tk.atom()
	return TAtom, nil
}

func (tk *tokenizer) quoted() error {
	start := tk.i
	tk.i++
	for tk.i < len(tk.d) {
		switch tk.d[tk.i] {
		case '\\':
			tk.i += 2
			continue
		case '"':
			tk.i++
			return nil
		}
		tk.i++
	}
	tk.i = len(tk.d)
	return NewTokenizeErr(ErrUnterminated, tk.pd.Pos(start))
}

func (tk *tokenizer) blockComment() error {
	start := tk.i
	depth := 0
	for tk.i < len(tk.d) {
		switch {
		case tk.d[tk.i] == '#' && tk.peek(1) == '|':
			depth++
			tk.i += 2
		case tk.d[tk.i] == '|' && tk.peek(1) == '#':
			depth--
			tk.i += 2
			if depth == 0 {
				return nil
			}
		default:
			tk.i++
		}
	}
	return NewTokenizeErr(ErrUnterminated, tk.pd.Pos(start))
}

func (tk *tokenizer) backtick() error {
	start := tk.i
	for tk.i < len(tk.d) && tk.d[tk.i] == '`' {
		tk.i++
	}
	k := tk.i - start
	run := 0
	for tk.i < len(tk.d) {
		if tk.d[tk.i] == '`' {
			run++
			tk.i++
			if run == k {
				return nil
			}
			continue
		}
		run = 0
		tk.i++
	}
	return NewTokenizeErr(ErrUnterminated, tk.pd.Pos(start))
}

// char reads a character literal whose character starts at from.  Named
// characters such as \newline or é continue through letters and digits.
func (tk *tokenizer) char(from int) error {
	if from >= len(tk.d) || tk.d[from] == '\n' {
		tk.i = min(from, len(tk.d))
		return NewTokenizeErr(ErrCharLiteral, tk.pd.Pos(from-1))
	}
	r, sz := utf8.DecodeRune(tk.d[from:])
	tk.i = from + sz
	if !isWordRune(r) {
		return nil
	}
	for tk.i < len(tk.d) {
		r, sz := utf8.DecodeRune(tk.d[tk.i:])
		if !isWordRune(r) {
			break
		}
		tk.i += sz
	}
	return nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (tk *tokenizer) atom() {
	for tk.i < len(tk.d) {
		c := tk.d[tk.i]
		if c == '\\' && !tk.syn.CharLiterals {
			tk.i += 2
			continue
		}
		if tk.isDelim(c) {
			break
		}
		tk.i++
	}
	tk.i = min(tk.i, len(tk.d))
}

func (tk *tokenizer) isDelim(c byte) bool {
	switch {
	case c == '\n', isSpace(c), IsOpen(c), IsClose(c), c == '"':
		return true
	case c == tk.syn.LineComment:
		return true
	case c == '\\' && tk.syn.CharLiterals:
		return true
	case c == '`' && tk.syn.BacktickStrings:
		return true
	}
	return false
}
