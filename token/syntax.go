package token

// Syntax holds the lexical settings that vary between Lisp dialects.
type Syntax struct {
	// LineComment starts a comment running to the end of the line.
	LineComment byte
	// BlockComments enables nestable #| ... |# comments.
	BlockComments bool
	// CharLiterals makes a backslash start a character literal such as
	// \a, \( or \newline.  When false a backslash escapes the next byte of
	// the surrounding symbol.
	CharLiterals bool
	// QuestionChars makes ? at the start of a token introduce a character
	// literal, as in ?a or ?\(.
	QuestionChars bool
	// BacktickStrings enables long strings delimited by runs of backticks.
	BacktickStrings bool
}

var DefaultSyntax = Syntax{
	LineComment:  ';',
	CharLiterals: true,
}

func IsOpen(c byte) bool {
	return c == '(' || c == '[' || c == '{'
}

func IsClose(c byte) bool {
	return c == ')' || c == ']' || c == '}'
}

// Closes reports whether close is the bracket matching open.
func Closes(open, close byte) bool {
	switch open {
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	case '{':
		return close == '}'
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}
