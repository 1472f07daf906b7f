package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.LineCol()
		fmt.Fprintf(w, "\t%s %q %d:%d\n", t.Type, t.Bytes, line, col)
	}
}
