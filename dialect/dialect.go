// Package dialect describes the Lisp dialects parenrestore understands.
package dialect

import (
	"github.com/signadot/parenrestore/block"
	"github.com/signadot/parenrestore/parenmode"
	"github.com/signadot/parenrestore/restore"
	"github.com/signadot/parenrestore/scan"
	"github.com/signadot/parenrestore/token"
)

type Dialect struct {
	Name string
	// Extensions lists file name extensions including the leading dot.
	Extensions []string
	Syntax     token.Syntax
}

func (d *Dialect) Scanner() block.Scanner {
	return scan.New(d.Syntax)
}

func (d *Dialect) Canonicalizer() restore.Canonicalizer {
	return parenmode.New(d.Syntax)
}

func (d *Dialect) Reconciler() *restore.Reconciler {
	return restore.New(d.Scanner(), d.Canonicalizer())
}

func (d *Dialect) String() string {
	return d.Name
}

var (
	Clojure = &Dialect{
		Name:       "clojure",
		Extensions: []string{".clj", ".cljc", ".cljs", ".cljr", ".cljd", ".edn", ".bb"},
		Syntax:     token.DefaultSyntax,
	}
	Scheme = &Dialect{
		Name:       "scheme",
		Extensions: []string{".scm", ".ss", ".sld", ".sls"},
		Syntax:     token.Syntax{LineComment: ';', BlockComments: true, CharLiterals: true},
	}
	Racket = &Dialect{
		Name:       "racket",
		Extensions: []string{".rkt"},
		Syntax:     token.Syntax{LineComment: ';', BlockComments: true, CharLiterals: true},
	}
	CommonLisp = &Dialect{
		Name:       "commonlisp",
		Extensions: []string{".lisp", ".lsp", ".cl", ".asd"},
		Syntax:     token.Syntax{LineComment: ';', BlockComments: true, CharLiterals: true},
	}
	EmacsLisp = &Dialect{
		Name:       "emacslisp",
		Extensions: []string{".el"},
		Syntax:     token.Syntax{LineComment: ';', QuestionChars: true},
	}
	Fennel = &Dialect{
		Name:       "fennel",
		Extensions: []string{".fnl"},
		Syntax:     token.Syntax{LineComment: ';'},
	}
	Janet = &Dialect{
		Name:       "janet",
		Extensions: []string{".janet"},
		Syntax:     token.Syntax{LineComment: '#', BacktickStrings: true},
	}
)

func init() {
	for _, d := range []*Dialect{Clojure, Scheme, Racket, CommonLisp, EmacsLisp, Fennel, Janet} {
		if err := Register(d); err != nil {
			panic(err)
		}
	}
}
