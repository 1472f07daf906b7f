// Package filter selects files with boolean expressions.
//
// An expression sees the fields of File under their lower case names and
// may call
//
//	glob(pattern, name)  path.Match of name against pattern
//	getenv(name)         the value of an environment variable
//
// as well as the builtins of github.com/expr-lang/expr.  For example
//
//	dialect == "clojure" && !glob("test/*", path) && size < 1e6
package filter

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("filter error")

type File struct {
	Path    string `expr:"path"`
	Ext     string `expr:"ext"`
	Dialect string `expr:"dialect"`
	Size    int64  `expr:"size"`
}

type Filter struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(File{}),
		expr.AsBool(),
		expr.Function("glob", func(params ...any) (any, error) {
			return path.Match(params[0].(string), params[1].(string))
		},
			new(func(string, string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Compile compiles src.  An empty src accepts every file.
func Compile(src string) (*Filter, error) {
	f := &Filter{src: src}
	if src == "" {
		return f, nil
	}
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrFilter, src, err)
	}
	f.prg = prg
	return f, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(file File) (bool, error) {
	if f == nil || f.prg == nil {
		return true, nil
	}
	res, err := expr.Run(f.prg, file)
	if err != nil {
		return false, fmt.Errorf("%w: %q on %s: %w", ErrFilter, f.src, file.Path, err)
	}
	return res.(bool), nil
}
