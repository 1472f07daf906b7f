package parenmode

import (
	"errors"
	"testing"

	"github.com/signadot/parenrestore/token"
)

type formatTest struct {
	in, out string
}

func TestFormat(t *testing.T) {
	fts := []formatTest{
		{in: "", out: ""},
		{in: "(foo)\n", out: "(foo)\n"},
		{in: "(foo\n  )", out: "(foo)\n  "},
		{in: "(foo )", out: "(foo)"},
		{in: "(a (b) )", out: "(a (b))"},
		{in: "(a\nb)", out: "(a\n b)"},
		{in: "(a (b)\n      c)", out: "(a (b)\n   c)"},
		{in: "(é (b)\n      c)", out: "(é (b)\n   c)"},
		{in: "  (a)\n    (b)", out: "  (a)\n    (b)"},
		{in: "(a\n; x\n b)", out: "(a\n; x\n b)"},
		{in: "(a \"x\ny\")", out: "(a \"x\ny\")"},
		{in: "(foo ; c\n)", out: "(foo) ; c\n"},
		{in: "(a\n (b\n  )\n)", out: "(a\n (b))\n  \n"},
		{in: "[1\n 2\n ]", out: "[1\n 2]\n "},
		{
			in:  "(foo\n  (+ 1 2)\n  ; hello world\n  )",
			out: "(foo\n  (+ 1 2))\n  ; hello world\n  ",
		},
		{
			in:  "\n(foo\n  )\n\n(bar (baz))\n",
			out: "\n(foo)\n  \n\n(bar (baz))\n",
		},
	}
	for _, ft := range fts {
		got, err := Format(ft.in, token.DefaultSyntax)
		if err != nil {
			t.Errorf("%q: %v", ft.in, err)
			continue
		}
		if got != ft.out {
			t.Errorf("Format(%q) = %q, want %q", ft.in, got, ft.out)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	for _, in := range []string{
		"(foo\n  )",
		"(defn f [x]\n  (let [y (inc x)]\n    y\n    )\n  )\n",
		"(a (b)\n      c\n )",
		"(ns x\n  (:require [a.b :as b]\n            [c.d :as d] ))\n\n(def y 1) (def z 2)\n",
		"(a\n  \"multi\n line\"\n  )",
	} {
		once, err := Format(in, token.DefaultSyntax)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		twice, err := Format(once, token.DefaultSyntax)
		if err != nil {
			t.Errorf("%q: %v", once, err)
			continue
		}
		if once != twice {
			t.Errorf("not idempotent on %q:\n once  %q\n twice %q", in, once, twice)
		}
	}
}

func TestFormatDialects(t *testing.T) {
	scheme := token.Syntax{LineComment: ';', BlockComments: true, CharLiterals: true}
	got, err := Format("(a #| ) |#\n  )", scheme)
	if err != nil {
		t.Fatal(err)
	}
	if want := "(a #| ) |#)\n  "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	janet := token.Syntax{LineComment: '#', BacktickStrings: true}
	got, err = Format("(a # )\n )", janet)
	if err != nil {
		t.Fatal(err)
	}
	if want := "(a) # )\n "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatErr(t *testing.T) {
	for _, in := range []string{"(a", "a)", "(a]", "(a\n  (b)"} {
		_, err := Format(in, token.DefaultSyntax)
		if !errors.Is(err, token.ErrDocBalance) {
			t.Errorf("%q: got %v, want imbalance", in, err)
		}
	}
	_, err := Format(`(a "b)`, token.DefaultSyntax)
	if !errors.Is(err, token.ErrUnterminated) {
		t.Errorf("got %v, want unterminated", err)
	}
}
