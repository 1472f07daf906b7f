package restore

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/parenrestore/block"
	"github.com/signadot/parenrestore/debug"
	"github.com/signadot/parenrestore/parenmode"
	"github.com/signadot/parenrestore/scan"
	"github.com/signadot/parenrestore/token"
)

func clojure() *Reconciler {
	return New(scan.New(token.DefaultSyntax), parenmode.New(token.DefaultSyntax))
}

const (
	fixtureOld = `
(foo
  )

(bar (baz))

(foo
  (+ 1 2)
  ; hello world
  )
`
	fixtureNew = `
(foo)
  

(comment
  "stuff wasnt here before")

(foo
  (+ 1 2))
  ; hello world
  
`
	fixtureWant = `
(foo
  )

(comment
  "stuff wasnt here before")

(foo
  (+ 1 2)
  ; hello world
  )
`
)

func TestReconcileFixture(t *testing.T) {
	res, err := clojure().Reconcile(fixtureOld, fixtureNew)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 {
		t.Errorf("Count = %d, want 2", res.Count)
	}
	if diff := cmp.Diff(fixtureWant, res.Text); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}
	want := []block.Span{{Start: 1, End: 3}, {Start: 7, End: 11}}
	if diff := cmp.Diff(want, res.Restored); diff != "" {
		t.Errorf("restored spans (-want +got):\n%s", diff)
	}
}

func TestBuildLookupSkipsCanonicalForms(t *testing.T) {
	lookup, err := clojure().BuildLookup(fixtureOld)
	if err != nil {
		t.Fatal(err)
	}
	want := Lookup{
		"(foo)\n  ": {"(foo", "  )"},
		"(foo\n  (+ 1 2))\n  ; hello world\n  ": {
			"(foo", "  (+ 1 2)", "  ; hello world", "  )",
		},
	}
	if diff := cmp.Diff(want, lookup); diff != "" {
		t.Errorf("lookup (-want +got):\n%s", diff)
	}
}

var texts = []string{
	"",
	"\n",
	"; just a comment\n",
	"(a)",
	fixtureOld,
	fixtureNew,
	"(defn f [x]\n  (let [y (inc x)]\n    y\n    )\n  )\n\n(def a 1) (def b\n  2\n  )\n",
	"(ns x\n  (:require [a.b :as b]\n            [c.d :as d]\n            ))\n\n#_(ignored\n   )\n",
}

func TestReconcileUnchanged(t *testing.T) {
	r := clojure()
	for _, text := range texts {
		res, err := r.Reconcile(text, text)
		if err != nil {
			t.Errorf("%q: %v", text, err)
			continue
		}
		if res.Count != 0 || res.Text != text {
			t.Errorf("Reconcile(T, T) on %q = %d, %q", text, res.Count, res.Text)
		}
	}
}

func TestReconcileRoundTrip(t *testing.T) {
	r := clojure()
	for _, text := range texts {
		formatted, err := parenmode.Format(text, token.DefaultSyntax)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if formatted == text {
			continue
		}
		res, err := r.Reconcile(text, formatted)
		if err != nil {
			t.Errorf("%q: %v", text, err)
			continue
		}
		if res.Count < 1 {
			t.Errorf("%q: nothing restored", text)
		}
		if diff := cmp.Diff(text, res.Text); diff != "" {
			t.Errorf("round trip (-want +got):\n%s", diff)
		}
	}
}

// Two forms sharing a line are one block in the old text.  Formatting can
// move the second form's opener to its own line, splitting the block in
// two, and neither half matches the merged original.
func TestSharedLineSplitNotRestored(t *testing.T) {
	text := "(a\n ) (b\n )\n"
	formatted, err := parenmode.Format(text, token.DefaultSyntax)
	if err != nil {
		t.Fatal(err)
	}
	if formatted != "(a)\n  (b)\n \n" {
		t.Fatalf("formatted to %q", formatted)
	}
	res, err := clojure().Reconcile(text, formatted)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 0 || res.Text != formatted {
		t.Errorf("got %d, %q; want the formatted text unchanged", res.Count, res.Text)
	}
}

func TestLookupTrace(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	debug.Set("PARENRESTORE_DEBUG_LOOKUP", true)
	defer func() {
		debug.Set("PARENRESTORE_DEBUG_LOOKUP", false)
		debug.SetOutput(os.Stderr)
	}()
	if _, err := clojure().BuildLookup("(foo\n  )\n"); err != nil {
		t.Fatal(err)
	}
	want := `{"(foo)\n  ":["(foo","  )"]}` + "\n"
	if got := buf.String(); !strings.HasSuffix(got, want) {
		t.Errorf("trace %q does not end with %q", got, want)
	}
}

func TestNewFormPassesThrough(t *testing.T) {
	newText := "(foo)\n  \n(brand new\n        thing)\n"
	res, err := clojure().Reconcile("(foo\n  )\n", newText)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 {
		t.Errorf("Count = %d, want 1", res.Count)
	}
	if want := "(foo\n  )\n(brand new\n        thing)\n"; res.Text != want {
		t.Errorf("got %q, want %q", res.Text, want)
	}
}

func fields(text string) (string, error) {
	return strings.Join(strings.Fields(text), " "), nil
}

func TestLookupLastWriteWins(t *testing.T) {
	r := New(scan.New(token.DefaultSyntax), CanonicalizeFunc(fields))
	lookup, err := r.BuildLookup("(a  b)\n(a   b)\n")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Lookup{"(a b)": {"(a   b)"}}, lookup); diff != "" {
		t.Errorf("lookup (-want +got):\n%s", diff)
	}
	res, err := r.Restore("(a b)\n", lookup)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "(a   b)\n" {
		t.Errorf("got %q", res.Text)
	}
}

func TestSubsumeLongestFirst(t *testing.T) {
	lookup := Lookup{
		"(a)":     {"X"},
		"(a)\n;c": {"Y", "Z"},
	}
	res, err := clojure().Restore("(a)\n;c\n", lookup)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 || res.Text != "Y\nZ\n" {
		t.Errorf("got %d %q", res.Count, res.Text)
	}
	if diff := cmp.Diff([]block.Span{{Start: 0, End: 2}}, res.Restored); diff != "" {
		t.Errorf("restored (-want +got):\n%s", diff)
	}
}

func TestSubsumeForwardOnly(t *testing.T) {
	lookup := Lookup{";c\n(a)": {"X"}}
	res, err := clojure().Restore(";c\n(a)", lookup)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 0 || res.Text != ";c\n(a)" {
		t.Errorf("got %d %q", res.Count, res.Text)
	}
}

func TestScanErrorPropagates(t *testing.T) {
	r := clojure()
	for _, tt := range []struct{ oldText, newText string }{
		{oldText: "(a", newText: "(a)"},
		{oldText: "(a)", newText: "(a"},
		{oldText: "(a)", newText: "(a \"b)"},
	} {
		res, err := r.Reconcile(tt.oldText, tt.newText)
		if !errors.Is(err, block.ErrScan) {
			t.Errorf("%q -> %q: got %v, want scan error", tt.oldText, tt.newText, err)
		}
		if res.Text != "" || res.Count != 0 {
			t.Errorf("%q -> %q: partial result %+v", tt.oldText, tt.newText, res)
		}
	}
}

var errCanon = errors.New("canon failed")

func TestCanonicalizeErrorPropagates(t *testing.T) {
	bad := CanonicalizeFunc(func(string) (string, error) {
		return "", errCanon
	})
	_, err := Reconcile("\n(a)\n", "(a)", scan.New(token.DefaultSyntax), bad)
	if !errors.Is(err, ErrCanonicalize) || !errors.Is(err, errCanon) {
		t.Fatalf("got %v", err)
	}
	var ce *CanonicalizeError
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not a *CanonicalizeError", err)
	}
	if ce.Span != (block.Span{Start: 1, End: 2}) {
		t.Errorf("span %s, want [1,2)", ce.Span)
	}
}
