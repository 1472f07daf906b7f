package restore

import (
	"github.com/signadot/parenrestore/block"
	"github.com/signadot/parenrestore/debug"
)

// Canonicalizer renders a form in canonical formatting.  It must be
// deterministic.
type Canonicalizer interface {
	Canonicalize(text string) (string, error)
}

type CanonicalizeFunc func(text string) (string, error)

func (f CanonicalizeFunc) Canonicalize(text string) (string, error) {
	return f(text)
}

// Lookup maps the canonical text of an old form to its original lines.
type Lookup map[string][]string

type Result struct {
	// Count is the number of forms whose original formatting was restored.
	Count int
	Text  string
	// Restored holds the spans of the new text that were replaced, in
	// order.
	Restored []block.Span
}

// Reconciler holds the scanner and canonicalizer of one dialect.  It has
// no other state and may be used concurrently.
type Reconciler struct {
	sc block.Scanner
	c  Canonicalizer
}

func New(sc block.Scanner, c Canonicalizer) *Reconciler {
	return &Reconciler{sc: sc, c: c}
}

// Reconcile is shorthand for New(sc, c).Reconcile(oldText, newText).
func Reconcile(oldText, newText string, sc block.Scanner, c Canonicalizer) (Result, error) {
	return New(sc, c).Reconcile(oldText, newText)
}

func (r *Reconciler) Reconcile(oldText, newText string) (Result, error) {
	lookup, err := r.BuildLookup(oldText)
	if err != nil {
		return Result{}, err
	}
	return r.Restore(newText, lookup)
}

// BuildLookup canonicalizes every form of oldText.  Forms whose canonical text
// differs from the original are recorded; when two forms share a canonical
// text the later one wins.
func (r *Reconciler) BuildLookup(oldText string) (Lookup, error) {
	l, err := block.Segment(oldText, r.sc)
	if err != nil {
		return nil, err
	}
	lines := block.SplitLines(oldText)
	lookup := Lookup{}
	for _, f := range l.Forms() {
		orig := block.Text(lines, f)
		canon, err := r.c.Canonicalize(orig)
		if err != nil {
			return nil, &CanonicalizeError{Span: f, Err: err}
		}
		if canon == orig {
			continue
		}
		if debug.Lookup() {
			if _, present := lookup[canon]; present {
				debug.Logf("lookup: %s replaces earlier form with canonical text %q\n", f, canon)
			} else {
				debug.Logf("lookup: %s %q\n", f, canon)
			}
		}
		lookup[canon] = lines[f.Start:f.End]
	}
	if debug.Lookup() {
		debug.LogAny(lookup)
	}
	return lookup, nil
}

// Restore rebuilds newText, replacing each form found in lookup by its
// original lines.
func (r *Reconciler) Restore(newText string, lookup Lookup) (Result, error) {
	l, err := block.Segment(newText, r.sc)
	if err != nil {
		return Result{}, err
	}
	lines := block.SplitLines(newText)
	out := make([]string, 0, len(lines))
	res := Result{}
	for i := 0; i < len(l); i++ {
		b := l[i]
		if b.Kind == block.Gap {
			out = append(out, lines[b.Start:b.End]...)
			continue
		}
		gap := l[i+1]
		orig, end, ok := subsume(lines, b.Span, gap.Span, lookup)
		if !ok {
			out = append(out, lines[b.Start:b.End]...)
			continue
		}
		if debug.Restore() {
			debug.Logf("restore: %s from %d original lines\n", block.Span{Start: b.Start, End: end}, len(orig))
		}
		out = append(out, orig...)
		res.Count++
		res.Restored = append(res.Restored, block.Span{Start: b.Start, End: end})
		l = l.WithGapStart(i+1, end)
	}
	res.Text = block.JoinLines(out)
	return res, nil
}

// subsume looks form up extended to each end in [gap.Start, gap.End],
// longest first.
func subsume(lines []string, form, gap block.Span, lookup Lookup) ([]string, int, bool) {
	for end := gap.End; end >= gap.Start; end-- {
		cand := block.Text(lines, block.Span{Start: form.Start, End: end})
		if orig, ok := lookup[cand]; ok {
			return orig, end, true
		}
	}
	return nil, 0, false
}
