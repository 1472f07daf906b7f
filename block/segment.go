package block

import "fmt"

// Scanner finds the top-level forms of a text.  Scan calls onForm once per
// form with its line range, in non-decreasing order of Start, and returns
// an error if the text cannot be read.
type Scanner interface {
	Scan(text string, onForm func(Span)) error
}

type ScanFunc func(text string, onForm func(Span)) error

func (f ScanFunc) Scan(text string, onForm func(Span)) error {
	return f(text, onForm)
}

// Segment scans text with sc and returns its block list.  On failure it
// returns a *ScanError and no list.
func Segment(text string, sc Scanner) (List, error) {
	n := CountLines(text)
	var (
		forms []Span
		bad   error
	)
	err := sc.Scan(text, func(s Span) {
		if bad != nil {
			return
		}
		if err := s.Validate(n); err != nil {
			bad = err
			return
		}
		if len(forms) > 0 && s.Start < forms[len(forms)-1].Start {
			bad = fmt.Errorf("%w: form %s reported after %s", ErrInvalid, s, forms[len(forms)-1])
			return
		}
		forms = append(forms, s)
	})
	if err != nil {
		return nil, &ScanError{Err: err}
	}
	if bad != nil {
		return nil, &ScanError{Err: bad}
	}
	return Pad(Merge(forms), n), nil
}

// Merge joins forms that share a line: a form starting before the end of
// the running form extends it.
func Merge(forms []Span) []Span {
	res := make([]Span, 0, len(forms))
	for _, f := range forms {
		if k := len(res) - 1; k >= 0 && f.Start < res[k].End {
			res[k].End = max(res[k].End, f.End)
			continue
		}
		res = append(res, f)
	}
	return res
}

// Pad surrounds merged forms with gaps to cover [0,n).
func Pad(forms []Span, n int) List {
	res := make(List, 0, 2*len(forms)+1)
	at := 0
	for _, f := range forms {
		res = append(res,
			Block{Kind: Gap, Span: Span{Start: at, End: f.Start}},
			Block{Kind: Form, Span: f})
		at = f.End
	}
	return append(res, Block{Kind: Gap, Span: Span{Start: at, End: n}})
}
