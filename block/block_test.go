package block

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func spans(ss ...[2]int) []Span {
	res := make([]Span, len(ss))
	for i, s := range ss {
		res[i] = Span{Start: s[0], End: s[1]}
	}
	return res
}

func fixed(forms ...[2]int) Scanner {
	return ScanFunc(func(_ string, onForm func(Span)) error {
		for _, f := range spans(forms...) {
			onForm(f)
		}
		return nil
	})
}

func TestSplitJoinLines(t *testing.T) {
	for _, text := range []string{
		"",
		"\n",
		"a",
		"a\n",
		"a\nb",
		"\n\n(foo)\n",
		"x\r\ny\r\n",
	} {
		lines := SplitLines(text)
		if len(lines) != CountLines(text) {
			t.Errorf("%q: %d lines, CountLines says %d", text, len(lines), CountLines(text))
		}
		if got := JoinLines(lines); got != text {
			t.Errorf("JoinLines(SplitLines(%q)) = %q", text, got)
		}
	}
}

func TestTrailingNewline(t *testing.T) {
	if diff := cmp.Diff([]string{"a", ""}, SplitLines("a\n")); diff != "" {
		t.Errorf("SplitLines(\"a\\n\") (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{""}, SplitLines("")); diff != "" {
		t.Errorf("SplitLines(\"\") (-want +got):\n%s", diff)
	}
}

type mergeTest struct {
	in, out []Span
}

func TestMerge(t *testing.T) {
	mts := []mergeTest{
		{in: nil, out: []Span{}},
		{in: spans([2]int{0, 1}), out: spans([2]int{0, 1})},
		{in: spans([2]int{0, 1}, [2]int{1, 2}), out: spans([2]int{0, 1}, [2]int{1, 2})},
		// two forms on one line
		{in: spans([2]int{0, 1}, [2]int{0, 1}), out: spans([2]int{0, 1})},
		// a form starting on the line where the previous one ends
		{in: spans([2]int{0, 3}, [2]int{2, 5}, [2]int{6, 7}), out: spans([2]int{0, 5}, [2]int{6, 7})},
		// chains of merges
		{in: spans([2]int{0, 2}, [2]int{1, 3}, [2]int{2, 4}), out: spans([2]int{0, 4})},
	}
	for _, mt := range mts {
		got := Merge(mt.in)
		if diff := cmp.Diff(mt.out, got); diff != "" {
			t.Errorf("Merge(%v) (-want +got):\n%s", mt.in, diff)
		}
	}
}

func TestPad(t *testing.T) {
	got := Pad(spans([2]int{1, 3}, [2]int{4, 5}), 7)
	want := List{
		{Kind: Gap, Span: Span{0, 1}},
		{Kind: Form, Span: Span{1, 3}},
		{Kind: Gap, Span: Span{3, 4}},
		{Kind: Form, Span: Span{4, 5}},
		{Kind: Gap, Span: Span{5, 7}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pad (-want +got):\n%s", diff)
	}
	if err := got.Validate(7); err != nil {
		t.Error(err)
	}
}

func TestPadNoForms(t *testing.T) {
	got := Pad(nil, 3)
	want := List{{Kind: Gap, Span: Span{0, 3}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pad (-want +got):\n%s", diff)
	}
}

func TestSegmentCoverage(t *testing.T) {
	texts := []struct {
		text  string
		forms [][2]int
	}{
		{text: "", forms: nil},
		{text: "(a)", forms: [][2]int{{0, 1}}},
		{text: "(a)\n", forms: [][2]int{{0, 1}}},
		{text: "\n(a\n b)\n\n(c) (d)\n", forms: [][2]int{{1, 3}, {4, 5}, {4, 5}}},
		{text: "(a\n) (b\n)\n(c)", forms: [][2]int{{0, 2}, {1, 3}, {3, 4}}},
	}
	for _, tt := range texts {
		l, err := Segment(tt.text, fixed(tt.forms...))
		if err != nil {
			t.Errorf("%q: %v", tt.text, err)
			continue
		}
		if err := l.Validate(CountLines(tt.text)); err != nil {
			t.Errorf("%q: %v (%s)", tt.text, err, l)
		}
		if len(l)%2 != 1 {
			t.Errorf("%q: even length %d", tt.text, len(l))
		}
	}
}

func TestSegmentMergesSharedLines(t *testing.T) {
	l, err := Segment("(a\n) (b\n)\n", fixed([2]int{0, 2}, [2]int{1, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(spans([2]int{0, 3}), l.Forms()); diff != "" {
		t.Errorf("forms (-want +got):\n%s", diff)
	}
}

var errBoom = errors.New("boom")

func TestSegmentScanError(t *testing.T) {
	sc := ScanFunc(func(_ string, onForm func(Span)) error {
		onForm(Span{0, 1})
		return errBoom
	})
	l, err := Segment("(a)\n(", sc)
	if l != nil {
		t.Errorf("got partial list %s", l)
	}
	if !errors.Is(err, ErrScan) {
		t.Errorf("error %v is not ErrScan", err)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("error %v does not wrap the scanner error", err)
	}
	var se *ScanError
	if !errors.As(err, &se) {
		t.Errorf("error %T is not a *ScanError", err)
	}
}

func TestSegmentBadRanges(t *testing.T) {
	for _, forms := range [][][2]int{
		{{0, 9}},
		{{2, 1}},
		{{2, 3}, {0, 1}},
	} {
		_, err := Segment("a\nb\nc", fixed(forms...))
		if !errors.Is(err, ErrScan) || !errors.Is(err, ErrInvalid) {
			t.Errorf("forms %v: got %v, want invalid scan error", forms, err)
		}
	}
}

func TestWithGapStart(t *testing.T) {
	l := Pad(spans([2]int{1, 2}), 5)
	m := l.WithGapStart(2, 4)
	if l[2].Start != 2 {
		t.Errorf("WithGapStart modified its receiver: %s", l)
	}
	if m[2].Span != (Span{4, 5}) {
		t.Errorf("got gap %s, want [4,5)", m[2].Span)
	}
	if err := m.Validate(5); err == nil {
		t.Errorf("shrunk list should no longer cover every line")
	}
}

func TestValidateRejects(t *testing.T) {
	bad := []List{
		{},
		{{Kind: Form, Span: Span{0, 1}}},
		{{Kind: Gap, Span: Span{0, 1}}, {Kind: Form, Span: Span{2, 3}}, {Kind: Gap, Span: Span{3, 3}}},
		{{Kind: Gap, Span: Span{0, 2}}},
	}
	for _, l := range bad {
		if err := l.Validate(3); !errors.Is(err, ErrInvalid) {
			t.Errorf("Validate(%s) = %v, want ErrInvalid", l, err)
		}
	}
}
