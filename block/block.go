package block

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Gap Kind = iota
	Form
)

func (k Kind) String() string {
	switch k {
	case Gap:
		return "gap"
	case Form:
		return "form"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

type Block struct {
	Kind Kind
	Span
}

func (b Block) String() string {
	return b.Kind.String() + b.Span.String()
}

// List is a segmentation of a text.  Lists are treated as values: methods
// that change a list return a new one.
type List []Block

// Forms returns the spans of the form blocks in order.
func (l List) Forms() []Span {
	res := make([]Span, 0, len(l)/2)
	for i := 1; i < len(l); i += 2 {
		res = append(res, l[i].Span)
	}
	return res
}

// WithGapStart returns a copy of l in which the gap at index i starts at
// start.  It is used when the preceding form absorbs the first lines of the
// gap.
func (l List) WithGapStart(i, start int) List {
	if i%2 != 0 || l[i].Kind != Gap {
		panic(fmt.Sprintf("block %d is not a gap", i))
	}
	if start < l[i].Start || start > l[i].End {
		panic(fmt.Sprintf("gap start %d outside %s", start, l[i].Span))
	}
	res := make(List, len(l))
	copy(res, l)
	res[i].Start = start
	return res
}

// Validate checks that l is an alternating gap/form list covering [0,n)
// exactly.
func (l List) Validate(n int) error {
	if len(l)%2 != 1 {
		return fmt.Errorf("%w: list has even length %d", ErrInvalid, len(l))
	}
	at := 0
	for i, b := range l {
		want := Gap
		if i%2 == 1 {
			want = Form
		}
		if b.Kind != want {
			return fmt.Errorf("%w: block %d is a %s, want %s", ErrInvalid, i, b.Kind, want)
		}
		if err := b.Span.Validate(n); err != nil {
			return err
		}
		if b.Start != at {
			return fmt.Errorf("%w: block %d %s does not start at line %d", ErrInvalid, i, b.Span, at)
		}
		at = b.End
	}
	if at != n {
		return fmt.Errorf("%w: list ends at line %d, want %d", ErrInvalid, at, n)
	}
	return nil
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, b := range l {
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}
