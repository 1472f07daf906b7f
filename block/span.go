package block

import "fmt"

// Span is a half-open line range [Start, End).
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Validate reports an error unless 0 <= Start <= End <= n.
func (s Span) Validate(n int) error {
	if s.Start < 0 {
		return fmt.Errorf("%w: span %s starts before line 0", ErrInvalid, s)
	}
	if s.End < s.Start {
		return fmt.Errorf("%w: span %s ends before it starts", ErrInvalid, s)
	}
	if s.End > n {
		return fmt.Errorf("%w: span %s ends past line %d", ErrInvalid, s, n)
	}
	return nil
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
