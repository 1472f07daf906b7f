package libdiff

import "fmt"

// Hunk is a run of changed lines with surrounding context.  Starts are
// 1-based as in unified diffs; a zero length hunk side starts at the line
// before it.
type Hunk struct {
	FromStart, FromLen int
	ToStart, ToLen     int
	Lines              []Line
}

func (h *Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.FromStart, h.FromLen, h.ToStart, h.ToLen)
}

// Hunks groups lines into hunks with up to context unchanged lines around
// each change.  Changes separated by at most 2*context unchanged lines share
// a hunk.
func Hunks(lines []Line, context int) []Hunk {
	n := len(lines)
	fromAt := make([]int, n+1)
	toAt := make([]int, n+1)
	for i := range lines {
		fromAt[i+1], toAt[i+1] = fromAt[i], toAt[i]
		if lines[i].Op != Insert {
			fromAt[i+1]++
		}
		if lines[i].Op != Delete {
			toAt[i+1]++
		}
	}
	var res []Hunk
	for i := 0; i < n; {
		if lines[i].Op == Equal {
			i++
			continue
		}
		start := max(0, i-context)
		end := i
		for j := i; j < n && j-end-1 <= 2*context; j++ {
			if lines[j].Op != Equal {
				end = j
			}
		}
		stop := min(n, end+1+context)
		h := Hunk{
			FromStart: fromAt[start],
			FromLen:   fromAt[stop] - fromAt[start],
			ToStart:   toAt[start],
			ToLen:     toAt[stop] - toAt[start],
			Lines:     lines[start:stop],
		}
		if h.FromLen > 0 {
			h.FromStart++
		}
		if h.ToLen > 0 {
			h.ToStart++
		}
		res = append(res, h)
		i = stop
	}
	return res
}
