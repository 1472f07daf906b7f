// Package libdiff computes and renders line diffs between two texts.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff.  Text excludes the newline; NoEOL marks a
// final line which had none.
type Line struct {
	Op    Op
	Text  string
	NoEOL bool
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		for _, l := range strings.SplitAfter(diff.Text, "\n") {
			if l == "" {
				continue
			}
			text, eol := strings.CutSuffix(l, "\n")
			res = append(res, Line{Op: op, Text: text, NoEOL: !eol})
		}
	}
	return res
}

// Count returns the number of inserted and deleted lines.
func Count(lines []Line) (ins, del int) {
	for i := range lines {
		switch lines[i].Op {
		case Insert:
			ins++
		case Delete:
			del++
		}
	}
	return ins, del
}
