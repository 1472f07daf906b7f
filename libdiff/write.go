package libdiff

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Colors struct {
	File   func(string, ...any) string
	Hunk   func(string, ...any) string
	Insert func(string, ...any) string
	Delete func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		File:   color.New(color.Bold).SprintfFunc(),
		Hunk:   color.CyanString,
		Insert: color.RGB(8, 196, 16).SprintfFunc(),
		Delete: color.RGB(196, 32, 32).SprintfFunc(),
	}
}

// Write renders hunks as a unified diff.  colors may be nil.
func Write(w io.Writer, fromName, toName string, hunks []Hunk, colors *Colors) error {
	if len(hunks) == 0 {
		return nil
	}
	c := colors
	if c == nil {
		c = &Colors{File: fmt.Sprintf, Hunk: fmt.Sprintf, Insert: fmt.Sprintf, Delete: fmt.Sprintf}
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(c.File("--- %s", fromName) + "\n")
	bw.WriteString(c.File("+++ %s", toName) + "\n")
	for i := range hunks {
		h := &hunks[i]
		bw.WriteString(c.Hunk("%s", h.Header()) + "\n")
		for _, l := range h.Lines {
			text := l.Op.String() + l.Text
			switch l.Op {
			case Insert:
				text = c.Insert("%s", text)
			case Delete:
				text = c.Delete("%s", text)
			}
			bw.WriteString(text + "\n")
			if l.NoEOL {
				bw.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return bw.Flush()
}
