package block

import "strings"

// SplitLines splits text on "\n".  A trailing newline produces a final empty
// line, so "a\n" has two lines and "" has one.  JoinLines is its inverse.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// CountLines returns len(SplitLines(text)) without splitting.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// Text returns the lines of s joined with "\n".
func Text(lines []string, s Span) string {
	return JoinLines(lines[s.Start:s.End])
}
