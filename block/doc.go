// Package block segments a text into alternating gap and form blocks.
//
// A text of n lines (see [SplitLines]) is covered by a [List]
//
//	Gap, Form, Gap, Form, ..., Gap
//
// of contiguous half-open line ranges.  Form blocks hold the lines of one
// top-level form, or of several forms sharing lines; gap blocks hold the
// whitespace and comments around them and may be empty.  Forms therefore sit
// at odd indices and the list always has odd length.
//
// Form ranges come from a [Scanner], which knows the dialect's syntax.
package block
