// Package parenmode implements a paren-mode formatter for Lisp text.
//
// In paren mode the brackets are authoritative.  The formatter never adds or
// removes a bracket; it only moves close brackets that start a line onto the
// end of the previous line of code, removes whitespace between trailing
// close brackets, and clamps indentation so that each line sits inside the
// list that contains it and outside the lists closed above it.
//
// Lines at top level are never re-indented, so formatting a whole text gives
// the same result as formatting each of its top-level forms separately.
package parenmode
