// Package token provides tokenization support for Lisp-family source text.
//
// [Tokenize] splits bytes into a lossless token sequence: concatenating the
// Bytes of every token reproduces the input exactly, whitespace and comments
// included.
//
// [Syntax] describes the lexical differences between dialects (comment
// characters, character literals, block comments, long strings).  Positions
// are byte offsets which a [PosDoc] maps to 0-based line and column.
package token
