// Package restore reconciles a reformatted Lisp text with its previous
// version.
//
// Forms of the new text which are only a reformatting of a form of the old
// text get their old formatting back; forms that changed otherwise, and
// everything between forms, are left as they are in the new text.
//
// The old text's forms are canonicalized to build a Lookup from canonical
// text to original lines.  The new text is then walked block by block.  Each
// form is looked up, first extended over as many lines of the following gap
// as possible, since a formatter can leave lines that held only close
// brackets behind in the gap.
package restore
