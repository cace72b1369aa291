// Package sexpr bridges the parenthesised S-expression surface syntax and
// the Formula/Term tree: parsing surface text into a Formula, and rendering
// a Formula back out to surface text.
package sexpr

import "fmt"

// SExpr is the tagged tree the tokenizer/reader yields before any
// Formula-specific interpretation: an atom (identifier or quoted string) or
// a parenthesised list of SExprs.
type SExpr struct {
	Atom    string
	IsAtom  bool
	Members []*SExpr
}

func (e *SExpr) String() string {
	if e.IsAtom {
		return e.Atom
	}
	s := "("
	for i, m := range e.Members {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s + ")"
}

// connectives maps the lowercase head keyword to its expected member count
// (excluding the head itself): 1 for Not, 2 for the binary connectives, 2
// for a quantifier (a variable-name atom and a body).
var connectives = map[string]int{
	"not":     1,
	"and":     2,
	"or":      2,
	"if":      2,
	"iff":     2,
	"forall":  2,
	"exists":  2,
}

var quantifierKeywords = map[string]bool{"forall": true, "exists": true}

// ErrMalformed reports a structurally invalid S-expression: a list whose
// first element is itself a list, or a quantifier whose variable slot is a
// list.
type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("sexpr: malformed: %s", e.Reason)
}
