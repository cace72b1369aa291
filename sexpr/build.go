package sexpr

import (
	"fmt"

	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/term"
)

// ParseFormula reads s as a single S-expression and interprets it as a
// Formula.
func ParseFormula(s string) (formula.Formula, error) {
	e, rest, err := Read(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &ErrMalformed{Reason: fmt.Sprintf("trailing input %q", rest)}
	}
	return FormulaFromSExpr(e)
}

// ParseTerm reads s as a single S-expression and interprets it as a Term.
func ParseTerm(s string) (*term.Term, error) {
	e, rest, err := Read(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &ErrMalformed{Reason: fmt.Sprintf("trailing input %q", rest)}
	}
	return TermFromSExpr(e)
}

// FormulaFromSExpr implements spec section 4.C's "Formula from
// S-expression" algorithm.
func FormulaFromSExpr(e *SExpr) (formula.Formula, error) {
	if e.IsAtom {
		return formula.NewProp(e.Atom), nil
	}
	if len(e.Members) == 0 {
		return nil, &ErrMalformed{Reason: "empty list"}
	}
	head := e.Members[0]
	if !head.IsAtom {
		return nil, &ErrMalformed{Reason: "list with a list in head position"}
	}
	bodies := e.Members[1:]
	if arity, ok := connectives[head.Atom]; ok && len(bodies) == arity {
		return buildConnective(head.Atom, bodies)
	}
	return buildPred(head.Atom, bodies)
}

func buildConnective(head string, bodies []*SExpr) (formula.Formula, error) {
	if quantifierKeywords[head] {
		if !bodies[0].IsAtom {
			return nil, &ErrMalformed{Reason: "quantifier variable must be an atom, not a list"}
		}
		body, err := FormulaFromSExpr(bodies[1])
		if err != nil {
			return nil, err
		}
		if head == "forall" {
			return formula.NewForall(bodies[0].Atom, body), nil
		}
		return formula.NewExists(bodies[0].Atom, body), nil
	}
	if head == "not" {
		arg, err := FormulaFromSExpr(bodies[0])
		if err != nil {
			return nil, err
		}
		return formula.NewNot(arg), nil
	}
	left, err := FormulaFromSExpr(bodies[0])
	if err != nil {
		return nil, err
	}
	right, err := FormulaFromSExpr(bodies[1])
	if err != nil {
		return nil, err
	}
	switch head {
	case "and":
		return formula.NewAnd(left, right), nil
	case "or":
		return formula.NewOr(left, right), nil
	case "if":
		return formula.NewIf(left, right), nil
	case "iff":
		return formula.NewIff(left, right), nil
	}
	panic("sexpr: unreachable connective " + head)
}

func buildPred(head string, bodies []*SExpr) (formula.Formula, error) {
	args := make([]*term.Term, len(bodies))
	for i, b := range bodies {
		t, err := TermFromSExpr(b)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}
	return formula.NewProp(head, args...), nil
}

// TermFromSExpr implements spec section 4.C's "Term from S-expression"
// algorithm: an atom becomes a constant; a list with an atomic head becomes
// a function application; a list with a list head is malformed.
func TermFromSExpr(e *SExpr) (*term.Term, error) {
	if e.IsAtom {
		return term.NewConst(e.Atom), nil
	}
	if len(e.Members) == 0 {
		return nil, &ErrMalformed{Reason: "empty list where a term was expected"}
	}
	head := e.Members[0]
	if !head.IsAtom {
		return nil, &ErrMalformed{Reason: "term list with a list in head position"}
	}
	args := make([]*term.Term, len(e.Members)-1)
	for i, m := range e.Members[1:] {
		t, err := TermFromSExpr(m)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}
	return term.NewFunc(head.Atom, args...), nil
}
