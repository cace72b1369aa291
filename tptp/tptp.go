// Package tptp renders a first-order Formula as TPTP fof syntax. It is a
// collaborator of formula: the rewrite pass it performs only makes sense
// in terms of formula's bound-variable queries, but nothing in formula
// depends on tptp.
package tptp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arcflume/natded/checkerr"
	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/sexpr"
	"github.com/arcflume/natded/term"
)

// Render converts f into a single TPTP annotated formula:
//
//	fof(name,type,body).
//
// f is never mutated; Render deep-copies it before rewriting identifiers
// into TPTP's conventions (upper-case variables, lower-case functors,
// quoted distinct objects for free constants). It is an error to call
// Render on a formula that is not first-order.
func Render(name, typ string, f formula.Formula) (string, error) {
	if !formula.IsFirstOrder(f) {
		return "", fmt.Errorf("%w: tptp.Render: %s is not first-order",
			checkerr.ErrDomain, sexpr.RenderFormula(f))
	}
	cp := f.Copy()
	rewrite(cp)

	var b strings.Builder
	fmt.Fprintf(&b, "fof(%s,%s,", name, typ)
	writeFormula(&b, cp)
	b.WriteString(").")
	return b.String(), nil
}

// rewrite mutates cp in place: bound constants and quantifier variables
// become legal upper-case identifiers, function applications and
// predicate names become legal lower-case identifiers, and unbound
// constants are turned into quoted TPTP distinct objects.
func rewrite(cp formula.Formula) {
	bound := map[*term.Term]bool{}
	for _, bt := range formula.BoundTermVariables(cp) {
		bound[bt.Term] = true
	}

	for _, pf := range formula.AllPredicates(cp) {
		p := pf.(*formula.Pred)
		p.Name = legalize(p.Name, false)
		for _, arg := range p.Args {
			rewriteTerm(arg, bound)
		}
	}
	for _, qf := range formula.AllQuantified(cp) {
		switch q := qf.(type) {
		case *formula.Forall:
			q.Var = legalize(q.Var, true)
		case *formula.Exists:
			q.Var = legalize(q.Var, true)
		}
	}
}

// rewriteTerm walks t (and, for function applications, its descendants):
// a bound constant gets a legal upper-case identifier, a function
// application (and every function application beneath it) gets a legal
// lower-case identifier, and every other constant becomes a quoted
// distinct object.
func rewriteTerm(t *term.Term, bound map[*term.Term]bool) {
	if t.IsConstant() {
		if bound[t] {
			t.Name = legalize(t.Name, true)
		} else {
			t.Name = fmt.Sprintf("%q", t.Name)
		}
		return
	}
	t.Name = legalize(t.Name, false)
	for _, a := range t.Args {
		rewriteTerm(a, bound)
	}
}

// legalize enforces TPTP identifier shape: if name is empty or does not
// start with a letter, a case-appropriate prefix letter is prepended;
// every remaining non-alphanumeric rune is dropped; the first rune's case
// is folded to upper or lower as requested.
func legalize(name string, upper bool) string {
	prefix := "s"
	if upper {
		prefix = "S"
	}
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = prefix + name
	}
	var b strings.Builder
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if b.Len() == 0 {
			if upper {
				r = unicode.ToUpper(r)
			} else {
				r = unicode.ToLower(r)
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func writeFormula(b *strings.Builder, f formula.Formula) {
	switch v := f.(type) {
	case *formula.Pred:
		writePred(b, v)
	case *formula.Not:
		b.WriteString("~")
		writeFormula(b, v.Arg)
	case *formula.And:
		writeBinary(b, "&", v.Left, v.Right)
	case *formula.Or:
		writeBinary(b, "|", v.Left, v.Right)
	case *formula.If:
		writeBinary(b, "=>", v.Left, v.Right)
	case *formula.Iff:
		writeBinary(b, "<=>", v.Left, v.Right)
	case *formula.Forall:
		writeQuantifier(b, "!", v.Var, v.Body)
	case *formula.Exists:
		writeQuantifier(b, "?", v.Var, v.Body)
	}
}

func writeBinary(b *strings.Builder, op string, left, right formula.Formula) {
	b.WriteString("(")
	writeFormula(b, left)
	b.WriteString(op)
	writeFormula(b, right)
	b.WriteString(")")
}

func writeQuantifier(b *strings.Builder, op, v string, body formula.Formula) {
	fmt.Fprintf(b, "(%s [%s] : ", op, v)
	writeFormula(b, body)
	b.WriteString(")")
}

func writePred(b *strings.Builder, p *formula.Pred) {
	b.WriteString(p.Name)
	if len(p.Args) == 0 {
		return
	}
	b.WriteString("(")
	for i, a := range p.Args {
		if i > 0 {
			b.WriteString(",")
		}
		writeTerm(b, a)
	}
	b.WriteString(")")
}

func writeTerm(b *strings.Builder, t *term.Term) {
	b.WriteString(t.Name)
	if len(t.Args) == 0 {
		return
	}
	b.WriteString("(")
	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(",")
		}
		writeTerm(b, a)
	}
	b.WriteString(")")
}
