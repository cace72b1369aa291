package sexpr

import (
	"strings"

	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/term"
)

// connectiveTag maps a Tag to the keyword used both when parsing (build.go
// looks it up via the connectives/quantifierKeywords tables) and when
// rendering. The two tables are the same lowercase spellings, resolving
// spec section 9(iv)'s open question in favor of a trivial round trip:
// render(parse(s)) always reparses to the same tag spelling.
func connectiveTag(t formula.Tag) string {
	switch t {
	case formula.TagNot:
		return "not"
	case formula.TagAnd:
		return "and"
	case formula.TagOr:
		return "or"
	case formula.TagIf:
		return "if"
	case formula.TagIff:
		return "iff"
	case formula.TagForall:
		return "forall"
	case formula.TagExists:
		return "exists"
	default:
		return ""
	}
}

// RenderFormula renders f as S-expression surface text. A Pred renders as
// its equivalent term (name arg ..., or bare name if 0-ary); a quantifier
// renders as (tag var body); every other connective renders as (tag
// sub...).
func RenderFormula(f formula.Formula) string {
	var b strings.Builder
	writeFormula(&b, f)
	return b.String()
}

func writeFormula(b *strings.Builder, f formula.Formula) {
	switch v := f.(type) {
	case *formula.Pred:
		writePredAsTerm(b, v)
	case *formula.Not:
		b.WriteString("(not ")
		writeFormula(b, v.Arg)
		b.WriteString(")")
	case *formula.And:
		writeBinary(b, "and", v.Left, v.Right)
	case *formula.Or:
		writeBinary(b, "or", v.Left, v.Right)
	case *formula.If:
		writeBinary(b, "if", v.Left, v.Right)
	case *formula.Iff:
		writeBinary(b, "iff", v.Left, v.Right)
	case *formula.Forall:
		writeQuantifier(b, "forall", v.Var, v.Body)
	case *formula.Exists:
		writeQuantifier(b, "exists", v.Var, v.Body)
	}
}

func writeBinary(b *strings.Builder, tag string, left, right formula.Formula) {
	b.WriteString("(")
	b.WriteString(tag)
	b.WriteString(" ")
	writeFormula(b, left)
	b.WriteString(" ")
	writeFormula(b, right)
	b.WriteString(")")
}

func writeQuantifier(b *strings.Builder, tag, v string, body formula.Formula) {
	b.WriteString("(")
	b.WriteString(tag)
	b.WriteString(" ")
	b.WriteString(v)
	b.WriteString(" ")
	writeFormula(b, body)
	b.WriteString(")")
}

func writePredAsTerm(b *strings.Builder, p *formula.Pred) {
	if len(p.Args) == 0 {
		b.WriteString(p.Name)
		return
	}
	b.WriteString("(")
	b.WriteString(p.Name)
	for _, a := range p.Args {
		b.WriteString(" ")
		writeTerm(b, a)
	}
	b.WriteString(")")
}

// RenderTerm renders t as S-expression surface text: a leaf renders as its
// name; a function application renders as (name arg ...).
func RenderTerm(t *term.Term) string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

func writeTerm(b *strings.Builder, t *term.Term) {
	if t.IsConstant() {
		b.WriteString(t.Name)
		return
	}
	b.WriteString("(")
	b.WriteString(t.Name)
	for _, a := range t.Args {
		b.WriteString(" ")
		writeTerm(b, a)
	}
	b.WriteString(")")
}
