// Package formula provides the tagged Formula tree for propositional,
// first-order, and second-order classical logic: predicates over Terms,
// the unary/binary connectives, and the two quantifiers.
//
// Formula is a sealed interface -- Pred, Not, And, Or, If, Iff, Forall, and
// Exists are its only implementations -- so a type switch over a Formula
// value is exhaustive by construction, unlike the tag-plus-union style the
// package's traversal helpers were ported from.
package formula

import "github.com/arcflume/natded/term"

// Tag identifies which of the eight shapes a Formula is.
type Tag int

const (
	TagPred Tag = iota
	TagNot
	TagAnd
	TagOr
	TagIf
	TagIff
	TagForall
	TagExists
)

func (t Tag) String() string {
	switch t {
	case TagPred:
		return "Pred"
	case TagNot:
		return "Not"
	case TagAnd:
		return "And"
	case TagOr:
		return "Or"
	case TagIf:
		return "If"
	case TagIff:
		return "Iff"
	case TagForall:
		return "Forall"
	case TagExists:
		return "Exists"
	default:
		return "<unknown tag>"
	}
}

// Formula is implemented only by Pred, Not, And, Or, If, Iff, Forall, and
// Exists.
type Formula interface {
	Tag() Tag
	Copy() Formula
	Equal(Formula) bool

	isFormula()
}

// Pred is a predicate applied to terms; a 0-ary Pred is a proposition.
type Pred struct {
	Name string
	Args []*term.Term
}

// Not is unary negation.
type Not struct {
	Arg Formula
}

// And is conjunction.
type And struct {
	Left, Right Formula
}

// Or is disjunction.
type Or struct {
	Left, Right Formula
}

// If is material implication: Left (antecedent) implies Right (consequent).
type If struct {
	Left, Right Formula
}

// Iff is biconditional.
type Iff struct {
	Left, Right Formula
}

// Forall is universal quantification: Var binds by name within Body.
type Forall struct {
	Var  string
	Body Formula
}

// Exists is existential quantification: Var binds by name within Body.
type Exists struct {
	Var  string
	Body Formula
}

func (*Pred) isFormula()   {}
func (*Not) isFormula()    {}
func (*And) isFormula()    {}
func (*Or) isFormula()     {}
func (*If) isFormula()     {}
func (*Iff) isFormula()    {}
func (*Forall) isFormula() {}
func (*Exists) isFormula() {}

func (*Pred) Tag() Tag   { return TagPred }
func (*Not) Tag() Tag    { return TagNot }
func (*And) Tag() Tag    { return TagAnd }
func (*Or) Tag() Tag     { return TagOr }
func (*If) Tag() Tag     { return TagIf }
func (*Iff) Tag() Tag    { return TagIff }
func (*Forall) Tag() Tag { return TagForall }
func (*Exists) Tag() Tag { return TagExists }

// NewProp returns a Pred with the given name and argument terms. It takes
// ownership of args.
func NewProp(name string, args ...*term.Term) *Pred {
	return &Pred{Name: name, Args: args}
}

// NewNot returns a Not wrapping arg. It takes ownership of arg.
func NewNot(arg Formula) *Not { return &Not{Arg: arg} }

// NewAnd returns left And right. It takes ownership of both.
func NewAnd(left, right Formula) *And { return &And{Left: left, Right: right} }

// NewOr returns left Or right. It takes ownership of both.
func NewOr(left, right Formula) *Or { return &Or{Left: left, Right: right} }

// NewIf returns antecedent If consequent. It takes ownership of both.
func NewIf(antecedent, consequent Formula) *If { return &If{Left: antecedent, Right: consequent} }

// NewIff returns left Iff right. It takes ownership of both.
func NewIff(left, right Formula) *Iff { return &Iff{Left: left, Right: right} }

// NewForall returns a universal quantification of body over v. It takes
// ownership of body.
func NewForall(v string, body Formula) *Forall { return &Forall{Var: v, Body: body} }

// NewExists returns an existential quantification of body over v. It takes
// ownership of body.
func NewExists(v string, body Formula) *Exists { return &Exists{Var: v, Body: body} }

// Copy returns a deep, independently owned clone.
func (p *Pred) Copy() Formula {
	args := make([]*term.Term, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.Copy()
	}
	return &Pred{Name: p.Name, Args: args}
}

func (n *Not) Copy() Formula { return &Not{Arg: n.Arg.Copy()} }
func (a *And) Copy() Formula { return &And{Left: a.Left.Copy(), Right: a.Right.Copy()} }
func (o *Or) Copy() Formula  { return &Or{Left: o.Left.Copy(), Right: o.Right.Copy()} }
func (i *If) Copy() Formula  { return &If{Left: i.Left.Copy(), Right: i.Right.Copy()} }
func (i *Iff) Copy() Formula { return &Iff{Left: i.Left.Copy(), Right: i.Right.Copy()} }
func (q *Forall) Copy() Formula { return &Forall{Var: q.Var, Body: q.Body.Copy()} }
func (q *Exists) Copy() Formula { return &Exists{Var: q.Var, Body: q.Body.Copy()} }

// Equal reports structural equality: tag-match plus recursive equality of
// payload, including by-name equality of quantifier variables. There is no
// alpha-equivalence.
func (p *Pred) Equal(o Formula) bool {
	op, ok := o.(*Pred)
	if !ok || op.Name != p.Name || len(op.Args) != len(p.Args) {
		return false
	}
	for i, a := range p.Args {
		if !a.Equal(op.Args[i]) {
			return false
		}
	}
	return true
}

func (n *Not) Equal(o Formula) bool {
	on, ok := o.(*Not)
	return ok && n.Arg.Equal(on.Arg)
}

func (a *And) Equal(o Formula) bool {
	oa, ok := o.(*And)
	return ok && a.Left.Equal(oa.Left) && a.Right.Equal(oa.Right)
}

func (a *Or) Equal(o Formula) bool {
	oa, ok := o.(*Or)
	return ok && a.Left.Equal(oa.Left) && a.Right.Equal(oa.Right)
}

func (a *If) Equal(o Formula) bool {
	oa, ok := o.(*If)
	return ok && a.Left.Equal(oa.Left) && a.Right.Equal(oa.Right)
}

func (a *Iff) Equal(o Formula) bool {
	oa, ok := o.(*Iff)
	return ok && a.Left.Equal(oa.Left) && a.Right.Equal(oa.Right)
}

func (q *Forall) Equal(o Formula) bool {
	oq, ok := o.(*Forall)
	return ok && q.Var == oq.Var && q.Body.Equal(oq.Body)
}

func (q *Exists) Equal(o Formula) bool {
	oq, ok := o.(*Exists)
	return ok && q.Var == oq.Var && q.Body.Equal(oq.Body)
}
