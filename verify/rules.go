package verify

import (
	"fmt"

	"github.com/arcflume/natded/checkerr"
	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/prooftree"
)

// ruleCheck is the per-rule contract: given node n and one candidate
// ordering of its premises, it runs every pre-check (recording how many
// passed in the returned attempt) and, if all pass, returns the derived
// assumption set.
type ruleCheck func(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt)

var ruleChecks = map[prooftree.Rule]ruleCheck{
	prooftree.Assumption: checkAssumption,
	prooftree.AndIntro:   checkAndIntro,
	prooftree.AndElim:    checkAndElim,
	prooftree.OrIntro:    checkOrIntro,
	prooftree.OrElim:     checkOrElim,
	prooftree.NotIntro:   checkNotIntro,
	prooftree.NotElim:    checkNotElim,
	prooftree.IfIntro:    checkIfIntro,
	prooftree.IfElim:     checkIfElim,
	prooftree.IffIntro:   checkIffIntro,
	prooftree.IffElim:    checkIffElim,
}

func asNot(f formula.Formula) (formula.Formula, bool) {
	n, ok := f.(*formula.Not)
	if !ok {
		return nil, false
	}
	return n.Arg, true
}

func asAnd(f formula.Formula) (left, right formula.Formula, ok bool) {
	v, ok := f.(*formula.And)
	if !ok {
		return nil, nil, false
	}
	return v.Left, v.Right, true
}

func asOr(f formula.Formula) (left, right formula.Formula, ok bool) {
	v, ok := f.(*formula.Or)
	if !ok {
		return nil, nil, false
	}
	return v.Left, v.Right, true
}

func asIf(f formula.Formula) (antecedent, consequent formula.Formula, ok bool) {
	v, ok := f.(*formula.If)
	if !ok {
		return nil, nil, false
	}
	return v.Left, v.Right, true
}

func asIff(f formula.Formula) (left, right formula.Formula, ok bool) {
	v, ok := f.(*formula.Iff)
	if !ok {
		return nil, nil, false
	}
	return v.Left, v.Right, true
}

// errf builds an ErrVerification-wrapped diagnostic.
func errf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{checkerr.ErrVerification}, args...)...)
}

// cond turns a plain boolean precondition into an error for attempt.check.
func cond(ok bool, err error) error {
	if ok {
		return nil
	}
	return err
}

// checkAssumption: arity 0; accepted unconditionally; the node is its own
// assumption.
func checkAssumption(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasParents(n, 0)) {
		return nil, a
	}
	return map[*prooftree.Node]struct{}{n: {}}, a
}

// checkAndIntro: arity 2, top tag And; left==premises[0].formula,
// right==premises[1].formula; assumptions = union.
func checkAndIntro(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasConnective(n, formula.TagAnd)) {
		return nil, a
	}
	if !a.check(hasParents(n, 2)) {
		return nil, a
	}
	left, right, _ := asAnd(n.Formula)
	if !a.check(equalFormula(left, order[0].Formula)) {
		return nil, a
	}
	if !a.check(equalFormula(right, order[1].Formula)) {
		return nil, a
	}
	return union(order), a
}

// checkAndElim: arity 1, any top tag; premises[0] tag is And; node.formula
// equals left or right of that And; assumptions = union.
func checkAndElim(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasParents(n, 1)) {
		return nil, a
	}
	left, right, ok := asAnd(order[0].Formula)
	if !a.check(cond(ok, errf("AndElim: premise %s is not an And", render(order[0].Formula)))) {
		return nil, a
	}
	eqLeft := equalFormula(n.Formula, left) == nil
	eqRight := equalFormula(n.Formula, right) == nil
	if !a.check(cond(eqLeft || eqRight, errf("AndElim: %s is neither conjunct of %s", render(n.Formula), render(order[0].Formula)))) {
		return nil, a
	}
	return union(order), a
}

// checkOrIntro: arity 1, top tag Or; premises[0].formula equals left or
// right of node; assumptions = union.
func checkOrIntro(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasConnective(n, formula.TagOr)) {
		return nil, a
	}
	if !a.check(hasParents(n, 1)) {
		return nil, a
	}
	left, right, _ := asOr(n.Formula)
	eqLeft := equalFormula(order[0].Formula, left) == nil
	eqRight := equalFormula(order[0].Formula, right) == nil
	if !a.check(cond(eqLeft || eqRight, errf("OrIntro: premise %s is neither disjunct of %s", render(order[0].Formula), render(n.Formula)))) {
		return nil, a
	}
	return union(order), a
}

// checkOrElim: arity 3, any top tag; premises[0] tag is Or with sides L,R;
// node.formula equals premises[1].formula and premises[2].formula;
// premises[1] has L as assumption, premises[2] has R as assumption;
// assumptions = unionExcluding({L,R}).
func checkOrElim(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasParents(n, 3)) {
		return nil, a
	}
	left, right, ok := asOr(order[0].Formula)
	if !a.check(cond(ok, errf("OrElim: premise %s is not an Or", render(order[0].Formula)))) {
		return nil, a
	}
	if !a.check(equalFormula(n.Formula, order[1].Formula)) {
		return nil, a
	}
	if !a.check(equalFormula(n.Formula, order[2].Formula)) {
		return nil, a
	}
	if !a.check(hasAssumption(order[1], left)) {
		return nil, a
	}
	if !a.check(hasAssumption(order[2], right)) {
		return nil, a
	}
	return unionExcluding(order, []formula.Formula{left, right}), a
}

// checkNotIntro: arity 2, top tag Not; premises[0] tag is Not; premises[1]
// .formula equals the body of premises[0]; node's body (the negated
// formula) is an assumption of at least one premise; assumptions =
// unionExcluding({node.body}).
func checkNotIntro(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasConnective(n, formula.TagNot)) {
		return nil, a
	}
	if !a.check(hasParents(n, 2)) {
		return nil, a
	}
	contraBody, ok := asNot(order[0].Formula)
	if !a.check(cond(ok, errf("NotIntro: premise %s is not a Not", render(order[0].Formula)))) {
		return nil, a
	}
	if !a.check(equalFormula(order[1].Formula, contraBody)) {
		return nil, a
	}
	nodeBody, _ := asNot(n.Formula)
	has := hasAssumption(order[0], nodeBody) == nil || hasAssumption(order[1], nodeBody) == nil
	if !a.check(cond(has, errf("NotIntro: %s is not an assumption of either premise", render(nodeBody)))) {
		return nil, a
	}
	return unionExcluding(order, []formula.Formula{nodeBody}), a
}

// checkNotElim is the dual of checkNotIntro: same structural checks as
// NotIntro (premises[0] tag Not, premises[1] equals its body), but the
// conclusion's tag is unconstrained and the discharged assumption is the
// body of premises[0] rather than a body extracted from the node itself
// (node need not be a Not). See DESIGN.md for this open-question
// resolution.
func checkNotElim(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasParents(n, 2)) {
		return nil, a
	}
	body, ok := asNot(order[0].Formula)
	if !a.check(cond(ok, errf("NotElim: premise %s is not a Not", render(order[0].Formula)))) {
		return nil, a
	}
	if !a.check(equalFormula(order[1].Formula, body)) {
		return nil, a
	}
	has := hasAssumption(order[0], body) == nil || hasAssumption(order[1], body) == nil
	if !a.check(cond(has, errf("NotElim: %s is not an assumption of either premise", render(body)))) {
		return nil, a
	}
	return unionExcluding(order, []formula.Formula{body}), a
}

// checkIfIntro: arity 1, top tag If; the antecedent is an assumption of
// premises[0]; the consequent equals premises[0].formula; assumptions =
// unionExcluding({antecedent}).
func checkIfIntro(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasConnective(n, formula.TagIf)) {
		return nil, a
	}
	if !a.check(hasParents(n, 1)) {
		return nil, a
	}
	antecedent, consequent, _ := asIf(n.Formula)
	if !a.check(hasAssumption(order[0], antecedent)) {
		return nil, a
	}
	if !a.check(equalFormula(consequent, order[0].Formula)) {
		return nil, a
	}
	return unionExcluding(order, []formula.Formula{antecedent}), a
}

// checkIfElim: arity 2, any top tag; premises[0] tag is If; its antecedent
// equals premises[1].formula; node.formula equals premises[0]'s
// consequent; assumptions = union.
func checkIfElim(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasParents(n, 2)) {
		return nil, a
	}
	antecedent, consequent, ok := asIf(order[0].Formula)
	if !a.check(cond(ok, errf("IfElim: premise %s is not an If", render(order[0].Formula)))) {
		return nil, a
	}
	if !a.check(equalFormula(antecedent, order[1].Formula)) {
		return nil, a
	}
	if !a.check(equalFormula(n.Formula, consequent)) {
		return nil, a
	}
	return union(order), a
}

// checkIffIntro: arity 2, top tag Iff; premises[0].formula equals the
// left side; premises[1].formula equals the right side; premises[0] has
// right as assumption, premises[1] has left as assumption; assumptions =
// unionExcluding({left,right}).
func checkIffIntro(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasConnective(n, formula.TagIff)) {
		return nil, a
	}
	if !a.check(hasParents(n, 2)) {
		return nil, a
	}
	left, right, _ := asIff(n.Formula)
	if !a.check(equalFormula(order[0].Formula, left)) {
		return nil, a
	}
	if !a.check(equalFormula(order[1].Formula, right)) {
		return nil, a
	}
	if !a.check(hasAssumption(order[0], right)) {
		return nil, a
	}
	if !a.check(hasAssumption(order[1], left)) {
		return nil, a
	}
	return unionExcluding(order, []formula.Formula{left, right}), a
}

// checkIffElim: arity 2, any top tag. Unlike IffIntro, node.formula is not
// itself an Iff (top tag unconstrained) -- one premise supplies the
// biconditional and the other supplies one side, mirroring IfElim's shape
// rather than IffIntro's literally. See DESIGN.md: this resolves spec
// section 9's "same structural shape as IffIntro" against the only sound
// reading of an iff-elimination rule.
func checkIffElim(n *prooftree.Node, order []*prooftree.Node) (map[*prooftree.Node]struct{}, *attempt) {
	a := &attempt{}
	if !a.check(hasParents(n, 2)) {
		return nil, a
	}
	left, right, ok := asIff(order[0].Formula)
	if !a.check(cond(ok, errf("IffElim: premise %s is not an Iff", render(order[0].Formula)))) {
		return nil, a
	}
	eqLeft := equalFormula(order[1].Formula, left) == nil
	eqRight := equalFormula(order[1].Formula, right) == nil
	if !a.check(cond(eqLeft || eqRight, errf("IffElim: premise %s is neither side of %s", render(order[1].Formula), render(order[0].Formula)))) {
		return nil, a
	}
	var want formula.Formula
	if eqLeft {
		want = right
	} else {
		want = left
	}
	if !a.check(equalFormula(n.Formula, want)) {
		return nil, a
	}
	return union(order), a
}
