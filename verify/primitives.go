package verify

import (
	"fmt"

	"github.com/arcflume/natded/checkerr"
	"github.com/arcflume/natded/debug"
	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/prooftree"
	"github.com/arcflume/natded/sexpr"
	"github.com/arcflume/natded/internal/diffmsg"
)

// attempt tracks how many of a rule's preconditions have been checked and,
// on the first failure, why. depth counts the passed checks plus the one
// that failed; it is what the permutation search in search.go compares to
// pick the deepest (most pre-checks passed) attempt.
type attempt struct {
	depth int
	err   error
}

// check records one precondition, given as an error (nil meaning it
// passed). It returns false (and stops the caller) the first time a
// precondition fails; later calls after a failure are no-ops so callers
// can write a straight-line sequence of checks.
func (a *attempt) check(err error) bool {
	if a.err != nil {
		return false
	}
	a.depth++
	if err != nil {
		a.err = err
		if debug.Verify() {
			debug.Logf("verify: precondition %d failed: %v\n", a.depth, err)
		}
		return false
	}
	return true
}

func (a *attempt) fail(err error) bool {
	return a.check(err)
}

func (a *attempt) ok() bool { return a.err == nil }

// render is a small alias kept local to verify so rule files don't need to
// import sexpr directly just for diagnostic text.
func render(f formula.Formula) string {
	return sexpr.RenderFormula(f)
}

// hasConnective reports whether n's formula's top tag equals t.
func hasConnective(n *prooftree.Node, t formula.Tag) error {
	if n.Formula.Tag() != t {
		return fmt.Errorf("%w: hasConnective: expected %s, got %s in %s",
			checkerr.ErrVerification, t, n.Formula.Tag(), sexpr.RenderFormula(n.Formula))
	}
	return nil
}

// hasParents reports whether n has exactly k premises.
func hasParents(n *prooftree.Node, k int) error {
	if len(n.Premises) != k {
		return fmt.Errorf("%w: hasParents: expected %d premises, got %d",
			checkerr.ErrVerification, k, len(n.Premises))
	}
	return nil
}

// equalFormula reports structural equality (spec section 3), hoisting a
// structural hash ahead of the full comparison per the design notes: a
// hash mismatch short-circuits to "not equal" without the pairwise Equal
// walk.
func equalFormula(a, b formula.Formula) error {
	if formula.Hash(a) == formula.Hash(b) && a.Equal(b) {
		return nil
	}
	return fmt.Errorf("%w: equalFormula: %s",
		checkerr.ErrVerification, diffmsg.Format(sexpr.RenderFormula(a), sexpr.RenderFormula(b)))
}

// hasAssumption reports whether some element of n.Assumptions has a
// formula structurally equal to f.
func hasAssumption(n *prooftree.Node, f formula.Formula) error {
	if n.HasAssumption(f) {
		return nil
	}
	return fmt.Errorf("%w: hasAssumption: %s is not an assumption of premise deriving %s",
		checkerr.ErrVerification, sexpr.RenderFormula(f), sexpr.RenderFormula(n.Formula))
}
