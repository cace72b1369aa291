package formula

import (
	"github.com/arcflume/natded/debug"
	"github.com/arcflume/natded/term"
)

// BoundTerm pairs a bound term occurrence with the quantifier formula that
// binds it.
type BoundTerm struct {
	Term   *term.Term
	Binder Formula
}

// BoundPred pairs a bound predicate-variable occurrence with the quantifier
// formula that binds it.
type BoundPred struct {
	Pred   *Pred
	Binder Formula
}

// walkBinding performs the single generic in-order traversal that all three
// public bound-variable queries are instances of. It maintains a stack of
// currently open quantifier formulas in insertion order (outermost first,
// innermost last) and invokes onPred at every Pred leaf with that stack.
func walkBinding(f Formula, stack []Formula, onPred func(p *Pred, stack []Formula)) {
	switch v := f.(type) {
	case *Pred:
		onPred(v, stack)
	case *Forall:
		walkBinding(v.Body, append(stack, f), onPred)
	case *Exists:
		walkBinding(v.Body, append(stack, f), onPred)
	default:
		for _, s := range Subformulae(f) {
			walkBinding(s, stack, onPred)
		}
	}
}

// quantifierVar returns the binding variable name of a Forall/Exists.
func quantifierVar(q Formula) string {
	switch v := q.(type) {
	case *Forall:
		return v.Var
	case *Exists:
		return v.Var
	}
	return ""
}

// innermostBinder scans stack outermost-first, innermost-last, so that the
// last assignment -- the innermost matching quantifier -- wins on a name
// collision (shadowing). A single item can only ever be paired with its
// innermost binder; outer binders of the same name are shadowed.
func innermostBinder(name string, stack []Formula) Formula {
	var match Formula
	for _, q := range stack {
		if quantifierVar(q) == name {
			match = q
		}
	}
	if debug.Bind() {
		debug.Logf("binding: %q innermost=%v depth=%d\n", name, match, len(stack))
	}
	return match
}

// BoundTermVariables returns every constant (arity-0) term in every Pred of
// f, paired with its innermost binding quantifier, for constants whose name
// matches some enclosing quantifier's variable.
func BoundTermVariables(f Formula) []BoundTerm {
	var res []BoundTerm
	walkBinding(f, nil, func(p *Pred, stack []Formula) {
		for _, arg := range p.Args {
			for _, c := range arg.AllConstants() {
				if b := innermostBinder(c.Name, stack); b != nil {
					res = append(res, BoundTerm{Term: c, Binder: b})
				}
			}
		}
	})
	return res
}

// BoundFunctionVariables returns every function-application term in every
// Pred of f, paired with its innermost binding quantifier.
func BoundFunctionVariables(f Formula) []BoundTerm {
	var res []BoundTerm
	walkBinding(f, nil, func(p *Pred, stack []Formula) {
		for _, arg := range p.Args {
			for _, fn := range arg.AllFunctions() {
				if b := innermostBinder(fn.Name, stack); b != nil {
					res = append(res, BoundTerm{Term: fn, Binder: b})
				}
			}
		}
	})
	return res
}

// BoundPredicateVariables returns every Pred of f whose own name matches an
// enclosing quantifier's variable, paired with its innermost binder.
func BoundPredicateVariables(f Formula) []BoundPred {
	var res []BoundPred
	walkBinding(f, nil, func(p *Pred, stack []Formula) {
		if b := innermostBinder(p.Name, stack); b != nil {
			res = append(res, BoundPred{Pred: p, Binder: b})
		}
	})
	return res
}
