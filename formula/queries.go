package formula

import "github.com/arcflume/natded/term"

// Subformulae returns f's immediate sub-formulas in left-to-right order:
// empty for Pred, one element for Not/quantifier, two for a binary
// connective.
func Subformulae(f Formula) []Formula {
	switch v := f.(type) {
	case *Pred:
		return nil
	case *Not:
		return []Formula{v.Arg}
	case *And:
		return []Formula{v.Left, v.Right}
	case *Or:
		return []Formula{v.Left, v.Right}
	case *If:
		return []Formula{v.Left, v.Right}
	case *Iff:
		return []Formula{v.Left, v.Right}
	case *Forall:
		return []Formula{v.Body}
	case *Exists:
		return []Formula{v.Body}
	default:
		return nil
	}
}

// AllSubformulae returns a breadth-first traversal of the tree, self
// excluded.
func AllSubformulae(f Formula) []Formula {
	var res []Formula
	queue := Subformulae(f)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res = append(res, cur)
		queue = append(queue, Subformulae(cur)...)
	}
	return res
}

// AllFormulae returns f followed by AllSubformulae(f) (breadth-first, self
// prepended).
func AllFormulae(f Formula) []Formula {
	return append([]Formula{f}, AllSubformulae(f)...)
}

// AllPredicates returns all Pred nodes in pre-order (left-to-right
// depth-first). This ordering differs deliberately from AllSubformulae:
// inference rules and identifier-rewriting care about appearance order.
func AllPredicates(f Formula) []Formula {
	var res []Formula
	var walk func(Formula)
	walk = func(cur Formula) {
		if p, ok := cur.(*Pred); ok {
			res = append(res, p)
			return
		}
		for _, s := range Subformulae(cur) {
			walk(s)
		}
	}
	walk(f)
	return res
}

// AllPropositions returns the subsequence of AllPredicates(f) whose Args are
// empty.
func AllPropositions(f Formula) []Formula {
	var res []Formula
	for _, p := range AllPredicates(f) {
		if len(p.(*Pred).Args) == 0 {
			res = append(res, p)
		}
	}
	return res
}

// AllConstants returns, in predicate order, the concatenation of each
// predicate's argument constants.
func AllConstants(f Formula) []*term.Term {
	var res []*term.Term
	for _, p := range AllPredicates(f) {
		for _, arg := range p.(*Pred).Args {
			res = append(res, arg.AllConstants()...)
		}
	}
	return res
}

// AllFunctions returns, in predicate order, the concatenation of each
// predicate's argument functions.
func AllFunctions(f Formula) []*term.Term {
	var res []*term.Term
	for _, p := range AllPredicates(f) {
		for _, arg := range p.(*Pred).Args {
			res = append(res, arg.AllFunctions()...)
		}
	}
	return res
}

// AllQuantified returns every sub-formula (self included) whose top tag is
// Forall or Exists, in breadth-first order.
func AllQuantified(f Formula) []Formula {
	var res []Formula
	for _, cur := range AllFormulae(f) {
		switch cur.Tag() {
		case TagForall, TagExists:
			res = append(res, cur)
		}
	}
	return res
}

// Depth returns 1 for a Pred (terms are treated as leaves); else 1 + the
// maximum child depth.
func Depth(f Formula) int {
	if _, ok := f.(*Pred); ok {
		return 1
	}
	max := 0
	for _, s := range Subformulae(f) {
		if d := Depth(s); d > max {
			max = d
		}
	}
	return 1 + max
}

// DepthWithTerms is like Depth, but a Pred's depth is 1 + the maximum depth
// of its argument terms (a 0-ary Pred has depth 1, matching Depth).
func DepthWithTerms(f Formula) int {
	if p, ok := f.(*Pred); ok {
		max := 0
		for _, a := range p.Args {
			if d := a.Depth(); d > max {
				max = d
			}
		}
		if len(p.Args) == 0 {
			return 1
		}
		return 1 + max
	}
	max := 0
	for _, s := range Subformulae(f) {
		if d := DepthWithTerms(s); d > max {
			max = d
		}
	}
	return 1 + max
}

// Identifiers returns the union of all names in f: predicate names,
// quantifier variable names, and every identifier in every argument term.
func Identifiers(f Formula) map[string]struct{} {
	res := map[string]struct{}{}
	switch v := f.(type) {
	case *Pred:
		res[v.Name] = struct{}{}
		for _, a := range v.Args {
			for id := range a.Identifiers() {
				res[id] = struct{}{}
			}
		}
	case *Forall:
		res[v.Var] = struct{}{}
	case *Exists:
		res[v.Var] = struct{}{}
	}
	for _, s := range Subformulae(f) {
		for id := range Identifiers(s) {
			res[id] = struct{}{}
		}
	}
	return res
}
