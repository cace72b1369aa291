package formula

// IsProposition reports whether f is a Pred with zero arguments.
func IsProposition(f Formula) bool {
	p, ok := f.(*Pred)
	return ok && len(p.Args) == 0
}

// onlyPropositional reports whether every connective in f is from the
// propositional set {Not, And, Or, If, Iff} -- no quantifiers anywhere.
func onlyPropositional(f Formula) bool {
	switch f.Tag() {
	case TagForall, TagExists:
		return false
	}
	for _, s := range Subformulae(f) {
		if !onlyPropositional(s) {
			return false
		}
	}
	return true
}

// IsPropositional reports whether f uses only propositional connectives and
// every Pred in it is a proposition (0-ary).
func IsPropositional(f Formula) bool {
	if !onlyPropositional(f) {
		return false
	}
	for _, p := range AllFormulae(f) {
		if p.Tag() == TagPred && !IsProposition(p) {
			return false
		}
	}
	return true
}

// IsZerothOrder reports whether f uses only propositional connectives;
// predicates may be n-ary, but there are no quantifiers.
func IsZerothOrder(f Formula) bool {
	return onlyPropositional(f)
}

// IsFirstOrder reports whether f uses only the base connectives (no
// second-order extension) and has no bound predicate variables and no
// bound function variables.
func IsFirstOrder(f Formula) bool {
	return len(BoundPredicateVariables(f)) == 0 && len(BoundFunctionVariables(f)) == 0
}

// IsSecondOrder reports whether f uses only the base connectives. This
// places no further restriction: every formula built from Pred, Not, And,
// Or, If, Iff, Forall, and Exists qualifies.
func IsSecondOrder(f Formula) bool {
	return true
}
