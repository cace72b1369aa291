package formula

import (
	"testing"

	"github.com/arcflume/natded/term"
)

func TestScenario1Proposition(t *testing.T) {
	f := NewProp("A")
	if got := Depth(f); got != 1 {
		t.Errorf("Depth() = %d, want 1", got)
	}
	if !IsPropositional(f) || !IsZerothOrder(f) || !IsFirstOrder(f) || !IsSecondOrder(f) {
		t.Errorf("expected all class predicates true for a bare proposition")
	}
	if got := AllConstants(f); len(got) != 0 {
		t.Errorf("AllConstants() = %v, want none", got)
	}
	if got := AllFunctions(f); len(got) != 0 {
		t.Errorf("AllFunctions() = %v, want none", got)
	}
	if got := AllPredicates(f); len(got) != 1 {
		t.Errorf("AllPredicates() = %v, want 1", got)
	}
	if !IsProposition(f) {
		t.Errorf("IsProposition() = false, want true")
	}
}

func TestScenario2Arithmetic(t *testing.T) {
	// And(eq(S(1),2), eq(S(2),3))
	f := NewAnd(
		NewProp("eq", term.NewFunc("S", term.NewConst("1")), term.NewConst("2")),
		NewProp("eq", term.NewFunc("S", term.NewConst("2")), term.NewConst("3")),
	)
	if got := Depth(f); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
	if got := DepthWithTerms(f); got != 4 {
		t.Errorf("DepthWithTerms() = %d, want 4", got)
	}
	if IsPropositional(f) {
		t.Errorf("IsPropositional() = true, want false")
	}
	if !IsZerothOrder(f) || !IsFirstOrder(f) {
		t.Errorf("expected zeroth-order and first-order")
	}
	if got := AllFunctions(f); len(got) != 2 {
		t.Errorf("AllFunctions() = %d, want 2", len(got))
	}
	if got := AllConstants(f); len(got) != 4 {
		t.Errorf("AllConstants() = %d, want 4", len(got))
	}
	if got := AllPredicates(f); len(got) != 2 {
		t.Errorf("AllPredicates() = %d, want 2", len(got))
	}
}

func TestScenario3Quantifiers(t *testing.T) {
	// Exists(x, Forall(y, eq(x,y)))
	f := NewExists("x", NewForall("y", NewProp("eq", term.NewConst("x"), term.NewConst("y"))))
	if got := BoundTermVariables(f); len(got) != 2 {
		t.Errorf("BoundTermVariables() = %d, want 2", len(got))
	}
	if IsPropositional(f) {
		t.Errorf("IsPropositional() = true, want false")
	}
	if IsZerothOrder(f) {
		t.Errorf("IsZerothOrder() = true, want false")
	}
	if !IsFirstOrder(f) {
		t.Errorf("IsFirstOrder() = false, want true")
	}
}

func TestScenario4Induction(t *testing.T) {
	// Forall(P, If(And(P(0), Forall(n, If(P(n), P(add(n,1))))), Forall(n, P(n))))
	inner := NewForall("n", NewIf(
		NewProp("P", term.NewConst("n")),
		NewProp("P", term.NewFunc("add", term.NewConst("n"), term.NewConst("1"))),
	))
	ant := NewAnd(NewProp("P", term.NewConst("0")), inner)
	cons := NewForall("n", NewProp("P", term.NewConst("n")))
	f := NewForall("P", NewIf(ant, cons))

	if got := BoundPredicateVariables(f); len(got) != 4 {
		t.Errorf("BoundPredicateVariables() = %d, want 4", len(got))
	}
	if got := BoundTermVariables(f); len(got) != 3 {
		t.Errorf("BoundTermVariables() = %d, want 3", len(got))
	}
	if !IsSecondOrder(f) {
		t.Errorf("IsSecondOrder() = false, want true")
	}
	if IsFirstOrder(f) {
		t.Errorf("IsFirstOrder() = true, want false")
	}
}

func TestCopyIndependent(t *testing.T) {
	f := NewAnd(NewProp("A"), NewNot(NewProp("B")))
	cp := f.Copy()
	if !f.Equal(cp) {
		t.Fatalf("copy not structurally equal")
	}
	cp.(*And).Left.(*Pred).Name = "Z"
	if f.Left.(*Pred).Name == "Z" {
		t.Fatalf("mutating copy affected original")
	}
}

func TestAllFormulaeIsPrependedBFS(t *testing.T) {
	f := NewAnd(NewProp("A"), NewOr(NewProp("B"), NewProp("C")))
	all := AllFormulae(f)
	sub := AllSubformulae(f)
	if len(all) != len(sub)+1 || all[0] != Formula(f) {
		t.Fatalf("AllFormulae should be [f]++AllSubformulae")
	}
}

func TestShadowing(t *testing.T) {
	// Forall(x, Forall(x, P(x))) -- inner x shadows outer.
	inner := NewForall("x", NewProp("P", term.NewConst("x")))
	outer := NewForall("x", inner)
	bound := BoundTermVariables(outer)
	if len(bound) != 1 {
		t.Fatalf("BoundTermVariables() = %d, want 1", len(bound))
	}
	if bound[0].Binder != Formula(inner) {
		t.Errorf("expected innermost quantifier to win shadowing")
	}
}

func TestHashMatchesEqual(t *testing.T) {
	a := NewAnd(NewProp("A"), NewProp("B"))
	b := NewAnd(NewProp("A"), NewProp("B"))
	c := NewAnd(NewProp("A"), NewProp("C"))
	if Hash(a) != Hash(b) {
		t.Errorf("equal formulas hashed differently")
	}
	if !a.Equal(b) {
		t.Errorf("a and b should be equal")
	}
	if a.Equal(c) {
		t.Errorf("a and c should not be equal")
	}
}
