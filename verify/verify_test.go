package verify

import (
	"errors"
	"testing"

	"github.com/arcflume/natded/checkerr"
	"github.com/arcflume/natded/prooftree"
)

func mustNode(t *testing.T, formulaText, rule string, premises []*prooftree.Node) *prooftree.Node {
	t.Helper()
	n, err := prooftree.NewProofNode(formulaText, rule, premises)
	if err != nil {
		t.Fatalf("NewProofNode(%q, %q): %v", formulaText, rule, err)
	}
	return n
}

func assumptionSet(nodes ...*prooftree.Node) map[*prooftree.Node]struct{} {
	s := map[*prooftree.Node]struct{}{}
	for _, n := range nodes {
		s[n] = struct{}{}
	}
	return s
}

func sameAssumptions(a, b map[*prooftree.Node]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for n := range a {
		if _, ok := b[n]; !ok {
			return false
		}
	}
	return true
}

// Scenario 5: AB := AndIntro(A,B); AC := OrIntro(A); ABC := AndIntro(A, AC).
// All verify; ABC.assumptions == {A}.
func TestVerifyScenario5(t *testing.T) {
	a := mustNode(t, "A", "Assumption", nil)
	b := mustNode(t, "B", "Assumption", nil)
	ab := mustNode(t, "(and A B)", "AndIntro", []*prooftree.Node{a, b})
	ac := mustNode(t, "(or C A)", "OrIntro", []*prooftree.Node{a})
	abc := mustNode(t, "(and A (or C A))", "AndIntro", []*prooftree.Node{a, ac})

	for _, n := range []*prooftree.Node{a, b, ab, ac, abc} {
		if err := Verify(n); err != nil {
			t.Fatalf("Verify(%s) failed: %v", n.Formula, err)
		}
	}
	want := assumptionSet(a)
	if !sameAssumptions(abc.Assumptions, want) {
		t.Errorf("ABC.assumptions = %v, want {A}", abc.Assumptions)
	}
}

// Scenario 6: A2 := Assumption(A); AQ := OrIntro(A2); ifAAQ := IfIntro(AQ).
// All verify; ifAAQ.assumptions == {} (A discharged).
func TestVerifyScenario6(t *testing.T) {
	a2 := mustNode(t, "A", "Assumption", nil)
	aq := mustNode(t, "(or A Q)", "OrIntro", []*prooftree.Node{a2})
	ifAAQ := mustNode(t, "(if A (or A Q))", "IfIntro", []*prooftree.Node{aq})

	for _, n := range []*prooftree.Node{a2, aq, ifAAQ} {
		if err := Verify(n); err != nil {
			t.Fatalf("Verify(%s) failed: %v", n.Formula, err)
		}
	}
	if len(ifAAQ.Assumptions) != 0 {
		t.Errorf("ifAAQ.assumptions = %v, want empty", ifAAQ.Assumptions)
	}
}

// Scenario 7: mismatched AndIntro fails with an equalFormula diagnostic,
// and leaves the node's assumptions untouched.
func TestVerifyScenario7MismatchFails(t *testing.T) {
	a := mustNode(t, "A", "Assumption", nil)
	if err := Verify(a); err != nil {
		t.Fatalf("Verify(A): %v", err)
	}
	ac := mustNode(t, "(or C A)", "OrIntro", []*prooftree.Node{a})
	if err := Verify(ac); err != nil {
		t.Fatalf("Verify(AC): %v", err)
	}

	bad := mustNode(t, "(and B (or C A))", "AndIntro", []*prooftree.Node{a, ac})
	err := Verify(bad)
	if err == nil {
		t.Fatal("Verify(bad AndIntro) succeeded, want failure")
	}
	if !errors.Is(err, checkerr.ErrVerification) {
		t.Errorf("error %v is not ErrVerification", err)
	}
	if bad.Assumptions != nil {
		t.Errorf("bad.assumptions = %v, want untouched (nil)", bad.Assumptions)
	}
}

func TestVerifyUnknownRule(t *testing.T) {
	n := &prooftree.Node{Rule: prooftree.Rule(99)}
	err := Verify(n)
	if !errors.Is(err, checkerr.ErrUnknownRule) {
		t.Errorf("error %v is not ErrUnknownRule", err)
	}
}

func TestVerifyAssumptionWrongArity(t *testing.T) {
	a := mustNode(t, "A", "Assumption", nil)
	n := mustNode(t, "B", "Assumption", []*prooftree.Node{a})
	if err := Verify(n); err == nil {
		t.Fatal("Verify(Assumption with 1 premise) succeeded, want failure")
	}
}

// Premise order should not matter for AndIntro: the verifier must try the
// swapped permutation.
func TestVerifyPremiseOrderTolerance(t *testing.T) {
	a := mustNode(t, "A", "Assumption", nil)
	b := mustNode(t, "B", "Assumption", nil)
	for _, n := range []*prooftree.Node{a, b} {
		if err := Verify(n); err != nil {
			t.Fatalf("Verify: %v", err)
		}
	}
	ab := mustNode(t, "(and A B)", "AndIntro", []*prooftree.Node{b, a})
	if err := Verify(ab); err != nil {
		t.Fatalf("Verify(AndIntro with swapped premises): %v", err)
	}
}

func TestPermutationsCount(t *testing.T) {
	for k, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 6} {
		perms := permutations(k)
		if len(perms) != want {
			t.Errorf("permutations(%d) has %d entries, want %d", k, len(perms), want)
		}
		if k > 0 {
			for i, v := range perms[0] {
				if v != i {
					t.Errorf("permutations(%d)[0] = %v, want identity first", k, perms[0])
				}
			}
		}
	}
}
