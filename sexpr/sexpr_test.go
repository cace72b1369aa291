package sexpr

import "testing"

func TestParseFormulaScenario3(t *testing.T) {
	f, err := ParseFormula("(exists x (forall y (eq x y)))")
	if err != nil {
		t.Fatalf("ParseFormula() error: %v", err)
	}
	if got := RenderFormula(f); got != "(exists x (forall y (eq x y)))" {
		t.Errorf("RenderFormula() = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"A",
		"(not A)",
		"(and A B)",
		"(or A (not B))",
		"(if A B)",
		"(iff A B)",
		"(forall x (P x))",
		"(exists x (eq x (S 1)))",
		"(eq (S (S 1)) 3)",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			f, err := ParseFormula(s)
			if err != nil {
				t.Fatalf("ParseFormula(%q) error: %v", s, err)
			}
			rendered := RenderFormula(f)
			f2, err := ParseFormula(rendered)
			if err != nil {
				t.Fatalf("ParseFormula(render) error: %v", err)
			}
			if !f.Equal(f2) {
				t.Errorf("round trip mismatch: %q -> %q -> not equal", s, rendered)
			}
		})
	}
}

func TestMalformedListHead(t *testing.T) {
	_, err := ParseFormula("((a) b)")
	if err == nil {
		t.Fatalf("expected error for a list with a list in head position")
	}
}

func TestQuantifierListVariableFails(t *testing.T) {
	_, err := ParseFormula("(forall (x y) (P x))")
	if err == nil {
		t.Fatalf("expected error for a quantifier variable that is a list")
	}
}

func TestWrongArityConnectiveIsAPredicate(t *testing.T) {
	f, err := ParseFormula("(and a)")
	if err != nil {
		t.Fatalf("ParseFormula() error: %v", err)
	}
	if RenderFormula(f) != "(and a)" {
		t.Errorf("expected (and a) to parse as a predicate named and, got %q", RenderFormula(f))
	}
}
