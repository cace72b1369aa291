package tptp

import (
	"strings"
	"testing"

	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/sexpr"
)

func mustParse(t *testing.T, s string) formula.Formula {
	t.Helper()
	f, err := sexpr.ParseFormula(s)
	if err != nil {
		t.Fatalf("ParseFormula(%q): %v", s, err)
	}
	return f
}

func TestRenderScenario3(t *testing.T) {
	f := mustParse(t, "(exists x (forall y (eq x y)))")
	got, err := Render("ex3", "axiom", f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(got, "fof(ex3,axiom,") || !strings.HasSuffix(got, ").") {
		t.Errorf("Render() = %q, want fof(ex3,axiom,...).", got)
	}
	if !strings.Contains(got, "? [X] :") || !strings.Contains(got, "! [Y] :") {
		t.Errorf("Render() = %q, want upper-cased bound variables X and Y", got)
	}
	if !strings.Contains(got, "eq(X,Y)") {
		t.Errorf("Render() = %q, want eq(X,Y)", got)
	}
}

func TestRenderQuotesFreeConstants(t *testing.T) {
	f := mustParse(t, "(P a)")
	got, err := Render("n", "axiom", f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, `"a"`) {
		t.Errorf("Render() = %q, want free constant quoted as a distinct object", got)
	}
}

func TestRenderRejectsSecondOrder(t *testing.T) {
	f := mustParse(t, "(forall P (P a))")
	if _, err := Render("n", "axiom", f); err == nil {
		t.Fatal("Render(second-order formula) succeeded, want domain error")
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	f := mustParse(t, "(forall x (P x))")
	before := sexpr.RenderFormula(f)
	if _, err := Render("n", "axiom", f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if after := sexpr.RenderFormula(f); after != before {
		t.Errorf("Render mutated its input: before %q, after %q", before, after)
	}
}

func TestLegalizeIdentifiers(t *testing.T) {
	cases := []struct {
		name  string
		upper bool
		want  string
	}{
		{"x", true, "X"},
		{"x", false, "x"},
		{"", true, "S"},
		{"1abc", false, "s1abc"},
		{"a-b_c", true, "Abc"},
	}
	for _, c := range cases {
		if got := legalize(c.name, c.upper); got != c.want {
			t.Errorf("legalize(%q, %v) = %q, want %q", c.name, c.upper, got, c.want)
		}
	}
}
