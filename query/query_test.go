package query

import (
	"testing"

	"github.com/arcflume/natded/graph"
)

const sampleDoc = `{
  "nodes": [
    {"id": 1, "formula": "A", "justification": "Assumption"},
    {"id": 2, "formula": "B", "justification": "Assumption"},
    {"id": 3, "formula": "(and A B)", "justification": "AndIntro"}
  ],
  "links": [
    {"from": 1, "to": 3},
    {"from": 2, "to": 3}
  ]
}`

func loadVerified(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := g.VerifyAll(); err != nil {
		t.Fatalf("VerifyAll: %v", err)
	}
	return g
}

func TestRunCountsNodes(t *testing.T) {
	g := loadVerified(t)
	out, err := Run(g, "len(Nodes)")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.(int) != 3 {
		t.Errorf("len(Nodes) = %v, want 3", out)
	}
}

func TestRunFiltersByRule(t *testing.T) {
	g := loadVerified(t)
	out, err := Run(g, `filter(Nodes, {.Rule == "AndIntro"})`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	views, ok := out.([]any)
	if !ok || len(views) != 1 {
		t.Fatalf("filtered result = %#v, want one AndIntro node", out)
	}
}

func TestRunOnAssumptions(t *testing.T) {
	g := loadVerified(t)
	out, err := Run(g, "len(Assumptions)")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.(int) != 2 {
		t.Errorf("len(Assumptions) = %v, want 2", out)
	}
}

func TestRunRejectsBadExpression(t *testing.T) {
	g := loadVerified(t)
	if _, err := Run(g, "this is not valid expr syntax ((("); err == nil {
		t.Fatal("Run(malformed expression) succeeded, want error")
	}
}
