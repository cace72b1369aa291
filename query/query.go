// Package query provides a read-only expr-lang surface over a loaded
// *graph.Graph, in the manner of the eval package's script op: compile an
// expression against an Env, run it, return whatever it produces. It adds
// no proving power -- there is no way to derive a new node or mutate an
// existing one through this package, only to filter and report on nodes
// that already exist.
package query

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arcflume/natded/checkerr"
	"github.com/arcflume/natded/debug"
	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/graph"
	"github.com/arcflume/natded/prooftree"
	"github.com/arcflume/natded/sexpr"
)

// NodeView is the read-only, expr-lang-friendly projection of a
// prooftree.Node: exported fields only, no pointers a script could use to
// mutate the proof.
type NodeView struct {
	ID              uint64
	Formula         string
	Rule            string
	PremiseIDs      []uint64
	PremiseCount    int
	AssumptionIDs   []uint64
	IsPropositional bool
	IsZerothOrder   bool
	IsFirstOrder    bool
	IsSecondOrder   bool
}

// Env is the variable set visible to a compiled expression: "Nodes", the
// full node list in ascending id order, and "Assumptions", the subset
// graph.Load identified as having no premises.
type Env struct {
	Nodes       []NodeView
	Assumptions []NodeView
}

func newView(n *prooftree.Node) NodeView {
	v := NodeView{
		ID:           n.ID,
		Formula:      sexpr.RenderFormula(n.Formula),
		Rule:         n.Rule.String(),
		PremiseCount: len(n.Premises),
	}
	for _, p := range n.Premises {
		v.PremiseIDs = append(v.PremiseIDs, p.ID)
	}
	for a := range n.Assumptions {
		v.AssumptionIDs = append(v.AssumptionIDs, a.ID)
	}
	sort.Slice(v.PremiseIDs, func(i, j int) bool { return v.PremiseIDs[i] < v.PremiseIDs[j] })
	sort.Slice(v.AssumptionIDs, func(i, j int) bool { return v.AssumptionIDs[i] < v.AssumptionIDs[j] })
	v.IsPropositional = formula.IsPropositional(n.Formula)
	v.IsZerothOrder = formula.IsZerothOrder(n.Formula)
	v.IsFirstOrder = formula.IsFirstOrder(n.Formula)
	v.IsSecondOrder = formula.IsSecondOrder(n.Formula)
	return v
}

// NewEnv projects g into an Env, in ascending node-id order.
func NewEnv(g *graph.Graph) Env {
	ids := make([]uint64, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	env := Env{}
	for _, id := range ids {
		env.Nodes = append(env.Nodes, newView(g.Nodes[id]))
	}
	for id := range g.Assumptions {
		env.Assumptions = append(env.Assumptions, newView(g.Nodes[id]))
	}
	sort.Slice(env.Assumptions, func(i, j int) bool { return env.Assumptions[i].ID < env.Assumptions[j].ID })
	return env
}

// Run compiles src against g's Env and runs it, returning whatever value
// the expression produces (a bool for a filter predicate like
// `len(Nodes) > 3`, a []any of NodeView values for something like
// `filter(Nodes, {.Rule == "AndIntro"})`, and so on).
func Run(g *graph.Graph, src string) (any, error) {
	env := NewEnv(g)
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: query: compiling %q: %v", checkerr.ErrSyntax, src, err)
	}
	if debug.Instance() {
		debug.Logf("query: compiled %q against %d nodes\n", src, len(env.Nodes))
	}
	out, err := vm.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: query: running %q: %v", checkerr.ErrSyntax, src, err)
	}
	if debug.Instance() {
		debug.Logf("query: %q -> %v\n", src, out)
	}
	return out, nil
}
