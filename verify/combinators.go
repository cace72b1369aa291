package verify

import (
	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/prooftree"
)

// union returns the union of every premise's assumption set.
func union(premises []*prooftree.Node) map[*prooftree.Node]struct{} {
	res := map[*prooftree.Node]struct{}{}
	for _, p := range premises {
		for a := range p.Assumptions {
			res[a] = struct{}{}
		}
	}
	return res
}

// unionExcluding returns union(premises) with every element whose formula
// is structurally equal to one of excl removed -- the rules that discharge
// assumptions.
func unionExcluding(premises []*prooftree.Node, excl []formula.Formula) map[*prooftree.Node]struct{} {
	res := union(premises)
	for a := range res {
		for _, f := range excl {
			if a.Formula.Equal(f) {
				delete(res, a)
				break
			}
		}
	}
	return res
}
