// Package prooftree defines the proof node: a Formula, a citing Rule, and
// ordered pointers to the premises it was derived from. Proof nodes are
// jointly held by a containing graph; Premises/Children links are
// non-owning.
package prooftree

import (
	"fmt"

	"github.com/arcflume/natded/formula"
	"github.com/arcflume/natded/sexpr"
)

// Rule is one of the eleven inference rules of the calculus.
type Rule int

const (
	Assumption Rule = iota
	AndIntro
	AndElim
	OrIntro
	OrElim
	NotIntro
	NotElim
	IfIntro
	IfElim
	IffIntro
	IffElim
)

var ruleNames = map[Rule]string{
	Assumption: "Assumption",
	AndIntro:   "AndIntro",
	AndElim:    "AndElim",
	OrIntro:    "OrIntro",
	OrElim:     "OrElim",
	NotIntro:   "NotIntro",
	NotElim:    "NotElim",
	IfIntro:    "IfIntro",
	IfElim:     "IfElim",
	IffIntro:   "IffIntro",
	IffElim:    "IffElim",
}

func (r Rule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}
	return "<unknown rule>"
}

// ParseRule maps a rule's exact, case-sensitive name (spec section 3) to
// its Rule value.
func ParseRule(name string) (Rule, bool) {
	for r, n := range ruleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// Node is a single proof step: a Formula, the Rule that is claimed to
// derive it, and its premises in citation order. Assumptions is computed by
// the verifier, never supplied -- it starts nil/empty on construction.
type Node struct {
	ID          uint64
	Formula     formula.Formula
	Rule        Rule
	Premises    []*Node
	Children    []*Node
	Assumptions map[*Node]struct{}
}

// NewProofNode constructs a node from an S-expression formula, a
// case-sensitive rule name, and an ordered list of already-constructed
// premises (spec section 6's "Single-node construction" interface). It
// does not verify the node.
func NewProofNode(formulaText, ruleName string, premises []*Node) (*Node, error) {
	f, err := sexpr.ParseFormula(formulaText)
	if err != nil {
		return nil, fmt.Errorf("prooftree: parsing formula: %w", err)
	}
	rule, ok := ParseRule(ruleName)
	if !ok {
		return nil, fmt.Errorf("prooftree: unknown rule %q", ruleName)
	}
	return &Node{Formula: f, Rule: rule, Premises: premises}, nil
}

// HasAssumption reports whether some element of n.Assumptions has a formula
// structurally equal to f.
func (n *Node) HasAssumption(f formula.Formula) bool {
	for a := range n.Assumptions {
		if a.Formula.Equal(f) {
			return true
		}
	}
	return false
}
