// Package verify implements the per-node proof checker: eleven inference
// rules, each tried over every permutation of a node's premises so that
// citation order need not match the rule's canonical premise order.
package verify

import (
	"fmt"

	"github.com/arcflume/natded/checkerr"
	"github.com/arcflume/natded/debug"
	"github.com/arcflume/natded/prooftree"
)

// permutations returns every permutation of the indices [0,k), identity
// first, via Heap's algorithm. k is at most 3 for every rule in this
// calculus (spec section 3's widest rule is arity 3), so the result never
// exceeds 6 entries.
func permutations(k int) [][]int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	out = append(out, append([]int(nil), idx...))

	c := make([]int, k)
	i := 0
	for i < k {
		if c[i] < i {
			if i%2 == 0 {
				idx[0], idx[i] = idx[i], idx[0]
			} else {
				idx[c[i]], idx[i] = idx[i], idx[c[i]]
			}
			out = append(out, append([]int(nil), idx...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return out
}

// order applies a permutation of indices to premises.
func order(premises []*prooftree.Node, perm []int) []*prooftree.Node {
	out := make([]*prooftree.Node, len(perm))
	for i, p := range perm {
		out[i] = premises[p]
	}
	return out
}

// Verify checks a single proof node: its citing rule's preconditions must
// hold for at least one permutation of its premises. On success it sets
// n.Assumptions to the derived assumption set and returns nil. On failure
// n is left unmodified and the returned error is the diagnostic from the
// permutation that passed the most preconditions before failing (the
// "deepest" attempt), so the message points at the closest near-miss
// rather than an arbitrary one.
//
// Verify does not recurse into n.Premises; callers verify a proof bottom
// up (each premise must already have been verified, i.e. have
// Assumptions set, before its user is checked).
func Verify(n *prooftree.Node) error {
	check, ok := ruleChecks[n.Rule]
	if !ok {
		return fmt.Errorf("%w: %s", checkerr.ErrUnknownRule, n.Rule)
	}

	perms := permutations(len(n.Premises))
	var best *attempt
	for _, perm := range perms {
		assumptions, a := check(n, order(n.Premises, perm))
		if debug.Permute() {
			debug.Logf("verify: node %d rule %s perm %v depth=%d err=%v\n", n.ID, n.Rule, perm, a.depth, a.err)
		}
		if a.ok() {
			n.Assumptions = assumptions
			return nil
		}
		if best == nil || a.depth > best.depth {
			best = a
		}
	}
	if best == nil {
		// Only the Assumption rule allows zero premises, whose single
		// permutation (the empty one) always runs; this is unreachable
		// for any real rule but keeps Verify total.
		return fmt.Errorf("%w: %s: no premise ordering checked", checkerr.ErrVerification, n.Rule)
	}
	return fmt.Errorf("%s: %w", n.Rule, best.err)
}
