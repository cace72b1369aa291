// Package graph loads a whole proof -- a JSON document of nodes and the
// links between them -- into a set of wired prooftree.Nodes, and verifies
// them in dependency order. It is the "whole-graph ingestion" collaborator
// of spec section 6; per-node semantics live in verify and prooftree.
package graph

import (
	"encoding/json"
	"fmt"

	"github.com/arcflume/natded/checkerr"
	"github.com/arcflume/natded/debug"
	"github.com/arcflume/natded/prooftree"
	"github.com/arcflume/natded/verify"
)

// NodeRecord is one element of a Document's "nodes" array.
type NodeRecord struct {
	ID            uint64 `json:"id"`
	Formula       string `json:"formula"`
	Justification string `json:"justification"`
}

// LinkRecord is one element of a Document's "links" array: From is a
// premise of To.
type LinkRecord struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

// Document is the wire shape described in spec section 6: two arrays, no
// nesting. It is intentionally a plain struct rather than a routed
// through the ir/schema document model -- that model validates a general
// recursive document language and its own Schema.Validate is unimplemented
// upstream; this shape is fixed and flat, so encoding/json's struct tags
// are the idiomatic fit. See DESIGN.md.
type Document struct {
	Nodes []NodeRecord `json:"nodes"`
	Links []LinkRecord `json:"links"`
}

// Graph is the loaded result: every node reachable by id, plus the subset
// with no premises (the proof's axioms/assumptions, in the sense of
// section 6 -- not to be confused with prooftree.Node.Assumptions, which
// the verifier computes per node).
type Graph struct {
	Nodes       map[uint64]*prooftree.Node
	Assumptions map[uint64]*prooftree.Node
}

// Load parses and validates data against the Document shape, constructs a
// prooftree.Node per record, and wires premises/children per link, in
// link order (the order links reference a node is the order its premises
// are tried in -- spec section 9's flagged open question, resolved this
// way since nothing else in the wire format carries an ordering).
func Load(data []byte) (*Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: graph: %v", checkerr.ErrSyntax, err)
	}

	nodes := make(map[uint64]*prooftree.Node, len(doc.Nodes))
	for _, rec := range doc.Nodes {
		if _, dup := nodes[rec.ID]; dup {
			return nil, fmt.Errorf("%w: graph: duplicate node id %d", checkerr.ErrSyntax, rec.ID)
		}
		n, err := prooftree.NewProofNode(rec.Formula, rec.Justification, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: graph: node %d: %v", checkerr.ErrSyntax, rec.ID, err)
		}
		n.ID = rec.ID
		nodes[rec.ID] = n
		if debug.Load() {
			debug.Logf("graph: loaded node %d rule=%s\n", n.ID, n.Rule)
		}
	}

	for _, l := range doc.Links {
		from, ok := nodes[l.From]
		if !ok {
			return nil, fmt.Errorf("%w: graph: link references unknown node %d", checkerr.ErrSyntax, l.From)
		}
		to, ok := nodes[l.To]
		if !ok {
			return nil, fmt.Errorf("%w: graph: link references unknown node %d", checkerr.ErrSyntax, l.To)
		}
		to.Premises = append(to.Premises, from)
		from.Children = append(from.Children, to)
		if debug.Load() {
			debug.Logf("graph: wired link %d -> %d\n", l.From, l.To)
		}
	}

	assumptions := map[uint64]*prooftree.Node{}
	for id, n := range nodes {
		if len(n.Premises) == 0 {
			assumptions[id] = n
		}
	}

	return &Graph{Nodes: nodes, Assumptions: assumptions}, nil
}

// VerifyAll verifies every node in dependency order (a node's premises are
// always verified before the node itself) and returns the first failure
// encountered, identified by node id. A cycle is reported as a syntax
// error since no dependency order can satisfy it. Per-node failures do
// not stop sibling subtrees from being checked in a future call -- this
// method stops at the first failure because most call sites want a single
// pass/fail answer (the CLI's exit-code contract); callers that want every
// failing node should walk g.Nodes themselves and call verify.Verify
// directly.
func (g *Graph) VerifyAll() error {
	order, err := g.topoOrder()
	if err != nil {
		return err
	}
	for _, n := range order {
		if err := verify.Verify(n); err != nil {
			return fmt.Errorf("node %d: %w", n.ID, err)
		}
	}
	return nil
}

// topoOrder returns every node in an order where each node follows all of
// its premises, via a depth-first postorder walk with cycle detection.
func (g *Graph) topoOrder() ([]*prooftree.Node, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[uint64]int, len(g.Nodes))
	order := make([]*prooftree.Node, 0, len(g.Nodes))

	var visit func(n *prooftree.Node) error
	visit = func(n *prooftree.Node) error {
		switch state[n.ID] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: graph: cycle through node %d", checkerr.ErrSyntax, n.ID)
		}
		state[n.ID] = visiting
		for _, p := range n.Premises {
			if err := visit(p); err != nil {
				return err
			}
		}
		state[n.ID] = done
		order = append(order, n)
		return nil
	}

	for _, n := range g.Nodes {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return order, nil
}
