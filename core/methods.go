// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over the adjacency: nodes, edges, neighbors,
//       single-edge latency lookup and canonical serialization.
// Determinism:
//   - Nodes() is sorted ascending.
//   - Edges() and Neighbors() are sorted by (From, To).
// Ownership:
//   - Every returned slice is a fresh copy; callers may modify it freely.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// HasNode reports whether n appears as an endpoint of any edge.
func (g *Graph) HasNode(n Node) bool {
	if g == nil {
		return false
	}
	_, ok := g.adjacency[n]

	return ok
}

// Nodes returns all nodes sorted ascending.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	if g == nil {
		return nil
	}
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// Latency returns the latency of the direct edge from→to.
// ok is false when no such edge exists (including unknown endpoints).
// Complexity: O(1).
func (g *Graph) Latency(from, to Node) (latency int64, ok bool) {
	if g == nil {
		return 0, false
	}
	latency, ok = g.adjacency[from][to]

	return latency, ok
}

// Neighbors returns the outgoing edges of n sorted by destination.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrUnknownNode if n is not in the graph.
//
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Neighbors(n Node) ([]Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	peers, ok := g.adjacency[n]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, n)
	}

	out := make([]Edge, 0, len(peers))
	for to, latency := range peers {
		out = append(out, Edge{From: n, To: to, Latency: latency})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// OutDegree returns the number of outgoing edges of n (0 for unknown nodes).
func (g *Graph) OutDegree(n Node) int {
	if g == nil {
		return 0
	}

	return len(g.adjacency[n])
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log d).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	out := make([]Edge, 0, g.edges)
	for _, from := range g.nodes {
		// Neighbors cannot fail here: from is a known node.
		nbs, _ := g.Neighbors(from)
		out = append(out, nbs...)
	}

	return out
}

// String returns the canonical serialization, e.g. "AB5,AD5,AE7".
// The output round-trips through ParseString (with WithMultiDigitLatency
// when any latency exceeds 9).
func (g *Graph) String() string {
	edges := g.Edges()
	tokens := make([]string, len(edges))
	for i, e := range edges {
		tokens[i] = e.String()
	}

	return strings.Join(tokens, string(DefaultSeparator))
}

// Validate checks that g is non-nil and holds every listed node.
// Query packages call it before walking the graph.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrUnknownNode naming the first absent node.
func (g *Graph) Validate(nodes ...Node) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, n := range nodes {
		if _, ok := g.adjacency[n]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, n)
		}
	}

	return nil
}
