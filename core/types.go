// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, sentinel errors and the EdgeError wrapper.
// Concurrency:
//   - Graph has no mutating methods; concurrent reads need no locks.

package core

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrMalformedEdge indicates a token that does not decode into (from, to, latency).
	ErrMalformedEdge = errors.New("core: malformed edge")

	// ErrDuplicateEdge indicates a second edge for an ordered (from, to) pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEmptyGraph indicates an input without any edge tokens.
	ErrEmptyGraph = errors.New("core: empty graph")

	// ErrZeroLatency indicates an edge whose latency is not strictly positive.
	ErrZeroLatency = errors.New("core: latency must be positive")

	// ErrUnknownNode indicates a query referenced a node absent from the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrTraceTooShort indicates a trace with fewer than two nodes.
	ErrTraceTooShort = errors.New("core: trace needs at least two nodes")

	// ErrNilGraph indicates a method was called on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Node is a single-character node identifier.
type Node rune

// String returns the node as a one-character string.
func (n Node) String() string { return string(n) }

// ParseNode converts a one-character string into a Node.
// Strings of any other length fail with ErrUnknownNode.
func ParseNode(s string) (Node, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrUnknownNode, s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return Node(r), nil
}

// MustParseNodes converts each string into a Node and panics on the first
// invalid one. Intended for literals in tests and examples.
func MustParseNodes(ss ...string) []Node {
	out := make([]Node, len(ss))
	for i, s := range ss {
		n, err := ParseNode(s)
		if err != nil {
			panic(err)
		}
		out[i] = n
	}

	return out
}

// Edge is a directed connection From→To with a positive Latency.
type Edge struct {
	From    Node
	To      Node
	Latency int64
}

// String renders the edge in its serialized token form, e.g. "AB5".
func (e Edge) String() string {
	return fmt.Sprintf("%c%c%d", e.From, e.To, e.Latency)
}

// EdgeError reports a construction failure for one token.
//
// Index is the zero-based token position, Token the raw text (empty for
// FromEdges input). From/To are set once the endpoints were decoded.
// Err is always one of the package sentinels.
type EdgeError struct {
	Index int
	Token string
	From  Node
	To    Node
	Err   error
}

// Error implements error.
func (e *EdgeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrDuplicateEdge):
		return fmt.Sprintf("%v with start %q and stop %q (token %d)", e.Err, e.From, e.To, e.Index)
	case e.Token != "":
		return fmt.Sprintf("%v: token %q (token %d)", e.Err, e.Token, e.Index)
	default:
		return fmt.Sprintf("%v (token %d)", e.Err, e.Index)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *EdgeError) Unwrap() error { return e.Err }

// Graph is an immutable directed latency graph.
//
// adjacency[from][to] holds the latency of edge from→to. Every node has an
// entry, possibly empty. nodes caches the node set sorted ascending and
// edges caches the edge count.
type Graph struct {
	adjacency map[Node]map[Node]int64
	nodes     []Node
	edges     int
}
