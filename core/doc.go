// SPDX-License-Identifier: MIT

// Package core defines the latency graph shared by every query package:
// single-character nodes, directed edges carrying positive integer
// latencies, and the GraphBuilder that decodes a serialized edge list.
//
// The Graph G = (V,E) is built once and never mutated afterwards:
//
//   - adjacency[from][to] = latency (at most one edge per ordered pair)
//   - every edge endpoint is a node; destination-only nodes have no outgoing edges
//   - self-loops (AA3) are legal edges
//
// Because no API mutates a Graph after construction, any number of
// goroutines may query the same Graph concurrently without locking.
//
// Serialization format (consumed by Parse / ParseString):
//
//	AB5,BC4,CD8,DC8,DE6,AD5,CE2,EB3,AE7
//
// Each token is <from><to><latency>, where latency is a single digit 1..9.
// A trailing separator is tolerated; any other malformed token fails the
// whole build and no partial Graph is returned.
//
// Construction:
//
//	g, err := core.ParseString("AB5,BC4,CD8")
//	g, err := core.Parse(file)                      // trims one trailing newline
//	g, err := core.FromEdges([]core.Edge{{From: 'A', To: 'B', Latency: 5}})
//
// Options (ParseOption):
//
//	– WithSeparator(r rune)      token separator, default ','.
//	– WithMultiDigitLatency()    accept <from><to><digits> tokens (AB12).
//
// Queries:
//
//	PathLatency(nodes ...Node) (latency int64, found bool, err error)
//
// Shortest paths live in package dijkstra; trace counting lives in package dfs.
//
// Errors:
//
//	ErrMalformedEdge  - token does not decode into (from, to, latency).
//	ErrDuplicateEdge  - ordered (from, to) pair seen twice.
//	ErrEmptyGraph     - input holds no edge tokens.
//	ErrZeroLatency    - latency 0 (zero-cost cycles make bounded enumeration unbounded).
//	ErrUnknownNode    - query references a node absent from the graph.
//	ErrTraceTooShort  - PathLatency called with fewer than two nodes.
//	ErrNilGraph       - method called on a nil *Graph.
//
// Build failures are reported as *EdgeError, which unwraps to one of the
// sentinels above; use errors.Is to branch and errors.As to read the token.
package core
