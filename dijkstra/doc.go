// SPDX-License-Identifier: MIT

// Package dijkstra computes minimum-latency traces over a core.Graph.
//
// Overview:
//
//   - Best-first search from a single source over positive edge latencies.
//   - A min-heap frontier always expands the unsettled node with the smallest
//     tentative latency; stale heap entries are skipped (lazy decrease-key).
//   - A targeted search stops the moment the target is settled. Settling is
//     the first point at which its latency is final, so early exit is exact.
//
// Degenerate case start == end:
//
//	A trace must traverse at least one edge, so the empty walk (latency 0)
//	is not an answer. ShortestPath(n, n) instead evaluates, for each direct
//	neighbor m of n, latency(n→m) + dist(m, n) and keeps the minimum.
//	A node without outgoing edges, or without a cycle back to itself, has
//	no such trace.
//
// API:
//
//	ShortestPath(g, start, end)  (latency int64, found bool, err error)
//	ShortestTrace(g, start, end) (Path, bool, error)
//	Distances(g, source)         (map[core.Node]int64, error)
//
// Distances reports unreachable nodes with the Infinity sentinel; the
// targeted queries convert it into found == false.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per search; start == end runs one search per
//     out-neighbor.
//   - Space: O(V + E).
//
// Errors:
//
//   - ErrNilGraph             if g is nil.
//   - core.ErrUnknownNode     (wrapped) if start, end or source is absent.
//
// Thread safety:
//
//	core.Graph is immutable, so any number of searches may run concurrently
//	on the same graph.
package dijkstra
