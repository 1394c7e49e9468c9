// SPDX-License-Identifier: MIT

package core

// PathLatency sums the edge latencies along an explicit trace.
//
// The trace is walked pair by pair; the first pair without a direct edge
// stops the walk and reports found == false. That is a normal result, not
// an error.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrTraceTooShort if fewer than two nodes are given.
//   - ErrUnknownNode if any node is absent from the graph.
//
// Complexity: O(len(nodes)).
func (g *Graph) PathLatency(nodes ...Node) (latency int64, found bool, err error) {
	if g == nil {
		return 0, false, ErrNilGraph
	}
	if len(nodes) < 2 {
		return 0, false, ErrTraceTooShort
	}
	if err = g.Validate(nodes...); err != nil {
		return 0, false, err
	}

	var w int64
	var ok bool
	for i := 1; i < len(nodes); i++ {
		if w, ok = g.adjacency[nodes[i-1]][nodes[i]]; !ok {
			return 0, false, nil
		}
		latency += w
	}

	return latency, true, nil
}
