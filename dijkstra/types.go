// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
	"strings"

	"github.com/umarhussain15/distributed-tracing-graph/core"
)

// Infinity marks an unreachable node in the table returned by Distances.
const Infinity int64 = math.MaxInt64

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Path is one minimum-latency trace.
//
// Nodes lists the trace from start to end inclusive; for start == end the
// node appears at both ends (e.g. B C E B). Latency is the summed cost.
type Path struct {
	Nodes   []core.Node
	Latency int64
}

// String renders the trace as "A-B-C".
func (p Path) String() string {
	parts := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		parts[i] = n.String()
	}

	return strings.Join(parts, "-")
}

// nodeItem is a heap entry: a node and the tentative latency it was pushed with.
type nodeItem struct {
	id   core.Node
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by node
// so that traversal order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
