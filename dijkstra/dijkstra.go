// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/umarhussain15/distributed-tracing-graph/core"
)

// ShortestPath returns the minimum latency over all traces from start to end.
// found is false when end is unreachable, or, for start == end, when no
// cycle leads back to start.
func ShortestPath(g *core.Graph, start, end core.Node) (int64, bool, error) {
	p, found, err := ShortestTrace(g, start, end)

	return p.Latency, found, err
}

// ShortestTrace is ShortestPath with the route itself.
//
// Steps:
//  1. Validate g and both endpoints.
//  2. start != end: one targeted search from start.
//  3. start == end: one targeted search per out-neighbor m of start,
//     combining latency(start→m) with dist(m, end). Minimum wins; ties keep
//     the neighbor that sorts first.
func ShortestTrace(g *core.Graph, start, end core.Node) (Path, bool, error) {
	if g == nil {
		return Path{}, false, ErrNilGraph
	}
	if err := g.Validate(start, end); err != nil {
		return Path{}, false, fmt.Errorf("dijkstra: %w", err)
	}

	if start != end {
		r := search(g, start, end, true)
		if r.dist[end] == Infinity {
			return Path{}, false, nil
		}

		return Path{Nodes: r.trace(end), Latency: r.dist[end]}, true, nil
	}

	nbs, err := g.Neighbors(start)
	if err != nil {
		return Path{}, false, fmt.Errorf("dijkstra: neighbors of %q: %w", start, err)
	}
	best := Path{Latency: Infinity}
	for _, e := range nbs {
		r := search(g, e.To, end, true)
		d := r.dist[end]
		if d == Infinity {
			continue
		}
		if total := e.Latency + d; total < best.Latency {
			best = Path{
				Nodes:   append([]core.Node{start}, r.trace(end)...),
				Latency: total,
			}
		}
	}
	if best.Latency == Infinity {
		return Path{}, false, nil
	}

	return best, true, nil
}

// Distances runs an untargeted search and returns the minimum latency from
// source to every node, Infinity for unreachable ones. dist[source] is 0
// (the empty walk); use ShortestPath for the cycle through source.
func Distances(g *core.Graph, source core.Node) (map[core.Node]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(source); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	return search(g, source, 0, false).dist, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g         *core.Graph
	source    core.Node
	target    core.Node
	hasTarget bool
	dist      map[core.Node]int64     // node → best known latency from source
	prev      map[core.Node]core.Node // node → predecessor on that trace
	visited   map[core.Node]bool      // settled nodes
	pq        nodePQ
}

// search builds a runner and drives it to completion. Callers validate
// source beforehand.
func search(g *core.Graph, source, target core.Node, hasTarget bool) *runner {
	r := &runner{
		g:         g,
		source:    source,
		target:    target,
		hasTarget: hasTarget,
		dist:      make(map[core.Node]int64, g.NodeCount()),
		prev:      make(map[core.Node]core.Node, g.NodeCount()),
		visited:   make(map[core.Node]bool, g.NodeCount()),
		pq:        make(nodePQ, 0, g.NodeCount()),
	}
	r.init()
	r.process()

	return r
}

// init sets every distance to Infinity, the source to 0, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = Infinity
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process settles nodes in increasing latency order until the heap drains
// or the target is settled.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		// stale entry from a later improvement
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if r.hasTarget && item.id == r.target {
			return
		}
		r.relax(item.id)
	}
}

// relax improves tentative latencies of u's unsettled neighbors.
func (r *runner) relax(u core.Node) {
	// u is a known node, so Neighbors cannot fail.
	nbs, _ := r.g.Neighbors(u)

	var newDist int64
	for _, e := range nbs {
		if r.visited[e.To] {
			continue
		}
		newDist = r.dist[u] + e.Latency
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// trace rebuilds source → … → v from the predecessor map. v must be reachable.
func (r *runner) trace(v core.Node) []core.Node {
	out := []core.Node{v}
	for v != r.source {
		v = r.prev[v]
		out = append(out, v)
	}
	slices.Reverse(out)

	return out
}
