// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/umarhussain15/distributed-tracing-graph/core"
)

// CountTracesByHops counts walks from start that end at target under a hop
// budget.
//
//   - UpTo: every arrival at target within maxHops edges counts one trace,
//     and the walk continues from target.
//   - Exactly: an arrival at target counts only on the maxHops-th edge.
//
// maxHops <= 0 and a start without outgoing edges both yield 0.
func CountTracesByHops(g *core.Graph, start, target core.Node, maxHops int, mode HopMode, opts ...Option) (int64, error) {
	if mode != UpTo && mode != Exactly {
		return 0, fmt.Errorf("dfs: unsupported hop mode %d", mode)
	}
	w, err := newWalker(g, start, target, opts)
	if err != nil {
		return 0, err
	}
	w.exact = mode == Exactly

	return w.byHops(start, int64(maxHops))
}

// CountTracesUnderLatency counts walks from start that end at end with a
// total latency strictly below maxLatency. Every arrival at end counts, and
// the walk continues while budget remains. maxLatency <= 0 yields 0.
func CountTracesUnderLatency(g *core.Graph, start, end core.Node, maxLatency int64, opts ...Option) (int64, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return 0, err
	}

	return w.underLatency(start, maxLatency)
}

// memoKey identifies a sub-count: walks from node with budget remaining.
type memoKey struct {
	node   core.Node
	budget int64
}

// walker holds the state of one counting call.
type walker struct {
	opts      Options
	adjacency map[core.Node][]core.Edge // snapshot of outgoing edges
	target    core.Node
	exact     bool
	memo      map[memoKey]int64 // nil when memoization is off
}

// newWalker validates the endpoints and snapshots the adjacency of g.
func newWalker(g *core.Graph, start, target core.Node, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(start, target); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		opts:      o,
		adjacency: make(map[core.Node][]core.Edge, g.NodeCount()),
		target:    target,
	}
	for _, n := range g.Nodes() {
		// n comes from g.Nodes(), so Neighbors cannot fail.
		w.adjacency[n], _ = g.Neighbors(n)
	}
	if o.Memoize {
		w.memo = make(map[memoKey]int64)
	}

	return w, nil
}

// cancelled reports the context error, if any.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

func (w *walker) lookup(k memoKey) (int64, bool) {
	if w.memo == nil {
		return 0, false
	}
	n, ok := w.memo[k]

	return n, ok
}

func (w *walker) store(k memoKey, n int64) {
	if w.memo != nil {
		w.memo[k] = n
	}
}

// byHops returns the number of counted walks from node using at most hops edges.
func (w *walker) byHops(node core.Node, hops int64) (int64, error) {
	// 1. Budget exhausted
	if hops <= 0 {
		return 0, nil
	}

	// 2. Cancellation and memo
	if err := w.cancelled(); err != nil {
		return 0, err
	}
	key := memoKey{node: node, budget: hops}
	if n, ok := w.lookup(key); ok {
		return n, nil
	}

	// 3. Take each outgoing edge; count arrivals, then go deeper
	var total int64
	for _, e := range w.adjacency[node] {
		if e.To == w.target && (!w.exact || hops == 1) {
			total++
		}
		sub, err := w.byHops(e.To, hops-1)
		if err != nil {
			return 0, err
		}
		total += sub
	}

	w.store(key, total)

	return total, nil
}

// underLatency returns the number of walks from node reaching target with
// total latency strictly below budget.
func (w *walker) underLatency(node core.Node, budget int64) (int64, error) {
	// 1. Budget exhausted
	if budget <= 0 {
		return 0, nil
	}

	// 2. Cancellation and memo
	if err := w.cancelled(); err != nil {
		return 0, err
	}
	key := memoKey{node: node, budget: budget}
	if n, ok := w.lookup(key); ok {
		return n, nil
	}

	// 3. Edges costing the whole remaining budget or more are pruned
	var total, remaining int64
	for _, e := range w.adjacency[node] {
		remaining = budget - e.Latency
		if remaining <= 0 {
			continue
		}
		if e.To == w.target {
			total++
		}
		sub, err := w.underLatency(e.To, remaining)
		if err != nil {
			return 0, err
		}
		total += sub
	}

	w.store(key, total)

	return total, nil
}
