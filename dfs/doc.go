// SPDX-License-Identifier: MIT

// Package dfs counts traces (walks) between two nodes of a core.Graph by
// depth-first enumeration under a hop budget or a latency budget.
//
// Traces may repeat nodes and edges, so these are walk counts, not simple
// path counts. Every recursive step strictly shrinks its budget (one hop, or
// a positive latency), which bounds the recursion depth by maxHops or by
// maxLatency / min latency and guarantees termination on cyclic graphs.
//
// Counting:
//
//	CountTracesByHops(g, start, target, maxHops, UpTo)     walks of 1..maxHops edges ending at target
//	CountTracesByHops(g, start, target, maxHops, Exactly)  walks of exactly maxHops edges ending at target
//	CountTracesUnderLatency(g, start, end, maxLatency)     walks ending at end with total latency < maxLatency
//
// With UpTo, an arrival at target counts and the walk still continues from
// target, since a longer walk revisiting target counts again.
//
// Each recursive call returns its own count and callers sum them; there is
// no shared counter. The count from a node depends only on (node, budget),
// so results are memoized per call by default; WithoutMemo switches back to
// plain enumeration, which is exponential on dense graphs.
//
// Options:
//
//   - WithContext(ctx)   abort long enumerations; the error is ctx.Err().
//   - WithoutMemo()      disable (node, budget) memoization.
//
// Errors:
//
//   - ErrNilGraph          if g is nil.
//   - core.ErrUnknownNode  (wrapped) if start or target is absent.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//
// Counts grow exponentially with the budget on cyclic graphs and are not
// guarded against int64 overflow.
package dfs
