// Package tracegraph answers latency questions over a directed graph of
// services reconstructed from distributed traces.
//
// A node is a service identified by one character; an edge A→B carries the
// observed call latency. Graphs are built once from a serialized edge list
// and are immutable afterwards, so any number of goroutines may query them.
//
// Subpackages:
//
//	core/       Node, Edge, Graph; the GraphBuilder (Parse, ParseString, FromEdges); PathLatency
//	dijkstra/   ShortestPath, ShortestTrace, Distances (round trips when start == end)
//	dfs/        CountTracesByHops (UpTo / Exactly), CountTracesUnderLatency
//	query/      query batteries: DefaultBattery, YAML loading, concurrent Runner, Render
//	cmd/tracegraph  command-line front end
//
// Quick example:
//
//	g, _ := core.ParseString("AB5,BC4,CD8,DC8,DE6,AD5,CE2,EB3,AE7")
//	lat, _, _ := g.PathLatency('A', 'B', 'C')              // 9
//	n, _ := dfs.CountTracesByHops(g, 'C', 'C', 3, dfs.UpTo) // 2
//	d, _, _ := dijkstra.ShortestPath(g, 'B', 'B')            // 9
//
//	go install github.com/umarhussain15/distributed-tracing-graph/cmd/tracegraph@latest
package tracegraph
