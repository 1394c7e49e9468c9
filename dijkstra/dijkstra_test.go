// SPDX-License-Identifier: MIT

// Package dijkstra_test validates ShortestPath, ShortestTrace and Distances
// on the reference graph, on degenerate start == end queries, and against a
// brute-force oracle on random graphs.
package dijkstra_test

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umarhussain15/distributed-tracing-graph/core"
	"github.com/umarhussain15/distributed-tracing-graph/dijkstra"
)

const referenceGraph = "AB5,BC4,CD8,DC8,DE6,AD5,CE2,EB3,AE7"

func mustParse(t testing.TB, s string) *core.Graph {
	t.Helper()
	g, err := core.ParseString(s)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(nil, 'A', 'B')
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
	_, err = dijkstra.Distances(nil, 'A')
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_UnknownNode(t *testing.T) {
	g := mustParse(t, referenceGraph)
	for _, q := range [][2]core.Node{{'A', 'Z'}, {'Z', 'A'}, {'Z', 'Z'}} {
		_, _, err := dijkstra.ShortestPath(g, q[0], q[1])
		if !errors.Is(err, core.ErrUnknownNode) {
			t.Errorf("ShortestPath(%c,%c): expected ErrUnknownNode, got %v", q[0], q[1], err)
		}
	}
	_, err := dijkstra.Distances(g, 'Z')
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

// ------------------------------------------------------------------------
// 2. Reference graph
// ------------------------------------------------------------------------

func TestShortestPath_Reference(t *testing.T) {
	g := mustParse(t, referenceGraph)

	cases := []struct {
		start, end core.Node
		want       int64
		found      bool
	}{
		{'A', 'C', 9, true},
		{'A', 'E', 7, true},
		{'B', 'B', 9, true},
		{'C', 'C', 9, true},
		{'A', 'A', 0, false},
		{'C', 'A', 0, false},
		{'E', 'D', 15, true},
	}
	for _, tc := range cases {
		got, found, err := dijkstra.ShortestPath(g, tc.start, tc.end)
		if err != nil {
			t.Fatal(err)
		}
		if found != tc.found || got != tc.want {
			t.Errorf("ShortestPath(%c,%c) = %d, %v; want %d, %v", tc.start, tc.end, got, found, tc.want, tc.found)
		}
	}
}

func TestShortestTrace_Route(t *testing.T) {
	g := mustParse(t, referenceGraph)

	p, found, err := dijkstra.ShortestTrace(g, 'A', 'C')
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "A-B-C", p.String())

	p, found, err = dijkstra.ShortestTrace(g, 'B', 'B')
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "B-C-E-B", p.String())
	require.Equal(t, int64(9), p.Latency)

	latency, ok, err := g.PathLatency(p.Nodes...)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, p.Latency, latency, "route latency equals its summed edges")
}

func TestDistances_Reference(t *testing.T) {
	g := mustParse(t, referenceGraph)

	dist, err := dijkstra.Distances(g, 'A')
	require.NoError(t, err)
	require.Equal(t, map[core.Node]int64{'A': 0, 'B': 5, 'C': 9, 'D': 5, 'E': 7}, dist)

	dist, err = dijkstra.Distances(g, 'C')
	require.NoError(t, err)
	require.Equal(t, dijkstra.Infinity, dist['A'])
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

// TestShortestPath_CheaperDetour checks that the direct edge relaxed first
// does not shadow a cheaper two-hop detour.
func TestShortestPath_CheaperDetour(t *testing.T) {
	g := mustParse(t, "AT9,AB1,BT1")

	got, found, err := dijkstra.ShortestPath(g, 'A', 'T')
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(2), got)
}

func TestShortestPath_SelfLoop(t *testing.T) {
	g := mustParse(t, "AA7,AB1,BA2")

	p, found, err := dijkstra.ShortestTrace(g, 'A', 'A')
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(3), p.Latency, "A-B-A beats the self-loop")

	g = mustParse(t, "AA2,AB1,BA2")
	p, found, err = dijkstra.ShortestTrace(g, 'A', 'A')
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "A-A", p.String())
}

func TestShortestPath_SinkNode(t *testing.T) {
	g := mustParse(t, "AB1")

	_, found, err := dijkstra.ShortestPath(g, 'B', 'B')
	require.NoError(t, err)
	require.False(t, found, "no outgoing edges")

	_, found, err = dijkstra.ShortestPath(g, 'B', 'A')
	require.NoError(t, err)
	require.False(t, found)
}

// ------------------------------------------------------------------------
// 4. Oracle comparison
// ------------------------------------------------------------------------

// floydWarshall computes all-pairs minimum latencies over traces of at
// least one edge, so dist[v][v] is the cheapest cycle through v.
func floydWarshall(g *core.Graph) map[core.Node]map[core.Node]int64 {
	ns := g.Nodes()
	dist := make(map[core.Node]map[core.Node]int64, len(ns))
	for _, u := range ns {
		dist[u] = make(map[core.Node]int64, len(ns))
		for _, v := range ns {
			dist[u][v] = dijkstra.Infinity
		}
	}
	for _, e := range g.Edges() {
		dist[e.From][e.To] = e.Latency
	}
	for _, k := range ns {
		for _, i := range ns {
			if dist[i][k] == dijkstra.Infinity {
				continue
			}
			for _, j := range ns {
				if dist[k][j] == dijkstra.Infinity {
					continue
				}
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}

	return dist
}

// randomGraph draws a digraph over n letters with edge probability p.
func randomGraph(rng *rand.Rand, n int, p float64) string {
	var tokens []string
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < p {
				tokens = append(tokens, fmt.Sprintf("%c%c%d", 'A'+i, 'A'+j, 1+rng.Intn(9)))
			}
		}
	}

	return strings.Join(tokens, ",")
}

func TestShortestPath_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		s := randomGraph(rng, 7, 0.3)
		if s == "" {
			continue
		}
		g := mustParse(t, s)
		want := floydWarshall(g)
		for _, u := range g.Nodes() {
			for _, v := range g.Nodes() {
				got, found, err := dijkstra.ShortestPath(g, u, v)
				require.NoError(t, err)
				if want[u][v] == dijkstra.Infinity {
					require.False(t, found, "graph %s, %c→%c", s, u, v)
					continue
				}
				require.True(t, found, "graph %s, %c→%c", s, u, v)
				require.Equal(t, want[u][v], got, "graph %s, %c→%c", s, u, v)
			}
		}
	}
}
