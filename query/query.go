// SPDX-License-Identifier: MIT

// Package query models a battery of latency-graph queries, executes it
// against one core.Graph, and renders the results as text.
//
// A Query is one of four kinds:
//
//	path_latency          summed latency of an explicit trace
//	traces_by_hops        walks under a hop budget (exact: true for exactly max_hops)
//	shortest_path         minimum latency between two nodes
//	traces_under_latency  walks with total latency below max_latency
//
// Batteries come from DefaultBattery or from a YAML file (LoadBattery).
// A Runner executes a battery concurrently; the graph is immutable, so no
// locking is involved, and results keep battery order.
package query

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/umarhussain15/distributed-tracing-graph/core"
	"github.com/umarhussain15/distributed-tracing-graph/dfs"
	"github.com/umarhussain15/distributed-tracing-graph/dijkstra"
)

// NoSuchTrace is the rendering of an absent result.
const NoSuchTrace = "NO SUCH TRACE"

var (
	// ErrUnknownKind indicates a Query.Kind outside the four supported kinds.
	ErrUnknownKind = errors.New("query: unknown kind")

	// ErrInvalidQuery indicates a structurally or semantically invalid query.
	ErrInvalidQuery = errors.New("query: invalid query")
)

// validate is shared; validator instances cache struct metadata and are
// safe for concurrent use.
var validate = validator.New()

// Kind names a query class.
type Kind string

// Supported kinds.
const (
	KindPathLatency        Kind = "path_latency"
	KindTracesByHops       Kind = "traces_by_hops"
	KindShortestPath       Kind = "shortest_path"
	KindTracesUnderLatency Kind = "traces_under_latency"
)

// Query is one entry of a battery. Which fields matter depends on Kind:
// Trace for path_latency; Start and End for the others; MaxHops and Exact
// for traces_by_hops; MaxLatency for traces_under_latency.
type Query struct {
	Name       string   `yaml:"name,omitempty"`
	Kind       Kind     `yaml:"kind" validate:"required,oneof=path_latency traces_by_hops shortest_path traces_under_latency"`
	Trace      []string `yaml:"trace,omitempty" validate:"dive,len=1"`
	Start      string   `yaml:"start,omitempty" validate:"omitempty,len=1"`
	End        string   `yaml:"end,omitempty" validate:"omitempty,len=1"`
	MaxHops    int      `yaml:"max_hops,omitempty" validate:"gte=0"`
	Exact      bool     `yaml:"exact,omitempty"`
	MaxLatency int64    `yaml:"max_latency,omitempty" validate:"gte=0"`
}

// Validate checks field constraints, then the fields Kind requires.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Kind" && fe.Tag() == "oneof" {
					return fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind)
				}
			}
		}

		return fmt.Errorf("%w: %s: %v", ErrInvalidQuery, q.Label(), err)
	}

	switch q.Kind {
	case KindPathLatency:
		if len(q.Trace) < 2 {
			return fmt.Errorf("%w: %s: trace needs at least two nodes", ErrInvalidQuery, q.Label())
		}
	default:
		if q.Start == "" || q.End == "" {
			return fmt.Errorf("%w: %s: start and end are required", ErrInvalidQuery, q.Label())
		}
	}

	return nil
}

// Label returns Name, or a description derived from the parameters.
func (q Query) Label() string {
	if q.Name != "" {
		return q.Name
	}
	switch q.Kind {
	case KindPathLatency:
		return fmt.Sprintf("%s %s", q.Kind, strings.Join(q.Trace, "-"))
	case KindTracesByHops:
		mode := dfs.UpTo
		if q.Exact {
			mode = dfs.Exactly
		}
		return fmt.Sprintf("%s %s→%s %s %d", q.Kind, q.Start, q.End, mode, q.MaxHops)
	case KindTracesUnderLatency:
		return fmt.Sprintf("%s %s→%s <%d", q.Kind, q.Start, q.End, q.MaxLatency)
	default:
		return fmt.Sprintf("%s %s→%s", q.Kind, q.Start, q.End)
	}
}

// Result is the outcome of one query. Found is false for an absent trace
// or when Err is set; counts are always found.
type Result struct {
	Query Query
	Value int64
	Found bool
	Err   error
}

// String renders the value, or NoSuchTrace when absent or failed.
func (r Result) String() string {
	if r.Err != nil || !r.Found {
		return NoSuchTrace
	}

	return strconv.FormatInt(r.Value, 10)
}

// Execute runs q against g. Failures travel in Result.Err; ctx bounds the
// trace-counting kinds.
func (q Query) Execute(ctx context.Context, g *core.Graph) Result {
	res := Result{Query: q}

	switch q.Kind {
	case KindPathLatency:
		trace, err := parseNodes(q.Trace...)
		if err != nil {
			res.Err = err
			return res
		}
		res.Value, res.Found, res.Err = g.PathLatency(trace...)

	case KindTracesByHops, KindShortestPath, KindTracesUnderLatency:
		ends, err := parseNodes(q.Start, q.End)
		if err != nil {
			res.Err = err
			return res
		}
		start, end := ends[0], ends[1]

		switch q.Kind {
		case KindTracesByHops:
			mode := dfs.UpTo
			if q.Exact {
				mode = dfs.Exactly
			}
			res.Value, res.Err = dfs.CountTracesByHops(g, start, end, q.MaxHops, mode, dfs.WithContext(ctx))
			res.Found = res.Err == nil
		case KindShortestPath:
			res.Value, res.Found, res.Err = dijkstra.ShortestPath(g, start, end)
		default:
			res.Value, res.Err = dfs.CountTracesUnderLatency(g, start, end, q.MaxLatency, dfs.WithContext(ctx))
			res.Found = res.Err == nil
		}

	default:
		res.Err = fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind)
	}

	return res
}

func parseNodes(ss ...string) ([]core.Node, error) {
	out := make([]core.Node, len(ss))
	for i, s := range ss {
		n, err := core.ParseNode(s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

// DefaultBattery returns the fixed ten-query battery in the order it is
// printed by the tracegraph command.
func DefaultBattery() []Query {
	return []Query{
		{Name: "latency A-B-C", Kind: KindPathLatency, Trace: []string{"A", "B", "C"}},
		{Name: "latency A-D", Kind: KindPathLatency, Trace: []string{"A", "D"}},
		{Name: "latency A-D-C", Kind: KindPathLatency, Trace: []string{"A", "D", "C"}},
		{Name: "latency A-E-B-C-D", Kind: KindPathLatency, Trace: []string{"A", "E", "B", "C", "D"}},
		{Name: "latency A-E-D", Kind: KindPathLatency, Trace: []string{"A", "E", "D"}},
		{Name: "traces C→C up to 3 hops", Kind: KindTracesByHops, Start: "C", End: "C", MaxHops: 3},
		{Name: "traces A→C exactly 4 hops", Kind: KindTracesByHops, Start: "A", End: "C", MaxHops: 4, Exact: true},
		{Name: "shortest A→C", Kind: KindShortestPath, Start: "A", End: "C"},
		{Name: "shortest B→B", Kind: KindShortestPath, Start: "B", End: "B"},
		{Name: "traces C→C under latency 30", Kind: KindTracesUnderLatency, Start: "C", End: "C", MaxLatency: 30},
	}
}
