// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: GraphBuilder. Decodes a serialized edge list (or a slice of Edge)
//       into a validated, immutable Graph.
// Determinism:
//   - Tokens are processed left to right; the first failing token is reported.
//   - No partial Graph escapes on failure.

package core

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultSeparator separates edge tokens in the serialized form.
const DefaultSeparator = ','

// MaxLatency is the largest accepted edge latency. Any walk over at most
// 2^31 edges then sums below math.MaxInt64.
const MaxLatency = math.MaxInt32

// tokenRunes is the rune length of a single-digit token: <from><to><digit>.
const tokenRunes = 3

// ParseOption configures the GraphBuilder.
type ParseOption func(*parseConfig)

// parseConfig holds the resolved builder knobs.
type parseConfig struct {
	sep        rune // token separator
	multiDigit bool // accept <from><to><digits...>
}

func defaultParseConfig() parseConfig {
	return parseConfig{sep: DefaultSeparator}
}

// WithSeparator sets the token separator. Digits and utf8.RuneError are
// rejected with a panic, since they would make tokens ambiguous.
func WithSeparator(sep rune) ParseOption {
	if isDigit(sep) || sep == utf8.RuneError {
		panic(fmt.Sprintf("core: invalid separator %q", sep))
	}

	return func(c *parseConfig) { c.sep = sep }
}

// WithMultiDigitLatency accepts latencies of any number of digits, so
// "AB12" decodes into A→B with latency 12. Node labels stay one character.
func WithMultiDigitLatency() ParseOption {
	return func(c *parseConfig) { c.multiDigit = true }
}

// Parse reads the whole stream and decodes it with ParseString.
// A single trailing line terminator ("\n" or "\r\n") is dropped first so
// that files written by editors parse as-is.
func Parse(r io.Reader, opts ...ParseOption) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("core: read graph: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")

	return ParseString(s, opts...)
}

// ParseString decodes a separator-delimited edge list such as
// "AB5,BC4,CD8" into a Graph.
//
// Steps:
//  1. Split on the separator and drop trailing empty tokens.
//  2. No tokens left ⇒ ErrEmptyGraph.
//  3. Decode each token; a wrong length or non-digit latency ⇒ ErrMalformedEdge.
//  4. Digit or invalid UTF-8 endpoints, and latency above MaxLatency ⇒ ErrMalformedEdge.
//  5. Zero latency ⇒ ErrZeroLatency; repeated (from, to) ⇒ ErrDuplicateEdge.
//
// Every per-token failure is an *EdgeError.
//
// Complexity: O(n log n) for n tokens (node set is sorted once).
func ParseString(s string, opts ...ParseOption) (*Graph, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tokens := strings.Split(s, string(cfg.sep))
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyGraph
	}

	b := newGraphBuilder(len(tokens))
	for i, tok := range tokens {
		e, err := decodeToken(tok, cfg)
		if err != nil {
			return nil, &EdgeError{Index: i, Token: tok, From: e.From, To: e.To, Err: err}
		}
		if err = b.add(e); err != nil {
			return nil, &EdgeError{Index: i, Token: tok, From: e.From, To: e.To, Err: err}
		}
	}

	return b.build(), nil
}

// FromEdges builds a Graph from already decoded edges, applying the same
// invariants as ParseString: at least one edge, positive latencies, and
// one edge per ordered pair.
func FromEdges(edges []Edge) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}
	b := newGraphBuilder(len(edges))
	for i, e := range edges {
		if err := b.add(e); err != nil {
			return nil, &EdgeError{Index: i, From: e.From, To: e.To, Err: err}
		}
	}

	return b.build(), nil
}

// decodeToken splits one token into its endpoints and latency. On failure
// the returned Edge carries whatever endpoints were decoded.
func decodeToken(tok string, cfg parseConfig) (Edge, error) {
	runes := []rune(tok)
	if len(runes) < tokenRunes || (!cfg.multiDigit && len(runes) != tokenRunes) {
		return Edge{}, ErrMalformedEdge
	}
	e := Edge{From: Node(runes[0]), To: Node(runes[1])}
	if !validLabel(e.From) || !validLabel(e.To) {
		return e, ErrMalformedEdge
	}

	digits := runes[2:]
	for _, r := range digits {
		if !isDigit(r) {
			return e, ErrMalformedEdge
		}
	}
	latency, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		// only reachable through overflow in multi-digit mode
		return e, ErrMalformedEdge
	}
	e.Latency = latency

	return e, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// validLabel rejects digits and the replacement rune of invalid UTF-8.
func validLabel(n Node) bool {
	return !isDigit(rune(n)) && rune(n) != utf8.RuneError
}

// graphBuilder accumulates adjacency until build hands it to a Graph.
type graphBuilder struct {
	adjacency map[Node]map[Node]int64
	edges     int
}

func newGraphBuilder(capacity int) *graphBuilder {
	return &graphBuilder{adjacency: make(map[Node]map[Node]int64, capacity)}
}

// add registers both endpoints and the edge between them.
func (b *graphBuilder) add(e Edge) error {
	if !validLabel(e.From) || !validLabel(e.To) {
		return ErrMalformedEdge
	}
	if e.Latency <= 0 {
		return ErrZeroLatency
	}
	if e.Latency > MaxLatency {
		return fmt.Errorf("%w: latency %d exceeds %d", ErrMalformedEdge, e.Latency, MaxLatency)
	}
	peers, ok := b.adjacency[e.From]
	if !ok {
		peers = make(map[Node]int64)
		b.adjacency[e.From] = peers
	}
	if _, dup := peers[e.To]; dup {
		return ErrDuplicateEdge
	}
	peers[e.To] = e.Latency
	if _, ok = b.adjacency[e.To]; !ok {
		b.adjacency[e.To] = make(map[Node]int64)
	}
	b.edges++

	return nil
}

// build freezes the accumulated state. The builder must not be reused.
func (b *graphBuilder) build() *Graph {
	nodes := make([]Node, 0, len(b.adjacency))
	for n := range b.adjacency {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return &Graph{adjacency: b.adjacency, nodes: nodes, edges: b.edges}
}
