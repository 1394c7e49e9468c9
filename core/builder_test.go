// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umarhussain15/distributed-tracing-graph/core"
)

func TestParseString_Reference(t *testing.T) {
	g := mustReference(t)

	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 9, g.EdgeCount())
	require.Equal(t, nodes("A", "B", "C", "D", "E"), g.Nodes())

	w, ok := g.Latency('A', 'B')
	require.True(t, ok)
	require.Equal(t, int64(5), w)

	_, ok = g.Latency('B', 'A')
	require.False(t, ok, "edges are directed")
}

func TestParseString_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		token string
	}{
		{"TokenTooLong", "AB3,BC1,CE2,BBD3", core.ErrMalformedEdge, "BBD3"},
		{"TokenTooShort", "AB3,B1", core.ErrMalformedEdge, "B1"},
		{"NonDigitLatency", "AB3,BCx", core.ErrMalformedEdge, "BCx"},
		{"InteriorEmpty", "AB3,,BC1", core.ErrMalformedEdge, ""},
		{"Duplicate", "AB3,BC1,CE2,CE2", core.ErrDuplicateEdge, "CE2"},
		{"DuplicateDifferentLatency", "AB3,AB4", core.ErrDuplicateEdge, "AB4"},
		{"ZeroLatency", "AB0", core.ErrZeroLatency, "AB0"},
		{"MultiDigitWithoutOption", "AB12", core.ErrMalformedEdge, "AB12"},
		{"DigitEndpoint", "125", core.ErrMalformedEdge, "125"},
		{"InvalidUTF8Endpoint", "\xffB3", core.ErrMalformedEdge, "\xffB3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.ParseString(tc.input)
			require.Nil(t, g, "no partial graph on failure")
			require.ErrorIs(t, err, tc.want)

			var ee *core.EdgeError
			require.True(t, errors.As(err, &ee))
			require.Equal(t, tc.token, ee.Token)
		})
	}
}

func TestParseString_DuplicateNamesEndpoints(t *testing.T) {
	_, err := core.ParseString("AB3,CE2,CE5")

	var ee *core.EdgeError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, 2, ee.Index)
	require.Equal(t, core.Node('C'), ee.From)
	require.Equal(t, core.Node('E'), ee.To)
	require.Contains(t, err.Error(), `"C"`)
	require.Contains(t, err.Error(), `"E"`)
}

func TestParseString_Empty(t *testing.T) {
	for _, input := range []string{"", ",", ",,,"} {
		g, err := core.ParseString(input)
		require.Nil(t, g)
		require.ErrorIs(t, err, core.ErrEmptyGraph, "input %q", input)
	}
}

func TestParseString_TrailingSeparator(t *testing.T) {
	g, err := core.ParseString("AB3,BC1,CE2,")
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
}

func TestParseString_SelfLoopAndSinkNodes(t *testing.T) {
	g, err := core.ParseString("AA2,AB3")
	require.NoError(t, err)

	require.True(t, g.HasNode('B'), "destination-only endpoint is a node")
	require.Equal(t, 0, g.OutDegree('B'))
	w, ok := g.Latency('A', 'A')
	require.True(t, ok)
	require.Equal(t, int64(2), w)
}

func TestParseString_Options(t *testing.T) {
	g, err := core.ParseString("AB12;BC3", core.WithSeparator(';'), core.WithMultiDigitLatency())
	require.NoError(t, err)

	w, ok := g.Latency('A', 'B')
	require.True(t, ok)
	require.Equal(t, int64(12), w)

	_, err = core.ParseString("AB99999999999999999999", core.WithMultiDigitLatency())
	require.ErrorIs(t, err, core.ErrMalformedEdge, "overflow is malformed")
}

func TestParseString_LatencyCap(t *testing.T) {
	g, err := core.ParseString("AB2147483647,BC2147483647", core.WithMultiDigitLatency())
	require.NoError(t, err)
	lat, found, err := g.PathLatency('A', 'B', 'C')
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(2*core.MaxLatency), lat)

	for _, input := range []string{"AB2147483648", "AB9223372036854775807,BC1,AC3", "AB9223372036854775806,BC5"} {
		g, err = core.ParseString(input, core.WithMultiDigitLatency())
		require.Nil(t, g)
		require.ErrorIs(t, err, core.ErrMalformedEdge, "input %q", input)
	}

	_, err = core.FromEdges([]core.Edge{{From: 'A', To: 'B', Latency: core.MaxLatency + 1}})
	require.ErrorIs(t, err, core.ErrMalformedEdge)
}

func TestWithSeparator_PanicsOnDigit(t *testing.T) {
	require.Panics(t, func() { core.WithSeparator('7') })
}

func TestParse_Reader(t *testing.T) {
	g, err := core.Parse(strings.NewReader(referenceGraph + "\r\n"))
	require.NoError(t, err)
	require.Equal(t, 9, g.EdgeCount())

	_, err = core.Parse(strings.NewReader("AB5\n\n"))
	require.ErrorIs(t, err, core.ErrMalformedEdge, "only one line terminator is trimmed")
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: 'X', To: 'Y', Latency: 10},
		{From: 'Y', To: 'X', Latency: 1},
	})
	require.NoError(t, err)
	require.Equal(t, "XY10,YX1", g.String())

	_, err = core.FromEdges(nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = core.FromEdges([]core.Edge{{From: '1', To: 'Y', Latency: 1}})
	require.ErrorIs(t, err, core.ErrMalformedEdge, "digit label")

	_, err = core.FromEdges([]core.Edge{{From: 'X', To: 'Y', Latency: 1}, {From: 'X', To: 'Y', Latency: 2}})
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	_, err = core.FromEdges([]core.Edge{{From: 'X', To: 'Y', Latency: -1}})
	require.ErrorIs(t, err, core.ErrZeroLatency)
}

func TestString_RoundTrip(t *testing.T) {
	g := mustReference(t)
	s := g.String()
	require.Equal(t, "AB5,AD5,AE7,BC4,CD8,CE2,DC8,DE6,EB3", s)

	back, err := core.ParseString(s)
	require.NoError(t, err)
	require.Equal(t, g.Edges(), back.Edges())
}
