// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umarhussain15/distributed-tracing-graph/core"
)

// referenceGraph is the fixture used across the module's tests.
const referenceGraph = "AB5,BC4,CD8,DC8,DE6,AD5,CE2,EB3,AE7"

// mustReference parses referenceGraph or fails the test.
func mustReference(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.ParseString(referenceGraph)
	require.NoError(t, err)

	return g
}

// nodes is a short alias for core.MustParseNodes.
func nodes(ss ...string) []core.Node { return core.MustParseNodes(ss...) }

// isUnknown reports whether err wraps core.ErrUnknownNode.
func isUnknown(err error) bool { return errors.Is(err, core.ErrUnknownNode) }
