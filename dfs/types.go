// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// ErrNilGraph is returned when a nil *core.Graph is passed in.
var ErrNilGraph = errors.New("dfs: graph is nil")

// HopMode selects which hop counts CountTracesByHops accepts.
type HopMode int

const (
	// UpTo counts walks of 1..maxHops edges.
	UpTo HopMode = iota
	// Exactly counts walks of exactly maxHops edges.
	Exactly
)

// String implements fmt.Stringer.
func (m HopMode) String() string {
	switch m {
	case UpTo:
		return "up-to"
	case Exactly:
		return "exactly"
	default:
		return "unknown"
	}
}

// Option configures a counting call.
type Option func(*Options)

// Options holds the knobs for one counting call.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Memoize caches counts per (node, remaining budget). Default true.
	Memoize bool
}

// DefaultOptions returns Options with a background context and memoization on.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Memoize: true,
	}
}

// WithContext sets the context checked at every step. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithoutMemo disables memoization. Results are identical; only the cost changes.
func WithoutMemo() Option {
	return func(o *Options) {
		o.Memoize = false
	}
}
