// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters for one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Follow can skip edges by returning false; it sees the live edge weight,
	// so retained zero-weight edges can be ignored by connectivity queries.
	Follow func(curr, neighbor string, weight float64) bool
}

// DefaultOptions: background context, every edge followed.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Follow: func(string, string, float64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFollow skips edges when fn returns false.
func WithFollow(fn func(curr, neighbor string, weight float64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Follow = fn
		}
	}
}

// WithinCommunity follows only edges whose endpoints share a cluster under of.
// Vertices unknown to of are never entered.
func WithinCommunity(of func(id string) (int, bool)) Option {
	return WithFollow(func(curr, nbr string, _ float64) bool {
		a, ok := of(curr)
		if !ok {
			return false
		}
		b, ok := of(nbr)
		return ok && a == b
	})
}
