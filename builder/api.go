// SPDX-License-Identifier: MIT
// Package: textnet/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - Determinism: same matrix, attributes, options and constructor order ⇒
//     identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/textnet/core"
	"github.com/katalvlaran/textnet/matrix"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new loop-free core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Bipartite builds the document–term graph of wm and annotates document
// vertices with attrs (attribute name → document id → value; may be nil).
func Bipartite(wm *matrix.Labeled, attrs map[string]map[string]interface{}, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, Incidence(wm), DocAttributes(attrs))
}
