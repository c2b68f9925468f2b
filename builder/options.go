// SPDX-License-Identifier: MIT
// Package: textnet/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.

package builder

import "fmt"

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithEdgePolicy selects how matrix cells map to edges.
// Panics on a value other than SupportEdges / NonzeroEdges.
func WithEdgePolicy(p EdgePolicy) BuilderOption {
	if p != SupportEdges && p != NonzeroEdges {
		panic(fmt.Sprintf("builder: WithEdgePolicy(%d)", int(p)))
	}
	return func(c *builderConfig) {
		c.edges = p
	}
}

// WithNonzeroEdges is shorthand for WithEdgePolicy(NonzeroEdges): a cell
// creates an edge only when its weight differs from zero.
func WithNonzeroEdges() BuilderOption {
	return WithEdgePolicy(NonzeroEdges)
}
