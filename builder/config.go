// SPDX-License-Identifier: MIT
// Package: textnet/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • edges = SupportEdges (retained pairs become edges, zero weights included)

package builder

// EdgePolicy decides which matrix cells become bipartite edges.
type EdgePolicy int

const (
	// SupportEdges emits an edge for every (document, term) pair present in the
	// retained weighted table, whatever its weight.
	SupportEdges EdgePolicy = iota
	// NonzeroEdges emits an edge only where the weight is non-zero.
	NonzeroEdges
)

// String returns "support" or "nonzero".
func (p EdgePolicy) String() string {
	if p == NonzeroEdges {
		return "nonzero"
	}
	return "support"
}

// builderConfig is passed by value to constructors.
type builderConfig struct {
	edges EdgePolicy
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{edges: SupportEdges}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
