// SPDX-License-Identifier: MIT
// Package: textnet/builder
//
// impl_attributes.go: DocAttributes(attrs): external document annotations.
//
// Contract:
//   • For each attribute name (ascending), every NodeDoc vertex receives
//     attrs[name][id], or nil when the document is absent from that map.
//   • Term vertices are never touched.
//   • A nil or empty attrs map is a no-op.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/textnet/core"
)

const methodDocAttributes = "DocAttributes"

// DocAttributes returns a Constructor that annotates the document vertices
// already present in g. Run it after Incidence.
//
// Complexity: O(A·V) for A attribute names.
func DocAttributes(attrs map[string]map[string]interface{}) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if len(attrs) == 0 {
			return nil
		}
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, v := range g.Vertices() {
			if v.Type != core.NodeDoc {
				continue
			}
			for _, name := range names {
				if err := g.SetAttr(v.ID, name, attrs[name][v.ID]); err != nil {
					return fmt.Errorf("%s: SetAttr(%s,%s): %w", methodDocAttributes, v.ID, name, err)
				}
			}
		}

		return nil
	}
}
