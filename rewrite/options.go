// Package rewrite implements the normalization and clausification passes
// of spec §4.4: NNF pushdown, total distributive CNF, total Tseitin,
// Plaisted–Greenbaum, the partial (threshold) distributive hybrid, and
// local simplification.
package rewrite

// Options configures the threshold-sensitive rewrites. AuxPrefix is
// carried here only for documentation purposes: auxiliary variables
// themselves know nothing about their printed form, variable.Table.Display
// applies the prefix at format time (spec §3 "Auxiliary naming").
type Options struct {
	AuxPrefix string
	MaxBlowup int
}

// DefaultMaxBlowup bounds the distributive expansion's predicted clause
// product before a partial pass abbreviates a node with Tseitin instead.
const DefaultMaxBlowup = 1000
