package core

import "math"

// Validate checks edges in input order and returns an *InvalidGraphError
// for the first offending edge, or nil when every edge is well-formed.
//
// For each edge the checks run in this order:
//  1. both endpoints satisfy Node.Valid          → ReasonInvalidNode
//  2. the weight is neither NaN nor ±Inf         → ReasonNonFiniteWeight
//  3. the weight is not negative                 → ReasonNegativeWeight
//
// Validate does not aggregate: later problems are never reported once one
// is found. An empty slice is valid here; emptiness is Build's concern.
//
// Complexity: O(E) time, O(1) space.
func Validate(edges []Edge) error {
	for i, e := range edges {
		if reason := validateEdge(e); reason != "" {
			return &InvalidGraphError{Reason: reason, Index: i, Edge: e}
		}
	}

	return nil
}

// validateEdge returns the violated reason for e, or "" if e is valid.
func validateEdge(e Edge) string {
	if !e.From.Valid() || !e.To.Valid() {
		return ReasonInvalidNode
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return ReasonNonFiniteWeight
	}
	if e.Weight < 0 {
		return ReasonNegativeWeight
	}

	return ""
}
