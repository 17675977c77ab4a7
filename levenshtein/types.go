// Package levenshtein defines the cost configuration for the
// 3-operation edit-distance engine.
package levenshtein

import "github.com/katalvlaran/editdist/editcost"

// Options configures Distance and Similarity.
//
// Every table may be nil or empty, meaning "no overrides": each operation
// then costs editcost.Default.
//
//   - DeletionCosts  — keyed by the deleted symbol of s1.
//   - InsertionCosts — keyed by the inserted symbol of s2.
//   - SubstitutionCosts — keyed by the ordered pair
//     (s1 symbol, s2 symbol); the reversed pair is NOT consulted.
//
// Costs must be non-negative; see editcost.Validate.
type Options struct {
	DeletionCosts     editcost.CharCosts
	InsertionCosts    editcost.CharCosts
	SubstitutionCosts editcost.PairCosts
}

// DefaultOptions returns Options with no overrides: every operation
// costs editcost.Default.
func DefaultOptions() Options { return Options{} }

// SymmetricOptions configures SymmetricDistance and SymmetricSimilarity.
//
//   - EditCosts prices both deletion and insertion of a symbol,
//     whichever string it falls on.
//   - SubstitutionCosts is queried in both pair orders before
//     defaulting (editcost.PairCosts.OfSymmetric).
type SymmetricOptions struct {
	EditCosts         editcost.CharCosts
	SubstitutionCosts editcost.PairCosts
}

// DefaultSymmetricOptions returns SymmetricOptions with no overrides.
func DefaultSymmetricOptions() SymmetricOptions { return SymmetricOptions{} }
