// Package editdist computes edit distances and normalized similarities
// between strings under customizable per-operation costs.
//
// 🚀 What is editdist?
//
//	A small, pure-Go library for cost-weighted string comparison:
//	  • Levenshtein distance — insertion, deletion, substitution
//	  • Damerau–Levenshtein distance — plus adjacent transposition
//	  • Similarity scores in [0,1], derived from distance
//	  • Per-symbol and per-pair cost tables with a 1.0 default
//
// ✨ Why choose editdist?
//
//   - Pure functions — no shared state, safe for concurrent use
//   - Rolling-row DP — linear memory, never a full matrix
//   - Symmetric variants — one merged edit table, both-order pair lookup
//   - Pure Go — no cgo, no runtime dependencies
//
// Everything is organized under three subpackages:
//
//	editcost/    — cost-table types shared by both engines
//	levenshtein/ — classic 3-operation edit distance
//	damerau/     — 4-operation variant with adjacent transposition
//
// Quick example:
//
//	levenshtein.Distance("kitten", "sitting", nil) // 3
//	damerau.Distance("hello", "hlelo", nil)        // 1 (one transposition)
//
//	go get github.com/katalvlaran/editdist
package editdist
