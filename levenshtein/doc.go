// Package levenshtein computes the classic 3-operation edit distance
// (insertion, deletion, substitution) under per-symbol cost tables,
// plus a normalized similarity score.
//
// 🚀 What is Levenshtein distance?
//
//	The minimum total cost of single-symbol insertions, deletions and
//	substitutions transforming one string into another. Widely used in:
//	  • Spell checking & "did you mean" suggestions
//	  • Fuzzy search and record linkage
//	  • OCR and transcription post-processing
//
// ✨ Key features:
//   - per-symbol deletion/insertion costs, per-pair substitution costs
//     (editcost tables; missing entries cost 1.0)
//   - symmetric variants with one merged edit table and both-order
//     pair lookup
//   - Similarity in [0,1]: 1 − distance / max(len)
//   - rolling-row DP: O(n·m) time, linear memory, no full matrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/editdist/levenshtein"
//
//	levenshtein.Distance("kitten", "sitting", nil) // 3
//
//	opts := &levenshtein.Options{
//	  DeletionCosts: editcost.CharCosts{'h': 0.5},
//	}
//	levenshtein.Distance("hat", "at", opts) // 0.5
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(m) — O(min(n,m)) when no per-symbol overrides are set
//
// All functions are pure: no shared state, safe for concurrent use.
package levenshtein
