// Package damerau computes the Damerau–Levenshtein edit distance —
// insertion, deletion, substitution and adjacent transposition — under
// per-symbol cost tables, plus a normalized similarity score.
//
// 🚀 What is Damerau–Levenshtein distance?
//
//	Levenshtein distance extended with a fourth operation: swapping two
//	adjacent symbols counts as one edit instead of two. That matches how
//	typos actually happen, which makes it the usual choice for:
//	  • Spell checking & keyboard-slip correction
//	  • Fuzzy matching of names and identifiers
//	  • Deduplication of near-identical records
//
// ✨ Key features:
//   - per-symbol deletion/insertion costs, per-pair substitution and
//     transposition costs (editcost tables; missing entries cost 1.0)
//   - transpositions priced by the ordered adjacent pair of s1
//   - symmetric variants with one merged edit table and both-order
//     pair lookup
//   - Similarity in [0,1]: 1 − distance / max(len)
//   - three rolling rows: O(n·m) time, linear memory, no full matrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/editdist/damerau"
//
//	damerau.Distance("hello", "hlelo", nil) // 1 — one transposition
//
//	opts := &damerau.Options{
//	  TranspositionCosts: editcost.PairCosts{{From: 'e', To: 'l'}: 0.5},
//	}
//	damerau.Distance("hello", "hlelo", opts) // 0.5
//
// Only truly adjacent swapped pairs qualify: symbols exchanged across a
// longer span are still priced as separate edits (the restricted,
// optimal-string-alignment form of the algorithm).
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(m) — O(min(n,m)) when no per-symbol overrides are set
//
// All functions are pure: no shared state, safe for concurrent use.
package damerau
