package damerau

import (
	"math"
	"unicode/utf8"

	"github.com/katalvlaran/editdist/editcost"
)

// Distance — cost-weighted Damerau–Levenshtein edit distance
//
// Description:
//
//	Returns the minimum total cost of transforming s1 into s2 using
//	single-symbol deletion, insertion, substitution and adjacent
//	transposition. Each operation is priced by the corresponding
//	Options table; symbols (or pairs) absent from a table cost
//	editcost.Default.
//
// Algorithm Outline (three rolling rows):
//  1. Let n = len(s1), m = len(s2) in runes. Keep the current row, the
//     previous row and the row two iterations back, m+1 cells each.
//  2. Row 0 holds 0,1,2,...,m; each later row i starts with
//     row[0] = previous[0] + del(s1[i-1]).
//  3. Cell (i,j): as in classic Levenshtein — copy the diagonal on a
//     match, otherwise min of delete/insert/substitute with their
//     table lookups.
//  4. When i>1, j>1 and s1[i-1]==s2[j-2] && s1[i-2]==s2[j-1], the cell
//     may be lowered further to twoBack[j-2] + trans(s1[i-2], s1[i-1]):
//     the two preceding symbols form a swapped adjacent pair.
//  5. The answer is the last cell of the final row.
//
// Only truly adjacent transposed pairs qualify; symbols swapped across
// a longer span are priced as separate edits.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m), or O(min(n,m)) when no per-symbol overrides are set.
//
// Distance never fails: it always returns a non-negative number for
// non-negative cost tables.
func Distance(s1, s2 string, opts *Options) float64 {
	var o Options
	if opts != nil {
		o = *opts
	}

	a, b := []rune(s1), []rune(s2)
	sub := pairCost(o.SubstitutionCosts.Of)
	trans := pairCost(o.TranspositionCosts.Of)

	// Rows span b. Per-symbol overrides are side-specific, but with both
	// single-symbol tables empty the operands are interchangeable once
	// the pair lookups flip, so roll over the shorter string.
	if len(b) > len(a) && len(o.DeletionCosts) == 0 && len(o.InsertionCosts) == 0 {
		a, b = b, a
		sub = flipPairs(sub)
		trans = flipPairs(trans)
	}

	return distance(a, b, defaultCost, o.DeletionCosts.Of, o.InsertionCosts.Of, sub, trans)
}

// Similarity — normalized Damerau–Levenshtein similarity in [0,1]
//
// Description:
//
//	Computes Distance in both argument orders (cost tables are
//	side-specific, so the two directions may differ), takes the smaller
//	of the two and normalizes it by the longer string's rune length:
//
//	    similarity = 1 − min(d(s1,s2), d(s2,s1)) / max(n, m)
//
//	Two empty strings are identical by definition: similarity 1.0.
//
// The result stays within [0,1] whenever every cost is at most
// editcost.Default.
func Similarity(s1, s2 string, opts *Options) float64 {
	longest := utf8.RuneCountInString(s1)
	if m := utf8.RuneCountInString(s2); m > longest {
		longest = m
	}
	if longest == 0 {
		return 1
	}

	d := math.Min(Distance(s1, s2, opts), Distance(s2, s1, opts))

	return 1 - d/float64(longest)
}

// charCost prices a single-symbol operation; pairCost an ordered pair.
type (
	charCost func(r rune) float64
	pairCost func(a, b rune) float64
)

// distance runs the restricted Damerau–Levenshtein DP over runes with
// three rolling rows. Costs are resolved through the supplied lookups so
// the plain and symmetric entry points share the same core; border
// prices the row-0 insertions that build b from nothing.
func distance(a, b []rune, border, del, ins charCost, sub, trans pairCost) float64 {
	n, m := len(a), len(b)

	twoBack := make([]float64, m+1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + border(b[j-1]) // row 0: cumulative insertion of b[:j]
	}

	for i := 1; i <= n; i++ {
		curr[0] = prev[0] + del(a[i-1]) // column 0: cumulative deletion of a[:i]
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] // match: no edit
			} else {
				curr[j] = min3(
					prev[j]+del(a[i-1]),           // delete a[i-1]
					curr[j-1]+ins(b[j-1]),         // insert b[j-1]
					prev[j-1]+sub(a[i-1], b[j-1]), // substitute a[i-1] → b[j-1]
				)
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				// Swapped adjacent pair: one transposition may beat the
				// cell computed above.
				if t := twoBack[j-2] + trans(a[i-2], a[i-1]); t < curr[j] {
					curr[j] = t
				}
			}
		}
		twoBack, prev, curr = prev, curr, twoBack
	}

	return prev[m]
}

// defaultCost prices every symbol at editcost.Default. The plain engine
// keeps row 0 at flat unit steps even when insertion overrides are set.
func defaultCost(rune) float64 { return editcost.Default }

// flipPairs reverses the argument order of a pair lookup.
func flipPairs(p pairCost) pairCost {
	return func(a, b rune) float64 { return p(b, a) }
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
