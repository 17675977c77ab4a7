package levenshtein

import (
	"math"
	"unicode/utf8"

	"github.com/katalvlaran/editdist/editcost"
)

// Distance — cost-weighted Levenshtein edit distance
//
// Description:
//
//	Returns the minimum total cost of transforming s1 into s2 using
//	single-symbol deletion, insertion and substitution. Each operation
//	is priced by the corresponding Options table; symbols (or pairs)
//	absent from a table cost editcost.Default.
//
// Algorithm Outline (rolling rows):
//  1. Let n = len(s1), m = len(s2) in runes. Keep two rows of m+1 cells.
//  2. Row 0 holds 0,1,2,...,m — j edits to build s2[:j] from nothing.
//  3. Each later row i starts with row[0] = previous[0] + del(s1[i-1]),
//     the cumulative cost of deleting s1[:i].
//  4. Cell (i,j): if s1[i-1] == s2[j-1], copy the diagonal; otherwise
//     min of (up + del(s1[i-1])), (left + ins(s2[j-1])),
//     (diagonal + sub(s1[i-1], s2[j-1])).
//  5. The answer is the last cell of the final row.
//
// Inputs:
//   - s1, s2: strings compared per Unicode code point; either may be
//     empty.
//   - opts: cost tables; nil means no overrides.
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

	// Rows span b. Per-symbol overrides are side-specific, but with both
	// single-symbol tables empty the operands are interchangeable once
	// substitution pairs flip, so roll over the shorter string.
	if len(b) > len(a) && len(o.DeletionCosts) == 0 && len(o.InsertionCosts) == 0 {
		a, b = b, a
		sub = flipPairs(sub)
	}

	return distance(a, b, defaultCost, o.DeletionCosts.Of, o.InsertionCosts.Of, sub)
}

// Similarity — normalized Levenshtein similarity in [0,1]
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

// distance runs the Wagner–Fischer DP over runes with one pair of
// rolling rows. Costs are resolved through the supplied lookups so the
// plain and symmetric entry points share the same core; border prices
// the row-0 insertions that build b from nothing.
func distance(a, b []rune, border, del, ins charCost, sub pairCost) float64 {
	n, m := len(a), len(b)

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

				continue
			}
			curr[j] = min3(
				prev[j]+del(a[i-1]),           // delete a[i-1]
				curr[j-1]+ins(b[j-1]),         // insert b[j-1]
				prev[j-1]+sub(a[i-1], b[j-1]), // substitute a[i-1] → b[j-1]
			)
		}
		prev, curr = curr, prev
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
