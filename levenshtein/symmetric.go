package levenshtein

import "unicode/utf8"

// SymmetricDistance — Levenshtein distance under symmetric cost tables
//
// Description:
//
//	Like Distance, but a single EditCosts table prices both deletion
//	and insertion of a symbol, whichever string it falls on — the DP
//	borders included: row 0 accumulates EditCosts just like column 0 —
//	and substitution pairs are looked up in both orders before
//	defaulting. By construction the result is the same whichever way
//	the arguments are passed.
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func SymmetricDistance(s1, s2 string, opts *SymmetricOptions) float64 {
	var o SymmetricOptions
	if opts != nil {
		o = *opts
	}

	a, b := []rune(s1), []rune(s2)
	if len(b) > len(a) {
		a, b = b, a // both-order pair lookup needs no flip
	}

	return distance(a, b, o.EditCosts.Of, o.EditCosts.Of, o.EditCosts.Of, o.SubstitutionCosts.OfSymmetric)
}

// SymmetricSimilarity — normalized symmetric similarity in [0,1]
//
// Description:
//
//	SymmetricDistance normalized by the longer string's rune length:
//
//	    similarity = 1 − d(s1,s2) / max(n, m)
//
//	The distance is computed once — the symmetric tables make both
//	directions equal. Two empty strings yield similarity 1.0.
func SymmetricSimilarity(s1, s2 string, opts *SymmetricOptions) float64 {
	longest := utf8.RuneCountInString(s1)
	if m := utf8.RuneCountInString(s2); m > longest {
		longest = m
	}
	if longest == 0 {
		return 1
	}

	return 1 - SymmetricDistance(s1, s2, opts)/float64(longest)
}
