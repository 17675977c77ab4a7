// Package editcost defines the cost tables consumed by the levenshtein
// and damerau engines.
//
// 🚀 What is editcost?
//
//	Edit operations are priced by lookup tables:
//	  • CharCosts — symbol → cost, for deletions and insertions
//	  • PairCosts — ordered symbol pair → cost, for substitutions
//	    and transpositions
//
//	Any symbol (or pair) absent from its table costs Default (1.0).
//	A nil map is a valid always-miss table, so callers never need to
//	allocate anything to get plain unit-cost edit distance.
//
// ⚙️ Usage:
//
//	del := editcost.CharCosts{'h': 0.5}
//	sub := editcost.PairCosts{{From: 'p', To: 'v'}: 0.75}
//
//	del.Of('h')            // 0.5
//	del.Of('x')            // 1.0 (miss)
//	sub.Of('p', 'v')       // 0.75
//	sub.OfSymmetric('v', 'p') // 0.75 (reversed pair tried before default)
//
// Costs must be non-negative for the engines to return true minimum-cost
// distances. The engines do not check; Validate is available for callers
// that want an explicit configuration error.
package editcost
