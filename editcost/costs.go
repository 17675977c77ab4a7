package editcost

// Default is the cost of any edit operation whose symbol (or symbol pair)
// carries no override in the corresponding table.
const Default = 1.0

// CharCosts prices single-symbol operations (deletion, insertion).
// A nil or empty map is a valid table in which every lookup misses.
type CharCosts map[rune]float64

// Of returns the cost recorded for r, or Default when r has no override.
func (c CharCosts) Of(r rune) float64 {
	if cost, ok := c[r]; ok {
		return cost
	}

	return Default
}

// Pair is an ordered pair of symbols keying a substitution or
// transposition cost.
type Pair struct {
	From, To rune
}

// PairCosts prices two-symbol operations (substitution, transposition).
// A nil or empty map is a valid table in which every lookup misses.
type PairCosts map[Pair]float64

// Of returns the cost recorded for the ordered pair (a, b), or Default
// when the pair has no override.
func (p PairCosts) Of(a, b rune) float64 {
	if cost, ok := p[Pair{From: a, To: b}]; ok {
		return cost
	}

	return Default
}

// OfSymmetric returns the cost for (a, b), trying the reversed pair (b, a)
// before falling back to Default. Symmetric cost tables are queried in
// both orders so callers may record each pair once.
func (p PairCosts) OfSymmetric(a, b rune) float64 {
	if cost, ok := p[Pair{From: a, To: b}]; ok {
		return cost
	}
	if cost, ok := p[Pair{From: b, To: a}]; ok {
		return cost
	}

	return Default
}
