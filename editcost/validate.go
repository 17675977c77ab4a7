package editcost

import (
	"errors"
	"fmt"
)

// ErrNegativeCost indicates a cost table carries a negative entry.
// The engines never reject negative costs themselves; a table holding one
// yields distances that are not minimum-cost alignments.
var ErrNegativeCost = errors.New("editcost: negative cost")

// Validate reports a negative entry in the table, wrapped around
// ErrNegativeCost, or nil when every cost is non-negative.
func (c CharCosts) Validate() error {
	for r, cost := range c {
		if cost < 0 {
			return fmt.Errorf("%w: %g for %q", ErrNegativeCost, cost, r)
		}
	}

	return nil
}

// Validate reports a negative entry in the table, wrapped around
// ErrNegativeCost, or nil when every cost is non-negative.
func (p PairCosts) Validate() error {
	for pair, cost := range p {
		if cost < 0 {
			return fmt.Errorf("%w: %g for %q,%q", ErrNegativeCost, cost, pair.From, pair.To)
		}
	}

	return nil
}
