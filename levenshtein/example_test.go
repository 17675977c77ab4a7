package levenshtein_test

import (
	"fmt"

	"github.com/katalvlaran/editdist/editcost"
	"github.com/katalvlaran/editdist/levenshtein"
)

// ExampleDistance demonstrates plain unit-cost edit distance:
// kitten → sitting takes two substitutions and one insertion.
func ExampleDistance() {
	fmt.Println(levenshtein.Distance("kitten", "sitting", nil))
	// Output:
	// 3
}

// ExampleDistance_weighted prices three of the edits below the default:
// insert 'r' stays at 1.0 on the leading edge, substituting p→v costs
// 0.75 and deleting 'h' costs 0.5.
func ExampleDistance_weighted() {
	opts := &levenshtein.Options{
		DeletionCosts:     editcost.CharCosts{'h': 0.5},
		InsertionCosts:    editcost.CharCosts{'r': 0.5},
		SubstitutionCosts: editcost.PairCosts{{From: 'p', To: 'v'}: 0.75},
	}
	fmt.Println(levenshtein.Distance("elephant", "relevant", opts))
	// Output:
	// 2.25
}

// ExampleSimilarity normalizes distance into [0,1]: identical strings
// score 1, fully distinct strings score 0.
func ExampleSimilarity() {
	fmt.Printf("%.2f\n", levenshtein.Similarity("kitten", "sitting", nil))
	fmt.Printf("%.2f\n", levenshtein.Similarity("same", "same", nil))
	// Output:
	// 0.57
	// 1.00
}

// ExampleSymmetricDistance uses one merged table for deletions and
// insertions, so both argument orders agree.
func ExampleSymmetricDistance() {
	opts := &levenshtein.SymmetricOptions{
		EditCosts: editcost.CharCosts{'b': 0.5},
	}
	fmt.Println(levenshtein.SymmetricDistance("ab", "a", opts))
	fmt.Println(levenshtein.SymmetricDistance("a", "ab", opts))
	// Output:
	// 0.5
	// 0.5
}
