package boundtable_test

import (
	"fmt"

	"github.com/katalvlaran/genbound/boundtable"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCandidates
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Enumerate the full candidate table for a tiny 8-bit word — small
//	enough to eyeball the whole rule: 0, 1, then the 2^i / 3·2^(i-1)
//	pairs, closed by the 8-bit maximum.
//
// Use case:
//
//	Understanding what bounds the selector can ever hand out, and why the
//	gap to the next candidate never exceeds 1.5× (until the final jump to
//	the word maximum).
//
// Complexity: O(width) time and space.
func ExampleCandidates() {
	ents, err := boundtable.Candidates(8)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ents)
	// Output:
	// [0 1 2 3 4 6 8 12 16 24 32 48 64 96 128 192 255]
}

// ExampleValidate shows the internal-consistency re-check a test suite or
// a generate step can run against the compiled-in table.
func ExampleValidate() {
	fmt.Println(boundtable.Validate())
	// Output:
	// <nil>
}
