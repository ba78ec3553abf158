package upperbound

import (
	"fmt"

	"github.com/katalvlaran/genbound/boundtable"
)

// Upper-bound selection and branch dispatch
//
// Description:
//
//	The selector maps a desired value D to the smallest entry U of the
//	candidate table with U ≥ D, then realizes exactly the evaluation
//	branch indexed by U. The table (see boundtable) lists 0, 1, powers of
//	two, 1.5× powers of two and the word maximum, so U is always a round
//	size class and never more than ~1.5× away from the previous class.
//
// Algorithm Outline:
//  1. Select: scan the table in ascending order; the first entry ≥ D wins.
//     The final entry is the word maximum, so a match always exists.
//  2. Eval: recompute U, then scan the table a second time and invoke the
//     caller's branch for the entry equal to U — and for no other entry.
//     The two scans make dispatch consistency structural: Eval can only
//     ever realize the branch UpperBound reports.
//
// Guarantees:
//   - D ≤ U for every representable D (totality).
//   - D ≤ U < 2·D for D > 0: consecutive regular entries differ by at most
//     1.5×, and any D above the last regular entry (0b11 followed by W-2
//     zeros, i.e. ¾·2^W) already exceeds half of the word maximum.
//   - Select is monotonic and deterministic for a fixed word width.
//   - Exactly one branch per Eval is realized; a branch that would panic
//     if evaluated is harmless while unselected.
//
// Complexity:
//
//	O(len(table)) per operation — at most 129 comparisons on 64-bit
//	targets. No allocation.
//
// Errors:
//   - ErrTableExhausted — scan miss; unreachable with a correct table and
//     surfaced as a panic, never as a wrong value (see errors.go).

// tableEntries is the active candidate table, captured once at package
// init. A package-level hook (rather than calling boundtable directly in
// the scan loops) lets in-package tests fault-inject a corrupt table.
var tableEntries = boundtable.Entries()

// Select returns the smallest candidate bound ≥ desired.
//
// For desired > 0 the result U satisfies desired ≤ U < 2·desired; for
// desired == 0 it returns 0. Select is total: the table's final entry is
// the word maximum, so every representable desired value matches.
//
// Select panics with an error wrapping ErrTableExhausted if the scan
// completes without a match — impossible unless the generated table is
// corrupt, and deliberately fatal in that case.
func Select(desired uint) uint {
	for _, n := range tableEntries {
		if n >= desired {
			return n
		}
	}
	panic(fmt.Errorf("upperbound: Select(%d) scanned %d entries without a match: %w",
		desired, len(tableEntries), ErrTableExhausted))
}

// Desired reports the desired value the family declared — "what you asked
// for", alongside UpperBound's "what you will get". Pure passthrough; it
// exists so call sites read symmetrically.
func Desired[T any](a Acceptor[T]) uint { return a.Desired() }

// UpperBound reports the bound Eval will pass to the family's branch:
// the smallest table entry ≥ a.Desired().
func UpperBound[T any](a Acceptor[T]) uint { return Select(a.Desired()) }

// Eval selects the bound for a.Desired() and realizes exactly the branch
// for that bound, returning its result.
//
// Branches for non-selected candidates are never invoked. This is a
// correctness property, not an optimization: unselected branches may be
// arbitrarily expensive, meaningless for other sizes, or panic when
// called, and dispatch must still succeed.
//
// A panic raised by the selected branch itself propagates to the caller
// unmodified; it is a caller-authored outcome, not a dispatch failure.
func Eval[T any](a Acceptor[T]) T {
	actual := Select(a.Desired())
	for _, n := range tableEntries {
		if n == actual {
			// The one and only branch realization for this dispatch.
			return a.Eval(n)
		}
	}
	panic(fmt.Errorf("upperbound: Eval found no entry equal to selected bound %d: %w",
		actual, ErrTableExhausted))
}
