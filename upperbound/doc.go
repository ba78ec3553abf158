// Package upperbound selects the smallest "round" bound that covers a
// desired size, and evaluates exactly one caller-supplied branch with it.
//
// 🚀 What is upperbound?
//
//	Go generics cannot express arithmetic over type parameters — there is
//	no [M + N]byte for generic M and N, and no way to name "an array big
//	enough for both". upperbound offers the next best thing: round the
//	desired size up to the nearest entry of the fixed candidate table in
//	boundtable/ (powers of two, 1.5× powers of two, the word max) and run
//	the caller's computation with that concrete bound.
//
// ✨ Key guarantees:
//   - Totality — every representable desired value D gets a bound U ≥ D
//   - Tightness — for D > 0, the bound satisfies D ≤ U < 2·D
//   - Monotonicity — larger D never yields a smaller U
//   - Laziness — of a family of per-bound branches, only the selected
//     branch is ever evaluated; the rest may be arbitrarily expensive or
//     even panic when called, and dispatch still succeeds
//   - Consistency — Eval realizes precisely the branch UpperBound names
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/genbound/upperbound"
//
//	// Declare what you need and what to do with any sufficient bound.
//	acc := upperbound.Of(m+n, func(upper uint) []byte {
//	    buf := make([]byte, upper) // upper ≥ m+n, a round size class
//	    ...                        // use buf, then trim
//	    return buf[:m+n]
//	})
//
//	upperbound.Desired(acc)    // m+n       — what you asked for
//	upperbound.UpperBound(acc) // e.g. 1536 — what you will get
//	upperbound.Eval(acc)       // the branch result, evaluated once
//
// Repeated evaluation at a hot site should go through Memo, which caches
// one result per site key and suppresses concurrent duplicate work.
//
// Callers must tolerate any bound ≥ their desired value and trim excess
// (padding, spare capacity) from the result themselves.
package upperbound
