// Package genbound picks a "round" upper bound for a size known only at
// call time, and evaluates a caller-supplied computation with exactly that
// bound — a practical workaround for Go generics not allowing arithmetic
// over type parameters (no [M + N]byte with generic M and N).
//
// 🚀 What is genbound?
//
//	A tiny, deterministic library that rounds a desired size up to the
//	nearest entry of a fixed candidate table (0, 1, powers of two,
//	1.5×powers of two, word max) and dispatches one — and only one —
//	evaluation branch for the chosen bound:
//	  • boundtable/  — the generated per-word-width candidate table
//	  • upperbound/  — bound selection, branch dispatch, memoization
//	  • cmd/boundgen — the go:generate step that emits the tables
//
// ✨ Why choose genbound?
//
//   - Tight guarantee — for D > 0 the chosen bound U satisfies D ≤ U < 2·D
//   - Lazy by construction — non-selected branches are never evaluated
//   - Pure Go — no cgo, deterministic for a given word width
//   - Memoized — repeated evaluation per site costs one dispatch, total
//
// Callers must tolerate a bound up to roughly double what they asked for
// and trim the excess themselves (the classic size-class discipline).
//
// Quick taste:
//
//	upper := upperbound.Select(1000) // → 1024
//	out := upperbound.Eval(upperbound.Of(n, func(upper uint) []byte {
//	    buf := make([]byte, upper) // sized by the bound, not by n
//	    return fill(buf)[:n]      // trim back to what was asked
//	}))
//
// Dive into the per-package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/genbound/upperbound
package genbound
