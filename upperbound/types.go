// Package upperbound types: the Acceptor contract and its closure adapter.
package upperbound

import "fmt"

// Acceptor is the capability a computation family must expose to the
// selector. Implementations MUST:
//   - Report a fixed desired value: Desired() is consulted more than once
//     per dispatch and must answer the same value every time.
//   - Tolerate any bound: Eval(upper) must produce a correct result for
//     every upper ≥ Desired(), since the selector chooses which single
//     candidate it passes. Results for different sufficient bounds should
//     be indistinguishable to the caller (the size-class discipline: build
//     in the bigger buffer, trim to Desired).
//   - Not rely on Eval being called for more than one candidate: per
//     dispatch, exactly one branch is realized.
//
// Rationale: mirrors how builder-style packages isolate caller logic behind
// a uniform contract while the library owns ordering and selection.
type Acceptor[T any] interface {
	// Desired returns the minimum bound the caller requires.
	Desired() uint

	// Eval realizes the evaluation branch for the candidate bound upper.
	// It is invoked for at most one candidate per dispatch, and only with
	// upper ≥ Desired().
	Eval(upper uint) T
}

// Func adapts a desired value and an evaluation closure into an Acceptor.
// It is the low-boilerplate way to declare a computation family inline;
// construct it with Of.
type Func[T any] struct {
	desired uint
	eval    func(upper uint) T
}

// Of declares a computation family from a desired value and a per-bound
// evaluation closure:
//
//	acc := upperbound.Of(n, func(upper uint) []byte {
//	    return make([]byte, upper)[:n]
//	})
//
// This is sugar over implementing Acceptor by hand — same contract, same
// semantics, nothing more.
//
// Of panics with an error wrapping ErrNilEval when eval is nil, so a
// misdeclared family fails at its declaration site rather than at some
// later dispatch.
func Of[T any](desired uint, eval func(upper uint) T) Func[T] {
	if eval == nil {
		panic(fmt.Errorf("upperbound: Of(%d, nil): %w", desired, ErrNilEval))
	}

	return Func[T]{desired: desired, eval: eval}
}

// Desired returns the declared desired value.
func (f Func[T]) Desired() uint { return f.desired }

// Eval invokes the declared closure with the candidate bound upper.
func (f Func[T]) Eval(upper uint) T { return f.eval(upper) }
