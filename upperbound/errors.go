package upperbound

import "errors"

var (
	// ErrTableExhausted indicates the candidate scan found no entry ≥ the
	// desired value. Unreachable with a correct bound table (its last entry
	// is the word maximum); seeing it means the table is corrupt, so the
	// selector aborts by panicking with an error wrapping this sentinel
	// rather than returning a silently wrong bound.
	ErrTableExhausted = errors.New("upperbound: no candidate ≥ desired value (corrupt bound table)")

	// ErrNilEval indicates Of was given a nil evaluation closure.
	ErrNilEval = errors.New("upperbound: evaluation closure must be non-nil")
)
