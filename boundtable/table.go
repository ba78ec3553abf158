package boundtable

import (
	"fmt"
	"math"
)

// Candidates — canonical candidate enumeration
//
// Description:
//
//	Candidates returns every candidate upper bound for a word of the given
//	bit width, in strictly ascending order. It is the single source of
//	truth for the table: cmd/boundgen renders its output into the
//	build-tagged files in this package, and Validate re-checks the active
//	generated table against it.
//
// Enumeration rule:
//  1. Yield 0 and 1.
//  2. For each bit position i in 1..width-1, yield 1<<i and 0b11<<(i-1)
//     (the power of two and the 1.5× power of two with top bit at i).
//  3. Close with the maximum width-bit value, unless it is already the
//     last entry (widths 1 and 2 collapse the duplicate).
//
// Determinism:
//
//	Identical width always yields the identical slice in identical order.
//
// Complexity: O(width) time and space.
//
// Errors:
//   - ErrWidthRange — width is 0 or exceeds 64 (entries are uint64 here so
//     that a 32-bit host can still enumerate a 64-bit table).
func Candidates(width uint) ([]uint64, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("boundtable: Candidates(%d): %w", width, ErrWidthRange)
	}

	out := make([]uint64, 0, 2*width+1)
	out = append(out, 0, 1)
	for i := uint(1); i < width; i++ {
		out = append(out, 1<<i, 3<<(i-1))
	}

	// The maximum representable value closes the table; it is what makes
	// selection total for every representable desired value.
	maxVal := uint64(math.MaxUint64)
	if width < 64 {
		maxVal = 1<<width - 1
	}
	if maxVal > out[len(out)-1] {
		out = append(out, maxVal)
	}

	return out, nil
}

// WordWidth reports the bit width the active generated table was built for.
// It always equals bits.UintSize; a mismatch is a build failure, not a
// runtime condition (see the assertion in the generated files).
func WordWidth() uint { return wordWidth }

// Len reports the number of entries in the active table.
func Len() int { return len(entries) }

// Entries returns a copy of the active table, strictly ascending.
// Callers may keep and mutate the copy freely.
func Entries() []uint {
	out := make([]uint, len(entries))
	copy(out, entries[:])

	return out
}

// Entry returns the i-th entry of the active table.
// It panics when i is out of range, like any slice index.
func Entry(i int) uint { return entries[i] }

// Max returns the last (largest) entry of the active table — the maximum
// representable value for the target word width.
func Max() uint { return entries[len(entries)-1] }

// Validate re-derives the canonical enumeration for the active word width
// and compares it entry-for-entry against the generated table.
//
// A correct build can never fail this check: the generated files pin their
// width at compile time. It exists so tests and cmd/boundgen -check can
// prove a freshly (re)generated table is current.
//
// Errors:
//   - ErrTableMismatch — length or entry disagreement (stale generation).
func Validate() error {
	want, err := Candidates(wordWidth)
	if err != nil {
		return err
	}
	if len(want) != len(entries) {
		return fmt.Errorf("boundtable: have %d entries, want %d for width %d: %w",
			len(entries), len(want), wordWidth, ErrTableMismatch)
	}
	for i, w := range want {
		if uint64(entries[i]) != w {
			return fmt.Errorf("boundtable: entry %d is %#x, want %#x: %w",
				i, entries[i], w, ErrTableMismatch)
		}
	}

	return nil
}
