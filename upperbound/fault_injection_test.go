package upperbound

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-package tests: the fatal path only exists for a corrupt table, which
// cannot be produced through the public surface, so these swap the
// unexported table hook directly.

// TestSelect_CorruptTableAborts verifies an exhausted scan aborts with a
// panic wrapping ErrTableExhausted instead of returning a wrong bound.
func TestSelect_CorruptTableAborts(t *testing.T) {
	orig := tableEntries
	defer func() { tableEntries = orig }()
	tableEntries = []uint{0, 1, 2} // missing the word maximum

	defer func() {
		r := recover()
		require.NotNil(t, r, "Select on a corrupt table must panic")
		err, ok := r.(error)
		require.True(t, ok, "the panic value must be an error")
		assert.ErrorIs(t, err, ErrTableExhausted, "the panic must wrap ErrTableExhausted")
	}()

	Select(10)
	t.Fatal("Select must not return on a corrupt table")
}

// TestEval_CorruptTableAborts verifies dispatch shares the same fatal
// behavior and never realizes any branch when selection cannot resolve.
func TestEval_CorruptTableAborts(t *testing.T) {
	orig := tableEntries
	defer func() { tableEntries = orig }()
	tableEntries = []uint{0, 1, 2}

	var realized bool
	defer func() {
		r := recover()
		require.NotNil(t, r, "Eval on a corrupt table must panic")
		err, ok := r.(error)
		require.True(t, ok, "the panic value must be an error")
		assert.True(t, errors.Is(err, ErrTableExhausted), "the panic must wrap ErrTableExhausted")
		assert.False(t, realized, "no branch may be realized when selection fails")
	}()

	Eval(Of(10, func(upper uint) int {
		realized = true

		return int(upper)
	}))
	t.Fatal("Eval must not return on a corrupt table")
}
