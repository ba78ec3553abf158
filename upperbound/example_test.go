package upperbound_test

import (
	"fmt"

	"github.com/katalvlaran/genbound/upperbound"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSelect
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Round a handful of requested sizes up to their size class.
//
// Use case:
//
//	Pool bucket sizing, arena block rounding — anywhere "a bit too big
//	but round" beats "exact but irregular".
//
// Complexity: O(len(table)) per call, no allocation.
func ExampleSelect() {
	for _, want := range []uint{0, 3, 5, 100, 1000, 1537} {
		fmt.Printf("%d → %d\n", want, upperbound.Select(want))
	}
	// Output:
	// 0 → 0
	// 3 → 3
	// 5 → 6
	// 100 → 128
	// 1000 → 1024
	// 1537 → 2048
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEval
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Concatenate two strings through a scratch buffer whose size is the
//	selected bound — the buffer is a round size class ≥ the total length,
//	and the result is trimmed back to exactly what was asked for.
//
// Use case:
//
//	The general pattern for consuming an inexact bound: build in the
//	bigger buffer, trim the padding before returning.
func ExampleEval() {
	left, right := "generic ", "upper bound"
	total := uint(len(left) + len(right))

	concat := upperbound.Of(total, func(upper uint) string {
		buf := make([]byte, upper) // upper ≥ total, a round size class
		n := copy(buf, left)
		copy(buf[n:], right)

		return string(buf[:total]) // trim the excess
	})

	fmt.Println("desired:", upperbound.Desired(concat))
	fmt.Println("granted:", upperbound.UpperBound(concat))
	fmt.Println("result: ", upperbound.Eval(concat))
	// Output:
	// desired: 19
	// granted: 24
	// result:  generic upper bound
}

// ExampleMemo demonstrates per-site caching: the branch runs once, every
// later evaluation at the same site replays the stored result.
func ExampleMemo() {
	m := upperbound.NewMemo[uint]()
	calls := 0
	acc := upperbound.Of(500, func(upper uint) uint {
		calls++

		return upper
	})

	a := m.Eval("render-buffer", acc)
	b := m.Eval("render-buffer", acc)
	fmt.Println(a, b, calls)
	// Output:
	// 512 512 1
}
