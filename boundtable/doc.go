// Package boundtable holds the fixed, ascending table of candidate upper
// bounds for the compilation target's word width, plus the pure enumeration
// that cmd/boundgen uses to regenerate it.
//
// 🚀 What is the bound table?
//
//	An ordered list of every "round" unsigned integer the selector in
//	upperbound/ is allowed to hand out:
//	  0, 1,
//	  1<<i and 0b11<<(i-1) for each bit position i in 1..W-1,
//	  the maximum W-bit value,
//	where W is the native word width. In binary the interior entries look
//	like 0b10...0 (powers of two) and 0b110...0 (1.5× powers of two), so
//	consecutive entries never stretch by more than 1.5×.
//
// ✨ Key properties:
//   - strictly ascending, first entries 0 and 1, last entry the word max
//   - every representable value has a table entry ≥ it (the max guarantees it)
//   - 2·W + 1 entries for W ≥ 2 (129 on 64-bit targets, 65 on 32-bit)
//   - identical width ⇒ identical table, always
//
// ⚙️ Regeneration:
//
//	The build-tagged zz_generated_table_*.go files are emitted once per
//	word width by cmd/boundgen:
//
//	  go generate ./boundtable
//
//	Each generated file pins its width against bits.UintSize, so building
//	for a word width the table was not generated for fails the build
//	instead of silently mis-selecting bounds.
//
// See Validate for the invariant re-check used by tests and the generator.
package boundtable
