package boundtable

import "errors"

var (
	// ErrWidthRange indicates a requested word width outside 1..64.
	ErrWidthRange = errors.New("boundtable: word width must be in 1..64")
	// ErrTableMismatch indicates the generated table disagrees with the
	// canonical enumeration for its word width (stale generation).
	ErrTableMismatch = errors.New("boundtable: generated table does not match its word width")
)
