package rubik

import "errors"

// Sentinel errors for the rubik package.
var (
	// ErrInvalidCellValue reports a cell value outside the 1..6 color
	// domain. It can only occur at construction time: rotations permute
	// existing cells and never introduce new values.
	ErrInvalidCellValue = errors.New("rubik: cell value outside 1..6 color range")

	// ErrInvalidNotation reports an unparseable move notation string.
	ErrInvalidNotation = errors.New("rubik: invalid move notation")
)
