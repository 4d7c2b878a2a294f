package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonSquare indicates the number of rows differs from the row length.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrCellValue indicates a cost outside the single-digit range.
	ErrCellValue = errors.New("gridgraph: cell cost must be in 0..9")
	// ErrBadDigit indicates a non-digit character in the textual input.
	ErrBadDigit = errors.New("gridgraph: input contains a non-digit character")
	// ErrBadMultiplier indicates a tiling multiplier below 1.
	ErrBadMultiplier = errors.New("gridgraph: multiplier must be at least 1")
	// ErrOutOfBounds indicates coordinates outside the tiled grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
)
