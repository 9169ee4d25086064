// Package diagram defines sentinel errors for burrow diagram parsing.
package diagram

import "errors"

var (
	// ErrEmptyDiagram indicates a diagram (or row) without any room row.
	ErrEmptyDiagram = errors.New("diagram: no room rows")
	// ErrNonRectangular indicates room rows of differing widths.
	ErrNonRectangular = errors.New("diagram: all room rows must have the same width")
	// ErrTooManyRooms indicates more rooms than burrow.MaxRooms.
	ErrTooManyRooms = errors.New("diagram: too many rooms")
	// ErrBadPiece indicates a letter naming a kind with no room, or a
	// character that is neither a letter nor a wall.
	ErrBadPiece = errors.New("diagram: invalid piece")
)
