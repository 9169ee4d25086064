// Package diagram reads burrow diagrams into the per-room columns consumed by
// burrow.NewProblem, and inserts extra room rows into existing columns.
//
// A diagram looks like:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The first two lines (top wall and hallway) are skipped. Every following
// line holding '#'-separated uppercase letters is a room row, read left to
// right; text after the last letter-wall pair is ignored. The first line
// without letters ends the rows. Letter 'A' is piece kind 0.
package diagram

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/burrow/burrow"
)

// headerLines is the number of lines above the first room row.
const headerLines = 2

// Parse reads a diagram and returns one column per room, bottom to top.
func Parse(r io.Reader) ([][]burrow.Piece, error) {
	sc := bufio.NewScanner(r)

	var rows [][]burrow.Piece
	for line := 0; sc.Scan(); line++ {
		if line < headerLines {
			continue
		}
		row := letters(sc.Text())
		if len(row) == 0 {
			break
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("diagram: read: %w", err)
	}

	if err := validate(rows); err != nil {
		return nil, err
	}

	return transpose(rows), nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([][]burrow.Piece, error) {
	return Parse(strings.NewReader(s))
}

// ParseRow parses one compact room row such as "DCBA" or "#D#C#B#A#".
// Walls and spaces are ignored.
func ParseRow(s string) ([]burrow.Piece, error) {
	var row []burrow.Piece
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z':
			row = append(row, burrow.Piece(c-'A'))
		case c == '#' || c == ' ':
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadPiece, c)
		}
	}
	if len(row) == 0 {
		return nil, ErrEmptyDiagram
	}

	return row, nil
}

// Insert returns new columns with the given rows inserted directly below the
// top row of every column. Rows are listed top to bottom, as they would appear
// in a diagram. The input columns are not modified.
func Insert(cols [][]burrow.Piece, rows ...[]burrow.Piece) ([][]burrow.Piece, error) {
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("%w: inserted row %d has %d rooms, want %d",
				ErrNonRectangular, i, len(row), len(cols))
		}
		for _, piece := range row {
			if int(piece) >= len(cols) {
				return nil, fmt.Errorf("%w: %c", ErrBadPiece, piece.Letter())
			}
		}
	}

	out := make([][]burrow.Piece, len(cols))
	for c, col := range cols {
		// Bottom-most inserted row comes first in a bottom-to-top column.
		extra := make([]burrow.Piece, 0, len(rows))
		for i := len(rows) - 1; i >= 0; i-- {
			extra = append(extra, rows[i][c])
		}
		at := max(len(col)-1, 0)
		out[c] = slices.Insert(slices.Clone(col), at, extra...)
	}

	return out, nil
}

// letters reads the '#'-separated letters of a room row. Leading spaces and
// walls are skipped; the row ends at the first character that does not
// continue the letter-wall pattern.
func letters(line string) []burrow.Piece {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '#') {
		i++
	}

	var row []burrow.Piece
	for i < len(line) && isLetter(line[i]) {
		row = append(row, burrow.Piece(line[i]-'A'))
		if i+1 >= len(line) || line[i+1] != '#' {
			break
		}
		i += 2
	}

	return row
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func validate(rows [][]burrow.Piece) error {
	if len(rows) == 0 {
		return ErrEmptyDiagram
	}
	width := len(rows[0])
	if width > burrow.MaxRooms {
		return fmt.Errorf("%w: %d", ErrTooManyRooms, width)
	}
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d rooms, want %d", ErrNonRectangular, i, len(row), width)
		}
		for _, piece := range row {
			if int(piece) >= width {
				return fmt.Errorf("%w: %c with %d rooms", ErrBadPiece, piece.Letter(), width)
			}
		}
	}

	return nil
}

// transpose turns top-to-bottom rows into bottom-to-top columns.
func transpose(rows [][]burrow.Piece) [][]burrow.Piece {
	bottomUp := slices.Clone(rows)
	slices.Reverse(bottomUp)

	cols := make([][]burrow.Piece, len(rows[0]))
	for c := range cols {
		cols[c] = make([]burrow.Piece, len(bottomUp))
		for i, row := range bottomUp {
			cols[c][i] = row[c]
		}
	}

	return cols
}
