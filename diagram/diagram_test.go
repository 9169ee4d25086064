// Package diagram_test covers diagram parsing, row parsing and row insertion.
package diagram_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/diagram"
)

const (
	a burrow.Piece = iota
	b
	c
	d
)

const sample = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

var sampleCols = [][]burrow.Piece{{a, b}, {d, c}, {c, b}, {a, d}}

func TestParse_Sample(t *testing.T) {
	cols, err := diagram.ParseString(sample)
	require.NoError(t, err)
	assert.Equal(t, sampleCols, cols)
}

// Lines after the first letterless row are ignored.
func TestParse_StopsAtFloor(t *testing.T) {
	cols, err := diagram.ParseString(sample + "\n###A#B#C#D###\n")
	require.NoError(t, err)
	assert.Equal(t, sampleCols, cols)
}

// Text trailing the walled letters of a row is not read as pieces.
func TestParse_IgnoresTrailingText(t *testing.T) {
	input := "#############\n#...........#\n###B#C#B#D### X\n  #A#D#C#A# Y Z\n  #########\n"
	cols, err := diagram.ParseString(input)
	require.NoError(t, err)
	assert.Equal(t, sampleCols, cols)

	// Letters must be separated by walls; the row stops at the first pair.
	cols, err = diagram.ParseString("#######\n#.....#\n###AB###\n")
	require.NoError(t, err)
	assert.Equal(t, [][]burrow.Piece{{a}}, cols)
}

func TestParse_TwoRooms(t *testing.T) {
	cols, err := diagram.ParseString("#########\n#.......#\n###B#A###\n  #A#B#\n  #####\n")
	require.NoError(t, err)
	assert.Equal(t, [][]burrow.Piece{{a, b}, {b, a}}, cols)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", diagram.ErrEmptyDiagram},
		{"HeaderOnly", "#############\n#...........#\n  #########\n", diagram.ErrEmptyDiagram},
		{"Ragged", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#\n", diagram.ErrNonRectangular},
		{"PieceWithoutRoom", "#########\n#.......#\n###B#C###\n  #A#B#\n", diagram.ErrBadPiece},
		{"TooManyRooms", "#\n#\n#A#B#C#D#E#F#G#H#I#\n", diagram.ErrTooManyRooms},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := diagram.ParseString(tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

type failingReader struct{}

var errRead = errors.New("boom")

func (failingReader) Read([]byte) (int, error) { return 0, errRead }

func TestParse_ReadError(t *testing.T) {
	_, err := diagram.Parse(failingReader{})
	require.ErrorIs(t, err, errRead)
}

func TestParseRow(t *testing.T) {
	row, err := diagram.ParseRow("DCBA")
	require.NoError(t, err)
	assert.Equal(t, []burrow.Piece{d, c, b, a}, row)

	row, err = diagram.ParseRow("  #D#B#A#C#")
	require.NoError(t, err)
	assert.Equal(t, []burrow.Piece{d, b, a, c}, row)

	_, err = diagram.ParseRow("D.BA")
	require.ErrorIs(t, err, diagram.ErrBadPiece)

	_, err = diagram.ParseRow("###")
	require.ErrorIs(t, err, diagram.ErrEmptyDiagram)
}

func TestInsert_Unfold(t *testing.T) {
	r1, err := diagram.ParseRow("DCBA")
	require.NoError(t, err)
	r2, err := diagram.ParseRow("DBAC")
	require.NoError(t, err)

	before := [][]burrow.Piece{{a, b}, {d, c}, {c, b}, {a, d}}
	cols, err := diagram.Insert(before, r1, r2)
	require.NoError(t, err)

	want := [][]burrow.Piece{{a, d, d, b}, {d, b, c, c}, {c, a, b, b}, {a, c, a, d}}
	assert.Equal(t, want, cols)
	assert.Equal(t, sampleCols, before, "input columns must not change")

	// The unfolded columns read back the same as the unfolded diagram.
	lines := strings.Split(sample, "\n")
	unfolded := strings.Join(append(lines[:3:3], "  #D#C#B#A#", "  #D#B#A#C#", lines[3], lines[4]), "\n")
	parsed, err := diagram.ParseString(unfolded)
	require.NoError(t, err)
	assert.Equal(t, want, parsed)
}

func TestInsert_Errors(t *testing.T) {
	_, err := diagram.Insert(sampleCols, []burrow.Piece{a, b, c})
	require.ErrorIs(t, err, diagram.ErrNonRectangular)

	_, err = diagram.Insert(sampleCols, []burrow.Piece{a, b, c, 4})
	require.ErrorIs(t, err, diagram.ErrBadPiece)
}

func TestInsert_NoRows(t *testing.T) {
	cols, err := diagram.Insert(sampleCols)
	require.NoError(t, err)
	assert.Equal(t, sampleCols, cols)
}
