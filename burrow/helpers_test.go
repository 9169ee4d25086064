package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/burrow/burrow"
)

// Piece kinds by letter.
const (
	A burrow.Piece = iota
	B
	C
	D
)

// sampleCols is the canonical four-room sample, bottom to top:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
var sampleCols = [][]burrow.Piece{{A, B}, {D, C}, {C, B}, {A, D}}

const sampleDiagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

// mustParams builds Params or fails the test.
func mustParams(t testing.TB, rooms, size int) *burrow.Params {
	t.Helper()
	p, err := burrow.NewParams(rooms, size)
	require.NoError(t, err)
	return p
}

// mustState builds a State or fails the test.
func mustState(t testing.TB, p *burrow.Params, cols [][]burrow.Piece) burrow.State {
	t.Helper()
	s, err := burrow.NewState(p, cols)
	require.NoError(t, err)
	return s
}

// reachable returns every state reachable from start through AllMoves.
func reachable(p *burrow.Params, start burrow.State) []burrow.State {
	seen := mapset.New[burrow.State]()
	seen.Put(start)
	queue := []burrow.State{start}
	for i := 0; i < len(queue); i++ {
		for _, m := range queue[i].AllMoves(p) {
			if !seen.Has(m.Next) {
				seen.Put(m.Next)
				queue = append(queue, m.Next)
			}
		}
	}
	return queue
}

// smallStarts are two-room, capacity-two starting columns used for
// exhaustive checks.
var smallStarts = [][][]burrow.Piece{
	{{B, A}, {A, B}},
	{{B, B}, {A, A}},
	{{A, B}, {B, A}},
}

// pieceCount counts the pieces of every kind in s.
func pieceCount(p *burrow.Params, s burrow.State) []int {
	counts := make([]int, p.NumRooms)
	for r := 0; r < p.NumRooms; r++ {
		room := s.Room(r)
		for ix := 0; ix < room.Len(); ix++ {
			piece, _ := room.Get(burrow.Piece(r), ix)
			counts[piece]++
		}
	}
	h := s.Hall()
	for ix := 0; ix < h.Len(); ix++ {
		if piece, ok := h.Tile(ix).Piece(); ok {
			counts[piece]++
		}
	}
	return counts
}
