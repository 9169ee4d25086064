package burrow

import (
	"fmt"
	"strings"
)

// State is a full burrow configuration: every room plus the hallway.
//
// State is a comparable value. Two states reached through different move
// sequences compare equal with == and collide as map keys whenever their
// rooms and hallway match, which is what the search's closed set relies on.
type State struct {
	numRooms uint8
	rooms    [MaxRooms]Room
	hall     Hall
}

// Problem bundles the parameters derived from a set of columns with the
// starting state built from them.
type Problem struct {
	Params *Params
	Start  State
}

// NewProblem derives Params from the columns (one column per room, listed
// bottom to top; room capacity is the tallest column) and builds the start
// state with an empty hallway.
func NewProblem(cols [][]Piece, opts ...Option) (*Problem, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	size := 0
	for _, col := range cols {
		size = max(size, len(col))
	}

	p, err := NewParams(len(cols), size, opts...)
	if err != nil {
		return nil, err
	}
	start, err := NewState(p, cols)
	if err != nil {
		return nil, err
	}

	return &Problem{Params: p, Start: start}, nil
}

// NewState builds a state with an empty hallway from one column per room,
// each listed bottom to top.
//
// Errors:
//   - ErrColumnCount if len(cols) != p.NumRooms.
//   - ErrColumnTooTall if a column holds more than p.RoomSize pieces.
//   - ErrPieceRange if a piece kind is not below p.NumRooms.
func NewState(p *Params, cols [][]Piece) (State, error) {
	if len(cols) != p.NumRooms {
		return State{}, fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(cols), p.NumRooms)
	}

	s := State{numRooms: uint8(p.NumRooms), hall: NewHall(p.HallSize)}
	for r, col := range cols {
		if len(col) > p.RoomSize {
			return State{}, fmt.Errorf("%w: room %d holds %d, capacity %d", ErrColumnTooTall, r, len(col), p.RoomSize)
		}
		for _, piece := range col {
			if int(piece) >= p.NumRooms {
				return State{}, fmt.Errorf("%w: %d in room %d", ErrPieceRange, piece, r)
			}
		}
		s.rooms[r] = RoomFromColumn(Piece(r), col, p)
	}

	return s, nil
}

// NumRooms returns the number of rooms.
func (s State) NumRooms() int { return int(s.numRooms) }

// Room returns room r. Panics if r is out of range.
func (s State) Room(r int) Room {
	if r < 0 || r >= int(s.numRooms) {
		panic(fmt.Sprintf("burrow: room %d out of range [0,%d)", r, s.numRooms))
	}

	return s.rooms[r]
}

// Hall returns the hallway.
func (s State) Hall() Hall { return s.hall }

// Fits reports whether the state has the dimensions described by p.
func (s State) Fits(p *Params) bool {
	if p == nil || int(s.numRooms) != p.NumRooms || s.hall.Len() != p.HallSize {
		return false
	}
	for _, r := range s.rooms[:s.numRooms] {
		if r.Len() > p.RoomSize {
			return false
		}
	}

	return true
}

// Solved reports whether every room is open and full.
func (s State) Solved(p *Params) bool {
	for _, r := range s.rooms[:s.numRooms] {
		if !r.Open() || r.Settled() != p.RoomSize {
			return false
		}
	}

	return true
}

func (s State) withRoom(r int, room Room) State {
	s.rooms[r] = room
	return s
}

func (s State) withHall(h Hall) State {
	s.hall = h
	return s
}

// Render draws the state as a diagram:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
func (s State) Render(p *Params) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("#", 2*p.NumRooms+5))
	b.WriteString("\n#")
	for i := 0; i < s.hall.Len(); i++ {
		b.WriteByte(tileByte(s.hall.Tile(i)))
	}
	b.WriteString("#\n")

	for ix := p.RoomSize - 1; ix >= 0; ix-- {
		if ix == p.RoomSize-1 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for r := 0; r < p.NumRooms; r++ {
			if r > 0 {
				b.WriteByte('#')
			}
			piece, ok := s.rooms[r].Get(Piece(r), ix)
			if ok {
				b.WriteByte(piece.Letter())
			} else {
				b.WriteByte('.')
			}
		}
		if ix == p.RoomSize-1 {
			b.WriteString("###\n")
		} else {
			b.WriteString("#\n")
		}
	}

	b.WriteString("  ")
	b.WriteString(strings.Repeat("#", 2*p.NumRooms+1))

	return b.String()
}

// String returns a one-line form: the hallway, then every room bottom to top.
func (s State) String() string {
	var b strings.Builder
	for i := 0; i < s.hall.Len(); i++ {
		b.WriteByte(tileByte(s.hall.Tile(i)))
	}
	for r, room := range s.rooms[:s.numRooms] {
		b.WriteByte('|')
		for ix := 0; ix < room.Len(); ix++ {
			piece, _ := room.Get(Piece(r), ix)
			b.WriteByte(piece.Letter())
		}
	}

	return b.String()
}

func tileByte(t Tile) byte {
	if piece, ok := t.Piece(); ok {
		return piece.Letter()
	}

	return '.'
}
