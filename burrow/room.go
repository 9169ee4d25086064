package burrow

// Room is one fixed-capacity column of pieces.
//
// A room is either open or closed. An open room holds only pieces of its own
// kind, all resting at the bottom; it accepts more pieces until full. A closed
// room holds Settled() pieces of its own kind at the bottom (they never move
// again) with a stack of Depth() pieces above them, at least one of which
// belongs elsewhere. Only the top of that stack can leave the room, and the
// room opens once the stack is empty.
//
// Room is a value: Pop and Push return a new Room and leave the receiver as is.
type Room struct {
	settled uint8
	depth   uint8
	stack   [MaxRoomSize]Piece // bottom to top; slots at and above depth are zero
}

// RoomFromColumn builds the room of the given kind from its starting column,
// listed bottom to top. The longest bottom run of pieces equal to kind is
// settled; if the run covers the whole column the room is open.
//
// Panics if the column holds more pieces than p.RoomSize.
func RoomFromColumn(kind Piece, column []Piece, p *Params) Room {
	if len(column) > p.RoomSize {
		panic("burrow: column exceeds room size")
	}

	n := 0
	for n < len(column) && column[n] == kind {
		n++
	}

	r := Room{settled: uint8(n)}
	for i, piece := range column[n:] {
		r.stack[i] = piece
	}
	r.depth = uint8(len(column) - n)

	return r
}

// Open reports whether the room holds only pieces of its own kind.
func (r Room) Open() bool { return r.depth == 0 }

// Settled returns the number of own-kind pieces resting at the bottom.
func (r Room) Settled() int { return int(r.settled) }

// Depth returns the number of pieces stacked above the settled ones.
func (r Room) Depth() int { return int(r.depth) }

// Len returns the number of pieces in the room.
func (r Room) Len() int { return int(r.settled) + int(r.depth) }

// Pop removes the topmost piece of a closed room. It returns the piece, the
// number of steps from its slot up to the hallway square outside the room,
// and the room without the piece. ok is false for open rooms.
func (r Room) Pop(p *Params) (piece Piece, dist int, next Room, ok bool) {
	if r.depth == 0 {
		return 0, 0, r, false
	}

	dist = p.RoomSize - r.Len() + 1
	next = r
	next.depth--
	piece = next.stack[next.depth]
	next.stack[next.depth] = 0

	return piece, dist, next, true
}

// Push adds a piece of the room's own kind to an open room. It returns the
// number of steps from the hallway square outside the room down to the new
// piece's slot, and the grown room. ok is false for closed and full rooms.
func (r Room) Push(p *Params) (dist int, next Room, ok bool) {
	if r.depth != 0 || int(r.settled) >= p.RoomSize {
		return 0, r, false
	}

	next = r
	next.settled++

	return p.RoomSize - int(r.settled), next, true
}

// Get returns the piece in slot ix, counted from the bottom, of a room of the
// given kind. ok is false for an empty slot.
func (r Room) Get(kind Piece, ix int) (Piece, bool) {
	switch {
	case ix < 0:
		return 0, false
	case ix < int(r.settled):
		return kind, true
	case ix < r.Len():
		return r.stack[ix-int(r.settled)], true
	default:
		return 0, false
	}
}
