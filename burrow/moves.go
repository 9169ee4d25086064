package burrow

// emitFunc receives generated moves; returning true stops generation.
type emitFunc func(Move) bool

// Moves lists the moves the search needs to consider from s.
//
// Generation commits to the first move that sends a piece straight into its
// own room, checked in this order:
//
//  1. a hallway piece whose path home is clear and whose room accepts it;
//  2. the top piece of a room that can walk straight into its own room.
//
// No other move can beat such a move, so when one exists it is the only move
// returned. Otherwise every way of parking the top piece of a closed room on a
// reachable hallway slot is returned.
func (s State) Moves(p *Params) []Move {
	var out []Move
	first := func(m Move) bool {
		out = append(out, m)
		return true
	}
	if s.hallToRoom(p, first) || s.roomToRoom(p, first) {
		return out
	}

	s.roomToHall(p, func(m Move) bool {
		out = append(out, m)
		return false
	})

	return out
}

// AllMoves lists every legal single-piece move from s without pruning.
// Costs and deltas are the same as those reported by Moves.
func (s State) AllMoves(p *Params) []Move {
	var out []Move
	all := func(m Move) bool {
		out = append(out, m)
		return false
	}
	s.hallToRoom(p, all)
	s.roomToRoom(p, all)
	s.roomToHall(p, all)

	return out
}

func (s State) hallToRoom(p *Params, emit emitFunc) bool {
	for hix := 0; hix < s.hall.Len(); hix++ {
		piece, ok := s.hall.Tile(hix).Piece()
		if !ok {
			continue
		}
		home := s.hall.RoomToHallIndex(int(piece))
		if !s.hall.Clear(hix, home) {
			continue
		}
		pushDist, dst, ok := s.rooms[piece].Push(p)
		if !ok {
			continue
		}

		next := s.withRoom(int(piece), dst).withHall(s.hall.Set(hix, Empty))
		cost := p.Coeff(piece) * int64(absDiff(hix, home)+pushDist)
		if emit(Move{Next: next, Cost: cost, Kind: HallToRoom}) {
			return true
		}
	}

	return false
}

func (s State) roomToRoom(p *Params, emit emitFunc) bool {
	for r := 0; r < int(s.numRooms); r++ {
		piece, popDist, src, ok := s.rooms[r].Pop(p)
		if !ok || int(piece) == r {
			continue
		}
		pushDist, dst, ok := s.rooms[piece].Push(p)
		if !ok {
			continue
		}
		from := s.hall.RoomToHallIndex(r)
		home := s.hall.RoomToHallIndex(int(piece))
		if !s.hall.Clear(from, home) {
			continue
		}

		next := s.withRoom(r, src).withRoom(int(piece), dst)
		cost := p.Coeff(piece) * int64(popDist+absDiff(from, home)+pushDist)
		if emit(Move{Next: next, Cost: cost, Kind: RoomToRoom}) {
			return true
		}
	}

	return false
}

func (s State) roomToHall(p *Params, emit emitFunc) bool {
	for r := 0; r < int(s.numRooms); r++ {
		piece, popDist, src, ok := s.rooms[r].Pop(p)
		if !ok {
			continue
		}
		from := s.hall.RoomToHallIndex(r)
		home := s.hall.RoomToHallIndex(int(piece))
		coeff := p.Coeff(piece)
		rest := s.withRoom(r, src)

		// Estimate priced the piece as walking `away` hallway steps after
		// leaving the room: to its own entrance, or out and back in when it
		// already sits in its own room.
		away := absDiff(home, from)
		if int(piece) == r {
			away = 2
		}

		park := func(hix int) bool {
			dist := absDiff(hix, from)
			return emit(Move{
				Next:  rest.withHall(s.hall.Set(hix, TileOf(piece))),
				Cost:  coeff * int64(popDist+dist),
				Delta: coeff * int64(dist+absDiff(hix, home)-away),
				Kind:  RoomToHall,
			})
		}

		for hix := from - 1; hix >= 0 && s.hall.Tile(hix) == Empty; hix-- {
			if !s.hall.IsRoomAligned(hix) && park(hix) {
				return true
			}
		}
		for hix := from + 1; hix < s.hall.Len() && s.hall.Tile(hix) == Empty; hix++ {
			if !s.hall.IsRoomAligned(hix) && park(hix) {
				return true
			}
		}
	}

	return false
}
