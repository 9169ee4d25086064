package burrow

// Estimate returns a lower bound on the cost of solving s.
//
// The bound sums, independently:
//
//   - for every stacked piece of a closed room, the walk from its slot up to
//     the hallway plus either the hallway walk to its own entrance or, when it
//     already sits in its own room, two steps out of the way and back;
//   - for every room, the walk down into each slot above its settled pieces
//     (1 + 2 + ... + free), at the room's own kind coefficient;
//   - for every hallway piece, the hallway walk to its own entrance.
//
// The bound is consistent: every Move reports Delta >= 0, where
// Delta == Cost + Estimate(Next) - Estimate(s).
func (s State) Estimate(p *Params) int64 {
	var est int64

	for r, room := range s.rooms[:s.numRooms] {
		from := s.hall.RoomToHallIndex(r)
		for i := 0; i < room.Depth(); i++ {
			piece := room.stack[i]
			out := p.RoomSize - room.Settled() - i
			walk := 2
			if int(piece) != r {
				walk = absDiff(s.hall.RoomToHallIndex(int(piece)), from)
			}
			est += p.Coeff(piece) * int64(out+walk)
		}
		est += p.Coeff(Piece(r)) * triangular(p.RoomSize-room.Settled())
	}

	for hix := 0; hix < s.hall.Len(); hix++ {
		if piece, ok := s.hall.Tile(hix).Piece(); ok {
			est += p.Coeff(piece) * int64(absDiff(s.hall.RoomToHallIndex(int(piece)), hix))
		}
	}

	return est
}
