// Package burrow models a sorting puzzle in which typed pieces move between
// fixed-capacity rooms and a shared hallway, and provides the move generator
// and heuristic used to solve it with an informed best-first search.
//
// Model:
//
//	#############
//	#...........#   hallway: 2*rooms+3 slots, slot 2*r+2 sits outside room r
//	###B#C#B#D###
//	  #A#D#C#A#     rooms: one per piece kind, listed left to right
//	  #########
//
//   - Piece kind k belongs in room k. Moving kind k one step costs
//     base^k (base 10 by default), so heavier kinds dominate the total.
//   - A piece may leave a room only from the top, may stop in the hallway
//     only on a slot that is not outside a room, never walks through another
//     piece, and may enter only its own room, and only once that room holds
//     nothing but its own kind.
//
// State, Room and Hall are comparable values; every move produces a new State
// and leaves the old one untouched, so states can be used as map keys and
// shared freely between search frontier entries.
//
// Moves applies two pruning rules: if any piece can walk straight into its
// own room (from the hallway first, then from another room), that single
// move is the only one returned. AllMoves returns every legal move and exists
// for verification.
//
// Estimate is an admissible, consistent lower bound on the remaining cost,
// and every Move carries the exact change of the total estimate so a search
// can update its frontier keys without recomputing Estimate.
//
// Errors (sentinel):
//
//	– ErrRoomCount, ErrRoomSize, ErrCostOverflow from NewParams.
//	– ErrColumnCount, ErrColumnTooTall, ErrPieceRange from NewState.
//	– ErrNoColumns from NewProblem.
//
// Index and size contract violations (hallway index out of range, a column
// taller than its room passed to RoomFromColumn) panic.
package burrow
