// Package burrow defines core types, parameters and sentinel errors
// for the room/hallway sorting model.
package burrow

import (
	"errors"
)

// Compile-time bounds on the runtime dimensions. Every container inside a
// State is a fixed-size array sized by these bounds, which keeps State a
// comparable value usable directly as a map key.
const (
	// MaxRooms is the largest supported number of rooms (and piece kinds).
	MaxRooms = 8

	// MaxRoomSize is the largest supported room capacity.
	MaxRoomSize = 8

	// MaxHallSize is the hallway length for MaxRooms rooms.
	MaxHallSize = 2*MaxRooms + 3
)

// Sentinel errors returned by the burrow package.
var (
	// ErrRoomCount indicates a number of rooms outside 1..MaxRooms.
	ErrRoomCount = errors.New("burrow: number of rooms out of range")

	// ErrRoomSize indicates a room capacity outside 1..MaxRoomSize.
	ErrRoomSize = errors.New("burrow: room size out of range")

	// ErrCostOverflow indicates that the per-kind cost coefficients are too
	// large for int64 cost arithmetic on a burrow of the requested size.
	ErrCostOverflow = errors.New("burrow: cost coefficients overflow int64")

	// ErrColumnCount indicates that the number of columns does not match
	// the number of rooms.
	ErrColumnCount = errors.New("burrow: column count does not match room count")

	// ErrColumnTooTall indicates a column holding more pieces than a room can.
	ErrColumnTooTall = errors.New("burrow: column exceeds room size")

	// ErrPieceRange indicates a piece kind outside 0..NumRooms-1.
	ErrPieceRange = errors.New("burrow: piece kind out of range")

	// ErrNoColumns indicates an empty column list passed to NewProblem.
	ErrNoColumns = errors.New("burrow: no columns")
)

// Piece is a piece kind. Kind k belongs in room k.
type Piece uint8

// Letter returns the diagram letter of the piece ('A' for kind 0).
func (p Piece) Letter() byte { return 'A' + byte(p) }

// Tile is the content of one hallway slot: zero is empty, k+1 holds piece k.
type Tile uint8

// Empty is the empty hallway tile.
const Empty Tile = 0

// TileOf returns the tile holding piece p.
func TileOf(p Piece) Tile { return Tile(p) + 1 }

// Piece returns the piece on the tile and whether the tile is occupied.
func (t Tile) Piece() (Piece, bool) {
	if t == Empty {
		return 0, false
	}

	return Piece(t - 1), true
}

// MoveKind tells which of the three move shapes produced a Move.
type MoveKind uint8

const (
	// HallToRoom moves a parked piece from the hallway into its room.
	HallToRoom MoveKind = iota

	// RoomToRoom moves the top piece of a room straight into its own room.
	RoomToRoom

	// RoomToHall parks the top piece of a room in the hallway.
	RoomToHall
)

// String returns a short name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case HallToRoom:
		return "hall->room"
	case RoomToRoom:
		return "room->room"
	case RoomToHall:
		return "room->hall"
	default:
		return "unknown"
	}
}

// Move is one legal single-piece move.
//
// Cost is the exact cost of the move. Delta is the change of the total cost
// estimate (cost so far plus Estimate) caused by the move:
//
//	Delta == Cost + Next.Estimate(p) - State.Estimate(p)
//
// Delta is never negative, which makes Estimate a consistent heuristic.
type Move struct {
	Next  State
	Cost  int64
	Delta int64
	Kind  MoveKind
}
