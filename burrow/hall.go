package burrow

import "fmt"

// Hall is the one-dimensional corridor connecting all room entrances.
// Slot 2*r+2 is the square right outside room r; pieces may pass through
// those squares but never stop on them.
//
// Hall is a value: Set returns a modified copy.
type Hall struct {
	size  uint8
	tiles [MaxHallSize]Tile
}

// NewHall returns an empty hallway of the given length.
// Panics if size is outside 0..MaxHallSize.
func NewHall(size int) Hall {
	if size < 0 || size > MaxHallSize {
		panic(fmt.Sprintf("burrow: hall size %d out of range", size))
	}

	return Hall{size: uint8(size)}
}

// Len returns the number of slots.
func (h Hall) Len() int { return int(h.size) }

// Tile returns the content of slot ix. Panics if ix is out of range.
func (h Hall) Tile(ix int) Tile {
	h.check(ix)
	return h.tiles[ix]
}

// Set returns a copy of the hallway with slot ix set to t.
// Panics if ix is out of range.
func (h Hall) Set(ix int, t Tile) Hall {
	h.check(ix)
	h.tiles[ix] = t

	return h
}

// RoomToHallIndex returns the slot right outside room r.
func (h Hall) RoomToHallIndex(r int) int { return 2*r + 2 }

// IsRoomAligned reports whether slot ix is the square outside some room.
func (h Hall) IsRoomAligned(ix int) bool {
	return ix >= 2 && ix <= int(h.size)-2 && ix%2 == 0
}

// Clear reports whether every slot strictly between a and b is empty.
func (h Hall) Clear(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	for i := a + 1; i < b; i++ {
		if h.Tile(i) != Empty {
			return false
		}
	}

	return true
}

func (h Hall) check(ix int) {
	if ix < 0 || ix >= int(h.size) {
		panic(fmt.Sprintf("burrow: hall index %d out of range [0,%d)", ix, h.size))
	}
}
