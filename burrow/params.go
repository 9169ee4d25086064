package burrow

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultCostBase is the default per-kind cost base: moving kind k one step
// costs DefaultCostBase^k.
const DefaultCostBase = 10

// Params holds the runtime dimensions of a burrow and the per-kind cost
// coefficients. A Params value is read-only once built and may be shared.
type Params struct {
	NumRooms int     // number of rooms and piece kinds
	RoomSize int     // capacity of every room
	HallSize int     // hallway length, 2*NumRooms + 3
	Coeffs   []int64 // Coeffs[k] is the cost of one step of kind k
}

// Options configures NewParams.
type Options struct {
	CostBase int64 // base of the per-kind coefficients
}

// Option represents a functional option for NewParams.
type Option func(*Options)

// WithCostBase sets the base of the per-kind cost coefficients.
// NewParams panics when given this option with base < 1.
func WithCostBase(base int64) Option {
	return func(o *Options) {
		if base < 1 {
			panic("burrow: cost base must be positive")
		}
		o.CostBase = base
	}
}

// DefaultOptions returns the default Params options (CostBase = 10).
func DefaultOptions() Options {
	return Options{CostBase: DefaultCostBase}
}

// NewParams builds Params for numRooms rooms of capacity roomSize.
//
// Errors:
//   - ErrRoomCount if numRooms is outside 1..MaxRooms.
//   - ErrRoomSize if roomSize is outside 1..MaxRoomSize.
//   - ErrCostOverflow if the largest coefficient could overflow a total cost.
func NewParams(numRooms, roomSize int, opts ...Option) (*Params, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if numRooms < 1 || numRooms > MaxRooms {
		return nil, fmt.Errorf("%w: %d", ErrRoomCount, numRooms)
	}
	if roomSize < 1 || roomSize > MaxRoomSize {
		return nil, fmt.Errorf("%w: %d", ErrRoomSize, roomSize)
	}

	hallSize := 2*numRooms + 3
	// A piece never walks more than out of a room, along the hall twice and
	// into a room, and every piece moves at most twice.
	perPiece := int64(2 * (2*roomSize + 2*hallSize))
	budget := math.MaxInt64 / (perPiece * int64(numRooms*roomSize))

	coeffs := make([]int64, numRooms)
	c := int64(1)
	for k := range coeffs {
		if c > budget {
			return nil, fmt.Errorf("%w: base %d, kind %d", ErrCostOverflow, cfg.CostBase, k)
		}
		coeffs[k] = c
		if k+1 < numRooms {
			if c > math.MaxInt64/cfg.CostBase {
				return nil, fmt.Errorf("%w: base %d, kind %d", ErrCostOverflow, cfg.CostBase, k+1)
			}
			c *= cfg.CostBase
		}
	}

	return &Params{
		NumRooms: numRooms,
		RoomSize: roomSize,
		HallSize: hallSize,
		Coeffs:   coeffs,
	}, nil
}

// Coeff returns the cost of one step of piece kind p.
func (p *Params) Coeff(piece Piece) int64 { return p.Coeffs[piece] }

// triangular returns 1 + 2 + ... + k.
func triangular(k int) int64 { return int64(k) * int64(k+1) / 2 }

func absDiff[T constraints.Integer](x, y T) T {
	if x > y {
		return x - y
	}

	return y - x
}
