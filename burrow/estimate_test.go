package burrow_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/search"
)

func TestEstimate_Sample(t *testing.T) {
	prob, err := burrow.NewProblem(sampleCols)
	require.NoError(t, err)

	// Optimal cost is 12521; the estimate undershoots by 22.
	assert.Equal(t, int64(12499), prob.Start.Estimate(prob.Params))
}

func TestEstimate_Components(t *testing.T) {
	p := mustParams(t, 2, 2)

	// Both rooms empty: 1+2 steps into each, at each room's own coefficient.
	empty := mustState(t, p, [][]burrow.Piece{nil, nil})
	assert.Equal(t, int64(3*1+3*10), empty.Estimate(p))

	// A lone B at the bottom of room A: two steps out, two along, and
	// both rooms still need 1+2.
	s := mustState(t, p, [][]burrow.Piece{{B}, nil})
	assert.Equal(t, int64(10*(2+2)+3*1+3*10), s.Estimate(p))

	// An A above a foreign piece in its own room: out, aside and back.
	s = mustState(t, p, [][]burrow.Piece{{B, A}, {B}})
	assert.Equal(t, int64(10*(2+2)+1*(1+2)+3*1+1*10), s.Estimate(p))
}

// Estimate never exceeds the optimal remaining cost, and the pruned A*
// agrees with an unpruned uniform-cost search on every reachable state.
func TestEstimate_Admissible(t *testing.T) {
	p := mustParams(t, 2, 2)
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	for _, cols := range smallStarts {
		for _, s := range reachable(p, mustState(t, p, cols)) {
			oracle, oerr := search.Solve(p, s,
				search.WithoutPruning(), search.WithoutHeuristic(), search.WithLogger(quiet))
			fast, ferr := search.Solve(p, s, search.WithLogger(quiet))

			if errors.Is(oerr, search.ErrNoSolution) {
				require.ErrorIs(t, ferr, search.ErrNoSolution, "state %s", s)
				continue
			}
			require.NoError(t, oerr)
			require.NoError(t, ferr)
			require.LessOrEqual(t, s.Estimate(p), oracle.Cost, "state %s", s)
			require.Equal(t, oracle.Cost, fast.Cost, "state %s", s)
		}
	}
}
