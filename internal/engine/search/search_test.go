package search

import (
	"context"
	"testing"
	"time"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/cubetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scramble builds states with the cubie model so answers are not judged
// by the same facelet turns the search uses.
func scramble(t *testing.T, moves ...cubesolve.Move) string {
	t.Helper()
	raw, err := cubetest.Scramble(moves...)
	require.NoError(t, err)
	return raw
}

func TestSolveFindsShortSolutions(t *testing.T) {
	tests := []struct {
		name  string
		moves []cubesolve.Move
		want  int
	}{
		{"single", []cubesolve.Move{cubesolve.R}, 1},
		{"double", []cubesolve.Move{cubesolve.F2}, 1},
		{"opposite faces", []cubesolve.Move{cubesolve.U, cubesolve.DPrime}, 2},
		{"three", []cubesolve.Move{cubesolve.R, cubesolve.U, cubesolve.FPrime}, 3},
		{"down left back", []cubesolve.Move{cubesolve.D, cubesolve.LPrime, cubesolve.B2}, 3},
	}
	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := scramble(t, tt.moves...)
			out, err := e.Solve(context.Background(), raw)
			require.NoError(t, err)

			moves, err := cubesolve.ParseMoves(out)
			require.NoError(t, err)
			assert.Len(t, moves, tt.want)

			ok, err := cubetest.Solves(raw, moves)
			require.NoError(t, err)
			assert.True(t, ok, "answer %q does not solve", out)
		})
	}
}

func TestSolveSolved(t *testing.T) {
	out, err := New().Solve(context.Background(), cubesolve.SolvedState().String())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSolveBeyondDepth(t *testing.T) {
	e := New(WithMaxDepth(2))
	_, err := e.Solve(context.Background(), scramble(t, cubesolve.R, cubesolve.U, cubesolve.F))
	assert.ErrorIs(t, err, cubesolve.ErrNoSolutionFound)
}

func TestSolveRejectsBadInput(t *testing.T) {
	_, err := New().Solve(context.Background(), "UUU")
	assert.ErrorIs(t, err, cubesolve.ErrMalformedState)
}

func TestSolveHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// T-perm is far beyond depth 6, so the search would run every level.
	start := time.Now()
	_, err := New().Solve(ctx, scramble(t, cubesolve.TPerm...))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWithMaxDepth(t *testing.T) {
	assert.Equal(t, DefaultMaxDepth, New().MaxDepth())
	assert.Equal(t, 4, New(WithMaxDepth(4)).MaxDepth())
	assert.Equal(t, DefaultMaxDepth, New(WithMaxDepth(0)).MaxDepth())
	assert.Equal(t, "search", New().Name())
}

func TestGatewayWithSearchEngine(t *testing.T) {
	gw := cubesolve.NewGateway(New(WithMaxDepth(4)))
	sol, err := gw.SolveText(context.Background(), scramble(t, cubesolve.SexyMove...))
	require.NoError(t, err)
	assert.Equal(t, "U R U' R'", sol.String())
}
