package cubesolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridIsSolved(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, solvedText, g.Snapshot())
}

func TestGridCycleWraps(t *testing.T) {
	g := NewGrid()
	want := []Facelet{Right, Front, Down, Left, Back, Up}
	for _, w := range want {
		got, err := g.Cycle(Up, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
	assert.Equal(t, solvedText, g.Snapshot())
}

func TestGridInvalidCell(t *testing.T) {
	g := NewGrid()
	_, err := g.Cycle(Up, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidCell)
	_, err = g.Cell('X', 0, 0)
	assert.ErrorIs(t, err, ErrInvalidCell)
	assert.ErrorIs(t, g.ResetFace('X'), ErrInvalidCell)
	assert.ErrorIs(t, g.Set(Front, 1, 1, 'Q'), ErrUnknownColor)
}

func TestGridAllowsIllegalArrangements(t *testing.T) {
	g := NewGrid()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			require.NoError(t, g.Set(Front, row, col, Back))
		}
	}
	_, err := NewState(g.Snapshot())
	assert.ErrorIs(t, err, ErrIllegalColorDistribution)

	require.NoError(t, g.ResetFace(Front))
	assert.Equal(t, solvedText, g.Snapshot())
}

func TestGridResetAfterEdits(t *testing.T) {
	g := NewGrid()
	_, _ = g.Cycle(Left, 1, 2)
	_, _ = g.Cycle(Down, 2, 2)
	require.NoError(t, g.ResetCell(Left, 1, 2))
	c, err := g.Cell(Left, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, Left, c)

	g.Reset()
	s, err := NewState(g.Snapshot())
	require.NoError(t, err)
	assert.True(t, s.IsSolved())
}

func TestGridLoad(t *testing.T) {
	raw := scrambled(R, U, FPrime)
	s, err := NewState(raw)
	require.NoError(t, err)

	g := NewGrid()
	g.Load(s)
	assert.Equal(t, raw, g.Snapshot())
}

func TestGridLoadZeroState(t *testing.T) {
	g := NewGrid()
	_, err := g.Cycle(Front, 0, 0)
	require.NoError(t, err)

	g.Load(State{})
	snap := g.Snapshot()
	assert.Equal(t, SolvedState().String(), snap)
	require.NoError(t, CheckSyntax(snap))
}
