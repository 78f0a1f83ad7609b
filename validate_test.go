package cubesolve

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		pos  int
	}{
		{"empty", "", -1},
		{"too short", solvedText[:53], -1},
		{"too long", solvedText + "U", -1},
		{"lower case", strings.ToLower(solvedText), 0},
		{"unknown letter", mutate(solvedText, func(b []byte) { b[53] = 'X' }), 53},
		{"digit", mutate(solvedText, func(b []byte) { b[20] = '1' }), 20},
		{"multibyte", "É" + solvedText[1:], 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSyntax(tt.raw)
			var me *MalformedStateError
			require.True(t, errors.As(err, &me), "got %v", err)
			assert.Equal(t, tt.pos, me.Position)
			assert.ErrorIs(t, err, ErrMalformedState)
		})
	}
}

func TestCheckCountsDistribution(t *testing.T) {
	// Two Front stickers become Up: eleven U, seven F.
	raw := mutate(solvedText, func(b []byte) {
		b[18] = 'U'
		b[19] = 'U'
	})
	err := Validate(raw)

	var ce *IllegalColorDistributionError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, Up, ce.Symbol)
	assert.Equal(t, 11, ce.Count)
	assert.ErrorIs(t, err, ErrIllegalColorDistribution)
}

func TestCheckCountsBeforeCenters(t *testing.T) {
	// Bad counts and a bad center: counts are reported.
	raw := mutate(solvedText, func(b []byte) { b[4] = 'R' })
	err := Validate(raw)
	assert.ErrorIs(t, err, ErrIllegalColorDistribution)
}

func TestCheckCountsCenterMismatch(t *testing.T) {
	// Swap the U and R centers: counts stay legal.
	raw := mutate(solvedText, func(b []byte) { b[4], b[13] = b[13], b[4] })
	err := Validate(raw)

	var cm *CenterMismatchError
	require.True(t, errors.As(err, &cm), "got %v", err)
	assert.Equal(t, Up, cm.Face)
	assert.Equal(t, Right, cm.Found)
	assert.ErrorIs(t, err, ErrCenterMismatch)
}

func TestSingleMovesAreSolvable(t *testing.T) {
	for _, m := range AllMoves {
		s, err := ValidateAll(scrambled(m))
		require.NoError(t, err, "after %s", m)
		assert.False(t, s.IsSolved())
	}
}

func TestScramblesAreSolvable(t *testing.T) {
	scrambles := [][]Move{
		TPerm,
		SexyMove,
		{R, U2, FPrime, L, D, BPrime, R2, U, F2, DPrime},
		{B, L2, DPrime, F, UPrime, R, B2, L, F2, D2, UPrime, RPrime},
	}
	for _, seq := range scrambles {
		_, err := ValidateAll(scrambled(seq...))
		assert.NoError(t, err, CanonicalText(seq))
	}
}

func TestKnownScrambleIsSolvable(t *testing.T) {
	_, err := ValidateAll("DRLUUBFBRBLURRLRUBLRDDFDLFUFUFFDBRDUBRUFLLFDDBFLUBLRBD")
	assert.NoError(t, err)
}

func TestCheckSolvableDetectsDefects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Invariant
	}{
		{
			name: "twisted corner",
			raw:  mutate(solvedText, func(b []byte) { b[8], b[9], b[20] = b[20], b[8], b[9] }),
			want: InvariantCornerOrientation,
		},
		{
			name: "flipped edge",
			raw:  mutate(solvedText, func(b []byte) { b[5], b[10] = b[10], b[5] }),
			want: InvariantEdgeOrientation,
		},
		{
			name: "two edges swapped",
			raw: mutate(solvedText, func(b []byte) {
				b[5], b[7] = b[7], b[5]
				b[10], b[19] = b[19], b[10]
			}),
			want: InvariantPermutationParity,
		},
		{
			name: "corner sticker from an edge",
			raw:  mutate(solvedText, func(b []byte) { b[9], b[19] = b[19], b[9] }),
			want: InvariantCornerPiece,
		},
		{
			name: "edge with two U stickers",
			raw:  mutate(solvedText, func(b []byte) { b[5], b[19] = b[19], b[5] }),
			want: InvariantEdgePiece,
		},
		{
			name: "twisted corner after scramble",
			raw:  mutate(scrambled(R, U, FPrime), func(b []byte) { b[33], b[53], b[42] = b[42], b[33], b[53] }),
			want: InvariantCornerOrientation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewState(tt.raw)
			require.NoError(t, err, "defect must survive the first two tiers")

			err = CheckSolvable(s)
			var ue *UnsolvableError
			require.True(t, errors.As(err, &ue), "got %v", err)
			assert.Equal(t, tt.want, ue.Invariant)
			assert.ErrorIs(t, err, ErrUnsolvable)
		})
	}
}

func TestCubiesOfSolvedState(t *testing.T) {
	c, err := SolvedState().Cubies()
	require.NoError(t, err)
	for i := range c.CornerPerm {
		assert.Equal(t, Corner(i), c.CornerPerm[i])
		assert.Zero(t, c.CornerOri[i])
	}
	for i := range c.EdgePerm {
		assert.Equal(t, Edge(i), c.EdgePerm[i])
		assert.Zero(t, c.EdgeOri[i])
	}
}

func TestParity(t *testing.T) {
	assert.Equal(t, 0, parity([]int{0, 1, 2, 3}))
	assert.Equal(t, 1, parity([]int{1, 0, 2, 3}))
	assert.Equal(t, 0, parity([]int{1, 2, 0, 3}))
}
