package cubesolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalTextRoundTrip(t *testing.T) {
	sequences := [][]Move{
		{},
		{R},
		TPerm,
		AllMoves[:],
	}
	for _, seq := range sequences {
		text := CanonicalText(seq)
		back, err := ParseMoves(text)
		require.NoError(t, err, text)
		assert.Equal(t, len(seq), len(back), text)
		if len(seq) > 0 {
			assert.Equal(t, seq, back, text)
		}
	}
}

func TestCanonicalText(t *testing.T) {
	assert.Equal(t, "R U R' U'", CanonicalText(SexyMove))
	assert.Equal(t, SolvedText, CanonicalText(nil))
}

func TestDisplayText(t *testing.T) {
	moves := []Move{R, U2, FPrime}

	assert.Equal(t, "1. R\n2. U2\n3. F'", DisplayText(moves, StyleNumbered))
	assert.Equal(t, "R → U2 → F'", DisplayText(moves, StyleArrow))
	assert.Equal(t, "R U2 F'", DisplayText(moves, StyleCanonical))

	for _, style := range []DisplayStyle{StyleNumbered, StyleArrow, StyleCanonical} {
		assert.Equal(t, AlreadySolvedMessage, DisplayText(nil, style), style.String())
	}
}

func TestParseDisplayStyle(t *testing.T) {
	tests := map[string]DisplayStyle{
		"":          StyleNumbered,
		"numbered":  StyleNumbered,
		"Arrow":     StyleArrow,
		"canonical": StyleCanonical,
		"plain":     StyleCanonical,
	}
	for in, want := range tests {
		got, err := ParseDisplayStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDisplayStyle("fancy")
	assert.Error(t, err)
}
