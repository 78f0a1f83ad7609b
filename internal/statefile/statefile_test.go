package statefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolve"
)

const solvedText = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestDecodeSymbols(t *testing.T) {
	doc := `
up    = "UUU UUU UUU"
right = "RRRRRRRRR"
front = "fff fff fff"
down  = "DDD DDD DDD"
left  = "LLL LLL LLL"
back  = "BBB BBB BBB"
`
	raw, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, solvedText, raw)
}

func TestDecodeColorNamesAndLetters(t *testing.T) {
	doc := `
U = "white white white white white white white white white"
R = "red red red red red red red red red"
F = "green Green GREEN green green green green green green"
D = "yellow yellow yellow yellow yellow yellow yellow yellow yellow"
L = "orange orange orange orange orange orange orange orange orange"
B = "blue blue blue blue blue blue blue blue B"
`
	raw, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, solvedText, raw)
}

func TestDecodeErrors(t *testing.T) {
	full := "right = \"RRRRRRRRR\"\nfront = \"FFFFFFFFF\"\ndown = \"DDDDDDDDD\"\nleft = \"LLLLLLLLL\"\nback = \"BBBBBBBBB\"\n"
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"missing face", full, ErrMissingFace},
		{"unknown key", "up = \"UUUUUUUUU\"\ntop = \"x\"\n" + full, ErrUnknownKey},
		{"duplicate", "up = \"UUUUUUUUU\"\nU = \"UUUUUUUUU\"\n" + full, ErrDuplicate},
		{"short face", "up = \"UUUUUUUU\"\n" + full, ErrFaceLength},
		{"bad color", "up = \"white white white white white white white white whte\"\n" + full, cubesolve.ErrUnknownColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeSuggestsColor(t *testing.T) {
	doc := "up = \"white white white white white white white white whte\"\n" +
		"right = \"RRRRRRRRR\"\nfront = \"FFFFFFFFF\"\ndown = \"DDDDDDDDD\"\nleft = \"LLLLLLLLL\"\nback = \"BBBBBBBBB\"\n"
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "white"`)
	assert.Contains(t, err.Error(), "sticker 9")
}

func TestDecodeInvalidTOML(t *testing.T) {
	_, err := Decode(strings.NewReader("up = "))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	c := cubesolve.NewCube()
	c.ApplyMoves([]cubesolve.Move{cubesolve.R, cubesolve.U2, cubesolve.FPrime})
	s, err := cubesolve.NewState(c.FaceletString())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	assert.Contains(t, buf.String(), "up = ")

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	raw, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.String(), raw)
}
