// Package statefile reads and writes cube states as TOML, one key per
// face:
//
//	up    = "UUU UUU UUU"
//	right = "red red red red red red red red red"
//	front = "FFFFFFFFF"
//	...
//
// Keys are the lower-case face names or the face letters (U R F D L B).
// A value is either 9 symbols, optionally grouped by row, or 9
// whitespace-separated colors accepted by cubesolve.ParseColor.
package statefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/SeamusWaldron/cubesolve"
)

var (
	ErrUnknownKey  = errors.New("statefile: unknown key")
	ErrMissingFace = errors.New("statefile: missing face")
	ErrDuplicate   = errors.New("statefile: face given twice")
	ErrFaceLength  = errors.New("statefile: face needs 9 stickers")
)

type document struct {
	Up    *string `toml:"up"`
	Right *string `toml:"right"`
	Front *string `toml:"front"`
	Down  *string `toml:"down"`
	Left  *string `toml:"left"`
	Back  *string `toml:"back"`

	U *string `toml:"U"`
	R *string `toml:"R"`
	F *string `toml:"F"`
	D *string `toml:"D"`
	L *string `toml:"L"`
	B *string `toml:"B"`
}

// faces pairs the long and short key of each face in canonical order.
func (d *document) faces() [6][2]*string {
	return [6][2]*string{
		{d.Up, d.U},
		{d.Right, d.R},
		{d.Front, d.F},
		{d.Down, d.D},
		{d.Left, d.L},
		{d.Back, d.B},
	}
}

// Decode reads a state file and returns the 54-facelet text. The text has
// not been validated; pass it to cubesolve.NewState.
func Decode(r io.Reader) (string, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return "", fmt.Errorf("statefile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	var b strings.Builder
	b.Grow(cubesolve.FaceletCount)
	for i, pair := range doc.faces() {
		face := cubesolve.Faces[i]
		long, short := pair[0], pair[1]
		if long != nil && short != nil {
			return "", fmt.Errorf("%w: %s", ErrDuplicate, strings.ToLower(face.Name()))
		}
		value := long
		if value == nil {
			value = short
		}
		if value == nil {
			return "", fmt.Errorf("%w: %s", ErrMissingFace, strings.ToLower(face.Name()))
		}

		stickers, err := parseFace(*value)
		if err != nil {
			return "", fmt.Errorf("statefile: %s: %w", strings.ToLower(face.Name()), err)
		}
		for _, f := range stickers {
			b.WriteByte(byte(f))
		}
	}
	return b.String(), nil
}

// DecodeFile reads the state file at path.
func DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Decode(f)
}

// parseFace reads one face value.
func parseFace(value string) ([]cubesolve.Facelet, error) {
	tokens := strings.Fields(value)

	if joined := strings.ToUpper(strings.Join(tokens, "")); allSymbols(joined) {
		if len(joined) != cubesolve.FaceletsPerFace {
			return nil, fmt.Errorf("%w, got %d", ErrFaceLength, len(joined))
		}
		out := make([]cubesolve.Facelet, len(joined))
		for i := 0; i < len(joined); i++ {
			out[i] = cubesolve.Facelet(joined[i])
		}
		return out, nil
	}

	if len(tokens) != cubesolve.FaceletsPerFace {
		return nil, fmt.Errorf("%w, got %d", ErrFaceLength, len(tokens))
	}
	out := make([]cubesolve.Facelet, len(tokens))
	for i, tok := range tokens {
		f, err := cubesolve.ParseColor(tok)
		if err != nil {
			return nil, fmt.Errorf("sticker %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func allSymbols(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !cubesolve.Facelet(s[i]).Valid() {
			return false
		}
	}
	return true
}

// encoded is the on-disk layout written by Encode.
type encoded struct {
	Up    string `toml:"up"`
	Right string `toml:"right"`
	Front string `toml:"front"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Back  string `toml:"back"`
}

// Encode writes s with each face grouped by row ("UUF UUF UUF").
func Encode(w io.Writer, s cubesolve.State) error {
	var rows [6]string
	for i, face := range cubesolve.Faces {
		grid := s.Face(face)
		parts := make([]string, 3)
		for r, row := range grid {
			parts[r] = string([]byte{byte(row[0]), byte(row[1]), byte(row[2])})
		}
		rows[i] = strings.Join(parts, " ")
	}
	doc := encoded{
		Up:    rows[0],
		Right: rows[1],
		Front: rows[2],
		Down:  rows[3],
		Left:  rows[4],
		Back:  rows[5],
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("statefile: %w", err)
	}
	return nil
}
