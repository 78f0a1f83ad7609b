package cubesolve

import (
	"strings"
)

// State is an immutable 54-facelet description of a cube.
//
// Facelets are stored as six consecutive 9-facelet blocks in Faces order
// (U, R, F, D, L, B). Each block is a row-major 3x3 grid:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// A State can only be built by NewState, so every State in existence has
// passed the syntax and count tiers. Whether it is actually solvable is a
// separate question answered by CheckSolvable.
//
// The zero State is not a cube.
type State struct {
	facelets [FaceletCount]Facelet
}

// NewState validates raw against the syntax and count tiers and returns
// the corresponding State. raw is taken as is; front-ends should pass it
// through Normalize first.
func NewState(raw string) (State, error) {
	if err := Validate(raw); err != nil {
		return State{}, err
	}
	var s State
	for i := 0; i < FaceletCount; i++ {
		s.facelets[i] = Facelet(raw[i])
	}
	return s, nil
}

// Normalize prepares user-entered text for validation: all whitespace is
// removed and letters are upper-cased.
func Normalize(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// SolvedState returns the canonical solved state.
func SolvedState() State {
	var s State
	for i, f := range Faces {
		for j := 0; j < FaceletsPerFace; j++ {
			s.facelets[i*FaceletsPerFace+j] = f
		}
	}
	return s
}

// At returns the facelet at position i (0..53).
func (s State) At(i int) Facelet {
	return s.facelets[i]
}

// String returns the 54-character facelet text.
func (s State) String() string {
	b := make([]byte, FaceletCount)
	for i, f := range s.facelets {
		b[i] = byte(f)
	}
	return string(b)
}

// Face returns the 3x3 grid of the given face. An invalid face yields a
// zero grid.
func (s State) Face(face Facelet) [3][3]Facelet {
	var g [3][3]Facelet
	fi := face.Index()
	if fi < 0 {
		return g
	}
	for i := 0; i < FaceletsPerFace; i++ {
		g[i/3][i%3] = s.facelets[fi*FaceletsPerFace+i]
	}
	return g
}

// Count returns how many stickers carry the symbol f.
func (s State) Count(f Facelet) int {
	n := 0
	for _, x := range s.facelets {
		if x == f {
			n++
		}
	}
	return n
}

// Corners returns the stickers of each corner position, in Corner order.
// Each group starts with the U or D sticker and proceeds clockwise.
func (s State) Corners() [8][3]Facelet {
	var out [8][3]Facelet
	for i, pos := range cornerFacelets {
		for j, idx := range pos {
			out[i][j] = s.facelets[idx]
		}
	}
	return out
}

// Edges returns the stickers of each edge position, in Edge order.
func (s State) Edges() [12][2]Facelet {
	var out [12][2]Facelet
	for i, pos := range edgeFacelets {
		for j, idx := range pos {
			out[i][j] = s.facelets[idx]
		}
	}
	return out
}

// IsSolved returns true if every face shows a single color.
func (s State) IsSolved() bool {
	return s == SolvedState()
}

// Net returns the state unfolded as a cross, U on top, L F R B across and
// D below.
func (s State) Net() string {
	c := CubeFromState(s)
	return c.String()
}
