package cubesolve

import "strings"

// Cube is a mutable facelet-level cube used to apply moves.
// Facelets[face][position] holds the sticker, faces in Faces order and
// positions row-major as in State:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face and never moves.
type Cube struct {
	Facelets [6][9]Facelet
}

// Face indices into Cube.Facelets.
const (
	iU = iota
	iR
	iF
	iD
	iL
	iB
)

// strip is three stickers of one face that travel together during a turn.
type strip struct {
	face int
	idx  [3]int
}

// Adjacent strips around each face, listed in the order a clockwise turn
// carries them: strips[0] moves to strips[1], strips[1] to strips[2], and
// so on around.
var adjacentStrips = [6][4]strip{
	iU: {{iF, [3]int{0, 1, 2}}, {iL, [3]int{0, 1, 2}}, {iB, [3]int{0, 1, 2}}, {iR, [3]int{0, 1, 2}}},
	iR: {{iU, [3]int{2, 5, 8}}, {iB, [3]int{6, 3, 0}}, {iD, [3]int{2, 5, 8}}, {iF, [3]int{2, 5, 8}}},
	iF: {{iU, [3]int{6, 7, 8}}, {iR, [3]int{0, 3, 6}}, {iD, [3]int{2, 1, 0}}, {iL, [3]int{8, 5, 2}}},
	iD: {{iF, [3]int{6, 7, 8}}, {iR, [3]int{6, 7, 8}}, {iB, [3]int{6, 7, 8}}, {iL, [3]int{6, 7, 8}}},
	iL: {{iU, [3]int{0, 3, 6}}, {iF, [3]int{0, 3, 6}}, {iD, [3]int{0, 3, 6}}, {iB, [3]int{8, 5, 2}}},
	iB: {{iU, [3]int{2, 1, 0}}, {iL, [3]int{0, 3, 6}}, {iD, [3]int{6, 7, 8}}, {iR, [3]int{8, 5, 2}}},
}

// NewCube creates a solved cube.
func NewCube() *Cube {
	c := &Cube{}
	for i, f := range Faces {
		for j := 0; j < FaceletsPerFace; j++ {
			c.Facelets[i][j] = f
		}
	}
	return c
}

// CubeFromState creates a cube showing the stickers of s.
func CubeFromState(s State) *Cube {
	c := &Cube{}
	for i := 0; i < FaceletCount; i++ {
		c.Facelets[i/FaceletsPerFace][i%FaceletsPerFace] = s.facelets[i]
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every face shows its own symbol.
func (c *Cube) IsSolved() bool {
	for i, f := range Faces {
		for j := 0; j < FaceletsPerFace; j++ {
			if c.Facelets[i][j] != f {
				return false
			}
		}
	}
	return true
}

// FaceletString returns the 54-character facelet text.
func (c *Cube) FaceletString() string {
	b := make([]byte, 0, FaceletCount)
	for i := range c.Facelets {
		for j := 0; j < FaceletsPerFace; j++ {
			b = append(b, byte(c.Facelets[i][j]))
		}
	}
	return string(b)
}

// rotateFaceCW rotates a face's own stickers 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face int) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	f[0], f[2], f[8], f[6] = f[6], f[0], f[2], f[8]
	f[1], f[5], f[7], f[3] = f[3], f[1], f[5], f[7]
}

// rotateFaceCCW rotates a face's own stickers 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face int) {
	f := &c.Facelets[face]
	f[0], f[6], f[8], f[2] = f[2], f[0], f[6], f[8]
	f[1], f[3], f[7], f[5] = f[5], f[1], f[3], f[7]
}

// cycleStrips carries each strip's stickers to the next strip.
func (c *Cube) cycleStrips(s [4]strip) {
	last := s[3]
	saved := [3]Facelet{
		c.Facelets[last.face][last.idx[0]],
		c.Facelets[last.face][last.idx[1]],
		c.Facelets[last.face][last.idx[2]],
	}
	for k := 3; k > 0; k-- {
		dst, src := s[k], s[k-1]
		for j := 0; j < 3; j++ {
			c.Facelets[dst.face][dst.idx[j]] = c.Facelets[src.face][src.idx[j]]
		}
	}
	for j := 0; j < 3; j++ {
		c.Facelets[s[0].face][s[0].idx[j]] = saved[j]
	}
}

// reverseStrips carries each strip's stickers to the previous strip.
func (c *Cube) reverseStrips(s [4]strip) {
	c.cycleStrips([4]strip{s[3], s[2], s[1], s[0]})
}

// MoveFace turns a face. turn: 1 = CW, -1 = CCW, 2 = 180 degrees.
// Invalid faces or turns are ignored.
func (c *Cube) MoveFace(face Facelet, turn Turn) {
	fi := face.Index()
	if fi < 0 {
		return
	}
	switch turn {
	case CW:
		c.rotateFaceCW(fi)
		c.cycleStrips(adjacentStrips[fi])
	case CCW:
		c.rotateFaceCCW(fi)
		c.reverseStrips(adjacentStrips[fi])
	case Double:
		c.MoveFace(face, CW)
		c.MoveFace(face, CW)
	}
}

// ApplyMove applies a Move to the cube.
func (c *Cube) ApplyMove(m Move) {
	c.MoveFace(m.Face, m.Turn)
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// String returns the cube unfolded as a cross.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[face][row*3+col].String())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(iU, row)
		b.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []int{iL, iF, iR, iB} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(iD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
