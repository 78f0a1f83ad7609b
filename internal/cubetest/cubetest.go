// Package cubetest applies moves at the cubie level, independently of
// cubesolve.Cube, so tests can check facelet turns and engine answers
// against a second model of the puzzle.
package cubetest

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolve"
)

// basic holds the cubie permutation and orientation of one clockwise
// quarter turn, in the "replaced by" form: position i receives the cubie
// listed at i.
type basic struct {
	cp [8]cubesolve.Corner
	co [8]int
	ep [12]cubesolve.Edge
	eo [12]int
}

const (
	urf = cubesolve.URF
	ufl = cubesolve.UFL
	ulb = cubesolve.ULB
	ubr = cubesolve.UBR
	dfr = cubesolve.DFR
	dlf = cubesolve.DLF
	dbl = cubesolve.DBL
	drb = cubesolve.DRB

	ur = cubesolve.UR
	uf = cubesolve.UF
	ul = cubesolve.UL
	ub = cubesolve.UB
	dr = cubesolve.DR
	df = cubesolve.DF
	dl = cubesolve.DL
	db = cubesolve.DB
	fr = cubesolve.FR
	fl = cubesolve.FL
	bl = cubesolve.BL
	br = cubesolve.BR
)

var turns = map[cubesolve.Facelet]basic{
	cubesolve.Up: {
		cp: [8]cubesolve.Corner{ubr, urf, ufl, ulb, dfr, dlf, dbl, drb},
		ep: [12]cubesolve.Edge{ub, ur, uf, ul, dr, df, dl, db, fr, fl, bl, br},
	},
	cubesolve.Right: {
		cp: [8]cubesolve.Corner{dfr, ufl, ulb, urf, drb, dlf, dbl, ubr},
		co: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [12]cubesolve.Edge{fr, uf, ul, ub, br, df, dl, db, dr, fl, bl, ur},
	},
	cubesolve.Front: {
		cp: [8]cubesolve.Corner{ufl, dlf, ulb, ubr, urf, dfr, dbl, drb},
		co: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [12]cubesolve.Edge{ur, fl, ul, ub, dr, fr, dl, db, uf, df, bl, br},
		eo: [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	cubesolve.Down: {
		cp: [8]cubesolve.Corner{urf, ufl, ulb, ubr, dlf, dbl, drb, dfr},
		ep: [12]cubesolve.Edge{ur, uf, ul, ub, df, dl, db, dr, fr, fl, bl, br},
	},
	cubesolve.Left: {
		cp: [8]cubesolve.Corner{urf, ulb, dbl, ubr, dfr, ufl, dlf, drb},
		co: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [12]cubesolve.Edge{ur, uf, bl, ub, dr, df, fl, db, fr, ul, dl, br},
	},
	cubesolve.Back: {
		cp: [8]cubesolve.Corner{urf, ufl, ubr, drb, dfr, dlf, ulb, dbl},
		co: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [12]cubesolve.Edge{ur, uf, ul, br, dr, df, dl, bl, fr, fl, ub, db},
		eo: [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// Sticker indices of each corner and edge position, and the colors of
// each cubie, in the same order. Block offsets: U=0 R=9 F=18 D=27 L=36 B=45.
var (
	cornerStickers = [8][3]int{
		{8, 9, 20}, {6, 18, 38}, {0, 36, 47}, {2, 45, 11},
		{29, 26, 15}, {27, 44, 24}, {33, 53, 42}, {35, 17, 51},
	}
	cornerColors = [8][3]byte{
		{'U', 'R', 'F'}, {'U', 'F', 'L'}, {'U', 'L', 'B'}, {'U', 'B', 'R'},
		{'D', 'F', 'R'}, {'D', 'L', 'F'}, {'D', 'B', 'L'}, {'D', 'R', 'B'},
	}
	edgeStickers = [12][2]int{
		{5, 10}, {7, 19}, {3, 37}, {1, 46}, {32, 16}, {28, 25},
		{30, 43}, {34, 52}, {23, 12}, {21, 41}, {50, 39}, {48, 14},
	}
	edgeColors = [12][2]byte{
		{'U', 'R'}, {'U', 'F'}, {'U', 'L'}, {'U', 'B'}, {'D', 'R'}, {'D', 'F'},
		{'D', 'L'}, {'D', 'B'}, {'F', 'R'}, {'F', 'L'}, {'B', 'L'}, {'B', 'R'},
	}
)

// Solved returns the identity cubie state.
func Solved() cubesolve.Cubies {
	var c cubesolve.Cubies
	for i := range c.CornerPerm {
		c.CornerPerm[i] = cubesolve.Corner(i)
	}
	for i := range c.EdgePerm {
		c.EdgePerm[i] = cubesolve.Edge(i)
	}
	return c
}

// IsSolved reports whether every cubie is home and untwisted.
func IsSolved(c cubesolve.Cubies) bool {
	return c == Solved()
}

func multiply(a cubesolve.Cubies, b basic) cubesolve.Cubies {
	var out cubesolve.Cubies
	for i := range out.CornerPerm {
		from := b.cp[i]
		out.CornerPerm[i] = a.CornerPerm[from]
		out.CornerOri[i] = (a.CornerOri[from] + b.co[i]) % 3
	}
	for i := range out.EdgePerm {
		from := b.ep[i]
		out.EdgePerm[i] = a.EdgePerm[from]
		out.EdgeOri[i] = (a.EdgeOri[from] + b.eo[i]) % 2
	}
	return out
}

// Apply turns c by each move in order.
func Apply(c cubesolve.Cubies, moves ...cubesolve.Move) (cubesolve.Cubies, error) {
	for _, m := range moves {
		t, ok := turns[m.Face]
		if !ok {
			return c, fmt.Errorf("cubetest: unknown face in move %v", m)
		}
		var quarters int
		switch m.Turn {
		case cubesolve.CW:
			quarters = 1
		case cubesolve.Double:
			quarters = 2
		case cubesolve.CCW:
			quarters = 3
		default:
			return c, fmt.Errorf("cubetest: unknown turn in move %v", m)
		}
		for q := 0; q < quarters; q++ {
			c = multiply(c, t)
		}
	}
	return c, nil
}

// Facelets renders c as 54-character facelet text.
func Facelets(c cubesolve.Cubies) string {
	b := []byte("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB")
	for i, cubie := range c.CornerPerm {
		for n := 0; n < 3; n++ {
			b[cornerStickers[i][(n+c.CornerOri[i])%3]] = cornerColors[cubie][n]
		}
	}
	for i, cubie := range c.EdgePerm {
		for n := 0; n < 2; n++ {
			b[edgeStickers[i][(n+c.EdgeOri[i])%2]] = edgeColors[cubie][n]
		}
	}
	return string(b)
}

// Scramble returns the facelet text of the solved cube turned by moves.
func Scramble(moves ...cubesolve.Move) (string, error) {
	c, err := Apply(Solved(), moves...)
	if err != nil {
		return "", err
	}
	return Facelets(c), nil
}

// Solves reports whether moves bring the facelet text raw to the solved
// cube, using only the cubie model.
func Solves(raw string, moves []cubesolve.Move) (bool, error) {
	s, err := cubesolve.NewState(raw)
	if err != nil {
		return false, err
	}
	c, err := s.Cubies()
	if err != nil {
		return false, err
	}
	c, err = Apply(c, moves...)
	if err != nil {
		return false, err
	}
	return IsSolved(c), nil
}
