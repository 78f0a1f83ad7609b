package cubesolve

import "fmt"

// Corner identifies a corner position or corner cubie.
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

var cornerNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return "?"
	}
	return cornerNames[c]
}

// Edge identifies an edge position or edge cubie.
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

var edgeNames = [12]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return "?"
	}
	return edgeNames[e]
}

// Facelet indices of each corner position, clockwise from the U/D sticker.
// Block offsets: U=0, R=9, F=18, D=27, L=36, B=45.
var cornerFacelets = [8][3]int{
	URF: {8, 9, 20},
	UFL: {6, 18, 38},
	ULB: {0, 36, 47},
	UBR: {2, 45, 11},
	DFR: {29, 26, 15},
	DLF: {27, 44, 24},
	DBL: {33, 53, 42},
	DRB: {35, 17, 51},
}

// Colors of each corner cubie in the same sticker order.
var cornerColors = [8][3]Facelet{
	URF: {Up, Right, Front},
	UFL: {Up, Front, Left},
	ULB: {Up, Left, Back},
	UBR: {Up, Back, Right},
	DFR: {Down, Front, Right},
	DLF: {Down, Left, Front},
	DBL: {Down, Back, Left},
	DRB: {Down, Right, Back},
}

// Facelet indices of each edge position; the first sticker is the
// reference for flip.
var edgeFacelets = [12][2]int{
	UR: {5, 10},
	UF: {7, 19},
	UL: {3, 37},
	UB: {1, 46},
	DR: {32, 16},
	DF: {28, 25},
	DL: {30, 43},
	DB: {34, 52},
	FR: {23, 12},
	FL: {21, 41},
	BL: {50, 39},
	BR: {48, 14},
}

var edgeColors = [12][2]Facelet{
	UR: {Up, Right},
	UF: {Up, Front},
	UL: {Up, Left},
	UB: {Up, Back},
	DR: {Down, Right},
	DF: {Down, Front},
	DL: {Down, Left},
	DB: {Down, Back},
	FR: {Front, Right},
	FL: {Front, Left},
	BL: {Back, Left},
	BR: {Back, Right},
}

// Cubies is the cubie-level view of a state.
// CornerPerm[i] is the cubie sitting at position i and CornerOri[i] its
// clockwise twist (0..2); EdgePerm and EdgeOri likewise with flip 0..1.
type Cubies struct {
	CornerPerm [8]Corner
	CornerOri  [8]int
	EdgePerm   [12]Edge
	EdgeOri    [12]int
}

// Cubies decomposes s into corner and edge cubies. It fails with an
// *UnsolvableError when a sticker group matches no real cubie or when a
// cubie appears at two positions.
func (s State) Cubies() (Cubies, error) {
	var c Cubies

	var seenCorner [8]bool
	for i, pos := range cornerFacelets {
		ori := -1
		for o := 0; o < 3; o++ {
			if f := s.facelets[pos[o]]; f == Up || f == Down {
				ori = o
				break
			}
		}
		if ori < 0 {
			return c, cornerError(Corner(i), s.facelets, pos, "has no U or D sticker")
		}

		col1 := s.facelets[pos[(ori+1)%3]]
		col2 := s.facelets[pos[(ori+2)%3]]
		found := -1
		for j, cc := range cornerColors {
			if col1 == cc[1] && col2 == cc[2] && s.facelets[pos[ori]] == cc[0] {
				found = j
				break
			}
		}
		if found < 0 {
			return c, cornerError(Corner(i), s.facelets, pos, "matches no corner cubie")
		}
		if seenCorner[found] {
			return c, &UnsolvableError{
				Invariant: InvariantCornerPiece,
				Detail:    fmt.Sprintf("corner cubie %s appears more than once", Corner(found)),
			}
		}
		seenCorner[found] = true
		c.CornerPerm[i] = Corner(found)
		c.CornerOri[i] = ori
	}

	var seenEdge [12]bool
	for i, pos := range edgeFacelets {
		a, b := s.facelets[pos[0]], s.facelets[pos[1]]
		found, flip := -1, 0
		for j, ec := range edgeColors {
			if a == ec[0] && b == ec[1] {
				found = j
				break
			}
			if a == ec[1] && b == ec[0] {
				found, flip = j, 1
				break
			}
		}
		if found < 0 {
			return c, &UnsolvableError{
				Invariant: InvariantEdgePiece,
				Detail:    fmt.Sprintf("stickers %s%s at edge %s match no edge cubie", a, b, Edge(i)),
			}
		}
		if seenEdge[found] {
			return c, &UnsolvableError{
				Invariant: InvariantEdgePiece,
				Detail:    fmt.Sprintf("edge cubie %s appears more than once", Edge(found)),
			}
		}
		seenEdge[found] = true
		c.EdgePerm[i] = Edge(found)
		c.EdgeOri[i] = flip
	}

	return c, nil
}

func cornerError(at Corner, facelets [FaceletCount]Facelet, pos [3]int, what string) error {
	return &UnsolvableError{
		Invariant: InvariantCornerPiece,
		Detail: fmt.Sprintf("stickers %s%s%s at corner %s %s",
			facelets[pos[0]], facelets[pos[1]], facelets[pos[2]], at, what),
	}
}
