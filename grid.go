package cubesolve

import "fmt"

// Grid is the editable sticker grid behind an interactive front-end.
// It knows nothing about legality: any arrangement of the six symbols is
// allowed, and the result is only checked when Snapshot is validated.
//
// Cells are addressed by face symbol, row and column (0..2).
type Grid struct {
	cells [6][9]Facelet
}

// NewGrid returns a grid showing the solved cube.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

func cellIndex(face Facelet, row, col int) (int, int, error) {
	fi := face.Index()
	if fi < 0 || row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, 0, fmt.Errorf("%w: face %q row %d col %d", ErrInvalidCell, byte(face), row, col)
	}
	return fi, row*3 + col, nil
}

// Cell returns the current symbol of a cell.
func (g *Grid) Cell(face Facelet, row, col int) (Facelet, error) {
	fi, i, err := cellIndex(face, row, col)
	if err != nil {
		return 0, err
	}
	return g.cells[fi][i], nil
}

// Cycle advances a cell to the next symbol in Faces order, wrapping from
// Back to Up, and returns the new symbol.
func (g *Grid) Cycle(face Facelet, row, col int) (Facelet, error) {
	fi, i, err := cellIndex(face, row, col)
	if err != nil {
		return 0, err
	}
	g.cells[fi][i] = g.cells[fi][i].Next()
	return g.cells[fi][i], nil
}

// Set puts a specific symbol in a cell.
func (g *Grid) Set(face Facelet, row, col int, value Facelet) error {
	fi, i, err := cellIndex(face, row, col)
	if err != nil {
		return err
	}
	if !value.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownColor, byte(value))
	}
	g.cells[fi][i] = value
	return nil
}

// ResetCell restores a cell to its face's own symbol.
func (g *Grid) ResetCell(face Facelet, row, col int) error {
	fi, i, err := cellIndex(face, row, col)
	if err != nil {
		return err
	}
	g.cells[fi][i] = face
	return nil
}

// ResetFace restores all nine cells of a face.
func (g *Grid) ResetFace(face Facelet) error {
	fi := face.Index()
	if fi < 0 {
		return fmt.Errorf("%w: face %q", ErrInvalidCell, byte(face))
	}
	for i := range g.cells[fi] {
		g.cells[fi][i] = face
	}
	return nil
}

// Reset restores every cell to the solved layout.
func (g *Grid) Reset() {
	for fi, f := range Faces {
		for i := range g.cells[fi] {
			g.cells[fi][i] = f
		}
	}
}

// Load copies the stickers of s into the grid. Cells whose sticker is
// not one of the six symbols, as in the zero State, get their face's own
// symbol.
func (g *Grid) Load(s State) {
	for i := 0; i < FaceletCount; i++ {
		fi, j := i/FaceletsPerFace, i%FaceletsPerFace
		f := s.facelets[i]
		if !f.Valid() {
			f = Faces[fi]
		}
		g.cells[fi][j] = f
	}
}

// Snapshot serializes the grid in canonical face order, ready for
// NewState.
func (g *Grid) Snapshot() string {
	b := make([]byte, 0, FaceletCount)
	for fi := range g.cells {
		for _, f := range g.cells[fi] {
			b = append(b, byte(f))
		}
	}
	return string(b)
}
