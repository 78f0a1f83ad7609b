package cubesolve

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is one of the 18 face turns: a face symbol plus a turn.
type Move struct {
	Face Facelet // Which face to turn
	Turn Turn    // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Valid reports whether m is one of the 18 canonical moves.
func (m Move) Valid() bool {
	if !m.Face.Valid() {
		return false
	}
	switch m.Turn {
	case CW, CCW, Double:
		return true
	}
	return false
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	case Double:
		// its own inverse
	}
	return inv
}

// Merge combines two turns of the same face. ok is false when the faces
// differ; when they are equal and the turns cancel, ok is true and the
// returned slice is empty.
func (m Move) Merge(other Move) (merged []Move, ok bool) {
	if m.Face != other.Face {
		return nil, false
	}

	quarters := (int(m.Turn) + int(other.Turn)) % 4
	if quarters < 0 {
		quarters += 4
	}
	switch quarters {
	case 0:
		return []Move{}, true
	case 1:
		return []Move{{Face: m.Face, Turn: CW}}, true
	case 2:
		return []Move{{Face: m.Face, Turn: Double}}, true
	default:
		return []Move{{Face: m.Face, Turn: CCW}}, true
	}
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error wrapping ErrInvalidNotation if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	face := Facelet(s[0])
	if !face.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	// Extract turn
	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`", "3":
			turn = CCW
		case "2", "2'":
			turn = Double
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves. Blank input and
// SolvedText both denote the empty sequence. Any invalid token fails the
// whole parse.
func ParseMoves(s string) ([]Move, error) {
	if strings.TrimSpace(s) == SolvedText {
		return []Move{}, nil
	}

	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}
