package cubesolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubesolve package.
var (
	// Validation errors, one per tier category
	ErrMalformedState           = errors.New("cubesolve: malformed state")
	ErrIllegalColorDistribution = errors.New("cubesolve: illegal color distribution")
	ErrCenterMismatch           = errors.New("cubesolve: center mismatch")
	ErrUnsolvable               = errors.New("cubesolve: unsolvable state")

	// Solver errors
	ErrNoSolutionFound = errors.New("cubesolve: no solution found")
	ErrEngineFailure   = errors.New("cubesolve: engine failure")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubesolve: invalid move notation")
	ErrUnknownColor    = errors.New("cubesolve: unknown color")

	// Grid errors
	ErrInvalidCell = errors.New("cubesolve: invalid grid cell")
)

// MalformedStateError reports a syntax-tier failure.
// Position is the rune offset of the offending symbol, or -1 when the
// failure concerns the whole input (its length).
type MalformedStateError struct {
	Reason   string
	Position int
}

func (e *MalformedStateError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("malformed state: %s at position %d", e.Reason, e.Position+1)
	}
	return "malformed state: " + e.Reason
}

func (e *MalformedStateError) Unwrap() error { return ErrMalformedState }

// IllegalColorDistributionError reports a symbol that does not occur
// exactly 9 times.
type IllegalColorDistributionError struct {
	Symbol Facelet
	Count  int
}

func (e *IllegalColorDistributionError) Error() string {
	return fmt.Sprintf("illegal color distribution: %s (%s) appears %d times, want %d",
		e.Symbol, e.Symbol.Color(), e.Count, FaceletsPerFace)
}

func (e *IllegalColorDistributionError) Unwrap() error { return ErrIllegalColorDistribution }

// CenterMismatchError reports a face whose center sticker is not the
// face's own symbol.
type CenterMismatchError struct {
	Face  Facelet
	Found Facelet
}

func (e *CenterMismatchError) Error() string {
	return fmt.Sprintf("center mismatch: %s face has center %s", e.Face.Name(), e.Found)
}

func (e *CenterMismatchError) Unwrap() error { return ErrCenterMismatch }

// Invariant names a combinatorial constraint checked by CheckSolvable.
type Invariant string

const (
	InvariantCornerPiece       Invariant = "corner-piece"
	InvariantEdgePiece         Invariant = "edge-piece"
	InvariantPermutationParity Invariant = "permutation-parity"
	InvariantCornerOrientation Invariant = "corner-orientation"
	InvariantEdgeOrientation   Invariant = "edge-orientation"
)

// UnsolvableError reports a state that is well formed but cannot be
// reached from the solved cube by legal moves.
type UnsolvableError struct {
	Invariant Invariant
	Detail    string
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("unsolvable state (%s): %s", e.Invariant, e.Detail)
}

func (e *UnsolvableError) Unwrap() error { return ErrUnsolvable }

// EngineFailureError wraps anything that went wrong inside the external
// engine or in interpreting its answer.
type EngineFailureError struct {
	Engine string
	Detail string
	Err    error // underlying engine error, may be nil
}

func (e *EngineFailureError) Error() string {
	return fmt.Sprintf("engine %s failed: %s", e.Engine, e.Detail)
}

func (e *EngineFailureError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEngineFailure}
	}
	return []error{ErrEngineFailure, e.Err}
}
