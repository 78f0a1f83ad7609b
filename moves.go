package cubesolve

// Predefined moves for convenience.
//
// Example:
//
//	cube.ApplyMoves([]cubesolve.Move{cubesolve.R, cubesolve.U, cubesolve.RPrime})
var (
	// Up face moves
	U      = Move{Face: Up, Turn: CW}
	UPrime = Move{Face: Up, Turn: CCW}
	U2     = Move{Face: Up, Turn: Double}

	// Right face moves
	R      = Move{Face: Right, Turn: CW}
	RPrime = Move{Face: Right, Turn: CCW}
	R2     = Move{Face: Right, Turn: Double}

	// Front face moves
	F      = Move{Face: Front, Turn: CW}
	FPrime = Move{Face: Front, Turn: CCW}
	F2     = Move{Face: Front, Turn: Double}

	// Down face moves
	D      = Move{Face: Down, Turn: CW}
	DPrime = Move{Face: Down, Turn: CCW}
	D2     = Move{Face: Down, Turn: Double}

	// Left face moves
	L      = Move{Face: Left, Turn: CW}
	LPrime = Move{Face: Left, Turn: CCW}
	L2     = Move{Face: Left, Turn: Double}

	// Back face moves
	B      = Move{Face: Back, Turn: CW}
	BPrime = Move{Face: Back, Turn: CCW}
	B2     = Move{Face: Back, Turn: Double}
)

// AllMoves lists the 18 canonical moves, grouped by face in Faces order.
var AllMoves = [18]Move{
	U, UPrime, U2,
	R, RPrime, R2,
	F, FPrime, F2,
	D, DPrime, D2,
	L, LPrime, L2,
	B, BPrime, B2,
}

// Sexy move: R U R' U'
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm: swaps two edges and two corners.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
