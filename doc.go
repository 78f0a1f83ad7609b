// Package cubesolve models a 3x3x3 twisty puzzle as 54 facelets and
// hands solvable states to an external move-search engine.
//
// # States
//
// A State is the sticker layout of the whole cube: six 9-facelet blocks in
// the order U, R, F, D, L, B, each read row by row. Symbols name the face
// whose color a sticker carries in the solved cube.
//
//	s, err := cubesolve.NewState(cubesolve.Normalize(text))
//	if err != nil {
//	    // *MalformedStateError, *IllegalColorDistributionError
//	    // or *CenterMismatchError
//	}
//
// # Validation
//
// Validation runs in three tiers, cheapest first: syntax (CheckSyntax),
// color counts and centers (CheckCounts), and solvability (CheckSolvable).
// Every failure is a typed error that also matches one of the sentinel
// errors with errors.Is.
//
// # Solving
//
// A Gateway owns an Engine and is the only code that calls it:
//
//	gw := cubesolve.NewGateway(engine, cubesolve.WithTimeout(10*time.Second))
//	sol, err := gw.Solve(ctx, s)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cubesolve.DisplayText(sol.Moves, cubesolve.StyleNumbered))
//
// Solved states come back with an empty move list without calling the
// engine. Engine answers are replayed on a Cube before they are returned.
//
// # Simulation
//
// Cube applies moves at facelet level and works without any engine:
//
//	c := cubesolve.NewCube()
//	c.ApplyMoves(cubesolve.SexyMove)
//	fmt.Println(c.String())
//
// # Editing
//
// Grid is the mutable sticker grid behind interactive front-ends. It
// accepts any arrangement; Snapshot produces text for NewState.
package cubesolve
