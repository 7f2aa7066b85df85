// Package rubik models a 3x3x3 twisty puzzle with two interchangeable state
// representations and a breadth-first solver.
//
// # Representations
//
// Cube models the puzzle as its 20 physical pieces, each carrying immutable
// paint colors and mutable current-face pointers. BitCube packs each face's
// nine cells into one uint32 and turns faces with masked shift arithmetic.
// The two are behaviorally equivalent: any move sequence applied to both
// projects to identical FaceGrid views.
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := rubik.NewCube()
//	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
//	scramble := rubik.Scramble(cube, rng, 3)
//	fmt.Println("Scramble:", rubik.FormatMoves(scramble))
//
//	sol := rubik.Solve(cube)
//	if sol.Status == rubik.StatusFound {
//	    fmt.Println("Solution:", rubik.FormatMoves(sol.Moves))
//	}
//
// The solver is a plain breadth-first search with no pruning: the frontier
// grows as 12^depth, so it is only practical for scrambles of a handful of
// moves. Bound it explicitly with WithMaxDepth.
//
// # Moves
//
// Faces are named by their solved color (W, R, B, O, G, Y); a trailing
// apostrophe marks a counter-clockwise turn. Predefined moves are provided:
//
//	cube.Apply(rubik.G, rubik.W, rubik.GPrime, rubik.WPrime)
//
// or parse notation:
//
//	moves, err := rubik.ParseMoves("G W' R O'")
//
// # Sessions
//
// Session wraps a Cube with a timestamped move history, undo, and
// layer-by-layer phase detection:
//
//	s := rubik.NewSession()
//	s.SetPhaseCallback(func(p rubik.Phase) {
//	    fmt.Println("Phase completed:", p.DisplayName())
//	})
//	s.Apply(rubik.G)
//	s.Undo()
package rubik
