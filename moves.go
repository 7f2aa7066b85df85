package rubik

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(rubik.G, rubik.W, rubik.GPrime, rubik.WPrime)
var (
	// White face moves
	W      = Move{Face: White, Direction: Clockwise}
	WPrime = Move{Face: White, Direction: CounterClockwise}

	// Red face moves
	R      = Move{Face: Red, Direction: Clockwise}
	RPrime = Move{Face: Red, Direction: CounterClockwise}

	// Blue face moves
	B      = Move{Face: Blue, Direction: Clockwise}
	BPrime = Move{Face: Blue, Direction: CounterClockwise}

	// Orange face moves
	O      = Move{Face: Orange, Direction: Clockwise}
	OPrime = Move{Face: Orange, Direction: CounterClockwise}

	// Green face moves
	G      = Move{Face: Green, Direction: Clockwise}
	GPrime = Move{Face: Green, Direction: CounterClockwise}

	// Yellow face moves
	Y      = Move{Face: Yellow, Direction: Clockwise}
	YPrime = Move{Face: Yellow, Direction: CounterClockwise}
)

// AllMoves lists the twelve elementary moves, face-major with clockwise
// before counter-clockwise. This is the edge set of the solver's state graph
// and the domain of random scramble draws.
var AllMoves = [12]Move{
	W, WPrime,
	R, RPrime,
	B, BPrime,
	O, OPrime,
	G, GPrime,
	Y, YPrime,
}
