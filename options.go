package rubik

// SolveOption configures a Solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	maxDepth int
	moves    []Move
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		maxDepth: 0, // unbounded
		moves:    AllMoves[:],
	}
}

// WithMaxDepth bounds the search to solutions of at most depth moves.
// A bounded search that finds no solution reports StatusExhausted instead of
// growing the frontier forever. Zero means unbounded, the default.
func WithMaxDepth(depth int) SolveOption {
	return func(c *solveConfig) {
		c.maxDepth = depth
	}
}

// WithMoveSet restricts the search to the given moves instead of all twelve.
// Useful when the scramble is known to touch only some faces.
func WithMoveSet(moves []Move) SolveOption {
	return func(c *solveConfig) {
		c.moves = moves
	}
}
