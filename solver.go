package rubik

// SolveStatus distinguishes the three solver outcomes. An empty move
// sequence alone is ambiguous: a cube that was already solved and a search
// that ran out of states both produce one.
type SolveStatus int

const (
	// StatusAlreadySolved means the input cube was solved; the move
	// sequence is empty.
	StatusAlreadySolved SolveStatus = iota

	// StatusFound means the search reached a solved state; the move
	// sequence restores the input cube.
	StatusFound

	// StatusExhausted means the search frontier emptied without reaching
	// a solved state.
	StatusExhausted
)

func (s SolveStatus) String() string {
	switch s {
	case StatusAlreadySolved:
		return "already_solved"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Solution is the solver's result: the outcome status and, for StatusFound,
// the move sequence that restores the solved state.
type Solution struct {
	Status SolveStatus
	Moves  []Move
}

// Solve searches for a move sequence restoring the given cube to the solved
// state, by breadth-first search over the graph whose nodes are cube
// configurations and whose edges are the twelve elementary moves. Because
// every edge has equal weight and states are explored in non-decreasing depth
// order, a found sequence is shortest in move count.
//
// The search keeps no visited set and no implicit depth bound: the frontier
// holds exactly 12^depth states at each depth, so memory and time grow
// exponentially and only shallow scrambles are practical. Use WithMaxDepth to
// bound the search explicitly; a bounded search that finds nothing reports
// StatusExhausted.
//
// Solve never mutates the input cube.
func Solve(c *Cube, opts ...SolveOption) Solution {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if c.IsSolved() {
		return Solution{Status: StatusAlreadySolved}
	}

	type node struct {
		cube *Cube
		path []Move
	}

	queue := []node{{cube: c.Clone()}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if n.cube.IsSolved() {
			return Solution{Status: StatusFound, Moves: n.path}
		}
		if cfg.maxDepth > 0 && len(n.path) >= cfg.maxDepth {
			continue
		}

		for _, m := range cfg.moves {
			next := n.cube.Clone()
			next.Turn(m)

			path := make([]Move, len(n.path)+1)
			copy(path, n.path)
			path[len(n.path)] = m

			queue = append(queue, node{cube: next, path: path})
		}
	}

	return Solution{Status: StatusExhausted}
}
