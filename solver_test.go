package rubik

import (
	"math/rand"
	"testing"
)

func TestSolveAlreadySolved(t *testing.T) {
	sol := Solve(NewCube())
	if sol.Status != StatusAlreadySolved {
		t.Errorf("Status = %v, want already_solved", sol.Status)
	}
	if len(sol.Moves) != 0 {
		t.Errorf("Expected empty move sequence, got %s", FormatMoves(sol.Moves))
	}
}

func TestSolveShallowScrambles(t *testing.T) {
	for n := 1; n <= 3; n++ {
		c := NewCube()
		scramble := Scramble(c, rand.New(rand.NewSource(int64(n))), n)

		sol := Solve(c)
		if c.IsSolved() {
			// The random moves cancelled each other out.
			if sol.Status != StatusAlreadySolved {
				t.Errorf("n=%d: Status = %v, want already_solved (scramble %s)", n, sol.Status, FormatMoves(scramble))
			}
			continue
		}
		if sol.Status != StatusFound {
			t.Fatalf("n=%d: Status = %v, want found (scramble %s)", n, sol.Status, FormatMoves(scramble))
		}
		if len(sol.Moves) > n {
			t.Errorf("n=%d: BFS solution has %d moves, scramble had %d; shortest expected", n, len(sol.Moves), n)
		}

		c.ApplyMoves(sol.Moves)
		if !c.IsSolved() {
			t.Errorf("n=%d: applying the solution should solve the cube", n)
		}
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	c := NewCube()
	c.Apply(G, W)
	snapshot := c.Clone()

	Solve(c)
	if !cubesEqual(c, snapshot) {
		t.Error("Solve must not mutate the input cube")
	}
}

func TestSolveFindsSingleMoveInverse(t *testing.T) {
	c := NewCube()
	c.Turn(G)

	sol := Solve(c)
	if sol.Status != StatusFound {
		t.Fatalf("Status = %v, want found", sol.Status)
	}
	if len(sol.Moves) != 1 || sol.Moves[0] != GPrime {
		t.Errorf("Solution = %s, want G'", FormatMoves(sol.Moves))
	}
}

func TestSolveExhaustedWithinDepth(t *testing.T) {
	// Two turns of distinct faces cannot be undone in one move.
	c := NewCube()
	c.Apply(G, W)

	sol := Solve(c, WithMaxDepth(1))
	if sol.Status != StatusExhausted {
		t.Errorf("Status = %v, want exhausted", sol.Status)
	}
	if len(sol.Moves) != 0 {
		t.Errorf("Exhausted search should carry no moves, got %s", FormatMoves(sol.Moves))
	}
}

func TestSolveWithMoveSet(t *testing.T) {
	c := NewCube()
	c.Apply(G, G, W)

	sol := Solve(c, WithMoveSet([]Move{G, GPrime, W, WPrime}))
	if sol.Status != StatusFound {
		t.Fatalf("Status = %v, want found", sol.Status)
	}

	c.ApplyMoves(sol.Moves)
	if !c.IsSolved() {
		t.Error("Restricted-move solution should still solve the cube")
	}
}

func TestSolveStatusStrings(t *testing.T) {
	cases := map[SolveStatus]string{
		StatusAlreadySolved: "already_solved",
		StatusFound:         "found",
		StatusExhausted:     "exhausted",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", status, got, want)
		}
	}
}
