package rubik

import (
	"math/rand"
	"testing"
)

// The two representations implement the same contract: any move sequence
// applied to both must project to identical face grids.

func assertGridsEqual(t *testing.T, pc *Cube, bc *BitCube, context string) {
	t.Helper()
	for _, f := range AllFaces {
		pg := pc.FaceGrid(f)
		bg := bc.FaceGrid(f)
		if pg != bg {
			t.Errorf("%s: face %v differs\npiece grid: %v\nbit grid:   %v", context, f, pg, bg)
		}
	}
}

func TestRepresentationsAgreeWhenSolved(t *testing.T) {
	assertGridsEqual(t, NewCube(), NewBitCube(), "solved")
}

func TestRepresentationsAgreeOnEveryMove(t *testing.T) {
	for _, m := range AllMoves {
		pc := NewCube()
		bc := NewBitCube()
		pc.Turn(m)
		bc.Turn(m)
		assertGridsEqual(t, pc, bc, "after "+m.Notation())
	}
}

func TestRepresentationsAgreeOnRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pc := NewCube()
	bc := NewBitCube()

	for i := 0; i < 50; i++ {
		m := RandomMove(rng)
		pc.Turn(m)
		bc.Turn(m)
		assertGridsEqual(t, pc, bc, "after move "+m.Notation())
	}
}

func TestRepresentationsAgreeOnNet(t *testing.T) {
	pc := NewCube()
	bc := NewBitCube()
	moves, _ := ParseMoves("G W' R O' B Y' G G")
	pc.ApplyMoves(moves)
	bc.ApplyMoves(moves)

	if pc.String() != bc.String() {
		t.Errorf("Net renderings differ:\n%s\nvs\n%s", pc, bc)
	}
}
