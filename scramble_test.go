package rubik

import (
	"math/rand"
	"testing"
)

func TestScrambleReturnsExactlyNMoves(t *testing.T) {
	for _, n := range []int{0, 1, 10, 50} {
		c := NewCube()
		moves := Scramble(c, rand.New(rand.NewSource(1)), n)
		if len(moves) != n {
			t.Errorf("Scramble(n=%d) returned %d moves", n, len(moves))
		}
	}
}

func TestScrambleReplayReproducesState(t *testing.T) {
	scrambled := NewCube()
	moves := Scramble(scrambled, rand.New(rand.NewSource(99)), 25)

	replayed := NewCube()
	replayed.ApplyMoves(moves)

	if !cubesEqual(scrambled, replayed) {
		t.Error("Replaying the returned moves should reproduce the scrambled state exactly")
	}
}

func TestScrambleReplayReproducesBitState(t *testing.T) {
	scrambled := NewBitCube()
	moves := Scramble(scrambled, rand.New(rand.NewSource(99)), 25)

	replayed := NewBitCube()
	replayed.ApplyMoves(moves)

	if *scrambled != *replayed {
		t.Error("Replaying the returned moves should reproduce the packed words bit-for-bit")
	}
}

func TestScrambleIsDeterministicPerSeed(t *testing.T) {
	a := Scramble(NewCube(), rand.New(rand.NewSource(5)), 20)
	b := Scramble(NewCube(), rand.New(rand.NewSource(5)), 20)

	if len(a) != len(b) {
		t.Fatalf("Same seed produced different lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Same seed diverged at move %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestRandomMoveCoversAllMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := map[Move]bool{}
	for i := 0; i < 2000; i++ {
		seen[RandomMove(rng)] = true
	}
	if len(seen) != len(AllMoves) {
		t.Errorf("Expected all %d moves to be drawn, saw %d", len(AllMoves), len(seen))
	}
}
