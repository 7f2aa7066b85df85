package rubik

import (
	"math/rand"
	"testing"
)

// The bit-packed representation exists for clone and turn throughput; these
// benchmarks compare it against the piece-identity model.

func BenchmarkCubeClone(b *testing.B) {
	c := NewCube()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Clone()
	}
}

func BenchmarkBitCubeClone(b *testing.B) {
	c := NewBitCube()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Clone()
	}
}

func benchMoves(n int) []Move {
	rng := rand.New(rand.NewSource(1))
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = RandomMove(rng)
	}
	return moves
}

func BenchmarkCubeTurn(b *testing.B) {
	c := NewCube()
	moves := benchMoves(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Turn(moves[i%len(moves)])
	}
}

func BenchmarkBitCubeTurn(b *testing.B) {
	c := NewBitCube()
	moves := benchMoves(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Turn(moves[i%len(moves)])
	}
}

func BenchmarkSolveDepth2(b *testing.B) {
	scrambled := NewCube()
	scrambled.Apply(G, W)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Solve(scrambled)
	}
}
