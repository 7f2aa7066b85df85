package rubik

import "math/rand"

// Turnable is the turn surface shared by both cube representations.
type Turnable interface {
	Turn(Move)
}

// RandomMove draws one of the twelve elementary moves uniformly at random.
func RandomMove(rng *rand.Rand) Move {
	return AllMoves[rng.Intn(len(AllMoves))]
}

// Scramble applies n uniformly random moves to the cube and returns them in
// application order. Replaying the returned moves on a fresh solved cube
// reproduces the scrambled state exactly.
func Scramble(c Turnable, rng *rand.Rand, n int) []Move {
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		m := RandomMove(rng)
		c.Turn(m)
		moves = append(moves, m)
	}
	return moves
}
