package rubik

import "strings"

// Direction is the sense of a quarter turn as seen looking at the turned face.
type Direction int

const (
	Clockwise        Direction = 0
	CounterClockwise Direction = 1
)

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "'"
	}
	return ""
}

// Move represents a single quarter turn of one face. A Move is an ephemeral
// command value consumed by Turn; it is never part of cube state.
type Move struct {
	Face      Face
	Direction Direction
}

// Notation returns the notation string for this move, the face letter with a
// trailing apostrophe for counter-clockwise.
// Examples: W, W', G, G'
func (m Move) Notation() string {
	return m.Face.String() + m.Direction.String()
}

// Inverse returns the move that undoes this move.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Direction: m.Direction.Inverse()}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a notation string into a Move.
// Examples: W, W', R, R'
// Returns ErrInvalidNotation if the string is not a valid move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'W', 'w':
		face = White
	case 'R', 'r':
		face = Red
	case 'B', 'b':
		face = Blue
	case 'O', 'o':
		face = Orange
	case 'G', 'g':
		face = Green
	case 'Y', 'y':
		face = Yellow
	default:
		return Move{}, ErrInvalidNotation
	}

	dir := Clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			dir = CounterClockwise
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Direction: dir}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "W G' R O'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
