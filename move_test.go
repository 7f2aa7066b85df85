package rubik

import (
	"errors"
	"testing"
)

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		move Move
		want string
	}{
		{W, "W"},
		{WPrime, "W'"},
		{G, "G"},
		{GPrime, "G'"},
	}
	for _, c := range cases {
		if got := c.move.Notation(); got != c.want {
			t.Errorf("Notation() = %q, want %q", got, c.want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	for _, m := range AllMoves {
		inv := m.Inverse()
		if inv.Face != m.Face {
			t.Errorf("Inverse of %s should keep the face", m)
		}
		if inv.Direction == m.Direction {
			t.Errorf("Inverse of %s should flip the direction", m)
		}
		if inv.Inverse() != m {
			t.Errorf("Double inverse of %s should be the identity", m)
		}
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"W", W},
		{"w", W},
		{"W'", WPrime},
		{"g'", GPrime},
		{" R ", R},
		{"Y`", YPrime},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "W2", "W''", "?"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) should return ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	in := "G W' R O' B Y'"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves(%q) returned error: %v", in, err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves(ParseMoves(%q)) = %q", in, got)
	}
}

func TestParseMovesInvalid(t *testing.T) {
	if _, err := ParseMoves("G W' X"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with invalid token should fail, got %v", err)
	}
}

func TestFormatMovesEmpty(t *testing.T) {
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
}
