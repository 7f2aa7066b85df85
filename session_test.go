package rubik

import "testing"

func TestNewSessionStartsSolved(t *testing.T) {
	s := NewSession()
	if !s.IsSolved() {
		t.Error("New session should start solved")
	}
	if s.ID() == "" {
		t.Error("Session should have an ID")
	}
	if len(s.Moves()) != 0 {
		t.Error("New session should have an empty history")
	}
}

func TestSessionApplyAndUndo(t *testing.T) {
	s := NewSession()
	s.Apply(G)
	s.Apply(W)

	if s.IsSolved() {
		t.Error("Session should not be solved after moves")
	}
	if got := len(s.Moves()); got != 2 {
		t.Errorf("History should hold 2 moves, got %d", got)
	}

	if !s.Undo() {
		t.Error("Undo should succeed with history present")
	}
	if !s.Undo() {
		t.Error("Undo should succeed with history present")
	}
	if !s.IsSolved() {
		t.Error("Undoing both moves should restore the solved state")
	}
	if s.Undo() {
		t.Error("Undo on an empty history should report false")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	id := s.ID()
	s.ApplyMoves([]Move{G, W, RPrime})

	s.Reset()
	if !s.IsSolved() {
		t.Error("Session should be solved after reset")
	}
	if len(s.Moves()) != 0 {
		t.Error("Reset should clear the history")
	}
	if s.ID() != id {
		t.Error("Reset should keep the session identity")
	}
}

func TestSessionPhaseCallback(t *testing.T) {
	s := NewSession()

	var fired []Phase
	s.SetPhaseCallback(func(p Phase) {
		fired = append(fired, p)
	})

	// Scramble then reverse; the callback fires once when the cube first
	// reaches the solved phase again.
	s.Apply(G)
	s.Apply(GPrime)

	if len(fired) != 1 || fired[0] != PhaseSolved {
		t.Errorf("Expected a single PhaseSolved callback, got %v", fired)
	}
	if s.HighestPhase() != PhaseSolved {
		t.Errorf("HighestPhase = %v, want solved", s.HighestPhase())
	}
}

func TestSessionHistoryIsCopied(t *testing.T) {
	s := NewSession()
	s.Apply(G)

	h := s.History()
	h[0].Move = W
	if s.Moves()[0] != G {
		t.Error("Mutating the returned history should not affect the session")
	}
}
