package rubik

import (
	"time"

	"github.com/google/uuid"
)

// TimedMove is a move plus the wall-clock time it was applied.
type TimedMove struct {
	Move
	At time.Time
}

// Session wraps a Cube with a move history and phase-change detection.
// Sessions give interactive callers undo, replay, and progress reporting on
// top of the bare cube operations.
type Session struct {
	id            uuid.UUID
	cube          *Cube
	history       []TimedMove
	started       time.Time
	highestPhase  Phase
	phaseCallback func(Phase)
}

// NewSession creates a session starting from a solved cube.
func NewSession() *Session {
	return &Session{
		id:           uuid.New(),
		cube:         NewCube(),
		started:      time.Now(),
		highestPhase: PhaseScrambled,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// StartedAt returns when the session began.
func (s *Session) StartedAt() time.Time {
	return s.started
}

// SetPhaseCallback sets a callback that fires when the cube first reaches a
// new highest phase.
func (s *Session) SetPhaseCallback(cb func(Phase)) {
	s.phaseCallback = cb
}

// Apply applies a move, records it in the history, and checks for a phase
// transition.
func (s *Session) Apply(m Move) {
	s.cube.Turn(m)
	s.history = append(s.history, TimedMove{Move: m, At: time.Now()})
	s.checkPhaseTransition()
}

// ApplyMoves applies multiple moves.
func (s *Session) ApplyMoves(moves []Move) {
	for _, m := range moves {
		s.Apply(m)
	}
}

// Undo reverts the most recent move by applying its inverse and dropping it
// from the history. It returns false if there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.cube.Turn(last.Inverse())
	s.history = s.history[:len(s.history)-1]
	return true
}

// Reset returns the session to a solved cube and clears the history. The
// session keeps its identity.
func (s *Session) Reset() {
	s.cube = NewCube()
	s.history = s.history[:0]
	s.highestPhase = PhaseScrambled
}

// checkPhaseTransition fires the callback when a new highest phase is
// reached. The highest phase is monotonic: solving progress that is later
// undone does not fire again.
func (s *Session) checkPhaseTransition() {
	current := s.cube.DetectPhase()
	if current > s.highestPhase {
		s.highestPhase = current
		if s.phaseCallback != nil {
			s.phaseCallback(current)
		}
	}
}

// CurrentPhase returns the phase of the cube as it stands now. It may go
// backwards during solving.
func (s *Session) CurrentPhase() Phase {
	return s.cube.DetectPhase()
}

// HighestPhase returns the highest phase reached so far.
func (s *Session) HighestPhase() Phase {
	return s.highestPhase
}

// Moves returns the moves applied so far, in order.
func (s *Session) Moves() []Move {
	moves := make([]Move, len(s.history))
	for i, tm := range s.history {
		moves[i] = tm.Move
	}
	return moves
}

// History returns the timestamped move log.
func (s *Session) History() []TimedMove {
	out := make([]TimedMove, len(s.history))
	copy(out, s.history)
	return out
}

// IsSolved returns true if the session's cube is solved.
func (s *Session) IsSolved() bool {
	return s.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (s *Session) Cube() *Cube {
	return s.cube
}
