package rubik

// Phase represents the current solving phase in the layer-by-layer method,
// with white as the top layer and yellow as the bottom. Phases progress from
// Scrambled (0) to Solved (7), allowing comparison with < and >.
type Phase int

const (
	// PhaseScrambled indicates the cube is in a scrambled state.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the four white edges sit on the white face
	// with their second colors matching the neighboring centers.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the whole white layer is complete: cross
	// plus the four white corners positioned and oriented.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the four middle-band edges are in place.
	PhaseSecondLayer

	// PhaseYellowCross indicates the four yellow edges show yellow on the
	// yellow face (position not required).
	PhaseYellowCross

	// PhaseYellowCorners indicates the four yellow corners sit in their
	// correct slots, possibly mis-oriented.
	PhaseYellowCorners

	// PhaseYellowOriented indicates the yellow corners are also oriented,
	// showing yellow on the yellow face.
	PhaseYellowOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer (F2L)"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners Positioned"
	case PhaseYellowOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// middleEdges are the four edge slots of the middle band, between
// neighboring non-white, non-yellow faces.
var middleEdges = [4][2]Face{
	{Green, Red},
	{Red, Blue},
	{Blue, Orange},
	{Orange, Green},
}

// IsWhiteCrossComplete checks that each white edge piece occupies its solved
// slot: white showing on the white face, the second color matching its face.
func (c *Cube) IsWhiteCrossComplete() bool {
	for _, n := range adjacent[White] {
		e := c.findEdge(White, n)
		if got, _ := e.showing(White); got != White {
			return false
		}
		if got, _ := e.showing(n); got != n {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks the white cross plus the four white corners.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsWhiteCrossComplete() {
		return false
	}

	n := adjacent[White]
	for i := 0; i < len(n); i++ {
		a, b := n[i], n[(i+1)%len(n)]
		p := c.findCorner(White, a, b)
		for _, f := range [3]Face{White, a, b} {
			if got, _ := p.showing(f); got != f {
				return false
			}
		}
	}
	return true
}

// IsSecondLayerComplete checks the first layer plus the middle-band edges.
func (c *Cube) IsSecondLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}

	for _, slot := range middleEdges {
		e := c.findEdge(slot[0], slot[1])
		for _, f := range slot {
			if got, _ := e.showing(f); got != f {
				return false
			}
		}
	}
	return true
}

// IsYellowCrossComplete checks that the yellow face's four edge cells show
// yellow. Edge positions are not required to be correct yet.
func (c *Cube) IsYellowCrossComplete() bool {
	if !c.IsSecondLayerComplete() {
		return false
	}

	for _, n := range adjacent[Yellow] {
		e := c.findEdge(Yellow, n)
		if got, _ := e.showing(Yellow); got != Yellow {
			return false
		}
	}
	return true
}

// AreYellowCornersPositioned checks that each yellow corner slot holds the
// corner with the right color set, ignoring orientation.
func (c *Cube) AreYellowCornersPositioned() bool {
	if !c.IsYellowCrossComplete() {
		return false
	}

	n := adjacent[Yellow]
	for i := 0; i < len(n); i++ {
		a, b := n[i], n[(i+1)%len(n)]
		p := c.findCorner(Yellow, a, b)
		want := map[Face]bool{Yellow: true, a: true, b: true}
		for s := 0; s < p.stickerCount(); s++ {
			if !want[p.Stickers[s].Color] {
				return false
			}
		}
	}
	return true
}

// AreYellowCornersOriented checks that the positioned yellow corners also
// show yellow on the yellow face.
func (c *Cube) AreYellowCornersOriented() bool {
	if !c.AreYellowCornersPositioned() {
		return false
	}

	n := adjacent[Yellow]
	for i := 0; i < len(n); i++ {
		p := c.findCorner(Yellow, n[i], n[(i+1)%len(n)])
		if got, _ := p.showing(Yellow); got != Yellow {
			return false
		}
	}
	return true
}

// DetectPhase returns the highest phase the cube has reached.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if c.AreYellowCornersOriented() {
		return PhaseYellowOriented
	}
	if c.AreYellowCornersPositioned() {
		return PhaseYellowCorners
	}
	if c.IsYellowCrossComplete() {
		return PhaseYellowCross
	}
	if c.IsSecondLayerComplete() {
		return PhaseSecondLayer
	}
	if c.IsFirstLayerComplete() {
		return PhaseFirstLayer
	}
	if c.IsWhiteCrossComplete() {
		return PhaseWhiteCross
	}
	return PhaseScrambled
}

// Progress reports which phases are complete.
type Progress struct {
	WhiteCross     bool
	FirstLayer     bool
	SecondLayer    bool
	YellowCross    bool
	YellowCorners  bool
	YellowOriented bool
	Solved         bool
}

// GetProgress returns the per-phase completion flags.
func (c *Cube) GetProgress() Progress {
	return Progress{
		WhiteCross:     c.IsWhiteCrossComplete(),
		FirstLayer:     c.IsFirstLayerComplete(),
		SecondLayer:    c.IsSecondLayerComplete(),
		YellowCross:    c.IsYellowCrossComplete(),
		YellowCorners:  c.AreYellowCornersPositioned(),
		YellowOriented: c.AreYellowCornersOriented(),
		Solved:         c.IsSolved(),
	}
}
