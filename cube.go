package rubik

import "fmt"

// PieceKind distinguishes the two mobile piece shapes. Centers never change
// observable state and are not modeled.
type PieceKind uint8

const (
	EdgePiece   PieceKind = 0 // two stickers
	CornerPiece PieceKind = 1 // three stickers
)

// Sticker is one colored square of a piece. Color is the sticker's immutable
// paint identity, fixed at construction; On is the face the sticker currently
// occupies and is the only field a turn ever changes.
type Sticker struct {
	Color Face
	On    Face
}

// Piece is a physical cubie bundling the stickers that always move together.
// Edges use Stickers[:2], corners use all three.
type Piece struct {
	Kind     PieceKind
	Stickers [3]Sticker
}

func solvedEdge(a, b Face) Piece {
	return Piece{
		Kind: EdgePiece,
		Stickers: [3]Sticker{
			{Color: a, On: a},
			{Color: b, On: b},
		},
	}
}

func solvedCorner(a, b, c Face) Piece {
	return Piece{
		Kind: CornerPiece,
		Stickers: [3]Sticker{
			{Color: a, On: a},
			{Color: b, On: b},
			{Color: c, On: c},
		},
	}
}

func (p *Piece) stickerCount() int {
	if p.Kind == CornerPiece {
		return 3
	}
	return 2
}

// onFace reports whether any of the piece's stickers currently occupies f.
func (p *Piece) onFace(f Face) bool {
	for i := 0; i < p.stickerCount(); i++ {
		if p.Stickers[i].On == f {
			return true
		}
	}
	return false
}

// showing returns the paint color the piece shows on face f, or false if the
// piece does not touch f.
func (p *Piece) showing(f Face) (Face, bool) {
	for i := 0; i < p.stickerCount(); i++ {
		if p.Stickers[i].On == f {
			return p.Stickers[i].Color, true
		}
	}
	return FaceNone, false
}

// Cube is the piece-identity representation of a 3x3x3 cube: a fixed
// collection of the 12 edge and 8 corner pieces. A piece's slot in the
// collection never changes; turns only rewrite which faces its stickers
// occupy.
type Cube struct {
	pieces [20]Piece
}

// NewCube creates a cube in the solved configuration, where every sticker's
// paint color equals the face it occupies.
func NewCube() *Cube {
	c := &Cube{}
	idx := 0

	// The white and yellow layers hold all eight corners plus their eight
	// edges; the four remaining middle-layer edges sit between the green
	// and blue faces and their red/orange neighbors.
	for _, f := range [2]Face{White, Yellow} {
		n := adjacent[f]
		for i := 0; i < len(n); i++ {
			c.pieces[idx] = solvedCorner(f, n[i], n[(i+1)%len(n)])
			idx++
			c.pieces[idx] = solvedEdge(f, n[i])
			idx++
		}
	}
	for _, f := range [2]Face{Green, Blue} {
		for _, n := range adjacent[f] {
			if n != White && n != Yellow {
				c.pieces[idx] = solvedEdge(f, n)
				idx++
			}
		}
	}

	return c
}

// Clone creates an independent deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every sticker's paint color equals the face it
// currently occupies.
func (c *Cube) IsSolved() bool {
	for i := range c.pieces {
		p := &c.pieces[i]
		for s := 0; s < p.stickerCount(); s++ {
			if p.Stickers[s].Color != p.Stickers[s].On {
				return false
			}
		}
	}
	return true
}

// Turn rotates one face a quarter turn in place. Every piece with a sticker
// on the turned face has all of its stickers remapped through the rotation
// permutation; every other piece is untouched. Paint colors never change.
func (c *Cube) Turn(m Move) {
	perm := rotationPerm(m.Face, m.Direction)
	for i := range c.pieces {
		p := &c.pieces[i]
		if !p.onFace(m.Face) {
			continue
		}
		for s := 0; s < p.stickerCount(); s++ {
			next := perm[p.Stickers[s].On]
			if next == FaceNone {
				// A piece touching the turned face can only occupy
				// that face and its neighbors.
				panic(fmt.Sprintf("rubik: sticker on face %v has no image under turn of %v", p.Stickers[s].On, m.Face))
			}
			p.Stickers[s].On = next
		}
	}
}

// Apply applies a sequence of moves to the cube.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.Turn(m)
	}
}

// ApplyMoves applies a slice of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) {
	c.Apply(moves...)
}

// findEdge locates the edge piece currently occupying faces a and b,
// or nil if a and b do not bound an edge slot.
func (c *Cube) findEdge(a, b Face) *Piece {
	for i := range c.pieces {
		p := &c.pieces[i]
		if p.Kind != EdgePiece {
			continue
		}
		i0, i1 := p.Stickers[0].On, p.Stickers[1].On
		if (i0 == a || i0 == b) && (i1 == a || i1 == b) {
			return p
		}
	}
	return nil
}

// findCorner locates the corner piece currently occupying faces a, b and c,
// or nil if the three faces do not bound a corner slot.
func (c *Cube) findCorner(a, b, d Face) *Piece {
	in := func(f Face) bool { return f == a || f == b || f == d }
	for i := range c.pieces {
		p := &c.pieces[i]
		if p.Kind != CornerPiece {
			continue
		}
		if in(p.Stickers[0].On) && in(p.Stickers[1].On) && in(p.Stickers[2].On) {
			return p
		}
	}
	return nil
}

// edgeColor returns the paint color shown on face f by the edge piece
// currently at the f/other boundary.
func (c *Cube) edgeColor(f, other Face) Face {
	p := c.findEdge(f, other)
	if p == nil {
		panic(fmt.Sprintf("rubik: no edge piece at %v/%v", f, other))
	}
	color, _ := p.showing(f)
	return color
}

// cornerColor returns the paint color shown on face f by the corner piece
// currently at the f/a/b corner.
func (c *Cube) cornerColor(f, a, b Face) Face {
	p := c.findCorner(f, a, b)
	if p == nil {
		panic(fmt.Sprintf("rubik: no corner piece at %v/%v/%v", f, a, b))
	}
	color, _ := p.showing(f)
	return color
}

// FaceGrid returns the 3x3 grid of paint colors visible on the given face,
// in row-major order with the face's top neighbor along row 0 and its left
// neighbor along column 0.
func (c *Cube) FaceGrid(f Face) [3][3]Face {
	n := adjacent[f]
	return [3][3]Face{
		{c.cornerColor(f, n[0], n[3]), c.edgeColor(f, n[0]), c.cornerColor(f, n[0], n[1])},
		{c.edgeColor(f, n[3]), f, c.edgeColor(f, n[1])},
		{c.cornerColor(f, n[2], n[3]), c.edgeColor(f, n[2]), c.cornerColor(f, n[1], n[2])},
	}
}

// String returns a text net of the cube: white on top, the red-blue-orange-
// green band in the middle, yellow on the bottom.
func (c *Cube) String() string {
	return netString(c)
}

// gridder is the face projection shared by both cube representations.
type gridder interface {
	FaceGrid(Face) [3][3]Face
}

func netString(g gridder) string {
	result := ""

	top := g.FaceGrid(White)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += top[row][col].String() + " "
		}
		result += "\n"
	}

	band := [4][3][3]Face{g.FaceGrid(Red), g.FaceGrid(Blue), g.FaceGrid(Orange), g.FaceGrid(Green)}
	for row := 0; row < 3; row++ {
		for _, grid := range band {
			for col := 0; col < 3; col++ {
				result += grid[row][col].String() + " "
			}
		}
		result += "\n"
	}

	bottom := g.FaceGrid(Yellow)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += bottom[row][col].String() + " "
		}
		result += "\n"
	}

	return result
}
