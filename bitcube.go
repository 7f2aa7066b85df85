package rubik

import "fmt"

// BitFace packs one face's nine cells into a single uint32, three bits per
// cell. The eight ring cells occupy bits 0-23 in clockwise boundary order and
// the center occupies bits 24-26. Ring cells are indexed:
//
//	| 0 | 1 | 2 |
//	| 7 | 8 | 3 |
//	| 6 | 5 | 4 |
//
// where 8 is the center. Cell values are the color codes 1..6; zero is
// reserved as invalid.
type BitFace struct {
	word uint32
}

const (
	cellBits    = 3
	cellMask    = uint32(0b111)
	stripMask   = uint32(0b111_111_111)  // one 3-cell boundary strip
	ringMask    = uint32(0x00ff_ffff)    // the 8 ring cells, bits 0-23
	centerMask  = cellMask << 24         // the fixed center cell
	rotateShift = 2 * cellBits           // a quarter turn moves the ring by 2 cells
	flowShift   = 18                     // distance the wrapped cells travel
	underMask   = uint32(0b111_111)      // cells 0,1: wrap source for CCW
	overMask    = underMask << flowShift // cells 6,7: wrap source for CW
)

// ringToRowMajor converts a ring cell index to its row-major display index;
// rowMajorToRing is its inverse. RowMajorToRing is the exported copy callers
// need to read individual cells out of a packed word.
var (
	ringToRowMajor = [9]int{0, 1, 2, 5, 8, 7, 6, 3, 4}
	rowMajorToRing = [9]int{0, 1, 2, 7, 8, 3, 6, 5, 4}

	// RowMajorToRing maps a row-major cell index 0..8 to the ring index
	// used by Cell and the bit layout.
	RowMajorToRing = rowMajorToRing
)

func validateCell(v uint32) error {
	if v == 0 || v > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidCellValue, v)
	}
	return nil
}

// NewBitFace constructs a face from nine row-major cell values.
// Every value must be in 1..6.
func NewBitFace(cells [9]uint8) (BitFace, error) {
	var word uint32
	for ring := 0; ring < 9; ring++ {
		v := uint32(cells[ringToRowMajor[ring]])
		if err := validateCell(v); err != nil {
			return BitFace{}, err
		}
		word |= v << (ring * cellBits)
	}
	return BitFace{word: word}, nil
}

// solvedBitFace fills all nine cells with the same color code.
func solvedBitFace(v uint32) BitFace {
	var word uint32
	for ring := 0; ring < 9; ring++ {
		word |= v << (ring * cellBits)
	}
	return BitFace{word: word}
}

// Word returns the packed representation of the face.
func (f BitFace) Word() uint32 {
	return f.word
}

// Cell returns the value of the cell at the given ring index (8 is the
// center). An index outside 0..8 is a caller bug and panics.
func (f BitFace) Cell(ring int) uint8 {
	if ring < 0 || ring > 8 {
		panic(fmt.Sprintf("rubik: face cell index %d out of range", ring))
	}
	shift := ring * cellBits
	return uint8((f.word >> shift) & cellMask)
}

func (f *BitFace) setCell(ring int, v uint8) {
	if ring < 0 || ring > 8 {
		panic(fmt.Sprintf("rubik: face cell index %d out of range", ring))
	}
	shift := ring * cellBits
	f.word = f.word&^(cellMask<<shift) | uint32(v)<<shift
}

// rotate turns the face's own cells a quarter turn: the 24-bit ring sub-field
// shifts by two cells with the bits that fall outside the ring window
// re-inserted at the opposite end, and the center sub-field is untouched.
func (f *BitFace) rotate(dir Direction) {
	center := f.word & centerMask
	if dir == Clockwise {
		shifted := (f.word << rotateShift) & ringMask
		overflow := (f.word & overMask) >> flowShift
		f.word = shifted | overflow | center
	} else {
		shifted := (f.word & ringMask) >> rotateShift
		underflow := (f.word & underMask) << flowShift
		f.word = shifted | underflow | center
	}
}

// Ordinal names one of the four boundary strips of a face, the side touching
// one particular neighbor.
type Ordinal int

const (
	North Ordinal = 0 // ring cells 0,1,2
	East  Ordinal = 1 // ring cells 2,3,4
	South Ordinal = 2 // ring cells 4,5,6
	West  Ordinal = 3 // ring cells 6,7,0
)

// Strip reads the 9-bit window of the given boundary strip. When reverse is
// set the first and last cells are swapped, for the neighbor that reads the
// shared boundary in the opposite physical orientation.
func (f BitFace) Strip(o Ordinal, reverse bool) uint32 {
	var raw uint32
	switch o {
	case North:
		raw = f.word
	case East:
		raw = f.word >> rotateShift
	case South:
		raw = f.word >> (2 * rotateShift)
	case West:
		// The west strip wraps around the end of the ring: cells 6,7
		// then cell 0.
		raw = (f.word>>(3*rotateShift))&underMask | f.word<<rotateShift
	default:
		panic(fmt.Sprintf("rubik: invalid ordinal %d", o))
	}
	s := raw & stripMask

	if reverse {
		first := s >> (2 * cellBits)
		middle := s & (cellMask << cellBits)
		last := (s << (2 * cellBits)) & stripMask
		return first | middle | last
	}
	return s
}

// SetStrip overwrites the 9-bit window of the given boundary strip.
func (f *BitFace) SetStrip(v uint32, o Ordinal) {
	v &= stripMask
	var shift int
	switch o {
	case North:
		shift = 0
	case East:
		shift = rotateShift
	case South:
		shift = 2 * rotateShift
	case West:
		// Cells 6,7 live at the top of the ring, cell 0 at the bottom.
		const westMask = ^uint32(0o77_000_007)
		f.word = f.word&westMask | (v&underMask)<<flowShift | v>>(2*cellBits)
		return
	default:
		panic(fmt.Sprintf("rubik: invalid ordinal %d", o))
	}
	f.word = f.word&^(stripMask<<shift) | v<<shift
}

// BitCube is the bit-packed representation of a 3x3x3 cube: six packed faces
// indexed by Face identity, where face f carries color code f+1.
type BitCube struct {
	faces [NumFaces]BitFace
}

// NewBitCube creates a solved bit-packed cube.
func NewBitCube() *BitCube {
	c := &BitCube{}
	for i := range c.faces {
		c.faces[i] = solvedBitFace(uint32(i + 1))
	}
	return c
}

// NewBitCubeFromGrids constructs a cube from six row-major 3x3 grids of color
// codes, indexed by Face identity. Every cell must be in 1..6.
func NewBitCubeFromGrids(grids [NumFaces][9]uint8) (*BitCube, error) {
	c := &BitCube{}
	for i, g := range grids {
		face, err := NewBitFace(g)
		if err != nil {
			return nil, fmt.Errorf("face %v: %w", Face(i), err)
		}
		c.faces[i] = face
	}
	return c, nil
}

// Clone creates an independent copy of the cube.
func (c *BitCube) Clone() *BitCube {
	clone := *c
	return &clone
}

// IsSolved returns true if every face's nine cells carry that face's own
// color code.
func (c *BitCube) IsSolved() bool {
	for i := range c.faces {
		if c.faces[i] != solvedBitFace(uint32(i+1)) {
			return false
		}
	}
	return true
}

// Word returns the packed word of the given face.
func (c *BitCube) Word(f Face) uint32 {
	return c.faces[f].word
}

// stripRef names three ring cells on a neighboring face that participate in
// a turn.
type stripRef struct {
	face  Face
	cells [3]int
}

// turnStrips lists, for each turned face, the four neighbor strips exchanged
// by a clockwise turn, in cyclic order: each entry's cells receive the next
// entry's cells. Cell triples are ring indices, ordered so that shared
// corners line up across the exchange.
var turnStrips = [NumFaces][4]stripRef{
	White:  {{Red, [3]int{0, 1, 2}}, {Blue, [3]int{0, 1, 2}}, {Orange, [3]int{0, 1, 2}}, {Green, [3]int{0, 1, 2}}},
	Red:    {{White, [3]int{0, 6, 7}}, {Green, [3]int{4, 2, 3}}, {Yellow, [3]int{0, 6, 7}}, {Blue, [3]int{0, 6, 7}}},
	Blue:   {{White, [3]int{6, 5, 4}}, {Red, [3]int{4, 3, 2}}, {Yellow, [3]int{2, 1, 0}}, {Orange, [3]int{0, 7, 6}}},
	Orange: {{White, [3]int{2, 3, 4}}, {Blue, [3]int{2, 3, 4}}, {Yellow, [3]int{2, 3, 4}}, {Green, [3]int{6, 7, 0}}},
	Green:  {{White, [3]int{0, 1, 2}}, {Orange, [3]int{2, 3, 4}}, {Yellow, [3]int{4, 5, 6}}, {Red, [3]int{6, 7, 0}}},
	Yellow: {{Red, [3]int{4, 5, 6}}, {Green, [3]int{4, 5, 6}}, {Orange, [3]int{4, 5, 6}}, {Blue, [3]int{4, 5, 6}}},
}

func (c *BitCube) readCells(ref stripRef) [3]uint8 {
	f := &c.faces[ref.face]
	var out [3]uint8
	for i, ring := range ref.cells {
		out[i] = f.Cell(ring)
	}
	return out
}

func (c *BitCube) writeCells(ref stripRef, values [3]uint8) {
	f := &c.faces[ref.face]
	for i, ring := range ref.cells {
		f.setCell(ring, values[i])
	}
}

// Turn rotates one face a quarter turn in place: a temp-buffered 4-way
// exchange of the neighbor boundary strips followed by a ring rotation of the
// turned face's own word. For counter-clockwise turns the strip table is
// traversed in reverse.
func (c *BitCube) Turn(m Move) {
	refs := turnStrips[m.Face]
	if m.Direction == CounterClockwise {
		refs[0], refs[3] = refs[3], refs[0]
		refs[1], refs[2] = refs[2], refs[1]
	}

	// The exchange is a cyclic permutation of four strips; buffering the
	// first keeps it from being clobbered before it is read.
	tmp := c.readCells(refs[0])
	for i := 0; i < len(refs)-1; i++ {
		c.writeCells(refs[i], c.readCells(refs[i+1]))
	}
	c.writeCells(refs[len(refs)-1], tmp)

	c.faces[m.Face].rotate(m.Direction)
}

// Apply applies a sequence of moves to the cube.
func (c *BitCube) Apply(moves ...Move) {
	for _, m := range moves {
		c.Turn(m)
	}
}

// ApplyMoves applies a slice of moves to the cube.
func (c *BitCube) ApplyMoves(moves []Move) {
	c.Apply(moves...)
}

// FaceGrid returns the 3x3 grid of colors visible on the given face in
// row-major order, as Face identities. The projection matches Cube.FaceGrid,
// making the two representations directly comparable.
func (c *BitCube) FaceGrid(f Face) [3][3]Face {
	var grid [3][3]Face
	for i := 0; i < 9; i++ {
		v := c.faces[f].Cell(rowMajorToRing[i])
		grid[i/3][i%3] = Face(v - 1)
	}
	return grid
}

// String returns a text net of the cube in the same layout as Cube.String.
func (c *BitCube) String() string {
	return netString(c)
}
