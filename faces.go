package rubik

// Face identifies one of the six cube faces by the color its center carries.
// Face identities double as paint colors: in the solved state every sticker's
// paint color equals the face it sits on.
type Face int

const (
	White  Face = 0
	Red    Face = 1
	Blue   Face = 2
	Orange Face = 3
	Green  Face = 4
	Yellow Face = 5
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

// FaceNone marks a face that a rotation leaves untouched. It is distinct
// from a face mapping to itself: the turned face maps to itself, while the
// face opposite the turned face maps to FaceNone.
const FaceNone Face = -1

func (f Face) String() string {
	switch f {
	case White:
		return "W"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the full color name of the face.
func (f Face) Name() string {
	switch f {
	case White:
		return "White"
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case Orange:
		return "Orange"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}

// AllFaces lists every face identity in index order.
var AllFaces = [NumFaces]Face{White, Red, Blue, Orange, Green, Yellow}

// adjacent lists, for each face, its four neighboring faces in
// top, right, bottom, left order as seen looking at that face.
// The face opposite a given face never appears in its row.
var adjacent = [NumFaces][4]Face{
	White:  {Green, Orange, Blue, Red},
	Red:    {White, Blue, Yellow, Green},
	Blue:   {White, Orange, Yellow, Red},
	Orange: {White, Green, Yellow, Blue},
	Green:  {White, Red, Yellow, Orange},
	Yellow: {Blue, Orange, Green, Red},
}

// Opposite returns the face opposite f, the one face a turn of f never moves.
func (f Face) Opposite() Face {
	switch f {
	case White:
		return Yellow
	case Yellow:
		return White
	case Red:
		return Orange
	case Orange:
		return Red
	case Blue:
		return Green
	case Green:
		return Blue
	default:
		return FaceNone
	}
}

// rotationPerm derives the face-to-face mapping induced by turning the given
// face in the given direction. The turned face maps to itself, each of its
// four neighbors maps to the next neighbor around the cycle (the reverse
// cycle for counter-clockwise), and the opposite face maps to FaceNone.
//
// This is the single place where "what a turn does to face identities" is
// decided; both cube representations derive their updates from it.
func rotationPerm(face Face, dir Direction) [NumFaces]Face {
	order := adjacent[face]
	if dir == CounterClockwise {
		order[0], order[3] = order[3], order[0]
		order[1], order[2] = order[2], order[1]
	}

	perm := [NumFaces]Face{FaceNone, FaceNone, FaceNone, FaceNone, FaceNone, FaceNone}
	perm[face] = face
	for i := range order {
		perm[order[i]] = order[(i+1)%len(order)]
	}
	return perm
}
