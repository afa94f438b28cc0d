package tetris

// Kind identifies one of the seven canonical tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	// NumKinds is the number of tetromino kinds.
	NumKinds = 7
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	}
	return "?"
}

// Spin is a rotation direction.
type Spin int

const (
	SpinCW  Spin = 1
	SpinCCW Spin = -1
)

// Coord is a board-relative grid position. X grows rightwards, Y grows
// downwards; Y may be negative for cells in the spawn headroom above
// the visible board.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// spawnLayouts are the spawn-state footprints, one bounding box per
// kind. 'x' marks an occupied cell. The remaining three rotation
// states are generated at init by rotating the box clockwise.
var spawnLayouts = [NumKinds][]string{
	KindI: {"....", "xxxx", "....", "...."},
	KindJ: {"x..", "xxx", "..."},
	KindL: {"..x", "xxx", "..."},
	KindO: {".xx", ".xx", "..."},
	KindS: {".xx", "xx.", "..."},
	KindT: {".x.", "xxx", "..."},
	KindZ: {"xx.", ".xx", "..."},
}

// shapes holds the anchor-relative occupied offsets for every kind and
// rotation state.
var shapes [NumKinds][4][4]Coord

func init() {
	for k := range shapes {
		box := parseLayout(spawnLayouts[k])
		size := len(spawnLayouts[k])
		for rot := 0; rot < 4; rot++ {
			shapes[k][rot] = box
			// O's four rotation states are identical; rotating its
			// bounding box would walk the square around the corners.
			if Kind(k) != KindO {
				box = rotateBox(box, size)
			}
		}
	}
}

func parseLayout(rows []string) [4]Coord {
	var cells [4]Coord
	n := 0
	for y, row := range rows {
		for x, c := range row {
			if c == 'x' {
				cells[n] = Coord{X: x, Y: y}
				n++
			}
		}
	}
	if n != 4 {
		panic("tetromino layout must contain exactly 4 cells")
	}
	return cells
}

// rotateBox rotates cell offsets a quarter turn clockwise inside a
// size×size bounding box.
func rotateBox(cells [4]Coord, size int) [4]Coord {
	var out [4]Coord
	for i, c := range cells {
		out[i] = Coord{X: size - 1 - c.Y, Y: c.X}
	}
	return out
}

// Piece is an immutable falling tetromino: a kind, a rotation state
// (0-3) and an anchor position. Translation and rotation return new
// values and never touch board state.
type Piece struct {
	Kind Kind
	Rot  int
	Pos  Coord
}

// spawnColumn centers every bounding box on the standard board.
const spawnColumn = 3

// SpawnPiece returns a piece of the given kind at its spawn anchor and
// orientation.
func SpawnPiece(kind Kind) Piece {
	return Piece{Kind: kind, Rot: 0, Pos: Coord{X: spawnColumn, Y: 0}}
}

// Footprint returns the four cells the piece currently covers.
func (p Piece) Footprint() [4]Coord {
	var out [4]Coord
	for i, off := range shapes[p.Kind][p.Rot] {
		out[i] = p.Pos.Add(off)
	}
	return out
}

// Translated returns a copy of the piece with its anchor shifted.
func (p Piece) Translated(dx, dy int) Piece {
	p.Pos = p.Pos.Add(Coord{X: dx, Y: dy})
	return p
}

// Rotated returns a copy of the piece with its rotation state advanced
// (clockwise) or retreated (counter-clockwise) modulo 4.
func (p Piece) Rotated(spin Spin) Piece {
	p.Rot = (p.Rot + int(spin) + 4) % 4
	return p
}
