package tetris

// Wall-kick offsets follow the Super Rotation System: when a rotation
// collides, an ordered list of candidate translations is tried and the
// first legal placement wins. J, L, S, T and Z share one table, I has
// its own, and O needs none (its rotations are identical).
//
// The published tables treat positive y as up; the board's y axis
// points down, so the y components here are negated.

// kickTable is indexed by the rotation state being left. Each entry is
// the candidate offsets for one transition, in priority order.
type kickTable [4][5]Coord

var kicksJLSTZCW = kickTable{
	0: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 0 -> R
	1: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // R -> 2
	2: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 2 -> L
	3: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L -> 0
}

var kicksJLSTZCCW = kickTable{
	0: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 0 -> L
	1: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // R -> 0
	2: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 2 -> R
	3: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L -> 2
}

var kicksICW = kickTable{
	0: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},  // 0 -> R
	1: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},  // R -> 2
	2: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},  // 2 -> L
	3: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},  // L -> 0
}

var kicksICCW = kickTable{
	0: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},  // 0 -> L
	1: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},  // R -> 0
	2: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},  // 2 -> R
	3: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},  // L -> 2
}

func kickOffsets(kind Kind, fromRot int, spin Spin) [5]Coord {
	switch {
	case kind == KindO:
		return [5]Coord{{0, 0}}
	case kind == KindI && spin == SpinCW:
		return kicksICW[fromRot]
	case kind == KindI:
		return kicksICCW[fromRot]
	case spin == SpinCW:
		return kicksJLSTZCW[fromRot]
	default:
		return kicksJLSTZCCW[fromRot]
	}
}

// ResolveRotation rotates the piece in the given direction and tries
// the kick offsets for that transition in order. It returns the first
// candidate that fits, or (p, false) when every candidate collides, in
// which case the caller leaves the piece unrotated.
func ResolveRotation(b *Board, p Piece, spin Spin) (Piece, bool) {
	rotated := p.Rotated(spin)
	offsets := kickOffsets(p.Kind, p.Rot, spin)
	for i, off := range offsets {
		if off == (Coord{}) && i > 0 {
			break // zero-padded tail of a degenerate table
		}
		candidate := rotated.Translated(off.X, off.Y)
		if b.CanPlace(candidate) {
			return candidate, true
		}
	}
	return p, false
}
