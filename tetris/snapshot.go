package tetris

// CellView is one occupied board cell.
type CellView struct {
	X, Y int
	Kind Kind
}

// PieceView is the renderable footprint of a piece.
type PieceView struct {
	Kind  Kind
	Cells [4]Coord
}

// AnimationView describes an in-flight effect with enough data for a
// frontend to interpolate it.
type AnimationView struct {
	Kind     AnimKind
	Rows     []int
	Cells    [4]Coord
	Fraction float64
}

// Snapshot is the per-frame rendering contract: everything a frontend
// needs to draw the game, with no access to mutable core state.
type Snapshot struct {
	Width  int
	Height int
	Cells  []CellView

	Active *PieceView
	Shadow *PieceView
	Next   Kind

	Phase Phase
	Score int
	Level int
	Lines int

	Animations []AnimationView
}

// Snapshot captures the current state for rendering. The returned
// value is detached: frontends may keep it across ticks.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Width:  g.board.Width,
		Height: g.board.Height,
		Next:   g.bag.Peek(),
		Phase:  g.phase,
		Score:  g.score,
		Level:  g.level,
		Lines:  g.lines,
	}

	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			if kind, ok := g.board.Occupied(x, y); ok {
				snap.Cells = append(snap.Cells, CellView{X: x, Y: y, Kind: kind})
			}
		}
	}

	if g.hasActive {
		snap.Active = &PieceView{Kind: g.active.Kind, Cells: g.active.Footprint()}
		snap.Shadow = &PieceView{Kind: g.active.Kind, Cells: g.shadow.Footprint()}
	}

	now := g.seq.Clock()
	for _, a := range g.seq.Active() {
		snap.Animations = append(snap.Animations, AnimationView{
			Kind:     a.Kind,
			Rows:     append([]int(nil), a.Rows...),
			Cells:    a.Cells,
			Fraction: a.Fraction(now),
		})
	}

	return snap
}
