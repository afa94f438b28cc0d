package tetris

// AnimationSystem advances the sequencer clock and retires finished
// effects. It runs first so gated transitions observe up-to-date
// animation state within the same tick.
type AnimationSystem struct{}

func (s *AnimationSystem) Execute(frame *Frame) {
	frame.Game.seq.Advance(frame.DeltaTime)
}

// InputSystem applies the tick's queued events. Gameplay events are
// only honored while a piece is falling; illegal moves are silently
// rejected. Reset works from any phase.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *Frame) {
	g := frame.Game

	for _, ev := range frame.Events {
		if ev == EventReset {
			g.reset()
			continue
		}
		if g.phase != PhaseFalling || !g.hasActive {
			continue
		}

		switch ev {
		case EventMoveLeft:
			if next := g.active.Translated(-1, 0); g.board.CanPlace(next) {
				g.active = next
			}
		case EventMoveRight:
			if next := g.active.Translated(1, 0); g.board.CanPlace(next) {
				g.active = next
			}
		case EventRotateCW:
			if next, ok := ResolveRotation(g.board, g.active, SpinCW); ok {
				g.active = next
			}
		case EventRotateCCW:
			if next, ok := ResolveRotation(g.board, g.active, SpinCCW); ok {
				g.active = next
			}
		case EventSoftDrop:
			if next := g.active.Translated(0, 1); g.board.CanPlace(next) {
				g.active = next
				g.gravity = 0
			}
		case EventHardDrop:
			dropped := g.board.Drop(g.active)
			g.seq.Start(Animation{Kind: AnimHardDrop, Cells: dropped.Footprint()})
			g.active = dropped
			g.phase = PhaseLocking
		}
	}
}

// GravitySystem accumulates elapsed time and steps the active piece
// down at the level's fall rate. A blocked step transitions to
// Locking.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	g := frame.Game
	if g.phase != PhaseFalling || !g.hasActive {
		return
	}

	g.gravity += frame.DeltaTime
	interval := 1.0 / fallSpeed(g.level)

	for g.gravity >= interval {
		g.gravity -= interval
		next := g.active.Translated(0, 1)
		if g.board.CanPlace(next) {
			g.active = next
			continue
		}
		g.gravity = 0
		g.phase = PhaseLocking
		break
	}
}

// LockSystem merges the active piece into the board and routes to
// Clearing or Spawning depending on whether any rows filled up.
type LockSystem struct{}

func (s *LockSystem) Execute(frame *Frame) {
	g := frame.Game
	if g.phase != PhaseLocking {
		return
	}

	g.board.Merge(g.active)
	g.hasActive = false
	g.gravity = 0

	rows := g.board.FullRows()
	if len(rows) == 0 {
		g.phase = PhaseSpawning
		return
	}

	g.pendingClear = rows
	g.seq.Start(Animation{Kind: AnimLineClear, Rows: rows})
	g.phase = PhaseClearing
}

// ClearSystem removes the pending rows once the clear animation has
// run its course, then scores the clear and hands over to Spawning.
// Gameplay input stays gated for the whole Clearing phase.
type ClearSystem struct{}

func (s *ClearSystem) Execute(frame *Frame) {
	g := frame.Game
	if g.phase != PhaseClearing {
		return
	}
	if g.seq.ActiveKind(AnimLineClear) {
		return
	}

	cleared := len(g.pendingClear)
	g.board.ClearRows(g.pendingClear)
	g.pendingClear = nil

	g.lines += cleared
	g.score += cleared * 100
	g.level = g.lines/10 + 1
	g.phase = PhaseSpawning
}

// SpawnSystem draws the next kind from the bag and places it at the
// spawn anchor. A colliding spawn is game over; only Reset gets the
// game out of that state.
type SpawnSystem struct{}

func (s *SpawnSystem) Execute(frame *Frame) {
	g := frame.Game
	if g.phase != PhaseSpawning {
		return
	}

	p := SpawnPiece(g.bag.Next())
	if !g.board.CanPlace(p) {
		g.phase = PhaseGameOver
		return
	}

	g.active = p
	g.hasActive = true
	g.gravity = 0
	g.phase = PhaseFalling
}

// ShadowSystem recomputes the shadow projection of the active piece.
// The shadow is derived state: never independently mutated, never
// stale, unaffected by animations.
type ShadowSystem struct{}

func (s *ShadowSystem) Execute(frame *Frame) {
	g := frame.Game
	if !g.hasActive {
		return
	}
	g.shadow = g.board.Drop(g.active)
}
