// Package tetris implements the core of a falling-block puzzle game:
// board and piece state, collision checking, wall-kick rotation, line
// clearing, and the spawn/fall/lock/clear state machine, all behind a
// frontend-independent snapshot contract. Rendering, input devices and
// timing sources are external collaborators: frontends push discrete
// input events and per-tick elapsed-time deltas and draw whatever the
// snapshot describes.
package tetris

import "math/rand/v2"

// Phase is the game loop's current state.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// Game is the single owner of all gameplay state. Frontends queue
// input with Push, advance the simulation with Tick, and read the
// result with Snapshot. All state transitions are synchronous within a
// tick; nothing here blocks or reads a clock.
type Game struct {
	board     *Board
	active    Piece
	hasActive bool
	shadow    Piece
	phase     Phase
	bag       *Bag
	seq       *Sequencer

	score int
	level int
	lines int

	// Gravity accumulator in seconds of elapsed fall time.
	gravity float64

	// Rows found full at the last lock, awaiting removal once the
	// clear animation has run.
	pendingClear []int

	pending   []Event
	scheduler *Scheduler
}

// NewGame creates a game on a standard 10×20 board. A nil source makes
// the piece sequence non-deterministic; tests pass a seeded one.
func NewGame(r *rand.Rand) *Game {
	g := &Game{
		board: NewBoard(BoardWidth, BoardHeight),
		bag:   NewBag(r),
		seq:   NewSequencer(),
		level: 1,
		phase: PhaseSpawning,
	}

	g.scheduler = NewScheduler(g)
	g.scheduler.Register(&AnimationSystem{})
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&LockSystem{})
	g.scheduler.Register(&ClearSystem{})
	g.scheduler.Register(&SpawnSystem{})
	g.scheduler.Register(&ShadowSystem{})

	return g
}

// Push queues a discrete input event for the next tick.
func (g *Game) Push(ev Event) {
	g.pending = append(g.pending, ev)
}

// Tick advances the simulation by dt seconds, applying all queued
// input first.
func (g *Game) Tick(dt float64) {
	events := g.pending
	g.pending = nil
	g.scheduler.Once(dt, events)
}

// Phase returns the current state of the game loop.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Level returns the current level; gravity speeds up with it.
func (g *Game) Level() int { return g.level }

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Board exposes the board for diagnostics. Gameplay code never
// mutates it from outside a tick.
func (g *Game) Board() *Board { return g.board }

// Stats returns execution statistics for the system pipeline.
func (g *Game) Stats() *SchedulerStats { return g.scheduler.GetStats() }

// fallSpeed is the gravity rate in rows per second at a given level.
func fallSpeed(level int) float64 {
	return 1.0 + 0.1*float64(level)
}

// reset restores the initial state: empty board, fresh bag, zero
// score, all animations discarded. Used by the explicit board-clear
// command from any phase, including game over.
func (g *Game) reset() {
	g.board.Reset()
	g.bag.Reset()
	g.seq.Reset()
	g.hasActive = false
	g.score = 0
	g.level = 1
	g.lines = 0
	g.gravity = 0
	g.pendingClear = nil
	g.phase = PhaseSpawning
}
