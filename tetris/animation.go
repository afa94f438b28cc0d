package tetris

// AnimKind selects a visual effect with a fixed duration.
type AnimKind uint8

const (
	// AnimLineClear is the color-cycling wave played over full rows
	// before they are removed.
	AnimLineClear AnimKind = iota
	// AnimHardDrop is the streak left behind by an instant drop.
	AnimHardDrop
)

// Effect durations in seconds. The clear wave matches the original
// timing: twenty 50ms color steps sweeping left to right.
const (
	LineClearDuration = 1.0
	LineClearStep     = 0.05
	HardDropDuration  = 0.25
)

func (k AnimKind) duration() float64 {
	if k == AnimLineClear {
		return LineClearDuration
	}
	return HardDropDuration
}

func (k AnimKind) String() string {
	if k == AnimLineClear {
		return "line-clear"
	}
	return "hard-drop"
}

// Animation is a purely presentational, time-boxed effect. It never
// alters board or piece state.
type Animation struct {
	Kind AnimKind
	// Rows affected by a line clear; empty for hard drops.
	Rows []int
	// Cells traced by a hard-drop streak; empty for line clears.
	Cells [4]Coord

	start    float64
	duration float64
}

// Fraction returns the elapsed share of the animation in [0, 1] at the
// given sequencer clock reading.
func (a Animation) Fraction(now float64) float64 {
	if a.duration <= 0 {
		return 1
	}
	f := (now - a.start) / a.duration
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (a Animation) done(now float64) bool {
	return a.start+a.duration <= now
}

// Sequencer tracks active animations against an accumulated elapsed-
// time clock. It never reads a wall clock; the game loop feeds it
// per-tick deltas.
type Sequencer struct {
	clock  float64
	active []Animation
}

// NewSequencer creates an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Start registers a new active animation at the current clock reading.
func (s *Sequencer) Start(a Animation) Animation {
	a.start = s.clock
	a.duration = a.Kind.duration()
	s.active = append(s.active, a)
	return a
}

// Advance moves the clock forward and removes and returns every
// animation whose duration has elapsed.
func (s *Sequencer) Advance(dt float64) []Animation {
	s.clock += dt

	var done []Animation
	kept := s.active[:0]
	for _, a := range s.active {
		if a.done(s.clock) {
			done = append(done, a)
		} else {
			kept = append(kept, a)
		}
	}
	s.active = kept
	return done
}

// Active returns the animations still running.
func (s *Sequencer) Active() []Animation {
	return s.active
}

// ActiveKind reports whether any animation of the given kind is still
// running.
func (s *Sequencer) ActiveKind(kind AnimKind) bool {
	for _, a := range s.active {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// Clock returns the accumulated elapsed time in seconds.
func (s *Sequencer) Clock() float64 {
	return s.clock
}

// Reset discards all in-flight animations. The clock keeps running.
func (s *Sequencer) Reset() {
	s.active = nil
}
