package tetris

// System represents one stage of the per-tick pipeline. Systems read
// and mutate the game state through the frame; the game loop is the
// sole writer, so execution is strictly sequential.
type System interface {
	Execute(frame *Frame)
}

// Frame carries one tick's worth of context through the pipeline: the
// elapsed-time delta, the input events drained for this tick, and the
// game state itself.
type Frame struct {
	DeltaTime float64
	Events    []Event
	Game      *Game
}

func newFrame(dt float64, events []Event, game *Game) *Frame {
	return &Frame{
		DeltaTime: dt,
		Events:    events,
		Game:      game,
	}
}
