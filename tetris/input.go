package tetris

// Event is a discrete, edge-triggered input action. Holding a key does
// not auto-repeat here; frontends that want repeat implement their own
// repeat timing and push individual events.
type Event uint8

const (
	EventMoveLeft Event = iota
	EventMoveRight
	EventRotateCW
	EventRotateCCW
	EventSoftDrop
	EventHardDrop
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventMoveLeft:
		return "move-left"
	case EventMoveRight:
		return "move-right"
	case EventRotateCW:
		return "rotate-cw"
	case EventRotateCCW:
		return "rotate-ccw"
	case EventSoftDrop:
		return "soft-drop"
	case EventHardDrop:
		return "hard-drop"
	case EventReset:
		return "reset"
	}
	return "unknown"
}
