package core

// Event is an input to Game.Step.
type Event uint8

const (
	EventNone Event = iota
	EventMoveLeft
	EventMoveRight
	EventSoftDrop
	EventHardDrop
	EventRotateCW
	EventRotateCCW
	EventTimeTick
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventSoftDrop:
		return "SoftDrop"
	case EventHardDrop:
		return "HardDrop"
	case EventRotateCW:
		return "RotateCW"
	case EventRotateCCW:
		return "RotateCCW"
	case EventTimeTick:
		return "TimeTick"
	default:
		return "None"
	}
}

// GameEventType identifies a notification sent to the host.
type GameEventType uint8

const (
	GameEventStart GameEventType = iota
	GameEventNext
	GameEventScoreChange
	GameEventOverflow
)

// String returns the notification name.
func (t GameEventType) String() string {
	switch t {
	case GameEventStart:
		return "Start"
	case GameEventNext:
		return "Next"
	case GameEventScoreChange:
		return "ScoreChange"
	case GameEventOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// GameEvent is delivered to the Listener. Next is set for GameEventNext and
// Score for GameEventScoreChange.
type GameEvent struct {
	Type  GameEventType
	Next  []Kind
	Score Score
}

// Listener receives engine notifications synchronously from Start and Step.
// Implementations must not call back into the Game.
type Listener interface {
	OnGameEvent(ev GameEvent)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev GameEvent)

// OnGameEvent calls f(ev).
func (f ListenerFunc) OnGameEvent(ev GameEvent) {
	f(ev)
}
