package core

// Action is a semantic input, independent of the physical key that produced
// it.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionSoftDrop         // S, Down arrow
	ActionHardDrop         // Space
	ActionRotateCW         // W, Up arrow, X
	ActionRotateCCW        // Z
	ActionConfirm          // Enter
	ActionBack             // B, Escape
	ActionRestart          // R, only honoured after game over
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Order collects them in arrival order so a fast "left, rotate, drop"
// sequence is replayed the way it was typed.
type InputFrame struct {
	Actions map[Action]bool
	Order   []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action. Repeats within a frame are kept in Order.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Order = append(f.Order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Order = f.Order[:0]
}
