package core_test

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// recorder is a Listener that keeps every event it receives.
type recorder struct {
	Events []core.GameEvent
}

func (r *recorder) OnGameEvent(ev core.GameEvent) {
	r.Events = append(r.Events, ev)
}

// Types returns the recorded event types in order.
func (r *recorder) Types() []core.GameEventType {
	out := make([]core.GameEventType, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Type
	}
	return out
}

// Count returns how many events of type t were recorded.
func (r *recorder) Count(t core.GameEventType) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) Reset() {
	r.Events = r.Events[:0]
}
