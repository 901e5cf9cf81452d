// Package input polls the pointer once per frame and turns the samples into
// press, move and release events.
package input

import "video-transform-preview/internal/transform"

// State is one pointer sample in window coordinates.
type State struct {
	Position transform.Vec2
	Down     bool
}

// Source supplies pointer samples. Poll is called once per frame from the
// render goroutine.
type Source interface {
	Poll() (State, error)
	Close() error
}

// Events are the edges between two consecutive samples.
type Events struct {
	Position transform.Vec2
	Pressed  bool
	Released bool
	Moved    bool
}

// Tracker remembers the previous sample to detect edges.
type Tracker struct {
	prev    State
	started bool
}

func (t *Tracker) Next(s State) Events {
	ev := Events{Position: s.Position}
	if t.started {
		ev.Pressed = s.Down && !t.prev.Down
		ev.Released = !s.Down && t.prev.Down
		ev.Moved = s.Position != t.prev.Position
	} else {
		ev.Pressed = s.Down
	}
	t.prev = s
	t.started = true
	return ev
}
