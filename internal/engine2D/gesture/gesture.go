// Package gesture turns pointer input on the preview into transform store
// writes. It has no rendering dependencies.
package gesture

import (
	"math"

	"video-transform-preview/internal/transform"
)

type Mode int

const (
	Idle Mode = iota
	Moving
	Scaling
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Scaling:
		return "scaling"
	}
	return "unknown"
}

// Handle identifies what a pointer-down landed on.
type Handle int

const (
	HandleNone Handle = iota
	HandleBody
	HandleScale
)

func (h Handle) String() string {
	switch h {
	case HandleNone:
		return "none"
	case HandleBody:
		return "body"
	case HandleScale:
		return "scale"
	}
	return "unknown"
}

// State is the renderer-local record of the active gesture.
type State struct {
	Mode Mode
	// Origin is the pointer position at pointer-down.
	Origin transform.Vec2
	// Initial holds the store values captured at pointer-down.
	Initial transform.Vec2
}

// Config holds the drag sensitivities: a pointer delta is divided by these
// before being applied to the store.
type Config struct {
	DragDivisor      float64
	ScaleDragDivisor float64
}

// binding ties a handle to the gesture it starts. New handles (corner
// scaling, rotation) are added here without touching the state machine.
type binding struct {
	mode    Mode
	capture func(s *transform.Store) transform.Vec2
	apply   func(s *transform.Store, c Config, initial, delta transform.Vec2)
}

var bindings = map[Handle]binding{
	HandleBody: {
		mode: Moving,
		capture: func(s *transform.Store) transform.Vec2 {
			return transform.Vec2{X: s.Value(transform.ParamX), Y: s.Value(transform.ParamY)}
		},
		apply: func(s *transform.Store, c Config, initial, delta transform.Vec2) {
			s.SetValue(transform.ParamX, initial.X-delta.X/c.DragDivisor)
			s.SetValue(transform.ParamY, initial.Y-delta.Y/c.DragDivisor)
		},
	},
	HandleScale: {
		mode: Scaling,
		capture: func(s *transform.Store) transform.Vec2 {
			return transform.Vec2{X: s.Value(transform.ParamScaleX), Y: s.Value(transform.ParamScaleY)}
		},
		// Only the horizontal axis follows the handle.
		apply: func(s *transform.Store, c Config, initial, delta transform.Vec2) {
			s.SetValue(transform.ParamScaleX, initial.X+delta.X/c.ScaleDragDivisor)
		},
	},
}

// Controller runs the Idle/Moving/Scaling state machine against a store.
type Controller struct {
	store  *transform.Store
	config Config
	state  State
	handle Handle
}

func NewController(store *transform.Store, config Config) *Controller {
	return &Controller{store: store, config: config}
}

func (c *Controller) State() State {
	return c.state
}

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool {
	return c.state.Mode != Idle
}

// PointerDown starts the gesture bound to h. Pressing on nothing, or
// pressing again while a gesture is active, is ignored.
func (c *Controller) PointerDown(h Handle, p transform.Vec2) {
	if c.Active() {
		return
	}
	b, ok := bindings[h]
	if !ok {
		return
	}
	c.handle = h
	c.state = State{
		Mode:    b.mode,
		Origin:  p,
		Initial: b.capture(c.store),
	}
}

// PointerMove applies the delta since pointer-down. It is a no-op while Idle.
func (c *Controller) PointerMove(p transform.Vec2) {
	if !c.Active() {
		return
	}
	delta := transform.Vec2{X: c.state.Origin.X - p.X, Y: c.state.Origin.Y - p.Y}
	bindings[c.handle].apply(c.store, c.config, c.state.Initial, delta)
}

// PointerUp ends any gesture. Releasing with nothing active is a no-op.
func (c *Controller) PointerUp() {
	c.state = State{}
	c.handle = HandleNone
}

// Layout is the on-screen geometry of the transformed layer and its control
// overlay, used for hit testing.
type Layout struct {
	Matrix     Affine
	Width      float64
	Height     float64
	Padding    float64
	HandleSize float64
}

// ScaleHandle returns the viewport position of the scale handle: the
// overlay's bottom-right corner.
func (l Layout) ScaleHandle() transform.Vec2 {
	_, x := outset(l.Width, l.Padding)
	_, y := outset(l.Height, l.Padding)
	return l.Matrix.Apply(transform.Vec2{X: x, Y: y})
}

// HitTest reports which handle lies under p. The scale handle wins over the
// layer body where they overlap.
func (l Layout) HitTest(p transform.Vec2) Handle {
	handle := l.ScaleHandle()
	if math.Hypot(p.X-handle.X, p.Y-handle.Y) <= l.HandleSize/2 {
		return HandleScale
	}

	local, ok := l.Matrix.Invert(p)
	if !ok {
		return HandleNone
	}
	if within(local.X, 0, l.Width) && within(local.Y, 0, l.Height) {
		return HandleBody
	}
	return HandleNone
}

// within tolerates a negative extent, as produced by scale values below 0.
func within(v, a, b float64) bool {
	return v >= math.Min(a, b) && v <= math.Max(a, b)
}
