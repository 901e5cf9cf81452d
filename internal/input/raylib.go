package input

import (
	"video-transform-preview/internal/transform"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibPointer reads the pointer through the window. Releases outside the
// window are still reported while the button is captured by the window.
type RaylibPointer struct{}

func NewRaylibPointer() *RaylibPointer {
	return &RaylibPointer{}
}

func (RaylibPointer) Poll() (State, error) {
	pos := rl.GetMousePosition()
	return State{
		Position: transform.Vec2{X: float64(pos.X), Y: float64(pos.Y)},
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
	}, nil
}

func (RaylibPointer) Close() error { return nil }
