package debug

import (
	"fmt"
	"time"

	"video-transform-preview/internal/input"
	"video-transform-preview/internal/transform"
	"video-transform-preview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sliderMin  = 0.0
	sliderMax  = 100.0
	sliderStep = 0.1

	doubleClickWindow = 350 * time.Millisecond
)

// SliderPanel is the sidebar: one slider per transform parameter. It holds
// no transform state of its own; every frame it reads the store, and a drag
// writes only the dragged slider's key.
type SliderPanel struct {
	Bounds rl.Rectangle

	store  *transform.Store
	params []transform.Param
	font   rl.Font

	fontHeight int
	rowHeight  int
	padding    int

	active    int
	lastPress time.Time
	lastIndex int
}

func NewSliderPanel(store *transform.Store, font rl.Font) *SliderPanel {
	return &SliderPanel{
		store:      store,
		params:     transform.Params(),
		font:       font,
		fontHeight: 16,
		rowHeight:  56,
		padding:    20,
		active:     -1,
		lastIndex:  -1,
	}
}

// SetBounds places the panel; called on window resize.
func (p *SliderPanel) SetBounds(bounds rl.Rectangle) {
	p.Bounds = bounds
}

// track returns the hit and draw rectangle of slider i.
func (p *SliderPanel) track(i int) rl.Rectangle {
	top := p.Bounds.Y + float32(p.padding+p.fontHeight*2) + float32(i*p.rowHeight)
	return rl.NewRectangle(
		p.Bounds.X+float32(p.padding),
		top+float32(p.fontHeight)+6,
		p.Bounds.Width-float32(p.padding*2),
		10,
	)
}

// hit returns the slider under pos, with some vertical slack so the thin
// track is easy to grab.
func (p *SliderPanel) hit(pos transform.Vec2) int {
	point := rl.NewVector2(float32(pos.X), float32(pos.Y))
	for i := range p.params {
		t := p.track(i)
		grab := rl.NewRectangle(t.X-6, t.Y-8, t.Width+12, t.Height+16)
		if rl.CheckCollisionPointRec(point, grab) {
			return i
		}
	}
	return -1
}

// Dragging reports whether a slider currently owns the pointer.
func (p *SliderPanel) Dragging() bool {
	return p.active >= 0
}

// Update consumes this frame's pointer events.
func (p *SliderPanel) Update(ev input.Events, now time.Time) {
	if ev.Pressed {
		i := p.hit(ev.Position)
		if i >= 0 {
			if i == p.lastIndex && now.Sub(p.lastPress) <= doubleClickWindow {
				p.write(i, transform.Neutral)
				p.lastIndex = -1
				return
			}
			p.lastIndex, p.lastPress = i, now
			p.active = i
		}
	}

	if p.active >= 0 && (ev.Pressed || ev.Moved) {
		v := sliderValue(ev.Position.X, p.track(p.active), sliderMin, sliderMax, sliderStep)
		p.write(p.active, v)
	}

	if ev.Released {
		p.active = -1
	}
}

func (p *SliderPanel) write(i int, v float64) {
	name := p.params[i].String()
	current, err := p.store.Get(name)
	if err != nil {
		utils.Error("Slider %s: %v", name, err)
		return
	}
	if current == v {
		return
	}
	if err := p.store.Set(name, v); err != nil {
		utils.Error("Slider %s: %v", name, err)
	}
}

func (p *SliderPanel) Draw() {
	rl.DrawRectangleRec(p.Bounds, rl.NewColor(22, 22, 24, 255))
	rl.DrawLineEx(rl.NewVector2(p.Bounds.X, p.Bounds.Y), rl.NewVector2(p.Bounds.X, p.Bounds.Y+p.Bounds.Height), 1, rl.NewColor(60, 60, 64, 255))

	ui := NewUIContext(int(p.Bounds.X)+p.padding, int(p.Bounds.Y)+p.padding, p.fontHeight*2, p.fontHeight+4, p.font)
	ui.Header("Transforms")

	for i, param := range p.params {
		name := param.String()
		value, err := p.store.Get(name)
		if err != nil {
			continue
		}
		t := p.track(i)

		label := NewUIContext(int(t.X), int(t.Y)-p.fontHeight-6, p.fontHeight, p.fontHeight, p.font)
		label.drawText(name, int32(label.X), int32(label.Y), rl.LightGray)
		readout := fmt.Sprintf("%.1f", value)
		label.drawText(readout, int32(t.X+t.Width)-int32(len(readout)*p.fontHeight/2), int32(label.Y), rl.White)

		rl.DrawRectangleRounded(t, 1, 6, rl.NewColor(60, 60, 64, 255))
		thumbX := sliderPosition(value, t, sliderMin, sliderMax)
		filled := rl.NewRectangle(t.X, t.Y, thumbX-t.X, t.Height)
		rl.DrawRectangleRounded(filled, 1, 6, rl.NewColor(90, 160, 255, 255))

		thumb := rl.White
		if i == p.active {
			thumb = rl.NewColor(190, 220, 255, 255)
		}
		rl.DrawCircleV(rl.NewVector2(thumbX, t.Y+t.Height/2), t.Height, thumb)
	}

	footer := NewUIContext(int(p.Bounds.X)+p.padding, int(p.Bounds.Y+p.Bounds.Height)-p.padding-2*(p.fontHeight+4), p.fontHeight+4, p.fontHeight, p.font)
	footer.Label("Double-click: reset slider")
	footer.Label("R: reset all   F8: inspector")
}
