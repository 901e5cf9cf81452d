package debug

import (
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var fontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

// LoadFont loads the first available system font, or raylib's default.
func LoadFont() rl.Font {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			font := rl.LoadFontEx(path, 64, nil, 0)
			rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
			return font
		}
	}
	return rl.GetFontDefault()
}

type UIContext struct {
	X, Y       int
	BaseX      int
	LineHeight int
	FontHeight int
	Font       rl.Font
}

func NewUIContext(x, y, lineHeight, fontHeight int, font rl.Font) *UIContext {
	return &UIContext{
		X:          x,
		Y:          y,
		BaseX:      x,
		LineHeight: lineHeight,
		FontHeight: fontHeight,
		Font:       font,
	}
}

func (ui *UIContext) drawText(text string, x, y int32, color rl.Color) {
	if ui.Font.BaseSize > 0 {
		rl.DrawTextEx(ui.Font, text, rl.NewVector2(float32(x), float32(y)), float32(ui.FontHeight), 1, color)
	} else {
		rl.DrawText(text, x, y, int32(ui.FontHeight), color)
	}
}

func (ui *UIContext) Label(text string) {
	ui.drawText(text, int32(ui.X), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) IndentLabel(text string, indent int) {
	ui.drawText(text, int32(ui.X+indent), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) Separator() {
	ui.Y += ui.LineHeight / 2
}

func (ui *UIContext) Header(text string) {
	ui.drawText(text, int32(ui.X), int32(ui.Y), rl.NewColor(160, 200, 255, 255))
	ui.Y += ui.LineHeight
}

// sliderValue maps a pointer x onto [min,max] along the track, snapped to
// step and clamped to the range.
func sliderValue(pointerX float64, track rl.Rectangle, min, max, step float64) float64 {
	if track.Width <= 0 {
		return min
	}
	t := (pointerX - float64(track.X)) / float64(track.Width)
	v := min + t*(max-min)
	if step > 0 {
		v = math.Round(v/step) * step
		// Snapping leaves binary noise (e.g. 49.900000000000006); trim it to
		// the step's precision.
		v = math.Round(v*1e6) / 1e6
	}
	return clamp(v, min, max)
}

// sliderPosition is the thumb's x for value v; out-of-range values pin to
// the ends of the track.
func sliderPosition(v float64, track rl.Rectangle, min, max float64) float32 {
	if max <= min {
		return track.X
	}
	t := (clamp(v, min, max) - min) / (max - min)
	return track.X + float32(t)*track.Width
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
