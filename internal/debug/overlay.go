package debug

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"video-transform-preview/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Inspector is the F8 overlay: timing, memory and the live transform
// pipeline values of one renderer.
type Inspector struct {
	font       rl.Font
	fontHeight int
	lineHeight int
	width      int

	ShowBoundingBox bool

	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

func NewInspector(font rl.Font) *Inspector {
	return &Inspector{
		font:            font,
		fontHeight:      14,
		lineHeight:      20,
		width:           360,
		ShowBoundingBox: true,
		lastUpdateTime:  time.Now(),
	}
}

func (d *Inspector) Update() {
	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.fps = float64(d.frameCount) / now.Sub(d.lastUpdateTime).Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}
}

func (d *Inspector) Draw(r *engine2D.Renderer) {
	if d.ShowBoundingBox {
		d.drawBoundingBox(r)
	}

	x, y := int32(r.Viewport.X)+10, int32(r.Viewport.Y)+10
	rl.DrawRectangle(x-6, y-6, int32(d.width), int32(d.lineHeight*21), rl.NewColor(0, 0, 0, 190))

	ui := NewUIContext(int(x), int(y), d.lineHeight, d.fontHeight, d.font)

	ui.Header("Timing")
	ui.IndentLabel(fmt.Sprintf("FPS: %.1f (measured %.1f)", float64(rl.GetFPS()), d.fps), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024), 10)
	ui.Separator()

	ui.Header("Preview")
	ui.IndentLabel(fmt.Sprintf("Renderer: %s", r.ID[:8]), 10)
	ui.IndentLabel(fmt.Sprintf("Viewport: %.0fx%.0f", r.Viewport.Width, r.Viewport.Height), 10)
	ui.IndentLabel(fmt.Sprintf("Stage: %.0fx%.0f at (%.1f, %.1f)", r.Stage.Width, r.Stage.Height, r.Stage.X, r.Stage.Y), 10)
	ui.IndentLabel(fmt.Sprintf("Primary: %s frame %d/%d", r.Primary.Clip.Name, r.Primary.Frame()+1, len(r.Primary.Clip.Frames)), 10)
	ui.IndentLabel(fmt.Sprintf("Secondary: %s frame %d/%d", r.Secondary.Clip.Name, r.Secondary.Frame()+1, len(r.Secondary.Clip.Frames)), 10)
	ui.Separator()

	latest := r.Latest
	ui.Header("Rendered Transform")
	ui.IndentLabel(fmt.Sprintf("Position: (%.1f, %.1f)", latest.Position.X, latest.Position.Y), 10)
	ui.IndentLabel(fmt.Sprintf("Rotation: %.2f deg", latest.Rotation), 10)
	ui.IndentLabel(fmt.Sprintf("Skew: (%.3f, %.3f) rad", latest.Skew.X, latest.Skew.Y), 10)
	ui.IndentLabel(fmt.Sprintf("Size: %.1f x %.1f", latest.Width, latest.Height), 10)
	ui.Separator()

	g := r.Gesture()
	ui.Header("Gesture")
	ui.IndentLabel(fmt.Sprintf("Mode: %s", g.Mode), 10)
	ui.IndentLabel(fmt.Sprintf("Origin: (%.0f, %.0f)", g.Origin.X, g.Origin.Y), 10)
	ui.IndentLabel(fmt.Sprintf("Initial: (%.2f, %.2f)", g.Initial.X, g.Initial.Y), 10)
}

// drawBoundingBox outlines the axis-aligned bounds of the transformed video
// and marks its anchor.
func (d *Inspector) drawBoundingBox(r *engine2D.Renderer) {
	layout := r.Layout()
	quad := layout.Matrix.Quad(layout.Width, layout.Height, 0)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range quad {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	rl.DrawRectangleLines(int32(minX), int32(minY), int32(maxX-minX), int32(maxY-minY), rl.NewColor(255, 255, 0, 255))
	rl.DrawRectangle(int32(quad[0].X-2), int32(quad[0].Y-2), 4, 4, rl.Red)
}
