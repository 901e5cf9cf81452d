package main

import (
	"time"

	"video-transform-preview/internal/config"
	"video-transform-preview/internal/debug"
	"video-transform-preview/internal/engine2D"
	"video-transform-preview/internal/engine2D/gesture"
	"video-transform-preview/internal/input"
	"video-transform-preview/internal/media"
	"video-transform-preview/internal/transform"
	"video-transform-preview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window lays out the preview on the left and the slider sidebar on the
// right, and drives both from one frame loop.
type Window struct {
	cfg   config.Config
	store *transform.Store

	renderer  *engine2D.Renderer
	sidebar   *debug.SliderPanel
	inspector *debug.Inspector
	font      rl.Font

	pointer       input.Source
	tracker       input.Tracker
	lastFrameTime time.Time
}

func NewWindow(cfg config.Config, store *transform.Store, primary, secondary *media.Clip, pointer input.Source) (*Window, error) {
	font := debug.LoadFont()

	window := &Window{
		cfg:           cfg,
		store:         store,
		font:          font,
		sidebar:       debug.NewSliderPanel(store, font),
		inspector:     debug.NewInspector(font),
		pointer:       pointer,
		lastFrameTime: time.Now(),
	}

	preview, sidebar := window.layout()
	window.sidebar.SetBounds(sidebar)

	renderer, err := engine2D.NewRenderer(store, primary, secondary, preview, engine2D.Options{
		StageScalar:        cfg.Stage.Scalar,
		PositionMultiplier: cfg.Renderer.PositionMultiplier,
		DragDivisor:        cfg.Renderer.DragDivisor,
		ScaleDragDivisor:   cfg.Renderer.ScaleDragDivisor,
		OverlayPadding:     cfg.Renderer.OverlayPadding,
		HandleSize:         cfg.Renderer.HandleSize,
	})
	if err != nil {
		rl.UnloadFont(font)
		return nil, err
	}
	window.renderer = renderer

	return window, nil
}

// layout splits the screen into the preview area and the sidebar.
func (window *Window) layout() (preview, sidebar rl.Rectangle) {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	sidebarWidth := float32(window.cfg.Window.SidebarWidth)
	if sidebarWidth > screenWidth {
		sidebarWidth = screenWidth
	}

	preview = rl.NewRectangle(0, 0, screenWidth-sidebarWidth, screenHeight)
	sidebar = rl.NewRectangle(screenWidth-sidebarWidth, 0, sidebarWidth, screenHeight)
	return preview, sidebar
}

func (window *Window) Run() {
	rl.SetTargetFPS(int32(window.cfg.Window.FPS))

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

// Update handles resize, then pointer input, then the renderer tick, so the
// tick always sees this frame's store writes.
func (window *Window) Update() {
	currentTime := time.Now()
	deltaTime := currentTime.Sub(window.lastFrameTime)
	window.lastFrameTime = currentTime

	if rl.IsWindowResized() {
		preview, sidebar := window.layout()
		window.renderer.Resize(preview)
		window.sidebar.SetBounds(sidebar)
	}

	window.handlePointer(currentTime)

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	if rl.IsKeyPressed(rl.KeyR) && window.renderer.Gesture().Mode == gesture.Idle && !window.sidebar.Dragging() {
		window.resetTransforms()
	}

	window.renderer.Update(deltaTime)

	if utils.ShowDebugUI {
		window.inspector.Update()
	}
}

func (window *Window) handlePointer(now time.Time) {
	state, err := window.pointer.Poll()
	if err != nil {
		utils.Warn("Pointer: %v", err)
		return
	}
	ev := window.tracker.Next(state)

	if ev.Pressed {
		window.renderer.PointerDown(ev.Position)
	}
	if ev.Moved {
		window.renderer.PointerMove(ev.Position)
	}
	if ev.Released {
		window.renderer.PointerUp()
	}

	window.sidebar.Update(ev, now)
}

func (window *Window) resetTransforms() {
	for _, p := range transform.Params() {
		if window.store.Value(p) != transform.Neutral {
			window.store.SetValue(p, transform.Neutral)
		}
	}
	utils.Info("Transforms reset")
}

func (window *Window) Draw() {
	rl.ClearBackground(rl.Black)

	window.renderer.Render()
	window.sidebar.Draw()

	if utils.ShowDebugUI {
		window.inspector.Draw(window.renderer)
	}
}

func (window *Window) Close() {
	window.renderer.Dispose()
	rl.UnloadFont(window.font)
}
