package engine2D

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"video-transform-preview/internal/engine2D/gesture"
	"video-transform-preview/internal/media"
	"video-transform-preview/internal/transform"
	"video-transform-preview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// glQuads is RL_QUADS for rl.Begin.
const glQuads = 0x0007

// NewRenderer uploads both clips and lays the stage out in viewport. The
// window must already be open.
func NewRenderer(store *transform.Store, primary, secondary *media.Clip, viewport rl.Rectangle, options Options) (*Renderer, error) {
	return newRenderer(store, primary, secondary, viewport, options, glBackend{})
}

func newRenderer(store *transform.Store, primary, secondary *media.Clip, viewport rl.Rectangle, options Options, backend textureBackend) (*Renderer, error) {
	r := &Renderer{
		ID:      uuid.NewString(),
		store:   store,
		options: options,
		gestures: gesture.NewController(store, gesture.Config{
			DragDivisor:      options.DragDivisor,
			ScaleDragDivisor: options.ScaleDragDivisor,
		}),
	}

	var err error
	if r.Primary, err = newVideoTexture(primary, backend); err != nil {
		return nil, fmt.Errorf("primary video: %w", err)
	}
	if r.Secondary, err = newVideoTexture(secondary, backend); err != nil {
		r.Primary.Unload()
		return nil, fmt.Errorf("secondary video: %w", err)
	}

	r.Resize(viewport)
	r.Update(0)

	utils.Info("Renderer %s ready: stage %.0fx%.0f, primary %s, secondary %s",
		r.ID, r.Stage.Width, r.Stage.Height, primary.Name, secondary.Name)
	return r, nil
}

// Resize re-centers the stage and the mask hole in a new viewport.
func (r *Renderer) Resize(viewport rl.Rectangle) {
	if r.disposed {
		return
	}
	r.Viewport = viewport

	stage := transform.NewStage(float64(viewport.Width), float64(viewport.Height), r.options.StageScalar)
	stage.X += float64(viewport.X)
	stage.Y += float64(viewport.Y)
	r.Stage = stage

	utils.Debug("Renderer %s: viewport %.0fx%.0f, stage at (%.1f, %.1f)", r.ID, viewport.Width, viewport.Height, stage.X, stage.Y)
}

// Update is the per-frame tick. It polls the store rather than subscribing
// to it, so a dropped frame simply reads the latest values next time.
func (r *Renderer) Update(dt time.Duration) {
	if r.disposed {
		return
	}

	r.Latest = transform.Compute(r.store.Snapshot(), r.Stage, r.options.PositionMultiplier)

	r.Primary.Advance(dt)
	r.Secondary.Advance(dt)
}

// Layout returns the hit-test geometry for the current frame.
func (r *Renderer) Layout() gesture.Layout {
	return gesture.Layout{
		Matrix:     gesture.NewAffine(r.Latest),
		Width:      r.Latest.Width,
		Height:     r.Latest.Height,
		Padding:    r.options.OverlayPadding,
		HandleSize: r.options.HandleSize,
	}
}

func (r *Renderer) Gesture() gesture.State {
	return r.gestures.State()
}

// PointerDown starts a gesture if p is inside the viewport and over the
// video or the scale handle.
func (r *Renderer) PointerDown(p transform.Vec2) {
	if r.disposed || !r.contains(p) {
		return
	}
	h := r.Layout().HitTest(p)
	r.gestures.PointerDown(h, p)
	if r.gestures.Active() {
		utils.Debug("Renderer %s: %s gesture on %s at (%.0f, %.0f)", r.ID, r.gestures.State().Mode, h, p.X, p.Y)
	}
}

func (r *Renderer) PointerMove(p transform.Vec2) {
	if r.disposed {
		return
	}
	r.gestures.PointerMove(p)
}

// PointerUp ends the gesture wherever the pointer is.
func (r *Renderer) PointerUp() {
	if r.disposed {
		return
	}
	r.gestures.PointerUp()
}

func (r *Renderer) contains(p transform.Vec2) bool {
	return rl.CheckCollisionPointRec(rl.NewVector2(float32(p.X), float32(p.Y)), r.Viewport)
}

// Render draws every layer, clipped to the viewport.
func (r *Renderer) Render() {
	if r.disposed {
		return
	}

	vx, vy := int32(r.Viewport.X), int32(r.Viewport.Y)
	vw, vh := int32(r.Viewport.Width), int32(r.Viewport.Height)

	rl.BeginScissorMode(vx, vy, vw, vh)
	rl.DrawRectangleRec(r.Viewport, previewBackground)

	stageRec := r.stageRectangle()
	rl.DrawRectangleRec(stageRec, stageBackground)

	r.drawSecondary(stageRec)
	r.drawPrimary()
	r.drawMask(stageRec)
	r.drawOverlay()

	rl.EndScissorMode()
}

func (r *Renderer) stageRectangle() rl.Rectangle {
	return rl.NewRectangle(float32(r.Stage.X), float32(r.Stage.Y), float32(r.Stage.Width), float32(r.Stage.Height))
}

// drawSecondary fills the stage with the untransformed layer.
func (r *Renderer) drawSecondary(stageRec rl.Rectangle) {
	tex := r.Secondary.Texture
	sourceRec := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, sourceRec, stageRec, rl.NewVector2(0, 0), 0, rl.White)
}

// primaryTexCoords pairs with the corners returned by Quad.
var primaryTexCoords = [4]rl.Vector2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// drawPrimary emits the video as a single affine quad; DrawTexturePro cannot
// express skew. A mirrored quad (negative width or height) is emitted in
// reverse so it keeps raylib's front-face winding.
func (r *Renderer) drawPrimary() {
	quad := gesture.NewAffine(r.Latest).Quad(r.Latest.Width, r.Latest.Height, 0)

	order := [4]int{0, 1, 2, 3}
	if mirrored(quad) {
		order = [4]int{3, 2, 1, 0}
	}

	rl.SetTexture(r.Primary.Texture.ID)
	rl.Begin(glQuads)
	rl.Color4ub(255, 255, 255, 255)
	rl.Normal3f(0, 0, 1)

	for _, i := range order {
		rl.TexCoord2f(primaryTexCoords[i].X, primaryTexCoords[i].Y)
		rl.Vertex2f(float32(quad[i].X), float32(quad[i].Y))
	}

	rl.End()
	rl.SetTexture(0)
}

// mirrored reports whether the quad's winding is flipped relative to an
// unmirrored top-left, bottom-left, bottom-right, top-right quad.
func mirrored(quad [4]transform.Vec2) bool {
	down := transform.Vec2{X: quad[1].X - quad[0].X, Y: quad[1].Y - quad[0].Y}
	right := transform.Vec2{X: quad[3].X - quad[0].X, Y: quad[3].Y - quad[0].Y}
	return down.X*right.Y-down.Y*right.X > 0
}

// drawMask covers the viewport outside the stage, leaving a stage-shaped
// hole.
func (r *Renderer) drawMask(stageRec rl.Rectangle) {
	v := r.Viewport
	stageBottom := stageRec.Y + stageRec.Height
	stageRight := stageRec.X + stageRec.Width

	rl.DrawRectangleRec(rl.NewRectangle(v.X, v.Y, v.Width, stageRec.Y-v.Y), previewBackground)
	rl.DrawRectangleRec(rl.NewRectangle(v.X, stageBottom, v.Width, v.Y+v.Height-stageBottom), previewBackground)
	rl.DrawRectangleRec(rl.NewRectangle(v.X, stageRec.Y, stageRec.X-v.X, stageRec.Height), previewBackground)
	rl.DrawRectangleRec(rl.NewRectangle(stageRight, stageRec.Y, v.X+v.Width-stageRight, stageRec.Height), previewBackground)
}

// drawOverlay outlines the transformed video, padded outward, and draws the
// scale handle at its bottom-right corner.
func (r *Renderer) drawOverlay() {
	layout := r.Layout()
	quad := layout.Matrix.Quad(layout.Width, layout.Height, layout.Padding)

	for i := range quad {
		a, b := quad[i], quad[(i+1)%len(quad)]
		rl.DrawLineEx(
			rl.NewVector2(float32(a.X), float32(a.Y)),
			rl.NewVector2(float32(b.X), float32(b.Y)),
			2, overlayColor,
		)
	}

	handle := layout.ScaleHandle()
	fill := handleFill
	if r.gestures.State().Mode == gesture.Scaling {
		fill = handleActive
	}
	center := rl.NewVector2(float32(handle.X), float32(handle.Y))
	rl.DrawCircleV(center, float32(layout.HandleSize/2), fill)
	rl.DrawCircleLines(int32(handle.X), int32(handle.Y), float32(layout.HandleSize/2), overlayColor)
}

// Dispose releases both video textures. Later calls to Update, Render and
// the pointer methods do nothing; calling Dispose again is safe.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.gestures.PointerUp()
	r.Primary.Unload()
	r.Secondary.Unload()
	utils.Debug("Renderer %s disposed", r.ID)
}
