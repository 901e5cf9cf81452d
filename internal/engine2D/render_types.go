package engine2D

import (
	"errors"
	"image/color"

	"video-transform-preview/internal/engine2D/gesture"
	"video-transform-preview/internal/media"
	"video-transform-preview/internal/transform"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrResource wraps failures to acquire the surface or a video texture.
// They are fatal to the renderer instance and are not retried.
var ErrResource = errors.New("renderer resource unavailable")

var (
	previewBackground = rl.NewColor(30, 30, 32, 255)
	stageBackground   = rl.Black
	overlayColor      = rl.NewColor(220, 220, 224, 255)
	handleFill        = rl.NewColor(250, 250, 250, 255)
	handleActive      = rl.NewColor(90, 160, 255, 255)
)

// Options configures a Renderer.
type Options struct {
	StageScalar        float64
	PositionMultiplier float64
	DragDivisor        float64
	ScaleDragDivisor   float64
	OverlayPadding     float64
	HandleSize         float64
}

// Renderer draws the preview: a fixed-aspect stage with a static secondary
// video, a transformed primary video, a mask hiding everything outside the
// stage, and the control overlay.
type Renderer struct {
	ID string

	Viewport rl.Rectangle
	Stage    transform.Stage
	Latest   transform.Rendered

	store    *transform.Store
	options  Options
	gestures *gesture.Controller

	Primary   *VideoTexture
	Secondary *VideoTexture

	disposed bool
}

// VideoTexture is a looping clip streamed into a single GPU texture.
type VideoTexture struct {
	Clip    *media.Clip
	Texture rl.Texture2D
	backend textureBackend
	player  *media.Player
	loaded  bool
}

// textureBackend owns the GPU side of a VideoTexture.
type textureBackend interface {
	Load(width, height int) rl.Texture2D
	Update(texture rl.Texture2D, pixels []color.RGBA)
	Unload(texture rl.Texture2D)
}
