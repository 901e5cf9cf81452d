package engine2D

import (
	"image/color"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-transform-preview/internal/engine2D/gesture"
	"video-transform-preview/internal/media"
	"video-transform-preview/internal/transform"
)

// memoryBackend stands in for the GPU: it hands out texture ids and counts
// uploads and releases.
type memoryBackend struct {
	nextID   uint32
	fail     bool
	updates  int
	unloaded []uint32
}

func (b *memoryBackend) Load(width, height int) rl.Texture2D {
	if b.fail {
		return rl.Texture2D{}
	}
	b.nextID++
	return rl.Texture2D{ID: b.nextID, Width: int32(width), Height: int32(height), Mipmaps: 1}
}

func (b *memoryBackend) Update(rl.Texture2D, []color.RGBA) {
	b.updates++
}

func (b *memoryBackend) Unload(texture rl.Texture2D) {
	b.unloaded = append(b.unloaded, texture.ID)
}

func testClip(name string, frames int) *media.Clip {
	clip := &media.Clip{Name: name, Width: 2, Height: 2}
	for i := 0; i < frames; i++ {
		clip.Frames = append(clip.Frames, media.Frame{
			Pixels: make([]color.RGBA, 4),
			Delay:  100 * time.Millisecond,
		})
	}
	return clip
}

var testOptions = Options{
	StageScalar:        transform.DefaultStageScalar,
	PositionMultiplier: transform.DefaultPositionMultiplier,
	DragDivisor:        300,
	ScaleDragDivisor:   300,
	OverlayPadding:     6,
	HandleSize:         14,
}

func newTestRenderer(t *testing.T, viewport rl.Rectangle) (*Renderer, *transform.Store, *memoryBackend) {
	t.Helper()
	store := transform.NewStore(transform.DefaultValues())
	backend := &memoryBackend{}
	r, err := newRenderer(store, testClip("primary", 2), testClip("secondary", 1), viewport, testOptions, backend)
	require.NoError(t, err)
	return r, store, backend
}

func TestRenderer_ResizeCentersStage(t *testing.T) {
	tests := []struct {
		name     string
		viewport rl.Rectangle
		want     transform.Stage
	}{
		{"at origin", rl.NewRectangle(0, 0, 1200, 850), transform.Stage{X: 200, Y: 200, Width: 800, Height: 450}},
		{"offset viewport", rl.NewRectangle(40, 30, 1200, 850), transform.Stage{X: 240, Y: 230, Width: 800, Height: 450}},
		{"exact fit", rl.NewRectangle(0, 0, 800, 450), transform.Stage{X: 0, Y: 0, Width: 800, Height: 450}},
	}

	r, _, _ := newTestRenderer(t, rl.NewRectangle(0, 0, 1600, 900))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Resize(tt.viewport)
			assert.Equal(t, tt.want, r.Stage)
			assert.Equal(t, tt.viewport, r.Viewport)

			r.Update(0)
			assert.Equal(t, transform.Vec2{X: tt.want.X, Y: tt.want.Y}, r.Latest.Position)
		})
	}
}

func TestRenderer_DragMovesVideo(t *testing.T) {
	r, store, _ := newTestRenderer(t, rl.NewRectangle(0, 0, 800, 450))

	r.PointerDown(transform.Vec2{X: 100, Y: 100})
	require.Equal(t, gesture.Moving, r.Gesture().Mode)

	r.PointerMove(transform.Vec2{X: 70, Y: 100})
	assert.InDelta(t, 49.9, store.Value(transform.ParamX), 1e-9)
	assert.Equal(t, 50.0, store.Value(transform.ParamY))

	r.Update(0)
	assert.InDelta(t, -0.6, r.Latest.Position.X, 1e-9)

	r.PointerUp()
	r.PointerMove(transform.Vec2{X: 0, Y: 0})
	assert.InDelta(t, 49.9, store.Value(transform.ParamX), 1e-9)
	assert.Equal(t, gesture.Idle, r.Gesture().Mode)
}

func TestRenderer_PointerDownOutsideViewportIsIgnored(t *testing.T) {
	r, store, _ := newTestRenderer(t, rl.NewRectangle(0, 0, 1200, 850))
	require.NoError(t, store.Set("x", 0)) // video now spans x in [-100, 700]
	r.Update(0)

	tests := []struct {
		name  string
		point transform.Vec2
		want  gesture.Mode
	}{
		{"on the video, left of the viewport", transform.Vec2{X: -50, Y: 300}, gesture.Idle},
		{"inside the viewport, off the video", transform.Vec2{X: 1000, Y: 100}, gesture.Idle},
		{"on the video inside the viewport", transform.Vec2{X: 300, Y: 300}, gesture.Moving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.PointerDown(tt.point)
			assert.Equal(t, tt.want, r.Gesture().Mode)
			r.PointerUp()
			assert.Equal(t, 0.0, store.Value(transform.ParamX))
		})
	}
}

func TestRenderer_UpdateAdvancesVideo(t *testing.T) {
	r, _, backend := newTestRenderer(t, rl.NewRectangle(0, 0, 800, 450))
	uploads := backend.updates

	r.Update(100 * time.Millisecond)
	assert.Equal(t, 1, r.Primary.Frame())
	assert.Equal(t, 0, r.Secondary.Frame())
	assert.Equal(t, uploads+1, backend.updates)
}

func TestRenderer_Dispose(t *testing.T) {
	r, store, backend := newTestRenderer(t, rl.NewRectangle(0, 0, 800, 450))
	r.PointerDown(transform.Vec2{X: 100, Y: 100})
	before := r.Latest

	r.Dispose()
	r.Dispose()
	assert.ElementsMatch(t, []uint32{1, 2}, backend.unloaded)
	assert.Equal(t, gesture.Idle, r.Gesture().Mode)

	require.NoError(t, store.Set("x", 80))
	r.Update(time.Second)
	r.Resize(rl.NewRectangle(10, 10, 1200, 850))
	r.PointerDown(transform.Vec2{X: 100, Y: 100})
	r.PointerMove(transform.Vec2{X: 0, Y: 0})
	r.PointerUp()
	r.Render()

	assert.Equal(t, before, r.Latest)
	assert.Equal(t, rl.NewRectangle(0, 0, 800, 450), r.Viewport)
	assert.Equal(t, gesture.Idle, r.Gesture().Mode)
	assert.Equal(t, 80.0, store.Value(transform.ParamX))
}

func TestNewRenderer_ResourceFailure(t *testing.T) {
	store := transform.NewStore(transform.DefaultValues())
	viewport := rl.NewRectangle(0, 0, 800, 450)

	t.Run("texture upload fails", func(t *testing.T) {
		backend := &memoryBackend{fail: true}
		_, err := newRenderer(store, testClip("a", 1), testClip("b", 1), viewport, testOptions, backend)
		assert.ErrorIs(t, err, ErrResource)
	})

	t.Run("empty secondary releases primary", func(t *testing.T) {
		backend := &memoryBackend{}
		_, err := newRenderer(store, testClip("a", 1), testClip("b", 0), viewport, testOptions, backend)
		assert.ErrorIs(t, err, ErrResource)
		assert.Equal(t, []uint32{1}, backend.unloaded)
	})

	t.Run("frame smaller than clip", func(t *testing.T) {
		clip := testClip("a", 1)
		clip.Frames[0].Pixels = clip.Frames[0].Pixels[:1]
		_, err := newRenderer(store, clip, testClip("b", 1), viewport, testOptions, &memoryBackend{})
		assert.ErrorIs(t, err, ErrResource)
	})
}

func TestMirrored(t *testing.T) {
	tests := []struct {
		name          string
		scaleX, angle float64
		want          bool
	}{
		{"neutral", 50, 50, false},
		{"rotated", 50, 100, false},
		{"negative width", -50, 50, true},
		{"zero width", 0, 50, false},
	}

	stage := transform.NewStage(1200, 850, transform.DefaultStageScalar)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := transform.DefaultValues()
			values[transform.ParamScaleX] = tc.scaleX
			values[transform.ParamAngle] = tc.angle

			rendered := transform.Compute(values, stage, transform.DefaultPositionMultiplier)
			quad := gesture.NewAffine(rendered).Quad(rendered.Width, rendered.Height, 0)
			assert.Equal(t, tc.want, mirrored(quad))
		})
	}
}
