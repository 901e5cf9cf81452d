package engine2D

import (
	"fmt"
	"image/color"
	"time"

	"video-transform-preview/internal/media"
	"video-transform-preview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// glBackend uploads through raylib and needs an open window.
type glBackend struct{}

func (glBackend) Load(width, height int) rl.Texture2D {
	img := rl.GenImageColor(width, height, rl.Blank)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if texture.ID != 0 {
		rl.SetTextureFilter(texture, rl.FilterBilinear)
	}
	return texture
}

func (glBackend) Update(texture rl.Texture2D, pixels []color.RGBA) {
	rl.UpdateTexture(texture, pixels)
}

func (glBackend) Unload(texture rl.Texture2D) {
	rl.UnloadTexture(texture)
}

// newVideoTexture uploads the first frame of clip. With glBackend it must be
// called on the render goroutine after the window exists.
func newVideoTexture(clip *media.Clip, backend textureBackend) (*VideoTexture, error) {
	if clip == nil || len(clip.Frames) == 0 {
		return nil, fmt.Errorf("%w: empty clip", ErrResource)
	}
	for i, frame := range clip.Frames {
		if len(frame.Pixels) != clip.Width*clip.Height {
			return nil, fmt.Errorf("%w: %s frame %d has %d pixels, want %dx%d", ErrResource, clip.Name, i, len(frame.Pixels), clip.Width, clip.Height)
		}
	}

	texture := backend.Load(clip.Width, clip.Height)
	if texture.ID == 0 {
		return nil, fmt.Errorf("%w: texture for %s (%dx%d)", ErrResource, clip.Name, clip.Width, clip.Height)
	}
	backend.Update(texture, clip.Frames[0].Pixels)

	utils.Debug("Video %s: texture %d, %d frames", clip.Name, texture.ID, len(clip.Frames))

	return &VideoTexture{
		Clip:    clip,
		Texture: texture,
		backend: backend,
		player:  media.NewPlayer(clip.Delays()),
		loaded:  true,
	}, nil
}

// Advance plays the clip forward and re-uploads the texture only when the
// visible frame changes.
func (v *VideoTexture) Advance(dt time.Duration) {
	if !v.loaded {
		return
	}
	if v.player.Advance(dt) {
		v.backend.Update(v.Texture, v.Clip.Frames[v.player.Index()].Pixels)
	}
}

func (v *VideoTexture) Frame() int {
	return v.player.Index()
}

func (v *VideoTexture) Unload() {
	if !v.loaded {
		return
	}
	v.backend.Unload(v.Texture)
	v.loaded = false
}
