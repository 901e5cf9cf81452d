// Package media decodes the looping, silent video layers shown in the
// preview. A clip is decoded fully into memory up front and then played back
// frame by frame on the render goroutine.
package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"video-transform-preview/internal/utils"
)

var (
	ErrNoFrames    = errors.New("clip has no frames")
	ErrFrameSize   = errors.New("frame size differs from first frame")
	ErrUnsupported = errors.New("unsupported clip format")
)

// Frame is one decoded picture, row-major and ready for texture upload.
type Frame struct {
	Pixels []color.RGBA
	Delay  time.Duration
}

type Clip struct {
	Name   string
	Width  int
	Height int
	Frames []Frame
}

// Delays returns the per-frame display durations in order.
func (c *Clip) Delays() []time.Duration {
	delays := make([]time.Duration, len(c.Frames))
	for i, f := range c.Frames {
		delays[i] = f.Delay
	}
	return delays
}

func frameDelay(frameRate float64) time.Duration {
	if frameRate <= 0 {
		return time.Second / 30
	}
	return time.Duration(float64(time.Second) / frameRate)
}

// Open decodes the clip at path. Directories are read as image sequences,
// .gif as animated GIF, .tex as a Wallpaper Engine texture; anything else is
// decoded as a single still frame that loops forever.
func Open(path string, frameRate float64) (*Clip, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var clip *Clip
	switch {
	case info.IsDir():
		clip, err = decodeSequence(path, frameRate)
	case strings.EqualFold(filepath.Ext(path), ".gif"):
		clip, err = decodeGIF(path, frameRate)
	case strings.EqualFold(filepath.Ext(path), ".tex"):
		clip, err = decodeTex(path, frameRate)
	default:
		clip, err = decodeStill(path, frameRate)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if len(clip.Frames) == 0 {
		return nil, fmt.Errorf("decoding %s: %w", path, ErrNoFrames)
	}

	clip.Name = filepath.Base(path)
	utils.Debug("Decoded clip %s: %dx%d, %d frames", clip.Name, clip.Width, clip.Height, len(clip.Frames))
	return clip, nil
}

// OpenAll decodes every path concurrently. The result keeps the order of
// paths; the first failure cancels the rest.
func OpenAll(ctx context.Context, paths []string, frameRate float64) ([]*Clip, error) {
	clips := make([]*Clip, len(paths))
	g, ctx := errgroup.WithContext(ctx)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			clip, err := Open(p, frameRate)
			if err != nil {
				return err
			}
			clips[i] = clip
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return clips, nil
}

func decodeStill(path string, frameRate float64) (*Clip, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Clip{
		Width:  b.Dx(),
		Height: b.Dy(),
		Frames: []Frame{{Pixels: toPixels(img), Delay: frameDelay(frameRate)}},
	}, nil
}

// toPixels flattens img into row-major RGBA starting at its bounds' origin.
func toPixels(img image.Image) []color.RGBA {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != b.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	}

	pixels := make([]color.RGBA, b.Dx()*b.Dy())
	for i := range pixels {
		o := i * 4
		pixels[i] = color.RGBA{R: rgba.Pix[o], G: rgba.Pix[o+1], B: rgba.Pix[o+2], A: rgba.Pix[o+3]}
	}
	return pixels
}
