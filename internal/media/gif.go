package media

import (
	"image"
	"image/draw"
	"image/gif"
	"os"
	"time"
)

// decodeGIF composites every GIF frame onto the logical screen, honoring the
// per-frame disposal method, so each Frame is a full picture.
func decodeGIF(path string, frameRate float64) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	width, height := g.Config.Width, g.Config.Height
	if width == 0 || height == 0 {
		b := g.Image[0].Bounds()
		width, height = b.Max.X, b.Max.Y
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	clip := &Clip{Width: width, Height: height, Frames: make([]Frame, 0, len(g.Image))}

	for i, paletted := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(canvas.Rect)
			copy(previous.Pix, canvas.Pix)
		}

		draw.Draw(canvas, paletted.Bounds(), paletted, paletted.Bounds().Min, draw.Over)

		delay := frameDelay(frameRate)
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		clip.Frames = append(clip.Frames, Frame{Pixels: toPixels(canvas), Delay: delay})

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, paletted.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			copy(canvas.Pix, previous.Pix)
		}
	}

	return clip, nil
}
