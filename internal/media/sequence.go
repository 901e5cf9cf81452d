package media

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"video-transform-preview/internal/utils"
)

var sequenceExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// decodeSequence reads a directory of numbered frames. Files are ordered by
// name and decoded in parallel; every frame must match the first one's size.
func decodeSequence(dir string, frameRate float64) (*Clip, error) {
	files, err := utils.ListFiles(dir, sequenceExtensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFrames
	}

	images := make([]image.Image, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			img, err := decodeImageFile(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	first := images[0].Bounds()
	clip := &Clip{Width: first.Dx(), Height: first.Dy(), Frames: make([]Frame, len(images))}
	delay := frameDelay(frameRate)

	for i, img := range images {
		b := img.Bounds()
		if b.Dx() != clip.Width || b.Dy() != clip.Height {
			return nil, fmt.Errorf("%s is %dx%d, want %dx%d: %w", files[i], b.Dx(), b.Dy(), clip.Width, clip.Height, ErrFrameSize)
		}
		clip.Frames[i] = Frame{Pixels: toPixels(img), Delay: delay}
	}

	return clip, nil
}
