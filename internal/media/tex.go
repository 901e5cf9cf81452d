package media

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"

	"video-transform-preview/internal/utils"
)

const (
	texMagic = "TEXV0005"

	texFormatDXT5 = 4
	texFormatDXT1 = 7
	texFormatRG88 = 8
	texFormatR8   = 9
)

// texReader reads little-endian fields and keeps the first error so a
// header can be parsed without checking every field. No single read may
// claim more than limit bytes, the size of the whole input.
type texReader struct {
	r     io.Reader
	limit int64
	err   error
}

func (t *texReader) uint32() uint32 {
	if t.err != nil {
		return 0
	}
	var v uint32
	t.err = binary.Read(t.r, binary.LittleEndian, &v)
	return v
}

// magic reads a fixed-size NUL-terminated tag.
func (t *texReader) magic() string {
	if t.err != nil {
		return ""
	}
	b := make([]byte, 9)
	_, t.err = io.ReadFull(t.r, b)
	return string(bytes.Trim(b, "\x00"))
}

func (t *texReader) bytes(n uint32) []byte {
	if t.err != nil {
		return nil
	}
	if int64(n) > t.limit {
		t.err = fmt.Errorf("%d byte block in %d byte input: %w", n, t.limit, io.ErrUnexpectedEOF)
		return nil
	}
	b := make([]byte, n)
	_, t.err = io.ReadFull(t.r, b)
	return b
}

// decodeTex reads a TEXV0005 container. Every image in the container becomes
// one frame; only the top mipmap of each image is decoded.
func decodeTex(path string, frameRate float64) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return readTex(bufio.NewReader(f), info.Size(), frameRate)
}

// readTex decodes a container of size bytes from r.
func readTex(r io.Reader, size int64, frameRate float64) (*Clip, error) {
	t := &texReader{r: r, limit: size}

	if m := t.magic(); t.err == nil && m != texMagic {
		return nil, fmt.Errorf("invalid magic %q: %w", m, ErrUnsupported)
	}
	t.magic()

	format := t.uint32()
	t.uint32() // flags
	t.uint32() // texture width
	t.uint32() // texture height
	imgW := t.uint32()
	imgH := t.uint32()
	t.uint32()

	container := t.magic()
	imageCount := t.uint32()
	if container == "TEXB0003" {
		t.uint32() // freeimage format
	}
	if t.err != nil {
		return nil, fmt.Errorf("reading header: %w", t.err)
	}

	utils.Debug("Tex: format %d, %dx%d, container %s, %d images", format, imgW, imgH, container, imageCount)

	clip := &Clip{Width: int(imgW), Height: int(imgH)}
	delay := frameDelay(frameRate)

	for i := uint32(0); i < imageCount; i++ {
		mipmapCount := t.uint32()
		for j := uint32(0); j < mipmapCount; j++ {
			mW := t.uint32()
			mH := t.uint32()
			var isLZ4 bool
			var decompressedSize uint32
			if container != "TEXB0001" {
				isLZ4 = t.uint32() == 1
				decompressedSize = t.uint32()
			}
			data := t.bytes(t.uint32())
			if t.err != nil {
				return nil, fmt.Errorf("reading image %d mipmap %d: %w", i, j, t.err)
			}
			if j != 0 {
				continue
			}
			if mW < imgW || mH < imgH {
				return nil, fmt.Errorf("image %d is %dx%d, want %dx%d: %w", i, mW, mH, imgW, imgH, ErrFrameSize)
			}

			if isLZ4 {
				if uint64(decompressedSize) > uint64(mW)*uint64(mH)*4 {
					return nil, fmt.Errorf("image %d: lz4 size %d exceeds %dx%d RGBA: %w", i, decompressedSize, mW, mH, ErrUnsupported)
				}
				decoded := make([]byte, decompressedSize)
				n, err := lz4.UncompressBlock(data, decoded)
				if err != nil {
					return nil, fmt.Errorf("image %d: lz4: %w", i, err)
				}
				data = decoded[:n]
			}

			pix, err := decodeTexPixels(format, data, mW, mH)
			if err != nil {
				return nil, fmt.Errorf("image %d: %w", i, err)
			}

			img := &image.RGBA{Pix: pix, Stride: int(mW * 4), Rect: image.Rect(0, 0, int(mW), int(mH))}
			pixels := toPixels(img.SubImage(image.Rect(0, 0, clip.Width, clip.Height)))
			if len(pixels) != clip.Width*clip.Height {
				return nil, fmt.Errorf("image %d has %d pixels, want %d: %w", i, len(pixels), clip.Width*clip.Height, ErrFrameSize)
			}
			clip.Frames = append(clip.Frames, Frame{Pixels: pixels, Delay: delay})
		}
	}

	return clip, nil
}

func decodeTexPixels(format uint32, data []byte, w, h uint32) ([]byte, error) {
	blocks := ((w + 3) / 4) * ((h + 3) / 4)
	size := uint32(len(data))

	switch {
	case size == w*h*4:
		return data, nil
	case (format == texFormatDXT1 && size >= blocks*8) || size == blocks*8:
		return dxt.DecodeDXT1(data, uint(w), uint(h))
	case (format == texFormatDXT5 && size >= blocks*16) || size == blocks*16:
		return dxt.DecodeDXT5(data, uint(w), uint(h))
	case format == texFormatR8 && size == w*h:
		pix := make([]byte, w*h*4)
		for k, v := range data {
			pix[k*4], pix[k*4+1], pix[k*4+2], pix[k*4+3] = v, v, v, 255
		}
		return pix, nil
	case format == texFormatRG88 && size == w*h*2:
		pix := make([]byte, w*h*4)
		for k := 0; k < int(w*h); k++ {
			lum, alpha := data[k*2], data[k*2+1]
			pix[k*4], pix[k*4+1], pix[k*4+2], pix[k*4+3] = lum, lum, lum, alpha
		}
		return pix, nil
	}
	return nil, fmt.Errorf("format %d with %d bytes for %dx%d: %w", format, size, w, h, ErrUnsupported)
}
