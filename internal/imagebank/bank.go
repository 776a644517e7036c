// SPDX-License-Identifier: MIT
/*
Package imagebank builds the fixed set of frame-sized RGBA buffers the render
loop switches between. Construction happens once at startup, off the real-time
path; the bank is immutable afterwards and shared read-only with the renderer.
*/
package imagebank

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"audiovis/internal/log"
)

// Bank is an ordered, immutable set of RGBA buffers, one per visual state.
// Every buffer is exactly Width*Height*4 bytes, row-major, tightly packed.
type Bank struct {
	width  int
	height int
	frames [][]byte
}

// Load builds a bank at the given resolution from the source paths. Missing
// or undecodable files are skipped with a diagnostic. If no path yields an
// image, two opaque solid-color placeholders are synthesized so the switcher
// stays demonstrable without assets.
func Load(paths []string, width, height int) *Bank {
	b := &Bank{width: width, height: height}

	for _, path := range paths {
		log.Debugf("Loading image from %s...", path)
		if _, err := os.Stat(path); err != nil {
			log.Debugf("Cannot find image at %s", path)
			continue
		}
		buf, err := loadImage(path, width, height)
		if err != nil {
			log.Warnf("Skipping %s: %v", path, err)
			continue
		}
		b.frames = append(b.frames, buf)
		log.Debugf("Loaded image successfully")
	}

	if len(b.frames) == 0 {
		log.Infof("No images found. Creating demo images...")
		b.frames = append(b.frames, solidColor(width, height, 0x88, 0, 0))
		b.frames = append(b.frames, solidColor(width, height, 0, 0, 0x88))
	}

	return b
}

// loadImage decodes one image file and resizes it to exactly width x height
// using Catmull-Rom resampling.
func loadImage(path string, width, height int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	// image.NewRGBA allocates a tightly packed Pix slice (Stride == 4*width),
	// so Pix is already the frame buffer layout the renderer copies from.
	return dst.Pix, nil
}

// solidColor synthesizes a fully opaque single-color buffer.
func solidColor(width, height int, r, g, b byte) []byte {
	buf := make([]byte, width*height*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = 0xff
	}
	return buf
}

// Len returns the number of visual states the bank supports.
func (b *Bank) Len() int {
	return len(b.frames)
}

// Width returns the frame width in pixels.
func (b *Bank) Width() int { return b.width }

// Height returns the frame height in pixels.
func (b *Bank) Height() int { return b.height }

// Frames exposes the underlying buffers for the render loop. Callers must
// treat the returned slices as read-only.
func (b *Bank) Frames() [][]byte {
	return b.frames
}
