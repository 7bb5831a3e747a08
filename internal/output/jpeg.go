// Package output flattens a composed banner and writes it as JPEG.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	DefaultPath = "web/static/banner.jpg"
	Quality     = 95
)

// Flatten composites img over an opaque bg so no transparency reaches the encoder.
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// EncodeJPEG writes img at Quality.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(Quality))
}

// WriteJPEG flattens img over bg and overwrites path with the encoded result,
// creating parent directories as needed. A failure can leave a partial file.
func WriteJPEG(path string, img image.Image, bg color.Color) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeJPEG(f, Flatten(img, bg)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
