package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		name       string
		dst        image.Rectangle
		srcW, srcH int
		want       image.Rectangle
	}{
		{"wide screen letterboxes", image.Rect(0, 0, 1920, 1080), 1200, 630, image.Rect(0, 36, 1920, 1044)},
		{"exact", image.Rect(0, 0, 1200, 630), 1200, 630, image.Rect(0, 0, 1200, 630)},
		{"tall screen", image.Rect(0, 0, 600, 800), 1200, 630, image.Rect(0, 242, 600, 557)},
		{"empty source", image.Rect(0, 0, 10, 10), 0, 5, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitRect(tt.dst, tt.srcW, tt.srcH))
		})
	}
}

func TestBlitLetterboxes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 120, 63))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 63; y++ {
		for x := 0; x < 120; x++ {
			src.SetRGBA(x, y, red)
		}
	}
	bg := color.RGBA{R: 15, G: 23, B: 42, A: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 240, 240))

	target := Blit(dst, src, bg)
	assert.Equal(t, image.Rect(0, 57, 240, 183), target)
	assert.Equal(t, bg, dst.RGBAAt(5, 5))
	assert.Equal(t, red, dst.RGBAAt(120, 120))
}
