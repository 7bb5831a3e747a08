// Package preview shows a rendered banner on the Linux console framebuffer so
// it can be checked on a headless box without copying the file off.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// FitRect returns the largest rectangle with the aspect ratio of a
// srcW×srcH image that fits centered inside dst.
func FitRect(dst image.Rectangle, srcW, srcH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dst.Empty() {
		return image.Rectangle{}
	}
	w, h := dst.Dx(), dst.Dy()
	if w*srcH > h*srcW {
		w = h * srcW / srcH
	} else {
		h = w * srcH / srcW
	}
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Blit letterboxes img onto dst over bg, scaling it to fit.
func Blit(dst draw.Image, img image.Image, bg color.Color) image.Rectangle {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)
	target := FitRect(bounds, img.Bounds().Dx(), img.Bounds().Dy())
	if target.Empty() {
		return target
	}
	xdraw.ApproxBiLinear.Scale(dst, target, img, img.Bounds(), xdraw.Src, nil)
	return target
}
