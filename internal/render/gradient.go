package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
)

// GradientStyle selects how the purple→cyan→pink overlay is laid out.
type GradientStyle int

const (
	// GradientColumns interpolates color per column.
	GradientColumns GradientStyle = iota
	// GradientBands uses three flat vertical bands.
	GradientBands
)

func (g GradientStyle) String() string {
	switch g {
	case GradientColumns:
		return "columns"
	case GradientBands:
		return "bands"
	default:
		return fmt.Sprintf("GradientStyle(%d)", int(g))
	}
}

func ParseGradientStyle(raw string) (GradientStyle, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "columns":
		return GradientColumns, nil
	case "bands":
		return GradientBands, nil
	default:
		return 0, fmt.Errorf("unknown gradient style %q (want columns or bands)", raw)
	}
}

// Overlay alpha is gradientBaseAlpha at the center column and falls off by
// |gradientSpread| toward both edges.
const (
	gradientBaseAlpha = 35
	gradientSpread    = -10
)

// ColumnColor is the overlay color of column i for the columns style.
func ColumnColor(i, width int) color.NRGBA {
	ratio := float64(i) / float64(width)
	from, to, t := Purple, Cyan, ratio*2
	if ratio >= 0.5 {
		from, to, t = Cyan, Pink, (ratio-0.5)*2
	}
	alpha := gradientBaseAlpha + gradientSpread*math.Abs(ratio-0.5)*2
	return color.NRGBA{
		R: lerp(from.R, to.R, t),
		G: lerp(from.G, to.G, t),
		B: lerp(from.B, to.B, t),
		A: uint8(alpha),
	}
}

// BandColor is the overlay color of column i for the bands style.
func BandColor(i, width int) color.NRGBA {
	band := i * 3 / width
	if band > 2 {
		band = 2
	}
	c := [3]color.RGBA{Purple, Cyan, Pink}[band]
	alpha := uint8(gradientBaseAlpha + gradientSpread)
	if band == 1 {
		alpha = gradientBaseAlpha
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// lerp truncates toward zero.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// GradientOverlay renders the full-frame overlay for style.
func GradientOverlay(width, height int, style GradientStyle) *image.NRGBA {
	overlay := image.NewNRGBA(image.Rect(0, 0, width, height))
	colorAt := ColumnColor
	if style == GradientBands {
		colorAt = BandColor
	}
	for i := 0; i < width; i++ {
		column := image.Rect(i, 0, i+1, height)
		draw.Draw(overlay, column, &image.Uniform{C: colorAt(i, width)}, image.Point{}, draw.Src)
	}
	return overlay
}

// CompositeGradient blends the overlay onto dst with "over" semantics.
func CompositeGradient(dst draw.Image, style GradientStyle) {
	b := dst.Bounds()
	overlay := GradientOverlay(b.Dx(), b.Dy(), style)
	draw.Draw(dst, b, overlay, image.Point{}, draw.Over)
}
