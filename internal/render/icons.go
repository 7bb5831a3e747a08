package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

// IconKind is one of the simplified tech glyphs.
type IconKind int

const (
	IconChip IconKind = iota
	IconTerminal
	IconWave
	IconResistor
)

var iconKindNames = [...]string{
	IconChip:     "chip",
	IconTerminal: "terminal",
	IconWave:     "wave",
	IconResistor: "resistor",
}

func (k IconKind) String() string {
	if k >= 0 && int(k) < len(iconKindNames) {
		return iconKindNames[k]
	}
	return fmt.Sprintf("IconKind(%d)", int(k))
}

func ParseIconKind(raw string) (IconKind, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for i, name := range iconKindNames {
		if name == raw {
			return IconKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown icon kind %q", raw)
}

// Icon places one glyph with its bounding square at (X, Y)-(X+Size, Y+Size).
type Icon struct {
	X, Y    int
	Size    int
	Kind    IconKind
	Color   color.RGBA
	Opacity float64
}

// DefaultIcons is the fixed background scatter.
var DefaultIcons = []Icon{
	{X: 80, Y: 80, Size: 48, Kind: IconChip, Color: Purple, Opacity: 0.08},
	{X: 180, Y: 450, Size: 32, Kind: IconTerminal, Color: Cyan, Opacity: 0.12},
	{X: 950, Y: 120, Size: 56, Kind: IconWave, Color: Pink, Opacity: 0.10},
	{X: 1050, Y: 500, Size: 40, Kind: IconResistor, Color: Purple, Opacity: 0.09},
	{X: 280, Y: 150, Size: 24, Kind: IconChip, Color: Cyan, Opacity: 0.15},
	{X: 920, Y: 380, Size: 36, Kind: IconTerminal, Color: Pink, Opacity: 0.11},
	{X: 120, Y: 520, Size: 28, Kind: IconWave, Color: Purple, Opacity: 0.13},
	{X: 1100, Y: 250, Size: 32, Kind: IconChip, Color: Cyan, Opacity: 0.10},
}

// IconColor applies opacity (clamped to [0,1]) as an 8-bit alpha.
func IconColor(base color.RGBA, opacity float64) color.NRGBA {
	opacity = math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(math.Round(opacity * 255))}
}

// glyph coordinates are authored on a 64-unit grid
const iconGrid = 64.0

var (
	chipPins     = []float64{20, 28, 36, 44}
	resistorBand = []float64{20, 26, 32, 38}
)

// DrawIcon strokes icon onto dc. Unknown kinds draw nothing.
func DrawIcon(dc *gg.Context, icon Icon) {
	s := float64(icon.Size) / iconGrid
	ox, oy := float64(icon.X), float64(icon.Y)
	wide := math.Max(1, math.Floor(2*s))
	thin := math.Max(1, math.Floor(s))

	dc.Push()
	defer dc.Pop()
	dc.SetColor(IconColor(icon.Color, icon.Opacity))
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)

	rect := func(x0, y0, x1, y1 float64) {
		dc.SetLineWidth(wide)
		dc.DrawRectangle(ox+x0*s, oy+y0*s, (x1-x0)*s, (y1-y0)*s)
		dc.Stroke()
	}
	polyline := func(width float64, pts ...gg.Point) {
		dc.SetLineWidth(width)
		dc.NewSubPath()
		for i, p := range pts {
			if i == 0 {
				dc.MoveTo(ox+p.X*s, oy+p.Y*s)
				continue
			}
			dc.LineTo(ox+p.X*s, oy+p.Y*s)
		}
		dc.Stroke()
	}

	switch icon.Kind {
	case IconChip:
		rect(16, 16, 48, 48)
		rect(24, 24, 40, 40)
		for _, px := range chipPins {
			polyline(wide, gg.Point{X: px, Y: 12}, gg.Point{X: px, Y: 16})
			polyline(wide, gg.Point{X: px, Y: 48}, gg.Point{X: px, Y: 52})
		}
	case IconTerminal:
		rect(8, 12, 56, 52)
		polyline(wide, gg.Point{X: 18, Y: 26}, gg.Point{X: 24, Y: 30}, gg.Point{X: 18, Y: 34})
		polyline(wide, gg.Point{X: 32, Y: 34}, gg.Point{X: 40, Y: 34})
	case IconWave:
		rect(8, 12, 56, 52)
		polyline(wide, wavePoints()...)
	case IconResistor:
		rect(16, 28, 48, 36)
		for _, bx := range resistorBand {
			polyline(thin, gg.Point{X: bx, Y: 28}, gg.Point{X: bx, Y: 36})
		}
		polyline(wide, gg.Point{X: 8, Y: 32}, gg.Point{X: 16, Y: 32})
		polyline(wide, gg.Point{X: 48, Y: 32}, gg.Point{X: 56, Y: 32})
	}
}

// wavePoints samples a square-ish wave every 4 units, ±8 around the center line.
func wavePoints() []gg.Point {
	var pts []gg.Point
	for x := 16; x <= 48; x += 4 {
		y := 32.0 - 8
		if (x/8)%2 == 1 {
			y = 32 + 8
		}
		pts = append(pts, gg.Point{X: float64(x), Y: y})
	}
	return pts
}

// DrawIcons draws every icon in order.
func DrawIcons(dc *gg.Context, icons []Icon) {
	for _, icon := range icons {
		DrawIcon(dc, icon)
	}
}
