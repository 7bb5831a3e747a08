package render

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/jdubz/bannergen/internal/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is the offscreen pixel buffer one banner is composed on.
type Canvas struct {
	img    *image.RGBA
	fonts  fonts.Set
	Logger Logger
}

// NewCanvas allocates a transparent CanvasWidth×CanvasHeight buffer.
func NewCanvas(set fonts.Set) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		fonts:  set,
		Logger: nopLogger{},
	}
}

// Image returns the underlying buffer. It is not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Context returns a gg context that draws straight into the canvas.
func (c *Canvas) Context() *gg.Context { return gg.NewContextForRGBA(c.img) }

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (c *Canvas) face(role FaceRole) fonts.Loaded {
	var l fonts.Loaded
	switch role {
	case FaceName:
		l = c.fonts.Name
	case FaceTitle:
		l = c.fonts.Title
	case FaceSubtitle:
		l = c.fonts.Subtitle
	case FaceMark:
		l = c.fonts.Mark
	}
	if l.Face == nil {
		c.Logger.Errorf("render", "face %d not loaded, defaulting to basicfont", role)
		l = fonts.Loaded{Face: basicfont.Face7x13, Source: fonts.SourceBasic}
	}
	return l
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	return measure(c.face(style.Face).Face, text)
}

func measure(face font.Face, text string) TextMetrics {
	m := face.Metrics()
	drawer := &font.Drawer{Face: face}
	return TextMetrics{
		Width:      drawer.MeasureString(text).Ceil(),
		Height:     m.Ascent.Ceil() + m.Descent.Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}

// DrawText draws text with (x, y) at the top of the ascender, adjusted for
// style.Align, and returns the metrics it used.
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := c.face(style.Face).Face
	metrics := measure(face, text)
	switch style.Align {
	case TextAlignCenter:
		x -= metrics.Width / 2
	case TextAlignRight:
		x -= metrics.Width
	}
	fg := style.Color
	if fg == nil {
		fg = White
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent),
	}
	drawer.DrawString(text)
	return metrics
}

// DrawImage composites img over the canvas with its top-left at (x, y).
func (c *Canvas) DrawImage(img image.Image, x, y int, opts ImageOpts) {
	if img == nil {
		return
	}
	src := img.Bounds()
	dst := image.Rect(x, y, x+src.Dx(), y+src.Dy())
	n := opts.Repeat
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		draw.Draw(c.img, dst, img, src.Min, draw.Over)
	}
}

var _ Drawer = (*Canvas)(nil)
