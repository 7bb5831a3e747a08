package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jdubz/bannergen/internal/fonts"
	"github.com/jdubz/bannergen/internal/render/layout"
)

// Text is the three lines drawn in the right-hand column.
type Text struct {
	Name     string
	Title    string
	Subtitle string
}

var DefaultText = Text{
	Name:     "Josh Wentworth",
	Title:    "Multidisciplinary Engineer",
	Subtitle: "Software × Hardware × Fabrication",
}

// Text column placement; Y values are the top of each line.
const (
	TextX     = 480
	NameY     = 230
	TitleY    = 315
	SubtitleY = 375

	qrMarginPx = 32
)

// Options selects the variable parts of a banner. The zero value renders the
// default banner with the text-mark fallback.
type Options struct {
	Gradient GradientStyle
	// Icons defaults to DefaultIcons when nil.
	Icons []Icon
	// Logo is drawn with a glow; nil draws the fallback mark instead.
	Logo image.Image
	// Text defaults to DefaultText when zero.
	Text Text
	// QRPayload, when set, adds a QR badge in the bottom-right corner.
	QRPayload string
}

// Result is a composed banner plus what went into it.
type Result struct {
	Image     *image.RGBA
	LogoRect  image.Rectangle
	MarkDrawn bool
	QRRect    image.Rectangle
}

// UsedFallback reports whether the logo was replaced by the text mark path.
func (r Result) UsedFallback() bool { return r.LogoRect.Empty() }

// Compose renders one banner onto a fresh canvas.
func Compose(set fonts.Set, opts Options, logger Logger) (Result, error) {
	if logger == nil {
		logger = nopLogger{}
	}
	canvas := NewCanvas(set)
	canvas.Logger = logger

	canvas.FillBackground()
	CompositeGradient(canvas.Image(), opts.Gradient)

	icons := opts.Icons
	if icons == nil {
		icons = DefaultIcons
	}
	DrawIcons(canvas.Context(), icons)

	var res Result
	if opts.Logo != nil {
		res.LogoRect = PlaceLogo(canvas, opts.Logo)
		logger.Infof("render", "logo placed at %v", res.LogoRect)
	} else {
		res.MarkDrawn = canvas.DrawLogoMark()
	}

	text := opts.Text
	if text == (Text{}) {
		text = DefaultText
	}
	drawTextColumn(canvas, text)

	if opts.QRPayload != "" {
		rect, err := drawQRBadge(canvas, opts.QRPayload)
		if err != nil {
			return Result{}, fmt.Errorf("qr badge: %w", err)
		}
		res.QRRect = rect
	}

	res.Image = canvas.Image()
	return res, nil
}

func drawTextColumn(d Drawer, text Text) {
	width, height := d.Size()
	_, column := layout.SplitVertical(image.Rect(0, 0, width, height), TextX)
	lines := []struct {
		text  string
		y     int
		face FaceRole
		fg   color.Color
	}{
		{text.Name, NameY, FaceName, White},
		{text.Title, TitleY, FaceTitle, Slate},
		{text.Subtitle, SubtitleY, FaceSubtitle, Cyan},
	}
	for _, line := range lines {
		d.DrawText(line.text, column.Min.X, line.y, TextStyle{Color: line.fg, Face: line.face})
	}
}

func drawQRBadge(d Drawer, payload string) (image.Rectangle, error) {
	qr, err := GenerateQRCodeImage(payload, defaultQRCodeSizePx)
	if err != nil {
		return image.Rectangle{}, err
	}
	width, height := d.Size()
	area := layout.Inset(image.Rect(0, 0, width, height), qrMarginPx)
	rect := layout.AnchorBottomRight(area, qr.Bounds().Dx(), qr.Bounds().Dy())
	d.DrawImage(qr, rect.Min.X, rect.Min.Y, ImageOpts{})
	return rect, nil
}
