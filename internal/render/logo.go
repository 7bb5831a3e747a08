package render

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
	"github.com/jdubz/bannergen/internal/render/layout"
)

// Logo placement and glow.
const (
	LogoHeight = 340
	LogoX      = 40
	GlowSigma  = 30
	GlowPasses = 3
)

// Fallback mark used when the logo cannot be loaded.
const (
	MarkText = "JW"
	MarkX    = 100
	MarkY    = 250
)

var errNoLogoPath = errors.New("no logo path configured")

// LoadLogo decodes the logo at path (any format imaging understands).
func LoadLogo(path string) (image.Image, error) {
	if path == "" {
		return nil, errNoLogoPath
	}
	return imaging.Open(path)
}

// ScaleLogo resizes logo to LogoHeight keeping its aspect ratio.
func ScaleLogo(logo image.Image) *image.NRGBA {
	return imaging.Resize(logo, 0, LogoHeight, imaging.Lanczos)
}

// PlaceLogo draws the glow and then the sharp logo, vertically centered at
// LogoX, and returns where it landed.
func PlaceLogo(d Drawer, logo image.Image) image.Rectangle {
	scaled := ScaleLogo(logo)
	width, height := d.Size()
	column := image.Rect(LogoX, 0, LogoX+scaled.Bounds().Dx(), height)
	rect := layout.CenterVertically(column, scaled.Bounds().Dy())
	if rect.Max.X > width {
		rect.Max.X = width
	}

	glow := imaging.Blur(scaled, GlowSigma)
	d.DrawImage(glow, rect.Min.X, rect.Min.Y, ImageOpts{Repeat: GlowPasses})
	d.DrawImage(scaled, rect.Min.X, rect.Min.Y, ImageOpts{})
	return rect
}

// DrawLogoMark draws the textual fallback mark. It is skipped, returning
// false, when no scalable face is available for it.
func (c *Canvas) DrawLogoMark() bool {
	if !c.face(FaceMark).Scalable() {
		c.Logger.Infof("render", "no scalable mark font, omitting logo mark")
		return false
	}
	c.DrawText(MarkText, MarkX, MarkY, TextStyle{Color: Cyan, Face: FaceMark})
	return true
}
