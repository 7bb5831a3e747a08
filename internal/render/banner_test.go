package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/jdubz/bannergen/internal/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whiteLogo(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func meanLuma(img *image.RGBA, rect image.Rectangle) float64 {
	var sum float64
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := img.RGBAAt(x, y)
			sum += 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
			n++
		}
	}
	return sum / float64(n)
}

func isCyanInk(c color.RGBA) bool {
	return c.B > 200 && c.G > 140 && c.R < 80
}

func TestComposeFixedDimensions(t *testing.T) {
	set := embeddedFonts(t)
	for name, logo := range map[string]image.Image{"logo": whiteLogo(200, 100), "fallback": nil} {
		t.Run(name, func(t *testing.T) {
			res, err := Compose(set, Options{Logo: logo}, nil)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 1200, 630), res.Image.Bounds())
		})
	}
}

func TestComposeLogoGlowRegion(t *testing.T) {
	set := embeddedFonts(t)
	res, err := Compose(set, Options{Logo: whiteLogo(200, 200)}, nil)
	require.NoError(t, err)
	assert.False(t, res.UsedFallback())
	assert.Equal(t, image.Rect(40, 145, 380, 485), res.LogoRect)

	plain, err := Compose(set, Options{}, nil)
	require.NoError(t, err)

	assert.Greater(t, meanLuma(res.Image, res.LogoRect), 200.0)
	assert.Greater(t, meanLuma(res.Image, res.LogoRect), meanLuma(plain.Image, res.LogoRect)+100)
}

func TestComposeFallbackMarkInLogoRegion(t *testing.T) {
	res, err := Compose(embeddedFonts(t), Options{}, nil)
	require.NoError(t, err)
	require.True(t, res.UsedFallback())
	require.True(t, res.MarkDrawn)

	region := image.Rect(MarkX, MarkY, MarkX+240, MarkY+180)
	ink := 0
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if isCyanInk(res.Image.RGBAAt(x, y)) {
				ink++
			}
		}
	}
	assert.Greater(t, ink, 500)
}

func TestComposeOmitsMarkWithoutScalableFont(t *testing.T) {
	set := embeddedFonts(t)
	set.Mark = fonts.LoadFace("", nil, fonts.MarkSize, nil)
	res, err := Compose(set, Options{}, nil)
	require.NoError(t, err)
	assert.False(t, res.MarkDrawn)
}

func TestComposeIsDeterministic(t *testing.T) {
	set := embeddedFonts(t)
	opts := Options{Logo: whiteLogo(120, 80), QRPayload: "https://example.com"}
	a, err := Compose(set, opts, nil)
	require.NoError(t, err)
	b, err := Compose(set, opts, nil)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Image.Pix, b.Image.Pix))
}

func TestComposeIcons(t *testing.T) {
	set := embeddedFonts(t)
	probe := []Icon{{X: 500, Y: 480, Size: 64, Kind: IconChip, Color: White, Opacity: 1}}

	with, err := Compose(set, Options{Icons: probe}, nil)
	require.NoError(t, err)
	without, err := Compose(set, Options{Icons: []Icon{}}, nil)
	require.NoError(t, err)

	// left edge of the chip's outer rectangle
	edge := with.Image.RGBAAt(516, 500)
	assert.Greater(t, edge.R, uint8(200))
	assert.Less(t, without.Image.RGBAAt(516, 500).R, uint8(100))
}

func TestComposeQRBadge(t *testing.T) {
	res, err := Compose(embeddedFonts(t), Options{QRPayload: "https://jdubz.example"}, nil)
	require.NoError(t, err)
	require.False(t, res.QRRect.Empty())
	assert.Equal(t, image.Pt(1168, 598), res.QRRect.Max)
	assert.True(t, res.QRRect.In(res.Image.Bounds()))

	noQR, err := Compose(embeddedFonts(t), Options{}, nil)
	require.NoError(t, err)
	assert.True(t, noQR.QRRect.Empty())
}

func TestComposeTextColumn(t *testing.T) {
	res, err := Compose(embeddedFonts(t), Options{Text: Text{Name: "N", Title: "T", Subtitle: "S"}}, nil)
	require.NoError(t, err)
	// the name line is opaque white somewhere right of TextX
	found := false
	for y := NameY; y < NameY+70 && !found; y++ {
		for x := TextX; x < TextX+60; x++ {
			if res.Image.RGBAAt(x, y) == White {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}
