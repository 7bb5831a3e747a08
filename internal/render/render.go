package render

import (
	"image"
	"image/color"
)

// Logger matches the component-tagged logger used across the app.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, string, ...interface{})  {}
func (nopLogger) Errorf(string, string, ...interface{}) {}

// Drawer is the set of primitives the banner composition is written against.
// Canvas is the only implementation; tests use it directly.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground()

	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// DrawImage composites img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int, opts ImageOpts)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y (top of the ascender).
// For X, Align controls how x is interpreted.
type TextStyle struct {
	Color color.Color
	Face  FaceRole
	Align TextAlign
}

// FaceRole selects one of the loaded font faces.
type FaceRole int

const (
	FaceName FaceRole = iota
	FaceTitle
	FaceSubtitle
	FaceMark
)

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

type ImageOpts struct {
	// Repeat composites the image this many times; values below 1 mean once.
	Repeat int
}
