package render

import "image/color"

// Banner frame and brand palette.
var (
	// Background is the dark slate behind everything; also the JPEG flatten color.
	Background = color.RGBA{R: 15, G: 23, B: 42, A: 0xFF} // #0f172a

	Purple = color.RGBA{R: 102, G: 126, B: 234, A: 0xFF} // #667eea
	Cyan   = color.RGBA{R: 14, G: 165, B: 233, A: 0xFF}  // #0ea5e9
	Pink   = color.RGBA{R: 244, G: 114, B: 182, A: 0xFF} // #f472b6
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	Slate  = color.RGBA{R: 148, G: 163, B: 184, A: 0xFF} // #94a3b8
)

// Fixed canvas size for every run.
const (
	CanvasWidth  = 1200
	CanvasHeight = 630
)
