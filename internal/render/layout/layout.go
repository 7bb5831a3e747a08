package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// SplitVertical splits rect into left and right parts at leftWidthPx,
// clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left image.Rectangle, right image.Rectangle) {
	rect = Normalize(rect)
	leftWidthPx = clamp(leftWidthPx, 0, rect.Dx())
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// CenterVertically returns a heightPx-tall slice of rect, centered on the Y
// axis with the remainder rounded toward the top.
func CenterVertically(rect image.Rectangle, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	heightPx = clamp(heightPx, 0, rect.Dy())
	top := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(rect.Min.X, top, rect.Max.X, top+heightPx)
}

// AnchorBottomRight returns a widthPx×heightPx rectangle in the bottom-right
// corner of rect.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	return image.Rect(rect.Max.X-widthPx, rect.Max.Y-heightPx, rect.Max.X, rect.Max.Y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
