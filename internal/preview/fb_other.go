//go:build !linux

package preview

import (
	"context"
	"errors"
	"image"
	"image/color"
	"time"
)

// Show is only supported on Linux.
func Show(ctx context.Context, device string, img image.Image, bg color.Color, hold time.Duration, logger Logger) error {
	return errors.New("framebuffer preview requires linux")
}
