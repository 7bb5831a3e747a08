//go:build linux

package preview

import (
	"context"
	"image"
	"image/color"
	"time"

	fb "github.com/gonutz/framebuffer"
)

// Show blits img to the framebuffer at device and holds it for hold or until
// ctx is done. The console is switched to graphics mode while it is shown.
func Show(ctx context.Context, device string, img image.Image, bg color.Color, hold time.Duration, logger Logger) error {
	dev, err := fb.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	bounds := dev.Bounds()
	logger.Infof("preview", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if err := setConsoleMode(kdGraphics); err != nil {
		logger.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	} else {
		defer func() {
			if err := setConsoleMode(kdText); err != nil {
				logger.Errorf("tty", "KD_TEXT failed: %v", err)
			}
		}()
	}

	target := Blit(dev, img, bg)
	logger.Infof("preview", "banner shown at %v for %s", target, hold)

	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
