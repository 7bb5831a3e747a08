package render

import (
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 96

// GenerateQRCodeImage returns a QR code in the banner palette for payload.
// If payload is empty, it returns (nil, nil). The image may be larger than
// sizePx when the payload needs more modules.
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrCode.ForegroundColor = Background
	qrCode.BackgroundColor = White

	return qrCode.Image(sizePx), nil
}
