package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCodeImageEmptyPayload(t *testing.T) {
	img, err := GenerateQRCodeImage("", 96)
	assert.NoError(t, err)
	assert.Nil(t, img)
}

func TestGenerateQRCodeImageUsesPalette(t *testing.T) {
	img, err := GenerateQRCodeImage("https://example.com", 0)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), defaultQRCodeSizePx)

	// the quiet zone is light, the finder pattern corner is dark
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
	seenDark := false
	for y := 0; y < img.Bounds().Dy() && !seenDark; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r>>8 == uint32(Background.R) {
				seenDark = true
				break
			}
		}
	}
	assert.True(t, seenDark)
}
