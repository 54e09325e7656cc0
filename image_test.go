package glfwgo

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNativeImageTightNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	out := toNativeImage(img)
	assert.Equal(t, 3, out.Width)
	assert.Equal(t, 2, out.Height)
	require.Len(t, out.Pixels, 3*2*4)
	assert.Equal(t, []byte{10, 20, 30, 40}, out.Pixels[(1*3+2)*4:])
}

func TestToNativeImageUnpremultiplies(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 128, A: 128})

	out := toNativeImage(img)
	assert.Equal(t, []byte{255, 0, 0, 128}, out.Pixels)
}

func TestToNativeImageSubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	sub := img.SubImage(image.Rect(1, 1, 3, 3))

	out := toNativeImage(sub)
	assert.Equal(t, 2, out.Width)
	assert.Equal(t, 2, out.Height)
	require.Len(t, out.Pixels, 16)
	assert.Equal(t, []byte{1, 2, 3, 255}, out.Pixels[:4])
}

func TestScaleImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []byte{0, 128, 255, 255})
	}

	dst := scaleImage(src, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), dst.Bounds())
	r, g, b, a := dst.At(8, 8).RGBA()
	assert.InDelta(t, 0, r>>8, 1)
	assert.InDelta(t, 128, g>>8, 1)
	assert.InDelta(t, 255, b>>8, 1)
	assert.InDelta(t, 255, a>>8, 1)
}

func TestValidatePixels(t *testing.T) {
	assert.NoError(t, validatePixels(2, 3, make([]byte, 24)))
	assert.ErrorIs(t, validatePixels(2, 3, make([]byte, 23)), ErrInvalidImage)
	assert.ErrorIs(t, validatePixels(-1, 3, nil), ErrInvalidImage)
}
