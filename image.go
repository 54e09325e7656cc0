package glfwgo

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// DefaultIconSizes are the sizes SetIconScaled renders when given none.
var DefaultIconSizes = []int{16, 32, 48}

// toNativeImage converts img to tightly packed, non-premultiplied RGBA with
// its origin at the top-left corner.
func toNativeImage(img image.Image) native.Image {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return native.Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: nrgba.Pix[:4*b.Dx()*b.Dy()],
	}
}

// scaleImage resamples src to a size x size square.
func scaleImage(src image.Image, size int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// validatePixels checks that pixels holds exactly width*height RGBA pixels.
func validatePixels(width, height int, pixels []byte) error {
	if width <= 0 || height <= 0 || len(pixels) != 4*width*height {
		return ErrInvalidImage
	}
	return nil
}
