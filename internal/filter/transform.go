package filter

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// resizeToWidth scales img so its width becomes the given value, preserving
// aspect ratio.
func resizeToWidth(img *image.NRGBA, width int) *image.NRGBA {
	if width <= 0 {
		return nil
	}
	return imaging.Resize(img, width, 0, imaging.Linear)
}

// rotate rotates img counter-clockwise by the given angle in degrees. The
// result grows to hold the rotated content; uncovered corners stay
// transparent so they drop out of compositing.
func rotate(img *image.NRGBA, angle float64) *image.NRGBA {
	if angle == 0 {
		return img
	}
	return imaging.Rotate(img, angle, color.Transparent)
}

// scaleToBounds resamples img to exactly the given dimensions with bilinear
// interpolation, used to fit background images to the frame.
func scaleToBounds(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
