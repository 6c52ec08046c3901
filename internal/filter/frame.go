// Package filter implements the landmark-driven overlay compositor: given a
// frame, the landmark sets detected in it and the set of active filters, it
// computes placement, scale and rotation for each overlay and composites it
// onto the frame in place.
package filter

import (
	"errors"
	"image"
	"image/draw"
)

// ErrInvalidFrameFormat is returned when a frame does not have the expected
// 8-bit RGBA layout. This is the only fatal compositing error: the geometry
// and blending code assumes a fixed channel layout, so the caller must drop
// the tick instead of processing a malformed frame.
var ErrInvalidFrameFormat = errors.New("invalid frame format")

// errShortLandmarkSet marks a landmark set that is missing an index an
// overlay needs. Overlays that hit it are skipped for that face.
var errShortLandmarkSet = errors.New("landmark set too short")

// errMissingAsset marks an overlay whose image asset is unavailable.
var errMissingAsset = errors.New("overlay asset missing")

// ValidateFrame checks that the frame can be composited onto: non-nil, with
// non-empty bounds and a stride matching its width.
func ValidateFrame(frame *image.NRGBA) error {
	if frame == nil {
		return ErrInvalidFrameFormat
	}
	b := frame.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ErrInvalidFrameFormat
	}
	if frame.Stride < b.Dx()*4 {
		return ErrInvalidFrameFormat
	}
	if len(frame.Pix) < frame.PixOffset(b.Max.X-1, b.Max.Y-1)+4 {
		return ErrInvalidFrameFormat
	}
	return nil
}

// ToFrame converts any decoded image into a frame suitable for compositing.
// The result always has its origin at (0, 0).
func ToFrame(img image.Image) *image.NRGBA {
	b := img.Bounds()
	frame := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(frame, frame.Bounds(), img, b.Min, draw.Src)
	return frame
}

// CloneFrame returns a deep copy of the frame.
func CloneFrame(frame *image.NRGBA) *image.NRGBA {
	clone := image.NewNRGBA(frame.Bounds())
	draw.Draw(clone, clone.Bounds(), frame, frame.Bounds().Min, draw.Src)
	return clone
}
