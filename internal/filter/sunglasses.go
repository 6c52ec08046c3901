package filter

import (
	"image"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

// sunglassesOverlay places the glasses asset over the eyes: centered on the
// midpoint of the outer eye corners, sized from the inter-corner distance
// and rotated to stay level with head tilt.
type sunglassesOverlay struct {
	asset  *image.NRGBA
	params Params
}

func (o *sunglassesOverlay) Kind() Kind { return Sunglasses }

func (o *sunglassesOverlay) Apply(frame *image.NRGBA, set landmark.Set) error {
	if o.asset == nil {
		return errMissingAsset
	}
	if !set.Has(landmark.IndexLeftEyeOuter, landmark.IndexRightEyeOut) {
		return errShortLandmarkSet
	}

	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()

	lx, ly := set.Pixel(landmark.IndexLeftEyeOuter, w, h)
	rx, ry := set.Pixel(landmark.IndexRightEyeOut, w, h)
	left := point{lx, ly}
	right := point{rx, ry}

	width := int(distance(left, right) * o.params.SunglassesWidthFactor)
	if width < 2 {
		return nil
	}

	resized := resizeToWidth(o.asset, width)
	if resized == nil {
		return nil
	}

	// Eye-line angle in image coordinates; imaging rotates counter-clockwise
	// on screen, so the sign flips.
	angle := angleDegrees(left, right)
	rotated := rotate(resized, -angle)

	center := midpoint(left, right)
	x0 := int(center.x) - rotated.Bounds().Dx()/2
	y0 := int(center.y) - rotated.Bounds().Dy()/2
	compositeOver(frame, rotated, x0, y0)
	return nil
}
