package filter

import (
	"image"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

// Blush tint, a soft rose blended into the cheeks.
const (
	blushR = 230
	blushG = 120
	blushB = 135
)

// blushOverlay tints an elliptical region around each cheekbone landmark.
// No rotation is applied; the region size follows the inter-cheek distance
// so the tint scales with the face.
type blushOverlay struct {
	params Params
}

func (o *blushOverlay) Kind() Kind { return Blush }

func (o *blushOverlay) Apply(frame *image.NRGBA, set landmark.Set) error {
	if !set.Has(landmark.IndexLeftCheek, landmark.IndexRightCheek) {
		return errShortLandmarkSet
	}

	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()

	lx, ly := set.Pixel(landmark.IndexLeftCheek, w, h)
	rx, ry := set.Pixel(landmark.IndexRightCheek, w, h)
	left := point{lx, ly}
	right := point{rx, ry}

	radius := distance(left, right) * o.params.BlushRadiusRatio
	if radius < 1 {
		return nil
	}

	for _, cheek := range []point{left, right} {
		tintEllipse(frame, cheek.x, cheek.y, radius, radius*0.6, blushR, blushG, blushB, o.params.BlushAlpha)
	}
	return nil
}
