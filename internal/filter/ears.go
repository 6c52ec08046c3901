package filter

import (
	"image"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

// Mesh indices of the leftmost and rightmost face-oval points, used to
// measure face width for the ears.
const (
	ovalLeftIndex  = 234
	ovalRightIndex = 454
)

// rabbitEarsOverlay anchors the ears asset above the head: centered on the
// forehead landmark, sized from the measured face width and lifted by an
// offset derived from face height.
type rabbitEarsOverlay struct {
	asset  *image.NRGBA
	params Params
}

func (o *rabbitEarsOverlay) Kind() Kind { return RabbitEars }

func (o *rabbitEarsOverlay) Apply(frame *image.NRGBA, set landmark.Set) error {
	if o.asset == nil {
		return errMissingAsset
	}
	if !set.Has(landmark.IndexForehead, landmark.IndexChin, ovalLeftIndex, ovalRightIndex) {
		return errShortLandmarkSet
	}

	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()

	fx, fy := set.Pixel(landmark.IndexForehead, w, h)
	cx, cy := set.Pixel(landmark.IndexChin, w, h)
	ox, oy := set.Pixel(ovalLeftIndex, w, h)
	px, py := set.Pixel(ovalRightIndex, w, h)

	faceWidth := distance(point{ox, oy}, point{px, py})
	faceHeight := distance(point{fx, fy}, point{cx, cy})

	width := int(faceWidth * o.params.EarsWidthFactor)
	if width < 2 {
		return nil
	}

	resized := resizeToWidth(o.asset, width)
	if resized == nil {
		return nil
	}

	// Bottom of the ears sits just above the forehead point.
	gap := faceHeight * o.params.EarsOffsetFactor
	x0 := int(fx) - resized.Bounds().Dx()/2
	y0 := int(fy-gap) - resized.Bounds().Dy()
	compositeOver(frame, resized, x0, y0)
	return nil
}
