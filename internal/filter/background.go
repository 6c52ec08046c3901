package filter

import (
	"image"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

// backgroundOverlay replaces everything outside the face with a selected
// background image. The face region is approximated by the convex hull of
// the face-oval landmarks; hull-interior pixels are left bit-identical to
// the input, everything else is taken from the background image scaled to
// the frame dimensions.
type backgroundOverlay struct {
	background image.Image
}

func (o *backgroundOverlay) Kind() Kind { return Background }

func (o *backgroundOverlay) Apply(frame *image.NRGBA, set landmark.Set) error {
	if o.background == nil {
		return errMissingAsset
	}
	if !set.Has(landmark.FaceOval...) {
		return errShortLandmarkSet
	}

	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()

	oval := make([]point, 0, len(landmark.FaceOval))
	for _, idx := range landmark.FaceOval {
		x, y := set.Pixel(idx, w, h)
		oval = append(oval, point{x, y})
	}
	hull := convexHull(oval)
	if hull == nil {
		return errShortLandmarkSet
	}

	scaled := scaleToBounds(o.background, w, h)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := point{float64(x - b.Min.X), float64(y - b.Min.Y)}
			if pointInPolygon(p, hull) {
				continue
			}
			fi := frame.PixOffset(x, y)
			si := scaled.PixOffset(x-b.Min.X, y-b.Min.Y)
			copy(frame.Pix[fi:fi+4], scaled.Pix[si:si+4])
		}
	}
	return nil
}
