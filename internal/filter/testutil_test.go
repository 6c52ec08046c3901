package filter

import (
	"image"
	"testing"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

// meshSet builds a full-size landmark set with every point at the origin.
func meshSet() landmark.Set {
	return make(landmark.Set, landmark.MeshPoints)
}

// place positions the landmark at index idx on the given pixel of a frame
// with the given dimensions (landmarks are stored normalized).
func place(t *testing.T, set landmark.Set, idx int, px, py float64, w, h int) {
	t.Helper()
	if idx < 0 || idx >= len(set) {
		t.Fatalf("index %d outside set of %d points", idx, len(set))
	}
	set[idx] = landmark.Point{X: px / float64(w), Y: py / float64(h)}
}

// placeOvalSquare distributes the face-oval indices over the corners of an
// axis-aligned square in pixel coordinates, so the oval hull becomes exactly
// that square.
func placeOvalSquare(t *testing.T, set landmark.Set, x0, y0, x1, y1 float64, w, h int) {
	t.Helper()
	corners := [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	for i, idx := range landmark.FaceOval {
		c := corners[i%len(corners)]
		place(t, set, idx, c[0], c[1], w, h)
	}
}

// changedBounds returns the bounding box of pixels that differ between two
// frames, and whether any pixel differs at all.
func changedBounds(a, b *image.NRGBA) (image.Rectangle, bool) {
	var box image.Rectangle
	found := false
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ai := a.PixOffset(x, y)
			bi := b.PixOffset(x, y)
			diff := false
			for c := 0; c < 4; c++ {
				if a.Pix[ai+c] != b.Pix[bi+c] {
					diff = true
					break
				}
			}
			if !diff {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if !found {
				box = p
				found = true
			} else {
				box = box.Union(p)
			}
		}
	}
	return box, found
}

// changedCentroid returns the centroid of pixels that differ between two
// frames.
func changedCentroid(a, b *image.NRGBA) (float64, float64, bool) {
	var sumX, sumY, n float64
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ai := a.PixOffset(x, y)
			bi := b.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				if a.Pix[ai+c] != b.Pix[bi+c] {
					sumX += float64(x)
					sumY += float64(y)
					n++
					break
				}
			}
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	return sumX / n, sumY / n, true
}

// opaqueAsset builds a uniformly colored, fully opaque asset image.
func opaqueAsset(w, h int, r, g, b uint8) *image.NRGBA {
	return solidFrame(w, h, r, g, b)
}
