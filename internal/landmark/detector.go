package landmark

import (
	"context"
	"image"
)

// Detector resolves face landmarks for a single frame. Implementations must
// return faces in a deterministic order; the compositor applies overlays in
// the order returned. An empty slice (no faces) is not an error.
type Detector interface {
	Detect(ctx context.Context, frame image.Image) ([]Set, error)
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(ctx context.Context, frame image.Image) ([]Set, error)

// Detect implements Detector.
func (f DetectorFunc) Detect(ctx context.Context, frame image.Image) ([]Set, error) {
	return f(ctx, frame)
}
