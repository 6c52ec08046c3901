package filter

import (
	"image"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

// ActiveOverlays builds the overlay list for the current state, in the fixed
// application order (blush, sunglasses, rabbit ears, background). Image
// assets for inactive filters are not touched; the background overlay is
// only included when a background image is selected.
func ActiveOverlays(state *State, sunglasses, rabbitEars *image.NRGBA, params Params) []Overlay {
	params.Normalize()

	var overlays []Overlay
	if state.Enabled(Blush) {
		overlays = append(overlays, &blushOverlay{params: params})
	}
	if state.Enabled(Sunglasses) {
		overlays = append(overlays, &sunglassesOverlay{asset: sunglasses, params: params})
	}
	if state.Enabled(RabbitEars) {
		overlays = append(overlays, &rabbitEarsOverlay{asset: rabbitEars, params: params})
	}
	if state.Enabled(Background) && state.BackgroundImage() != nil {
		overlays = append(overlays, &backgroundOverlay{background: state.BackgroundImage()})
	}
	return overlays
}

// Composite applies every overlay to every detected face, mutating the frame
// in place. Faces are processed in detector order and overlays in their
// application order, so overlapping overlay pixels resolve deterministically
// (later writes win).
//
// Per-overlay failures (landmark sets missing a required index, an
// unavailable asset) skip that overlay for that face and never interrupt
// the rest of the frame. The only returned error is ErrInvalidFrameFormat.
func Composite(frame *image.NRGBA, sets []landmark.Set, overlays []Overlay) error {
	if err := ValidateFrame(frame); err != nil {
		return err
	}
	if len(sets) == 0 || len(overlays) == 0 {
		return nil
	}
	for _, set := range sets {
		for _, overlay := range overlays {
			// Skip-class errors by contract; nothing to propagate.
			_ = overlay.Apply(frame, set)
		}
	}
	return nil
}
