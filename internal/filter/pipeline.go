package filter

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/kozaktomas/face-filters/internal/landmark"
)

// Pipeline is one processing tick: acquire landmarks once (only when at
// least one filter is active), then composite every active overlay per
// detected face. It holds no per-frame state; State and the assets persist
// across ticks, frames do not.
type Pipeline struct {
	detector   landmark.Detector
	state      *State
	sunglasses *image.NRGBA
	rabbitEars *image.NRGBA
	params     Params
	mirror     bool
}

// NewPipeline wires a detector, filter state and the overlay assets into a
// reusable pipeline. Either asset may be nil; the corresponding overlay is
// then skipped.
func NewPipeline(detector landmark.Detector, state *State, sunglasses, rabbitEars *image.NRGBA, params Params) *Pipeline {
	params.Normalize()
	return &Pipeline{
		detector:   detector,
		state:      state,
		sunglasses: sunglasses,
		rabbitEars: rabbitEars,
		params:     params,
	}
}

// SetMirror enables horizontal mirroring of the frame before detection, the
// selfie view most camera feeds use.
func (p *Pipeline) SetMirror(on bool) { p.mirror = on }

// State returns the mutable filter state. Mutate it only between Process
// calls.
func (p *Pipeline) State() *State { return p.state }

// Process runs one tick on the frame and returns the composited result.
// With no active filters the frame passes through unchanged (apart from
// optional mirroring). Detection failures abort the tick; the caller keeps
// the original frame.
func (p *Pipeline) Process(ctx context.Context, frame *image.NRGBA) (*image.NRGBA, error) {
	if err := ValidateFrame(frame); err != nil {
		return nil, err
	}

	if p.mirror {
		frame = imaging.FlipH(frame)
	}

	if !p.state.AnyEnabled() {
		return frame, nil
	}

	sets, err := p.detector.Detect(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detecting landmarks: %w", err)
	}

	overlays := ActiveOverlays(p.state, p.sunglasses, p.rabbitEars, p.params)
	if err := Composite(frame, sets, overlays); err != nil {
		return nil, err
	}
	return frame, nil
}
