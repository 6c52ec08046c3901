package filter

import (
	"image"

	"github.com/kozaktomas/face-filters/internal/landmark"
)

// Overlay is one active filter variant. Apply composites the overlay onto
// the frame for a single face, deriving placement from the landmark set.
// Skip-class failures (short landmark set, missing asset) are reported as
// errors so the compositor can drop the overlay for that face without
// interrupting the rest of the pipeline.
type Overlay interface {
	Kind() Kind
	Apply(frame *image.NRGBA, set landmark.Set) error
}

// Params are the numeric tuning knobs of the overlays. Ratios are relative
// to distances measured between landmarks, so overlays stay proportional
// across face sizes and camera distances.
type Params struct {
	BlushAlpha            float64 `yaml:"blush_alpha" json:"blush_alpha"`
	BlushRadiusRatio      float64 `yaml:"blush_radius_ratio" json:"blush_radius_ratio"`
	SunglassesWidthFactor float64 `yaml:"sunglasses_width_factor" json:"sunglasses_width_factor"`
	EarsWidthFactor       float64 `yaml:"ears_width_factor" json:"ears_width_factor"`
	EarsOffsetFactor      float64 `yaml:"ears_offset_factor" json:"ears_offset_factor"`
}

// DefaultParams returns the tuning used when no configuration overrides it.
func DefaultParams() Params {
	return Params{
		BlushAlpha:            0.35,
		BlushRadiusRatio:      0.18,
		SunglassesWidthFactor: 1.25,
		EarsWidthFactor:       1.15,
		EarsOffsetFactor:      0.05,
	}
}

// Normalize clamps params to usable ranges, falling back to defaults for
// zero or nonsensical values.
func (p *Params) Normalize() {
	def := DefaultParams()
	if p.BlushAlpha <= 0 || p.BlushAlpha > 1 {
		p.BlushAlpha = def.BlushAlpha
	}
	if p.BlushRadiusRatio <= 0 {
		p.BlushRadiusRatio = def.BlushRadiusRatio
	}
	if p.SunglassesWidthFactor <= 0 {
		p.SunglassesWidthFactor = def.SunglassesWidthFactor
	}
	if p.EarsWidthFactor <= 0 {
		p.EarsWidthFactor = def.EarsWidthFactor
	}
	if p.EarsOffsetFactor < 0 {
		p.EarsOffsetFactor = def.EarsOffsetFactor
	}
}
