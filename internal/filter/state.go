package filter

import (
	"fmt"
	"image"
	"strings"
)

// Kind identifies one of the available overlay filters.
type Kind int

const (
	Blush Kind = iota
	Sunglasses
	RabbitEars
	Background
)

// Kinds lists every overlay kind in application order.
var Kinds = []Kind{Blush, Sunglasses, RabbitEars, Background}

func (k Kind) String() string {
	switch k {
	case Blush:
		return "blush"
	case Sunglasses:
		return "sunglasses"
	case RabbitEars:
		return "rabbit-ears"
	case Background:
		return "background"
	default:
		return "unknown"
	}
}

// ParseKind resolves a filter name to its Kind. Matching is case-insensitive
// and accepts both "rabbit-ears" and "rabbitears" spellings.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blush":
		return Blush, nil
	case "sunglasses":
		return Sunglasses, nil
	case "rabbit-ears", "rabbitears", "rabbit_ears":
		return RabbitEars, nil
	case "background":
		return Background, nil
	default:
		return 0, fmt.Errorf("unknown filter %q", name)
	}
}

// State holds the per-filter toggles and the selected background image. It
// persists across frames and is mutated only between composite calls, never
// during one.
type State struct {
	active     map[Kind]bool
	background image.Image
}

// NewState returns a State with every filter disabled.
func NewState() *State {
	return &State{active: make(map[Kind]bool)}
}

// Enable turns a filter on or off.
func (s *State) Enable(kind Kind, on bool) {
	s.active[kind] = on
}

// Toggle flips a filter and returns its new value.
func (s *State) Toggle(kind Kind) bool {
	s.active[kind] = !s.active[kind]
	return s.active[kind]
}

// Enabled reports whether the given filter is active.
func (s *State) Enabled(kind Kind) bool {
	return s.active[kind]
}

// AnyEnabled reports whether at least one filter is active. When nothing is
// active the whole detection and compositing step is skipped for the frame.
func (s *State) AnyEnabled() bool {
	for _, on := range s.active {
		if on {
			return true
		}
	}
	return false
}

// SetBackground selects the replacement background image. A nil image
// deselects it, which disables the background filter even when toggled on.
func (s *State) SetBackground(img image.Image) {
	s.background = img
}

// BackgroundImage returns the selected background image, or nil.
func (s *State) BackgroundImage() image.Image {
	return s.background
}
