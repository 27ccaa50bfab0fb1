package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a simple horizontal slider widget.
// A logarithmic slider maps the track position exponentially between Min
// and Max, which keeps wide ranges (like the boid count) usable; both
// bounds must be positive in that mode.
type Slider struct {
	Label       string
	Value       float64
	Min, Max    float64
	X, Y        float64
	W, H        float64
	Logarithmic bool
}

// NewSlider creates a slider with the default track height.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     12,
	}
}

// Update checks for mouse interaction.
func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	if float64(mx) < s.X || float64(mx) > s.X+s.W ||
		float64(my) < s.Y || float64(my) > s.Y+s.H {
		return
	}

	t := (float64(mx) - s.X) / s.W
	if s.Logarithmic {
		s.Value = s.Min * math.Pow(s.Max/s.Min, t)
	} else {
		s.Value = s.Min + t*(s.Max-s.Min)
	}
	s.Clamp()
}

// Clamp forces the value back into [Min, Max]. Callers that move the
// bounds at runtime (mutually constrained sliders) use this to keep the
// value consistent.
func (s *Slider) Clamp() {
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// ratio returns the track position in [0, 1] for the current value.
func (s *Slider) ratio() float64 {
	if s.Logarithmic {
		return math.Log(s.Value/s.Min) / math.Log(s.Max/s.Min)
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Draw renders the slider track and its filled portion.
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(s.X), float32(s.Y), float32(s.W), float32(s.H),
		color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	vector.FillRect(screen,
		float32(s.X), float32(s.Y), float32(s.W*s.ratio()), float32(s.H),
		color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
