package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal bounded control moved in discrete steps by clicking
// or dragging along the track. It enforces its own bounds: every value it
// reports lies in [Min, Max] and on the step grid.
type Slider struct {
	Min, Max, Step float64

	x, y, w, h int
	value      float64
	dragging   bool
	hovered    bool
}

func NewSlider(min, max, step float64) *Slider {
	return &Slider{Min: min, Max: max, Step: step, value: min}
}

// SetRect positions the slider track.
func (s *Slider) SetRect(x, y, w, h int) {
	s.x, s.y, s.w, s.h = x, y, w, h
}

func (s *Slider) Value() float64 { return s.value }

// SetValue moves the knob programmatically. The value is clamped and snapped;
// no change is reported.
func (s *Slider) SetValue(v float64) {
	s.value = s.snap(s.Clamp(v))
}

// Clamp restricts v to the slider's bounds without snapping.
func (s *Slider) Clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

func (s *Slider) snap(v float64) float64 {
	if s.Step <= 0 {
		return v
	}
	return s.Clamp(s.Min + math.Round((v-s.Min)/s.Step)*s.Step)
}

func (s *Slider) contains(mx, my int) bool {
	return mx >= s.x && mx <= s.x+s.w && my >= s.y && my <= s.y+s.h
}

// valueAt maps a mouse x coordinate onto the track.
func (s *Slider) valueAt(mx int) float64 {
	if s.w <= 0 {
		return s.Min
	}
	frac := float64(mx-s.x) / float64(s.w)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return s.snap(s.Min + frac*(s.Max-s.Min))
}

// Handle processes one frame of mouse state and reports whether the value
// changed through user interaction.
func (s *Slider) Handle(mx, my int, justPressed, pressed bool) (float64, bool) {
	s.hovered = s.contains(mx, my)
	if justPressed && s.hovered {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
	}
	if s.dragging {
		if v := s.valueAt(mx); v != s.value {
			s.value = v
			return v, true
		}
	}
	return s.value, false
}

func (s *Slider) Draw(screen *ebiten.Image) {
	cy := float32(s.y) + float32(s.h)/2

	trackColor := color.RGBA{R: 60, G: 70, B: 90, A: 255}
	if s.hovered || s.dragging {
		trackColor = color.RGBA{R: 80, G: 95, B: 120, A: 255}
	}
	vector.StrokeLine(screen, float32(s.x), cy, float32(s.x+s.w), cy, 3, trackColor, false)

	// Knob position along the track
	frac := 0.0
	if s.Max > s.Min {
		frac = (s.value - s.Min) / (s.Max - s.Min)
	}
	kx := float32(s.x) + float32(frac)*float32(s.w)
	vector.DrawFilledCircle(screen, kx, cy, 7, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
	vector.StrokeCircle(screen, kx, cy, 7, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
}
