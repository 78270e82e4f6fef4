package ui

import "testing"

func newTestSlider() *Slider {
	s := NewSlider(0, 360, 1)
	s.SetRect(0, 0, 360, 16)
	return s
}

func TestSliderSetValueClampsAndSnaps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 180, 180},
		{"snaps up", 90.7, 91},
		{"snaps down", 90.2, 90},
		{"below min", -5, 0},
		{"above max", 400, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSlider()
			s.SetValue(tt.in)
			if s.Value() != tt.want {
				t.Errorf("SetValue(%v): got %v, want %v", tt.in, s.Value(), tt.want)
			}
		})
	}
}

func TestSliderValueAt(t *testing.T) {
	s := newTestSlider()
	tests := []struct {
		mx   int
		want float64
	}{
		{0, 0},
		{360, 360},
		{180, 180},
		{-50, 0},   // left of the track
		{500, 360}, // right of the track
	}
	for _, tt := range tests {
		if got := s.valueAt(tt.mx); got != tt.want {
			t.Errorf("valueAt(%d) = %v, want %v", tt.mx, got, tt.want)
		}
	}
}

func TestSliderHandleDrag(t *testing.T) {
	s := newTestSlider()

	// Press on the track starts a drag and moves the value.
	v, changed := s.Handle(90, 8, true, true)
	if !changed || v != 90 {
		t.Fatalf("press on track: got (%v, %v), want (90, true)", v, changed)
	}

	// Dragging past the end clamps.
	v, changed = s.Handle(1000, 8, false, true)
	if !changed || v != 360 {
		t.Fatalf("drag past end: got (%v, %v), want (360, true)", v, changed)
	}

	// Same position again reports no change.
	if _, changed = s.Handle(1000, 8, false, true); changed {
		t.Fatal("unchanged drag position reported a change")
	}

	// Release stops the drag; later motion is ignored.
	s.Handle(1000, 8, false, false)
	if _, changed = s.Handle(10, 8, false, false); changed {
		t.Fatal("motion without a drag reported a change")
	}
}

func TestSliderPressOutsideDoesNothing(t *testing.T) {
	s := newTestSlider()
	s.SetValue(100)
	if _, changed := s.Handle(90, 200, true, true); changed {
		t.Fatal("press outside the track reported a change")
	}
	if s.Value() != 100 {
		t.Fatalf("value moved to %v after an outside press", s.Value())
	}
}
