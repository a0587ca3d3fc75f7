package widget

import "math"

// Slider is a horizontal integer slider over [0, Max]. It holds geometry and
// drag state only; input polling and drawing live with the caller.
type Slider struct {
	X, Y, W, H int
	Max        int

	// OnChange fires whenever the value changes.
	OnChange func(v int)

	value     int
	dragging  bool
	hovered   bool
	pressedAt int
}

func NewSlider(maxValue, value int) *Slider {
	s := &Slider{Max: max(maxValue, 0)}
	s.value = s.clamp(value)
	return s
}

func (s *Slider) Value() int { return s.value }

func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) Hovered() bool { return s.hovered }

// Place moves the track; the value is preserved.
func (s *Slider) Place(x, y, w, h int) {
	s.X, s.Y, s.W, s.H = x, y, w, h
}

func (s *Slider) Contains(x, y int) bool {
	return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
}

// Hover records whether the pointer is over the track.
func (s *Slider) Hover(x, y int) {
	s.hovered = s.Contains(x, y)
}

// SetValue clamps v into range and reports whether the value changed.
func (s *Slider) SetValue(v int) bool {
	v = s.clamp(v)
	if v == s.value {
		return false
	}
	s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
	return true
}

// Step nudges the value by delta.
func (s *Slider) Step(delta int) bool {
	return s.SetValue(s.value + delta)
}

// Press starts a drag when (x, y) is on the track and jumps to that value.
func (s *Slider) Press(x, y int) bool {
	if !s.Contains(x, y) {
		return false
	}
	s.dragging = true
	s.pressedAt = s.value
	s.SetValue(s.ValueAt(x))
	return true
}

// Drag follows the pointer while a drag is active.
func (s *Slider) Drag(x int) {
	if !s.dragging {
		return
	}
	s.SetValue(s.ValueAt(x))
}

// Release ends the drag and reports whether it settled on a different value
// than it started from.
func (s *Slider) Release() bool {
	if !s.dragging {
		return false
	}
	s.dragging = false
	return s.value != s.pressedAt
}

// ValueAt maps a pointer x coordinate onto the value range.
func (s *Slider) ValueAt(x int) int {
	if s.W <= 0 {
		return s.value
	}
	ratio := clamp01(float64(x-s.X) / float64(s.W))
	return int(math.Round(ratio * float64(s.Max)))
}

// Ratio is the value as a fraction of Max.
func (s *Slider) Ratio() float64 {
	if s.Max == 0 {
		return 0
	}
	return float64(s.value) / float64(s.Max)
}

// KnobX is the knob center in screen coordinates.
func (s *Slider) KnobX() float64 {
	return float64(s.X) + s.Ratio()*float64(s.W)
}

func (s *Slider) clamp(v int) int {
	return min(max(v, 0), s.Max)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
