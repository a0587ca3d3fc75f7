// Package screen wires the count slider to the confetti field and tracks the
// surface lifecycle. It has no rendering or input backend of its own.
package screen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iburimskiy/falling-confetti/internal/confetti"
	"github.com/iburimskiy/falling-confetti/internal/config"
	"github.com/iburimskiy/falling-confetti/internal/widget"
)

var ErrInvalidCount = errors.New("invalid confetti count")

// Cue is notified when the count settles on a new value.
type Cue interface {
	Blip()
}

type Controller struct {
	field  *confetti.Field
	anim   *confetti.Animator
	slider *widget.Slider
	cue    Cue

	width, height int
	focused       bool
	paused        bool
}

func NewController(count int, cue Cue, opts ...confetti.Option) *Controller {
	field := confetti.NewField(count, opts...)
	c := &Controller{
		field:  field,
		anim:   confetti.NewAnimator(field),
		slider: widget.NewSlider(config.SliderMax, count),
		cue:    cue,
	}
	c.slider.OnChange = field.SetCount
	return c
}

func (c *Controller) Field() *confetti.Field { return c.field }

func (c *Controller) Slider() *widget.Slider { return c.slider }

func (c *Controller) State() confetti.State { return c.anim.State() }

func (c *Controller) Paused() bool { return c.paused }

func (c *Controller) Size() (w, h int) { return c.width, c.height }

// Resize applies new surface bounds. Unchanged bounds keep the current pieces.
func (c *Controller) Resize(w, h int) {
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.field.Resize(float64(w), float64(h))
	c.slider.Place(
		config.SliderMarginX,
		h-config.SliderBottomGap-config.SliderHeight,
		max(w-2*config.SliderMarginX, 0),
		config.SliderHeight,
	)
}

// SetFocused attaches the animator while the surface is visible and detaches
// it when the host window goes away.
func (c *Controller) SetFocused(focused bool) {
	c.focused = focused
	c.sync()
}

func (c *Controller) TogglePause() {
	c.paused = !c.paused
	c.sync()
}

func (c *Controller) sync() {
	want := c.focused && !c.paused
	switch {
	case want && c.anim.State() == confetti.Idle:
		c.anim.Attach()
	case !want && c.anim.State() == confetti.Animating:
		c.anim.Detach()
	}
}

// Tick advances one frame.
func (c *Controller) Tick() {
	c.anim.Step()
}

func (c *Controller) Draw(p confetti.Painter) {
	c.field.Draw(p)
}

func (c *Controller) PointerDown(x, y int) bool {
	return c.slider.Press(x, y)
}

func (c *Controller) PointerMove(x, y int) {
	c.slider.Hover(x, y)
	c.slider.Drag(x)
}

func (c *Controller) PointerUp() {
	if c.slider.Release() {
		c.blip()
	}
}

// Step nudges the count from the keyboard.
func (c *Controller) Step(delta int) {
	if c.slider.Step(delta) {
		c.blip()
	}
}

// SetCount jumps straight to n, clamped to the slider range.
func (c *Controller) SetCount(n int) {
	if c.slider.SetValue(n) {
		c.blip()
	}
}

// SetTyped parses a user-entered count.
func (c *Controller) SetTyped(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	if n < 0 || n > config.SliderMax {
		return fmt.Errorf("%w: %d not in 0..%d", ErrInvalidCount, n, config.SliderMax)
	}
	c.SetCount(n)
	return nil
}

func (c *Controller) blip() {
	if c.cue != nil {
		c.cue.Blip()
	}
}
