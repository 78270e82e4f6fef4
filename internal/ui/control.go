package ui

import (
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"lissajous-visualization/internal/config"
)

// Control presents one logical numeric value through two redundant widgets, a
// bounded slider and a free-text field, and keeps them in agreement.
//
// One policy applies to every control: text that does not parse as a number
// is ignored, and text that parses outside [min, max] is clamped to the
// bounds before it is emitted. The raw text stays as typed until the user
// commits (Enter or focus loss), which rewrites it to the accepted value.
type Control struct {
	Label string

	slider   *Slider
	text     *TextBox
	value    float64
	onChange func(float64)

	labelX, labelY int
}

func NewControl(label string, min, max, step, def float64) *Control {
	c := &Control{
		Label:  label,
		slider: NewSlider(min, max, step),
		text:   NewTextBox(),
	}
	c.SetValue(def)
	return c
}

// OnChange registers the single listener for user-originated value changes.
// Programmatic SetValue calls never reach the listener.
func (c *Control) OnChange(fn func(float64)) { c.onChange = fn }

func (c *Control) Value() float64 { return c.value }

// Focused reports whether the control's text field is taking keyboard input.
func (c *Control) Focused() bool { return c.text.Focused() }

// SetRect lays the control out: label and text field on one row, slider
// underneath.
func (c *Control) SetRect(x, y, w int) {
	c.text.SetRect(x+w-config.TextWidth, y, config.TextWidth, config.TextHeight)
	c.slider.SetRect(x, y+config.TextHeight+8, w, config.SliderHeight)
	c.labelX, c.labelY = x, y+(config.TextHeight-14)/2
}

func (c *Control) emit(v float64) {
	if c.onChange != nil {
		c.onChange(v)
	}
}

// SetValue updates both widgets programmatically without emitting a change.
func (c *Control) SetValue(v float64) {
	v = c.slider.Clamp(v)
	c.value = v
	c.slider.SetValue(v)
	c.text.SetText(formatValue(v))
}

// Update feeds one frame of input through both widgets.
func (c *Control) Update(in Input) {
	if v, changed := c.slider.Handle(in.MouseX, in.MouseY, in.JustPressed, in.Pressed); changed {
		c.sliderChanged(v)
	}

	blurred := c.text.HandleMouse(in.MouseX, in.MouseY, in.JustPressed)
	edited, committed := c.text.HandleKeys(in.Chars, in.Backspace, in.Enter)
	if edited {
		c.textEdited(c.text.Text())
	}
	if committed || blurred {
		c.commitText()
	}
}

// sliderChanged mirrors a slider move into the text field and emits once.
func (c *Control) sliderChanged(v float64) {
	c.value = v
	c.text.SetText(formatValue(v))
	c.emit(v)
}

// textEdited applies one keystroke's worth of text. Unparseable input leaves
// the value untouched; out-of-range input is clamped before emission.
func (c *Control) textEdited(s string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return
	}
	v = c.slider.Clamp(v)
	c.value = v
	c.slider.SetValue(v)
	c.emit(v)
}

// commitText normalizes the text field to the accepted value. No emission:
// any change was already emitted on the keystroke that caused it.
func (c *Control) commitText() {
	c.text.SetText(formatValue(c.value))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (c *Control) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, c.Label, c.labelX, c.labelY)
	c.text.Draw(screen)
	c.slider.Draw(screen)
}
