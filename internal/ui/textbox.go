package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextBox is a free-text field. It holds whatever the user types, reports
// every edit as it happens, and reports a commit when the user presses Enter
// or the field loses focus.
type TextBox struct {
	x, y, w, h int
	text       []rune
	focused    bool
	hovered    bool
}

func NewTextBox() *TextBox { return &TextBox{} }

// SetRect positions the field.
func (t *TextBox) SetRect(x, y, w, h int) {
	t.x, t.y, t.w, t.h = x, y, w, h
}

func (t *TextBox) Text() string  { return string(t.text) }
func (t *TextBox) Focused() bool { return t.focused }

// SetText replaces the contents programmatically; no edit is reported.
func (t *TextBox) SetText(s string) {
	t.text = []rune(s)
}

func (t *TextBox) contains(mx, my int) bool {
	return mx >= t.x && mx <= t.x+t.w && my >= t.y && my <= t.y+t.h
}

// HandleMouse updates focus from a click and reports whether the field just
// lost focus (the caller should treat that as a commit).
func (t *TextBox) HandleMouse(mx, my int, justPressed bool) (blurred bool) {
	t.hovered = t.contains(mx, my)
	if !justPressed {
		return false
	}
	if t.hovered {
		t.focused = true
		return false
	}
	if t.focused {
		t.focused = false
		return true
	}
	return false
}

// HandleKeys feeds one frame of keyboard input into a focused field. It
// reports whether the text changed and whether the user committed with Enter.
func (t *TextBox) HandleKeys(chars []rune, backspace, enter bool) (edited, committed bool) {
	if !t.focused {
		return false, false
	}
	for _, r := range chars {
		if r < ' ' {
			continue
		}
		t.text = append(t.text, r)
		edited = true
	}
	if backspace && len(t.text) > 0 {
		t.text = t.text[:len(t.text)-1]
		edited = true
	}
	return edited, enter
}

func (t *TextBox) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(t.x), float32(t.y), float32(t.w), float32(t.h), color.RGBA{R: 20, G: 25, B: 35, A: 255}, false)

	borderColor := color.RGBA{R: 60, G: 70, B: 90, A: 255}
	if t.focused {
		borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	} else if t.hovered {
		borderColor = color.RGBA{R: 100, G: 110, B: 130, A: 255}
	}
	vector.StrokeRect(screen, float32(t.x), float32(t.y), float32(t.w), float32(t.h), 1, borderColor, false)

	ebitenutil.DebugPrintAt(screen, string(t.text), t.x+5, t.y+(t.h-14)/2)

	if t.focused {
		// Caret after the last character (8px per glyph of the debug font)
		cx := float32(t.x + 5 + len(t.text)*8)
		vector.StrokeLine(screen, cx, float32(t.y+4), cx, float32(t.y+t.h-4), 1, color.RGBA{R: 220, G: 230, B: 245, A: 255}, false)
	}
}
