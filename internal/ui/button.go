package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a labeled click target with hover and pressed states. The click
// callback fires on release while the cursor is still over the button.
type Button struct {
	Label string

	x, y, w, h int
	hovered    bool
	pressed    bool
	onClick    func()
}

func NewButton(label string, onClick func()) *Button {
	return &Button{Label: label, onClick: onClick}
}

func (b *Button) SetRect(x, y, w, h int) {
	b.x, b.y, b.w, b.h = x, y, w, h
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

func (b *Button) Update(in Input) {
	b.hovered = b.contains(in.MouseX, in.MouseY)
	if b.hovered && in.JustPressed {
		b.pressed = true
	}
	if in.JustReleased {
		if b.pressed && b.hovered && b.onClick != nil {
			b.onClick()
		}
		b.pressed = false
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	// Center the label (8px per glyph of the debug font)
	textWidth := len(b.Label) * 8
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.Label, textX, textY)
}
