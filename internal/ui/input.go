package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one frame of user input. The game loop polls it once per tick and
// hands the same snapshot to every widget, so widgets never read device state
// themselves and can be driven synthetically in tests.
type Input struct {
	MouseX, MouseY int
	JustPressed    bool // left button went down this frame
	JustReleased   bool // left button went up this frame
	Pressed        bool // left button held

	Chars     []rune
	Backspace bool
	Enter     bool
}

// Poll reads the current ebiten input state. Call once per Update tick.
func Poll() Input {
	mx, my := ebiten.CursorPosition()
	return Input{
		MouseX:       mx,
		MouseY:       my,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Chars:        ebiten.AppendInputChars(nil),
		Backspace:    repeatingKeyPressed(ebiten.KeyBackspace),
		Enter:        inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
	}
}

// repeatingKeyPressed fires on the initial press and then repeats while the
// key stays held, matching the usual text-editing feel.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
