package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"lissajous-visualization/internal/config"
	"lissajous-visualization/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Lissajous - Space: Tone, S: Export, F1: About, Esc/Q: Quit")

	g := game.New()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
