package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lissajous-visualization/internal/config"
)

var (
	plotBackground = color.RGBA{R: 12, G: 15, B: 22, A: 255}
	plotBorder     = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	plotAxis       = color.RGBA{R: 40, G: 48, B: 62, A: 255}
	curveColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

func (g *Game) drawPlot(screen *ebiten.Image) {
	x0, y0 := float32(config.PlotX), float32(config.PlotY)
	w, h := float32(config.PlotWidth), float32(config.PlotHeight)

	vector.DrawFilledRect(screen, x0, y0, w, h, plotBackground, false)
	vector.StrokeRect(screen, x0, y0, w, h, 2, plotBorder, false)

	// Axes through the origin
	vector.StrokeLine(screen, x0, y0+h/2, x0+w, y0+h/2, 1, plotAxis, false)
	vector.StrokeLine(screen, x0+w/2, y0, x0+w/2, y0+h, 1, plotAxis, false)

	if len(g.xs) < 2 {
		return
	}

	sx, sy := plotScale(g.shown.AmpX, g.shown.AmpY)
	px, py := g.project(g.xs[0], g.ys[0], sx, sy)
	for i := 1; i < len(g.xs); i++ {
		nx, ny := g.project(g.xs[i], g.ys[i], sx, sy)
		vector.StrokeLine(screen, px, py, nx, ny, 1.5, curveColor, true)
		px, py = nx, ny
	}
}

// plotScale picks half-extents for the two axes so the curve fills the plot
// without touching the frame.
func plotScale(ampX, ampY float64) (sx, sy float64) {
	sx = math.Abs(ampX) * 1.1
	if sx < 0.1 {
		sx = 0.1
	}
	sy = math.Abs(ampY) * 1.1
	if sy < 0.1 {
		sy = 0.1
	}
	return sx, sy
}

// project maps a curve point to screen coordinates. The y axis points up.
func (g *Game) project(x, y, sx, sy float64) (float32, float32) {
	fx := config.PlotX + (x/sx+1)/2*config.PlotWidth
	fy := config.PlotY + (1-(y/sy+1)/2)*config.PlotHeight
	return float32(fx), float32(fy)
}
