package game

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/ncruces/zenity"
)

const (
	exportWidth  = 800
	exportHeight = 800
	exportMargin = 20
)

// exportPNG asks for a destination and writes the current curve as a PNG.
// A cancelled dialog is not an error.
func (g *Game) exportPNG() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Curve"),
		zenity.Filename("lissajous.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	img := renderCurve(g.xs, g.ys, exportWidth, exportHeight)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderCurve rasterizes the curve as a green polyline on black, using the
// same per-axis autoscaling as the live plot.
func renderCurve(xs, ys []float64, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	black := color.RGBA{A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, black)
		}
	}

	if len(xs) < 2 || len(xs) != len(ys) {
		return img
	}

	sx, sy := 0.0, 0.0
	for i := range xs {
		if v := abs(xs[i]); v > sx {
			sx = v
		}
		if v := abs(ys[i]); v > sy {
			sy = v
		}
	}
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}

	iw := w - 2*exportMargin
	ih := h - 2*exportMargin
	toPixel := func(x, y float64) (int, int) {
		px := exportMargin + int((x/sx+1)/2*float64(iw-1)+0.5)
		py := exportMargin + int((1-(y/sy+1)/2)*float64(ih-1)+0.5)
		return px, py
	}

	green := color.RGBA{G: 255, A: 255}
	px, py := toPixel(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		nx, ny := toPixel(xs[i], ys[i])
		drawLine(img, px, py, nx, ny, green)
		px, py = nx, ny
	}
	return img
}

// drawLine plots a segment by linear interpolation, one pixel per step.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := max(absInt(dx), absInt(dy))
	if steps == 0 {
		img.SetRGBA(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		img.SetRGBA(x, y, c)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
