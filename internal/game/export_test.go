package game

import (
	"image/color"
	"math"
	"testing"

	"lissajous-visualization/internal/lissajous"
)

func TestRenderCurveCircle(t *testing.T) {
	// delta = pi/2 with equal unit frequencies and amplitudes is a circle.
	p := lissajous.Params{Delta: math.Pi / 2, FreqX: 1, FreqY: 1, AmpX: 1, AmpY: 1}
	xs, ys := p.Compute(lissajous.Grid())

	img := renderCurve(xs, ys, exportWidth, exportHeight)

	b := img.Bounds()
	if b.Dx() != exportWidth || b.Dy() != exportHeight {
		t.Fatalf("bounds = %v, want %dx%d", b, exportWidth, exportHeight)
	}

	green := color.RGBA{G: 255, A: 255}
	count := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != green {
				continue
			}
			count++
			if x < exportMargin || x >= exportWidth-exportMargin ||
				y < exportMargin || y >= exportHeight-exportMargin {
				t.Fatalf("curve pixel (%d,%d) outside the margins", x, y)
			}
		}
	}
	if count == 0 {
		t.Fatal("no curve pixels drawn")
	}

	// Corners stay background black.
	if img.RGBAAt(0, 0) != (color.RGBA{A: 255}) {
		t.Fatalf("corner pixel = %v, want opaque black", img.RGBAAt(0, 0))
	}

	// The center of a circle is empty.
	if img.RGBAAt(exportWidth/2, exportHeight/2) == green {
		t.Fatal("circle center unexpectedly on the curve")
	}
}

func TestRenderCurveDegenerateInput(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{0}, []float64{0}},
		{"mismatched lengths", []float64{0, 1}, []float64{0}},
		{"all zero", make([]float64, 10), make([]float64, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := renderCurve(tt.xs, tt.ys, 64, 64)
			if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
				t.Fatalf("bounds = %v", img.Bounds())
			}
		})
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	img := renderCurve(nil, nil, 32, 32)
	c := color.RGBA{R: 255, A: 255}
	drawLine(img, 2, 3, 20, 11, c)
	if img.RGBAAt(2, 3) != c {
		t.Fatal("start pixel not set")
	}
	if img.RGBAAt(20, 11) != c {
		t.Fatal("end pixel not set")
	}
}
