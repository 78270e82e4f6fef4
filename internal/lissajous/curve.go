// Package lissajous evaluates the parametric curve
//
//	x(t) = A*sin(a*t + delta)
//	y(t) = B*sin(b*t)
//
// on a fixed sample grid.
package lissajous

import "math"

// Samples is the number of grid points the curve is evaluated at.
const Samples = 360

// Params holds the five curve coefficients. Delta is in radians.
type Params struct {
	Delta float64 // phase offset of the x sinusoid
	FreqX float64 // a, frequency ratio of the x sinusoid
	FreqY float64 // b, frequency ratio of the y sinusoid
	AmpX  float64 // A, amplitude of the x sinusoid
	AmpY  float64 // B, amplitude of the y sinusoid
}

// DefaultParams returns the identity curve: sin(t) plotted against sin(t).
func DefaultParams() Params {
	return Params{FreqX: 1, FreqY: 1, AmpX: 1, AmpY: 1}
}

// Grid returns Samples values spanning [-pi, pi], both endpoints included.
func Grid() []float64 {
	t := make([]float64, Samples)
	step := 2 * math.Pi / float64(Samples-1)
	for i := range t {
		t[i] = -math.Pi + float64(i)*step
	}
	return t
}

// Compute evaluates the curve at every sample of t. It is a pure function of
// p and t; both returned slices have len(t).
func (p Params) Compute(t []float64) (xs, ys []float64) {
	xs = make([]float64, len(t))
	ys = make([]float64, len(t))
	for i, v := range t {
		xs[i] = p.AmpX * math.Sin(p.FreqX*v+p.Delta)
		ys[i] = p.AmpY * math.Sin(p.FreqY*v)
	}
	return xs, ys
}
