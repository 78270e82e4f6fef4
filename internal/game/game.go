// Package game owns the application shell: the ebiten event loop, the control
// panel wiring, the live plot, the tone output and the export/about dialogs.
// All input handling, parameter mutation and curve recomputation run
// synchronously inside Update on the event loop.
package game

import (
	"errors"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"lissajous-visualization/internal/config"
	"lissajous-visualization/internal/lissajous"
	"lissajous-visualization/internal/tone"
	"lissajous-visualization/internal/ui"
)

type Game struct {
	grid   []float64
	params lissajous.Params

	// Parameters as drawn, smoothed toward params so edits morph the curve.
	shown  lissajous.Params
	vel    velocities
	spring harmonica.Spring

	xs, ys []float64

	controls  []*ui.Control
	aboutBtn  *ui.Button
	exportBtn *ui.Button
	toneBtn   *ui.Button

	osc         *tone.Oscillator
	ctrl        *beep.Ctrl
	speakerInit bool
	tonePlaying bool

	lastErr error
}

type velocities struct {
	delta, freqX, freqY, ampX, ampY float64
}

func New() *Game {
	g := &Game{
		grid:   lissajous.Grid(),
		params: lissajous.DefaultParams(),
		spring: harmonica.NewSpring(harmonica.FPS(60), config.SpringFrequency, config.SpringDamping),
	}
	g.shown = g.params

	delta := ui.NewControl("Delta", config.DeltaMin, config.DeltaMax, config.SliderStep, config.DeltaDefault)
	a := ui.NewControl("a", config.FreqMin, config.FreqMax, config.SliderStep, config.FreqDefault)
	b := ui.NewControl("b", config.FreqMin, config.FreqMax, config.SliderStep, config.FreqDefault)
	ampA := ui.NewControl("A", config.AmpMin, config.AmpMax, config.SliderStep, config.AmpDefault)
	ampB := ui.NewControl("B", config.AmpMin, config.AmpMax, config.SliderStep, config.AmpDefault)

	delta.OnChange(g.setDelta)
	a.OnChange(g.setFreqX)
	b.OnChange(g.setFreqY)
	ampA.OnChange(g.setAmpX)
	ampB.OnChange(g.setAmpY)

	g.controls = []*ui.Control{delta, a, b, ampA, ampB}
	for i, c := range g.controls {
		c.SetRect(config.PanelX, config.PanelY+i*config.ControlGap, config.PanelWidth)
	}

	g.aboutBtn = ui.NewButton("About", g.showAbout)
	g.exportBtn = ui.NewButton("Export", func() {
		if err := g.exportPNG(); err != nil {
			g.lastErr = err
		}
	})
	g.toneBtn = ui.NewButton("Tone", g.toggleTone)

	buttons := []*ui.Button{g.toneBtn, g.exportBtn, g.aboutBtn}
	by := config.PanelY + len(g.controls)*config.ControlGap + 10
	for i, btn := range buttons {
		btn.SetRect(config.PanelX+i*(config.ButtonWidth+config.ButtonGap), by, config.ButtonWidth, config.ButtonHeight)
	}

	g.xs, g.ys = g.params.Compute(g.grid)
	return g
}

// The five parameter hooks. The delta control edits degrees; the model works
// in radians.

func (g *Game) setDelta(deg float64) {
	g.params.Delta = deg * math.Pi / 180
	g.syncTone()
}

func (g *Game) setFreqX(v float64) {
	g.params.FreqX = v
	g.syncTone()
}

func (g *Game) setFreqY(v float64) {
	g.params.FreqY = v
	g.syncTone()
}

func (g *Game) setAmpX(v float64) {
	g.params.AmpX = v
	g.syncTone()
}

func (g *Game) setAmpY(v float64) {
	g.params.AmpY = v
	g.syncTone()
}

func (g *Game) syncTone() {
	if g.osc != nil {
		g.osc.SetParams(g.params)
	}
}

func (g *Game) Update() error {
	in := ui.Poll()

	for _, c := range g.controls {
		c.Update(in)
	}
	g.aboutBtn.Update(in)
	g.exportBtn.Update(in)
	g.toneBtn.Update(in)

	// Shortcuts are suspended while a text field is taking keystrokes;
	// otherwise typing "q" or a space into a value would quit the app or
	// toggle the tone mid-edit.
	if !g.editing() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.toggleTone()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			if err := g.exportPNG(); err != nil {
				g.lastErr = err
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.showAbout()
		}
	}

	g.stepSprings()
	g.xs, g.ys = g.shown.Compute(g.grid)

	return nil
}

// editing reports whether any control's text field has keyboard focus.
func (g *Game) editing() bool {
	for _, c := range g.controls {
		if c.Focused() {
			return true
		}
	}
	return false
}

// stepSprings advances the displayed parameters one tick toward the targets.
func (g *Game) stepSprings() {
	g.shown.Delta, g.vel.delta = g.spring.Update(g.shown.Delta, g.vel.delta, g.params.Delta)
	g.shown.FreqX, g.vel.freqX = g.spring.Update(g.shown.FreqX, g.vel.freqX, g.params.FreqX)
	g.shown.FreqY, g.vel.freqY = g.spring.Update(g.shown.FreqY, g.vel.freqY, g.params.FreqY)
	g.shown.AmpX, g.vel.ampX = g.spring.Update(g.shown.AmpX, g.vel.ampX, g.params.AmpX)
	g.shown.AmpY, g.vel.ampY = g.spring.Update(g.shown.AmpY, g.vel.ampY, g.params.AmpY)
}

func (g *Game) toggleTone() {
	if !g.speakerInit {
		sr := beep.SampleRate(config.ToneSampleRate)
		if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
			g.lastErr = err
			return
		}
		g.osc = tone.New(sr, g.params)
		g.ctrl = &beep.Ctrl{Streamer: g.osc}
		speaker.Play(g.ctrl)
		g.speakerInit = true
		g.tonePlaying = true
		return
	}

	speaker.Lock()
	g.tonePlaying = !g.tonePlaying
	g.ctrl.Paused = !g.tonePlaying
	speaker.Unlock()
}

func (g *Game) showAbout() {
	err := zenity.Info(
		"Lissajous figures visualization\n\n"+
			"x = A*sin(a*t + delta)\n"+
			"y = B*sin(b*t)\n\n"+
			"Drag the sliders or type values to reshape the curve.",
		zenity.Title("About"),
		zenity.InfoIcon,
	)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		g.lastErr = err
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawPlot(screen)

	ebitenutil.DebugPrintAt(screen, "x = A*sin(a*t + delta)   y = B*sin(b*t)", config.PanelX, config.PlotY)

	for _, c := range g.controls {
		c.Draw(screen)
	}
	g.toneBtn.Draw(screen)
	g.exportBtn.Draw(screen)
	g.aboutBtn.Draw(screen)

	status := "Space: tone on/off | S: export PNG | F1: about | Esc/Q: quit"
	if g.tonePlaying {
		status = "Playing tone | " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
