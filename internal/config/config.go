package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Plot area
	PlotX      = 20
	PlotY      = 40
	PlotWidth  = 600
	PlotHeight = 580

	// Control panel
	PanelX       = 650
	PanelY       = 70
	PanelWidth   = 354
	ControlGap   = 78
	SliderHeight = 16
	TextHeight   = 22
	TextWidth    = 120

	// Buttons
	ButtonWidth  = 104
	ButtonHeight = 36
	ButtonGap    = 16

	// Control bounds and defaults
	DeltaMin     = 0
	DeltaMax     = 360
	DeltaDefault = 0
	FreqMin      = -10
	FreqMax      = 10
	FreqDefault  = 1
	AmpMin       = 0
	AmpMax       = 10
	AmpDefault   = 1
	SliderStep   = 1

	// Tone output
	ToneSampleRate    = 44100
	ToneBaseFrequency = 220.0

	// Parameter smoothing
	SpringFrequency = 8.0
	SpringDamping   = 0.85
)
