package config

const (
	WindowWidth  = 480
	WindowHeight = 800

	TicksPerSecond = 60

	// Confetti parameters
	DefaultCount  = 50
	MinPieceWidth = 10.0
	MaxPieceWidth = 20.0
	MinAspect     = 0.5
	AspectJitter  = 0.3
	MinSpeed      = 1.0
	MaxSpeed      = 3.0

	// Slider dimensions
	SliderMax       = 200
	SliderHeight    = 24
	SliderMarginX   = 32
	SliderBottomGap = 48
	SliderKnob      = 12
	SliderBigStep   = 10

	// Blip sound parameters
	SampleRate    = 44100
	BlipFrequency = 880.0
	BlipMillis    = 40
	BlipVolume    = -1.5
)

// Palette lists the confetti colors as #RRGGBB strings.
var Palette = []string{
	"#FF9BC5",
	"#9383FF",
	"#7ED9FF",
	"#7FD8FF",
}
