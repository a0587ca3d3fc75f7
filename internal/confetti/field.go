package confetti

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/falling-confetti/internal/config"
)

// Piece is one falling rectangle. Only X and Y change after generation.
type Piece struct {
	Color  color.NRGBA
	Width  float64
	Height float64
	Angle  float64 // radians
	X, Y   float64 // center
	Speed  float64 // pixels per tick
}

// Painter receives one call per visible piece.
type Painter interface {
	FillRotatedRect(cx, cy, w, h, angle float64, c color.Color)
}

// Field owns the confetti pieces of a single surface.
type Field struct {
	pieces  []Piece
	count   int
	width   float64
	height  float64
	rng     *rand.Rand
	palette []color.NRGBA
}

type Option func(*Field)

// WithRand injects the random source used for generation and wrapping.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) { f.rng = r }
}

// WithPalette overrides the piece colors. An empty palette is ignored.
func WithPalette(p []color.NRGBA) Option {
	return func(f *Field) {
		if len(p) > 0 {
			f.palette = p
		}
	}
}

var defaultPalette = mustParsePalette(config.Palette)

func mustParsePalette(hexes []string) []color.NRGBA {
	p, err := ParsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return p
}

func NewField(count int, opts ...Option) *Field {
	f := &Field{
		count:   max(count, 0),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		palette: defaultPalette,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// SetCount stores n and regenerates when the surface size is known.
func (f *Field) SetCount(n int) {
	f.count = max(n, 0)
	f.reset()
}

// Resize regenerates the pieces for the new surface bounds.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
	f.reset()
}

func (f *Field) Count() int { return f.count }

func (f *Field) Size() (w, h float64) { return f.width, f.height }

// Pieces returns the live slice; callers must not keep it across regenerations.
func (f *Field) Pieces() []Piece { return f.pieces }

func (f *Field) reset() {
	f.pieces = f.pieces[:0]
	if f.width <= 0 || f.height <= 0 {
		return
	}
	f.generate()
}

func (f *Field) generate() {
	if cap(f.pieces) < f.count {
		f.pieces = make([]Piece, 0, f.count)
	}
	for i := 0; i < f.count; i++ {
		w := f.uniform(config.MinPieceWidth, config.MaxPieceWidth)
		f.pieces = append(f.pieces, Piece{
			Color:  f.palette[f.rng.IntN(len(f.palette))],
			Width:  w,
			Height: w * (config.MinAspect + f.uniform(0, config.AspectJitter)),
			Angle:  f.uniform(0, 2*math.Pi),
			X:      f.uniform(0, f.width),
			Y:      f.uniform(-f.height, f.height),
			Speed:  f.uniform(config.MinSpeed, config.MaxSpeed),
		})
	}
}

// Tick advances every piece by one frame, wrapping pieces that passed the
// bottom edge back above the top at a fresh x.
func (f *Field) Tick() {
	for i := range f.pieces {
		p := &f.pieces[i]
		p.Y += p.Speed
		if p.Y > f.height {
			p.Y = -p.Height
			p.X = f.uniform(0, f.width)
		}
	}
}

// Draw paints the pieces whose center lies within [-Height, surface height].
func (f *Field) Draw(dst Painter) {
	for i := range f.pieces {
		p := &f.pieces[i]
		if p.Y < -p.Height || p.Y > f.height {
			continue
		}
		dst.FillRotatedRect(p.X, p.Y, p.Width, p.Height, p.Angle, p.Color)
	}
}

// uniform samples [lo, hi).
func (f *Field) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}
