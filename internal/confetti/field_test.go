package confetti

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

func seeded() Option {
	return WithRand(rand.New(rand.NewPCG(1, 2)))
}

type paintCall struct {
	cx, cy, w, h, angle float64
	c                   color.Color
}

type recorder struct {
	calls []paintCall
}

func (r *recorder) FillRotatedRect(cx, cy, w, h, angle float64, c color.Color) {
	r.calls = append(r.calls, paintCall{cx, cy, w, h, angle, c})
}

func TestSetCountWithKnownSize(t *testing.T) {
	f := NewField(0, seeded())
	f.Resize(320, 480)

	for _, n := range []int{0, 1, 7, 50, 200, 3} {
		f.SetCount(n)
		if got := len(f.Pieces()); got != n {
			t.Errorf("SetCount(%d): got %d pieces", n, got)
		}
	}
}

func TestSetCountNegativeClampsToZero(t *testing.T) {
	f := NewField(10, seeded())
	f.Resize(100, 100)
	f.SetCount(-5)
	if f.Count() != 0 || len(f.Pieces()) != 0 {
		t.Fatalf("expected empty field, got count=%d pieces=%d", f.Count(), len(f.Pieces()))
	}
}

func TestSetCountDefersUntilSized(t *testing.T) {
	f := NewField(0, seeded())
	f.SetCount(25)
	if len(f.Pieces()) != 0 {
		t.Fatalf("expected no pieces before size is known, got %d", len(f.Pieces()))
	}

	f.Resize(200, 0)
	if len(f.Pieces()) != 0 {
		t.Fatalf("expected no pieces with zero height, got %d", len(f.Pieces()))
	}

	f.Resize(200, 300)
	if len(f.Pieces()) != 25 {
		t.Fatalf("expected 25 pieces after resize, got %d", len(f.Pieces()))
	}
}

func TestResizeKeepsLastCount(t *testing.T) {
	f := NewField(12, seeded())
	sizes := [][2]float64{{100, 100}, {640, 480}, {1, 1}, {1920, 1080}}
	for _, s := range sizes {
		f.Resize(s[0], s[1])
		if got := len(f.Pieces()); got != 12 {
			t.Errorf("Resize(%v, %v): got %d pieces, want 12", s[0], s[1], got)
		}
	}
}

func TestGenerationRanges(t *testing.T) {
	const w, h = 300.0, 500.0
	f := NewField(500, seeded())
	f.Resize(w, h)

	for i, p := range f.Pieces() {
		if p.Width < 10 || p.Width >= 20 {
			t.Errorf("piece %d: width %v out of [10,20)", i, p.Width)
		}
		ratio := p.Height / p.Width
		if ratio < 0.5 || ratio >= 0.8+1e-9 {
			t.Errorf("piece %d: aspect %v out of [0.5,0.8)", i, ratio)
		}
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Errorf("piece %d: angle %v out of [0,2π)", i, p.Angle)
		}
		if p.X < 0 || p.X >= w {
			t.Errorf("piece %d: x %v out of [0,%v)", i, p.X, w)
		}
		if p.Y < -h || p.Y >= h {
			t.Errorf("piece %d: y %v out of [%v,%v)", i, p.Y, -h, h)
		}
		if p.Speed < 1 || p.Speed >= 3 {
			t.Errorf("piece %d: speed %v out of [1,3)", i, p.Speed)
		}
		if !inPalette(p.Color) {
			t.Errorf("piece %d: color %v not in palette", i, p.Color)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	a := NewField(30, seeded())
	b := NewField(30, seeded())
	a.Resize(400, 400)
	b.Resize(400, 400)

	for i := range a.Pieces() {
		if a.Pieces()[i] != b.Pieces()[i] {
			t.Fatalf("piece %d differs: %+v vs %+v", i, a.Pieces()[i], b.Pieces()[i])
		}
	}
}

func TestTickOnlyMovesPosition(t *testing.T) {
	f := NewField(40, seeded())
	f.Resize(200, 150)

	before := append([]Piece(nil), f.Pieces()...)
	for i := 0; i < 500; i++ {
		f.Tick()
	}
	for i, p := range f.Pieces() {
		b := before[i]
		if p.Color != b.Color || p.Width != b.Width || p.Height != b.Height ||
			p.Angle != b.Angle || p.Speed != b.Speed {
			t.Errorf("piece %d: fixed attributes changed: %+v -> %+v", i, b, p)
		}
	}
}

func TestTickWrapsPastBottom(t *testing.T) {
	f := NewField(0, seeded())
	f.Resize(50, 100)
	f.pieces = []Piece{{Width: 12, Height: 10, X: 7, Y: 98, Speed: 5}}

	f.Tick()

	p := f.Pieces()[0]
	if p.Y != -10 {
		t.Fatalf("expected y reset to -10, got %v", p.Y)
	}
	if p.X < 0 || p.X >= 50 {
		t.Fatalf("expected new x in [0,50), got %v", p.X)
	}
}

func TestTickAtExactBottomDoesNotWrap(t *testing.T) {
	f := NewField(0, seeded())
	f.Resize(50, 100)
	f.pieces = []Piece{{Width: 12, Height: 10, X: 7, Y: 98, Speed: 2}}

	f.Tick()

	p := f.Pieces()[0]
	if p.Y != 100 || p.X != 7 {
		t.Fatalf("expected piece at (7,100), got (%v,%v)", p.X, p.Y)
	}
}

func TestTickKeepsPiecesInBand(t *testing.T) {
	const h = 120.0
	f := NewField(60, seeded())
	f.Resize(90, h)

	for i := 0; i < 1000; i++ {
		f.Tick()
		for j, p := range f.Pieces() {
			if p.Y > h {
				t.Fatalf("tick %d piece %d: y %v left below the surface", i, j, p.Y)
			}
		}
	}
}

func TestDrawCullsOutsideBand(t *testing.T) {
	f := NewField(0, seeded())
	f.Resize(100, 100)
	red := color.NRGBA{R: 255, A: 255}
	f.pieces = []Piece{
		{Color: red, Width: 10, Height: 6, Y: -6},    // top edge, drawn
		{Color: red, Width: 10, Height: 6, Y: -6.01}, // above, skipped
		{Color: red, Width: 10, Height: 6, Y: 50},    // drawn
		{Color: red, Width: 10, Height: 6, Y: 100},   // bottom edge, drawn
		{Color: red, Width: 10, Height: 6, Y: 100.5}, // below, skipped
		{Color: red, Width: 10, Height: 6, Y: -90},   // mid-fall above, skipped
	}

	var r recorder
	f.Draw(&r)

	if len(r.calls) != 3 {
		t.Fatalf("expected 3 draw calls, got %d", len(r.calls))
	}
	wantY := []float64{-6, 50, 100}
	for i, c := range r.calls {
		if c.cy != wantY[i] {
			t.Errorf("call %d: y %v, want %v", i, c.cy, wantY[i])
		}
		if c.w != 10 || c.h != 6 || c.c != red {
			t.Errorf("call %d: unexpected geometry or color %+v", i, c)
		}
	}
}

func TestDrawEmptyField(t *testing.T) {
	f := NewField(10, seeded())
	var r recorder
	f.Draw(&r)
	if len(r.calls) != 0 {
		t.Fatalf("expected no draw calls on unsized field, got %d", len(r.calls))
	}
}

func TestWithPalette(t *testing.T) {
	only := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	f := NewField(20, seeded(), WithPalette([]color.NRGBA{only}))
	f.Resize(100, 100)
	for i, p := range f.Pieces() {
		if p.Color != only {
			t.Fatalf("piece %d: color %v, want %v", i, p.Color, only)
		}
	}
}

func inPalette(c color.NRGBA) bool {
	for _, p := range defaultPalette {
		if p == c {
			return true
		}
	}
	return false
}
