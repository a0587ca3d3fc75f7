package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// rectPainter fills rotated rectangles by stretching a single white pixel.
type rectPainter struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
	op    ebiten.DrawImageOptions
}

func newRectPainter() *rectPainter {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &rectPainter{pixel: px}
}

func (p *rectPainter) FillRotatedRect(cx, cy, w, h, angle float64, c color.Color) {
	p.op.GeoM.Reset()
	p.op.GeoM.Scale(w, h)
	p.op.GeoM.Translate(-w/2, -h/2)
	p.op.GeoM.Rotate(angle)
	p.op.GeoM.Translate(cx, cy)
	p.op.ColorScale.Reset()
	p.op.ColorScale.ScaleWithColor(c)
	p.dst.DrawImage(p.pixel, &p.op)
}
