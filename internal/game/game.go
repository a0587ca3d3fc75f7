package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/falling-confetti/internal/config"
	"github.com/iburimskiy/falling-confetti/internal/screen"
	"github.com/iburimskiy/falling-confetti/internal/sound"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 30, A: 255}
	trackColor      = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	fillColor       = color.RGBA{R: 147, G: 131, B: 255, A: 255}
	knobColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	knobActiveColor = color.RGBA{R: 255, G: 155, B: 197, A: 255}
	labelColor      = color.RGBA{R: 220, G: 225, B: 235, A: 255}
)

type Game struct {
	ctrl    *screen.Controller
	sound   *sound.Player
	painter *rectPainter

	// surface size reported by Layout, applied on the next Update
	surfaceW, surfaceH int

	// active touch on the slider
	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool

	lastErr error
}

// NewGame builds the confetti screen. player may be nil when audio is
// unavailable.
func NewGame(player *sound.Player) *Game {
	return &Game{
		ctrl:  screen.NewController(config.DefaultCount, player),
		sound: player,
	}
}

func (g *Game) Update() error {
	g.ctrl.Resize(g.surfaceW, g.surfaceH)
	g.ctrl.SetFocused(ebiten.IsFocused())

	g.handlePointer()

	if err := g.handleKeys(); err != nil {
		return err
	}

	g.ctrl.Tick()
	return nil
}

func (g *Game) handlePointer() {
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.ctrl.PointerUp()
			g.touching = false
		} else {
			x, y := ebiten.TouchPosition(g.touchID)
			g.ctrl.PointerMove(x, y)
		}
		return
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if g.ctrl.PointerDown(x, y) {
			g.touchID = id
			g.touching = true
			return
		}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.ctrl.PointerMove(mouseX, mouseY)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.PointerDown(mouseX, mouseY)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.PointerUp()
	}
}

func (g *Game) handleKeys() error {
	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = config.SliderBigStep
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.ctrl.Step(step)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.ctrl.Step(-step)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.ctrl.SetCount(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.ctrl.SetCount(config.SliderMax)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		log.Printf("sound muted: %v", g.sound.ToggleMute())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.lastErr = g.promptCount()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.painter == nil {
		g.painter = newRectPainter()
	}
	g.painter.dst = screen
	g.ctrl.Draw(g.painter)

	g.drawSlider(screen)

	status := fmt.Sprintf("%s | Space: pause, arrows/C: count, M: mute", g.ctrl.State())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawSlider(screen *ebiten.Image) {
	s := g.ctrl.Slider()
	if s.W <= 0 {
		return
	}
	trackY := float32(s.Y) + float32(s.H)/2
	vector.StrokeLine(screen, float32(s.X), trackY, float32(s.X+s.W), trackY, 4, trackColor, true)
	knobX := float32(s.KnobX())
	vector.StrokeLine(screen, float32(s.X), trackY, knobX, trackY, 4, fillColor, true)

	knob := knobColor
	if s.Dragging() || s.Hovered() {
		knob = knobActiveColor
	}
	vector.DrawFilledCircle(screen, knobX, trackY, config.SliderKnob, knob, true)

	label := fmt.Sprintf("Confetti: %d", s.Value())
	text.Draw(screen, label, basicfont.Face7x13, s.X, s.Y-8, labelColor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surfaceW, g.surfaceH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
