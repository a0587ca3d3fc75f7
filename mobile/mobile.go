// Package mobile is the gomobile binding for the Android build
// (ebitenmobile bind -target android ./mobile).
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/iburimskiy/falling-confetti/internal/config"
	"github.com/iburimskiy/falling-confetti/internal/game"
)

func init() {
	log.Println("mobile init: SetGame")
	ebiten.SetTPS(config.TicksPerSecond)
	mobile.SetGame(game.NewGame(nil))
}

// Dummy keeps the package exported for gomobile.
func Dummy() {}
