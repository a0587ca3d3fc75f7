//go:build !android

package main

import (
	"errors"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/falling-confetti/internal/config"
	"github.com/iburimskiy/falling-confetti/internal/game"
	"github.com/iburimskiy/falling-confetti/internal/sound"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Falling Confetti - drag the slider, Space: pause, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	player, err := sound.Init(
		beep.SampleRate(config.SampleRate),
		config.BlipFrequency,
		config.BlipMillis*time.Millisecond,
		config.BlipVolume,
	)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}

	log.Println("starting confetti screen")
	g := game.NewGame(player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		game.ShowFatal(err)
		log.Fatal(err)
	}
}
