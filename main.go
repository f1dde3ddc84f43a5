package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/mirage/internal/config"
	"github.com/iburimskiy/mirage/internal/game"
)

func main() {
	settings := config.LoadSettings()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Mirage - M: motion source, T: theme, I: image, O: audio, Esc/Q: Quit")

	g := game.New(settings)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
