// Command spaceship-ebiten runs the solar system in an ebiten window.
package main

import (
	"flag"
	"os"

	"spaceship/internal/game"
	"spaceship/internal/present"
)

func main() {
	scenePath := flag.String("scene", "", "scene description (YAML); empty for the stock system")
	flag.Parse()

	cfg := game.LoadScene(*scenePath)
	g := present.NewEbitenGame(
		game.NewSession(cfg),
		game.NewRenderer(cfg, game.LoadShipModel(cfg.Ship.Model)),
	)

	game.PrintControls(os.Stdout)
	if err := g.Run("Solar System"); err != nil {
		panic(err)
	}
}
