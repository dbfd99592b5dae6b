package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"spaceship/internal/config"
	"spaceship/internal/game"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	scenePath := flag.String("scene", "", "scene description (YAML); empty for the stock system")
	fpsLimit := flag.Int("fps", 60, "frame rate cap, 0 for uncapped")
	flag.Parse()

	config.SetFPSLimit(*fpsLimit)
	cfg := game.LoadScene(*scenePath)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Width, cfg.Height)
	if err != nil {
		panic(err)
	}
	slog.Info("window created", "width", cfg.Width, "height", cfg.Height)

	loop, err := newGameLoop(window, cfg)
	if err != nil {
		panic(err)
	}
	defer loop.presenter.Delete()

	setupInputHandlers(window, loop.input)

	game.PrintControls(os.Stdout)
	loop.Run()
}
