// Command snapshot renders the solar system headless and writes frames as
// PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/xlab/closer"
	"golang.org/x/term"

	"spaceship/internal/game"
	"spaceship/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene description (YAML); empty for the stock system")
	outDir := flag.String("out", "frames", "output directory")
	frames := flag.Int("frames", 120, "number of frames to simulate")
	every := flag.Int("every", 30, "write every n-th frame")
	width := flag.Int("width", 0, "override the scene width")
	height := flag.Int("height", 0, "override the scene height")
	fly := flag.Bool("fly", false, "hold thrust for the whole run")
	flag.Parse()

	closer.Bind(func() {
		slog.Info("snapshot finished", "out", *outDir)
	})
	defer closer.Close()

	cfg := game.LoadScene(*scenePath)
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	if err := run(cfg, *outDir, *frames, max(*every, 1), scene.Intent{Forward: *fly}); err != nil {
		closer.Fatalln(err)
	}
}

func run(cfg scene.Config, outDir string, frames, every int, in scene.Intent) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	session := game.NewSession(cfg)
	renderer := game.NewRenderer(cfg, game.LoadShipModel(cfg.Ship.Model))

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stderr.Fd())) {
		bar = progressbar.Default(int64(frames), "rendering")
	} else {
		bar = progressbar.DefaultSilent(int64(frames), "rendering")
	}
	defer bar.Close()

	var img *image.RGBA
	written := 0
	for i := 1; i <= frames; i++ {
		session.Step(in, game.DeltaTime)

		if i%every == 0 || i == frames {
			fb := renderer.Render(session)
			img = fb.RGBA(img)
			name := filepath.Join(outDir, fmt.Sprintf("frame_%05d.png", i))
			if err := writePNG(name, img); err != nil {
				return err
			}
			written++
		}
		_ = bar.Add(1)
	}

	slog.Info("frames written", "count", written, "triangles", renderer.Stats.Triangles, "fragments", renderer.Stats.Fragments)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return f.Close()
}
