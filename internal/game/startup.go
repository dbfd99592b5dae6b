package game

import (
	"fmt"
	"io"
	"log/slog"

	"spaceship/internal/scene"
)

// LoadScene reads the scene file at path. An empty path or an unreadable
// file yields the stock scene.
func LoadScene(path string) scene.Config {
	if path == "" {
		return scene.DefaultConfig()
	}
	cfg, err := scene.LoadConfig(path)
	if err != nil {
		slog.Warn("using default scene", "path", path, "err", err)
		return scene.DefaultConfig()
	}
	slog.Info("scene loaded", "path", path, "planets", len(cfg.Planets))
	return cfg
}

// PrintControls writes the key reference shown at startup
func PrintControls(w io.Writer) {
	fmt.Fprintln(w, "=== SOLAR SYSTEM - CONTROLS ===")
	fmt.Fprintln(w, "Ship:")
	fmt.Fprintln(w, "  W/S: thrust forward/back")
	fmt.Fprintln(w, "  A/D: turn left/right")
	fmt.Fprintln(w, "  Up/Down arrows: pitch")
	fmt.Fprintln(w, "  Q/E: up/down")
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  SPACE: pause/resume orbits")
	fmt.Fprintln(w, "  O: show/hide orbit guides")
	fmt.Fprintln(w, "  V: profiling overlay")
	fmt.Fprintln(w, "  ESC: quit")
	fmt.Fprintln(w, "===============================")
}
