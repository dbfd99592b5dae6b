package game

import (
	"log/slog"

	"spaceship/internal/mesh"
	"spaceship/internal/render"
)

var (
	dartHull = render.NewColor(170, 180, 200)
	dartFin  = render.NewColor(200, 60, 40)
)

// LoadShipModel reads the ship's OBJ model, falling back to the built-in
// dart when the file is missing or malformed.
func LoadShipModel(path string) []render.Vertex {
	verts, err := mesh.LoadOBJ(path)
	if err != nil {
		slog.Warn("ship model unavailable, using built-in dart", "path", path, "err", err)
		return mesh.Dart(dartHull, dartFin)
	}
	slog.Info("ship model loaded", "path", path, "triangles", len(verts)/3)
	return verts
}
