package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

// DefaultMaterialColor is used for faces without a resolvable diffuse color.
var DefaultMaterialColor = render.NewColor(128, 128, 128)

// MaterialSource opens a material library referenced by an mtllib statement.
type MaterialSource func(name string) (io.ReadCloser, error)

// Loader reads OBJ models from an assets directory and caches the
// flattened vertex lists by name.
type Loader struct {
	assetsPath string
	modelCache map[string][]render.Vertex
}

// NewLoader creates a Loader rooted at assetsPath.
func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		modelCache: make(map[string][]render.Vertex),
	}
}

// LoadModel returns the triangle list of assetsPath/name. The ".obj"
// extension is optional. Results are shared between callers and must not be
// modified.
func (l *Loader) LoadModel(name string) ([]render.Vertex, error) {
	if filepath.Ext(name) == "" {
		name += ".obj"
	}
	if verts, ok := l.modelCache[name]; ok {
		return verts, nil
	}

	verts, err := LoadOBJ(filepath.Join(l.assetsPath, name))
	if err != nil {
		return nil, err
	}
	l.modelCache[name] = verts
	return verts, nil
}

// LoadOBJ reads an OBJ file; material libraries resolve relative to it.
func LoadOBJ(path string) ([]render.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model file: %w", err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	verts, err := ParseOBJ(f, func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, name))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return verts, nil
}

type objCorner struct {
	v, vt, vn int // Zero-based, -1 when absent
}

// ParseOBJ reads Wavefront OBJ geometry and returns one vertex per triangle
// corner. Polygons are fan-triangulated. Positions and normals have Y and Z
// negated and texture V is flipped to match the engine's axes. Corners
// without a normal get +Y, corners without texture coordinates get (0,0).
//
// materials may be nil, in which case every face uses DefaultMaterialColor.
// A missing material library is not an error.
func ParseOBJ(r io.Reader, materials MaterialSource) ([]render.Vertex, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		texCoords []mgl32.Vec2
		out       []render.Vertex
	)
	palette := make(map[string]render.Color)
	current := DefaultMaterialColor

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}

		fields := strings.Fields(text)
		args := fields[1:]
		switch fields[0] {
		case "v":
			p, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, mgl32.Vec3{p.X(), -p.Y(), -p.Z()})

		case "vn":
			n, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normals = append(normals, mgl32.Vec3{n.X(), -n.Y(), -n.Z()})

		case "vt":
			if len(args) < 1 {
				return nil, fmt.Errorf("line %d: texture coordinate needs at least 1 component", line)
			}
			vals, err := parseFloats(args[:min(len(args), 2)])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			var uv mgl32.Vec2
			copy(uv[:], vals)
			texCoords = append(texCoords, mgl32.Vec2{uv.X(), 1 - uv.Y()})

		case "f":
			if len(args) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			corners := make([]objCorner, len(args))
			for i, a := range args {
				c, err := parseCorner(a, len(positions), len(texCoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				corners[i] = c
			}
			for i := 1; i+1 < len(corners); i++ {
				for _, c := range [3]objCorner{corners[0], corners[i], corners[i+1]} {
					out = append(out, buildVertex(c, positions, texCoords, normals, current))
				}
			}

		case "mtllib":
			if materials == nil {
				continue
			}
			for _, name := range args {
				if err := loadMaterials(materials, name, palette); err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
			}

		case "usemtl":
			current = DefaultMaterialColor
			if len(args) > 0 {
				if c, ok := palette[args[0]]; ok {
					current = c
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read model: %w", err)
	}
	return out, nil
}

func buildVertex(c objCorner, positions []mgl32.Vec3, texCoords []mgl32.Vec2, normals []mgl32.Vec3, color render.Color) render.Vertex {
	normal := mgl32.Vec3{0, 1, 0}
	if c.vn >= 0 {
		normal = normals[c.vn]
	}
	var uv mgl32.Vec2
	if c.vt >= 0 {
		uv = texCoords[c.vt]
	}
	v := render.NewVertex(positions[c.v], normal, uv)
	v.Color = color
	return v
}

// parseCorner decodes v, v/vt, v//vn or v/vt/vn. Negative indices count
// back from the most recent element.
func parseCorner(s string, nv, nvt, nvn int) (objCorner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return objCorner{}, fmt.Errorf("malformed face vertex %q", s)
	}

	c := objCorner{v: -1, vt: -1, vn: -1}
	counts := [3]int{nv, nvt, nvn}
	dst := [3]*int{&c.v, &c.vt, &c.vn}
	for i, p := range parts {
		if p == "" {
			continue
		}
		idx, err := strconv.Atoi(p)
		if err != nil {
			return objCorner{}, fmt.Errorf("malformed face vertex %q: %w", s, err)
		}
		switch {
		case idx > 0:
			idx--
		case idx < 0:
			idx += counts[i]
		default:
			return objCorner{}, fmt.Errorf("face vertex %q uses index 0", s)
		}
		if idx < 0 || idx >= counts[i] {
			return objCorner{}, fmt.Errorf("face vertex %q out of range", s)
		}
		*dst[i] = idx
	}
	if c.v < 0 {
		return objCorner{}, fmt.Errorf("face vertex %q has no position", s)
	}
	return c, nil
}

func loadMaterials(open MaterialSource, name string, palette map[string]render.Color) error {
	rc, err := open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not open material library %q: %w", name, err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	var material string
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			material = ""
			if len(fields) > 1 {
				material = fields[1]
			}
		case "Kd":
			if material == "" {
				continue
			}
			kd, err := parseVec3(fields[1:])
			if err != nil {
				return fmt.Errorf("%s line %d: %w", name, line, err)
			}
			palette[material] = render.NewColor(unitToByte(kd.X()), unitToByte(kd.Y()), unitToByte(kd.Z()))
		}
	}
	return scanner.Err()
}

func unitToByte(v float32) uint8 {
	return uint8(mgl32.Clamp(v*255, 0, 255))
}

func parseVec3(args []string) (mgl32.Vec3, error) {
	if len(args) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(args))
	}
	vals, err := parseFloats(args[:3])
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{vals[0], vals[1], vals[2]}, nil
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}
