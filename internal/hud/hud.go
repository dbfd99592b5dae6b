package hud

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/profiling"
	"spaceship/internal/render"
)

var (
	textColor   = render.NewColor(255, 255, 255)
	pausedColor = render.NewColor(255, 200, 0)
	alertColor  = render.NewColor(255, 80, 80)
)

// Status is what the overlay shows about the current frame
type Status struct {
	Position      mgl32.Vec3
	Paused        bool
	ShowOrbits    bool
	ShowProfiling bool
	Cooldown      float32
	Collision     string // last body hit, empty if none
}

// HUD keeps the frame counters behind the overlay text.
type HUD struct {
	currentFPS int
	frames     int
	lastFPS    time.Time

	frameTimeHistory []time.Duration
	lastFrame        time.Duration
	avgFrame         time.Duration
}

// New returns a HUD whose FPS counter starts now
func New() *HUD {
	return &HUD{lastFPS: time.Now()}
}

// FPS returns the frame rate measured over the last full second
func (h *HUD) FPS() int {
	return h.currentFPS
}

// Tick counts one presented frame. It returns true when the FPS value was
// refreshed.
func (h *HUD) Tick(now time.Time) bool {
	h.frames++
	if now.Sub(h.lastFPS) < time.Second {
		return false
	}
	h.currentFPS = h.frames
	h.frames = 0
	h.lastFPS = now
	return true
}

// SetRenderDuration stores the time spent rendering this frame
func (h *HUD) SetRenderDuration(d time.Duration) {
	h.lastFrame = d
	// rolling history of the last 60 frames
	if len(h.frameTimeHistory) >= 60 {
		h.frameTimeHistory = h.frameTimeHistory[1:]
	}
	h.frameTimeHistory = append(h.frameTimeHistory, d)

	var total time.Duration
	for _, v := range h.frameTimeHistory {
		total += v
	}
	h.avgFrame = total / time.Duration(len(h.frameTimeHistory))
}

// Draw renders the overlay for one frame
func (h *HUD) Draw(fb *render.Framebuffer, s Status) {
	defer profiling.Track("hud.Draw")()

	DrawCollisionFlash(fb, s.Cooldown)

	lines := []string{
		fmt.Sprintf("FPS: %d", h.currentFPS),
		fmt.Sprintf("Pos: %.1f, %.1f, %.1f", s.Position[0], s.Position[1], s.Position[2]),
	}
	DrawLines(fb, FlashBorder+4, FlashBorder+4, lines, textColor)

	y := FlashBorder + 4 + len(lines)*LineHeight
	if s.Paused {
		DrawText(fb, FlashBorder+4, y, "PAUSED", pausedColor)
		y += LineHeight
	}
	if s.Cooldown > 0 && s.Collision != "" {
		DrawText(fb, FlashBorder+4, y, "Collision: "+s.Collision, alertColor)
		y += LineHeight
	}

	if s.ShowProfiling {
		DrawLines(fb, FlashBorder+4, y+LineHeight/2, h.profilingLines(), textColor)
	}
}

func (h *HUD) profilingLines() []string {
	lines := make([]string, 0, 12)

	frameMs := float64(h.lastFrame.Microseconds()) / 1000.0
	avgMs := float64(h.avgFrame.Microseconds()) / 1000.0
	tracked := float64(profiling.SumWithPrefix("render.").Microseconds()) / 1000.0
	lines = append(lines, fmt.Sprintf("Frame: %.2fms (%.2fms avg) | Tracked(render): %.2fms", frameMs, avgMs, tracked))

	if top := profiling.TopN(8); top != "" {
		for line := range strings.SplitSeq(top, ", ") {
			if line != "" && !strings.HasSuffix(line, ":0ms") {
				lines = append(lines, line)
			}
		}
	}
	return lines
}
