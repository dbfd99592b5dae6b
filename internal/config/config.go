package config

import "sync"

// RenderSettings holds runtime display configuration shared by the game loop and the HUD
type RenderSettings struct {
	mu            sync.RWMutex
	fpsLimit      int // 0 means uncapped
	showOrbits    bool
	showProfiling bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:   60, // default value
	showOrbits: true,
}

// GetFPSLimit returns the frame rate cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap. Values <= 0 disable the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 10 {
		limit = 10
	}
	if limit > 500 {
		limit = 500
	}

	globalRenderSettings.fpsLimit = limit
}

// GetShowOrbits reports whether orbit guides are drawn
func GetShowOrbits() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showOrbits
}

// SetShowOrbits enables or disables orbit guides
func SetShowOrbits(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showOrbits = enabled
}

// ToggleShowOrbits flips orbit guide visibility and returns the new state
func ToggleShowOrbits() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showOrbits = !globalRenderSettings.showOrbits
	return globalRenderSettings.showOrbits
}

// GetShowProfiling reports whether the profiling line is drawn on the HUD
func GetShowProfiling() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showProfiling
}

// ToggleShowProfiling flips the profiling overlay and returns the new state
func ToggleShowProfiling() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showProfiling = !globalRenderSettings.showProfiling
	return globalRenderSettings.showProfiling
}
