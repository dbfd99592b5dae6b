package input

import (
	"sync"
)

// Action represents a logical ship or session action, not a physical key
type Action int

// Action constants using iota
const (
	ActionThrustForward Action = iota
	ActionThrustBackward
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionAscend
	ActionDescend
	ActionPause
	ActionToggleOrbits
	ActionToggleProfiling
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionThrustForward:   "thrust_forward",
	ActionThrustBackward:  "thrust_backward",
	ActionYawLeft:         "yaw_left",
	ActionYawRight:        "yaw_right",
	ActionPitchUp:         "pitch_up",
	ActionPitchDown:       "pitch_down",
	ActionAscend:          "ascend",
	ActionDescend:         "descend",
	ActionPause:           "pause",
	ActionToggleOrbits:    "toggle_orbits",
	ActionToggleProfiling: "toggle_profiling",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps physical keys of any windowing backend to logical
// actions and tracks per-frame edges. K is the backend's key type
// (glfw.Key, ebiten.Key, ...).
type InputManager[K comparable] struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[K][]Action

	// Number of held keys per action, so two keys bound to one action
	// don't release it early
	held [ActionCount]int

	currentState [ActionCount]bool
	prevState    [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Keys currently down, for polling backends and repeat filtering
	down map[K]bool
}

// NewInputManager creates an InputManager without bindings
func NewInputManager[K comparable]() *InputManager[K] {
	return &InputManager[K]{
		keyToActions: make(map[K][]Action),
		down:         make(map[K]bool),
	}
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action (e.g. W and Up).
func (im *InputManager[K]) BindKey(key K, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager[K]) UnbindKey(key K) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.down[key] {
		im.setLocked(key, false)
	}
	delete(im.keyToActions, key)
}

// BoundKeys returns every key that has at least one binding
func (im *InputManager[K]) BoundKeys() []K {
	im.mu.RLock()
	defer im.mu.RUnlock()

	keys := make([]K, 0, len(im.keyToActions))
	for k := range im.keyToActions {
		keys = append(keys, k)
	}
	return keys
}

// HandleKeyEvent records a key press or release. Repeated presses of a
// held key are ignored. Edges are detected immediately when the event arrives.
func (im *InputManager[K]) HandleKeyEvent(key K, pressed bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if _, exists := im.keyToActions[key]; !exists {
		return
	}
	if im.down[key] == pressed {
		return
	}
	im.setLocked(key, pressed)
}

func (im *InputManager[K]) setLocked(key K, pressed bool) {
	if pressed {
		im.down[key] = true
	} else {
		delete(im.down, key)
	}

	for _, act := range im.keyToActions[key] {
		if pressed {
			im.held[act]++
		} else if im.held[act] > 0 {
			im.held[act]--
		}

		active := im.held[act] > 0
		if active && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !active && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = active
	}
}

// Poll refreshes every bound key from isDown. Backends without key
// callbacks call this once per frame before reading actions.
func (im *InputManager[K]) Poll(isDown func(K) bool) {
	for _, key := range im.BoundKeys() {
		im.HandleKeyEvent(key, isDown(key))
	}
}

// PostUpdate must be called at the end of each frame to update edge detection states
func (im *InputManager[K]) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
		im.prevState[i] = im.currentState[i]
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager[K]) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager[K]) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager[K]) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// Layout names the physical keys of the stock control scheme for one
// windowing backend.
type Layout[K comparable] struct {
	Forward, Backward K
	YawLeft, YawRight K
	PitchUp, PitchDown K
	Ascend, Descend   K
	Pause             K
	ToggleOrbits      K
	ToggleProfiling   K
	Quit              K
}

// BindLayout binds every key of the layout to its action
func (im *InputManager[K]) BindLayout(l Layout[K]) {
	im.BindKey(l.Forward, ActionThrustForward)
	im.BindKey(l.Backward, ActionThrustBackward)
	im.BindKey(l.YawLeft, ActionYawLeft)
	im.BindKey(l.YawRight, ActionYawRight)
	im.BindKey(l.PitchUp, ActionPitchUp)
	im.BindKey(l.PitchDown, ActionPitchDown)
	im.BindKey(l.Ascend, ActionAscend)
	im.BindKey(l.Descend, ActionDescend)
	im.BindKey(l.Pause, ActionPause)
	im.BindKey(l.ToggleOrbits, ActionToggleOrbits)
	im.BindKey(l.ToggleProfiling, ActionToggleProfiling)
	im.BindKey(l.Quit, ActionQuit)
}
