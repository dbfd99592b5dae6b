package input

import "testing"

type key string

func newTestManager() *InputManager[key] {
	im := NewInputManager[key]()
	im.BindKey("w", ActionThrustForward)
	im.BindKey("up", ActionThrustForward)
	im.BindKey("space", ActionPause)
	return im
}

func TestEdgeDetection(t *testing.T) {
	im := newTestManager()

	im.HandleKeyEvent("space", true)
	if !im.JustPressed(ActionPause) || !im.IsActive(ActionPause) {
		t.Fatal("press not reported")
	}

	im.PostUpdate()
	if im.JustPressed(ActionPause) {
		t.Error("JustPressed survived PostUpdate")
	}
	if !im.IsActive(ActionPause) {
		t.Error("held key no longer active")
	}

	// Key repeat while held is not a new press
	im.HandleKeyEvent("space", true)
	if im.JustPressed(ActionPause) {
		t.Error("repeat reported as a new press")
	}

	im.HandleKeyEvent("space", false)
	if !im.JustReleased(ActionPause) || im.IsActive(ActionPause) {
		t.Error("release not reported")
	}
}

func TestTwoKeysOneAction(t *testing.T) {
	im := newTestManager()

	im.HandleKeyEvent("w", true)
	im.HandleKeyEvent("up", true)
	im.HandleKeyEvent("w", false)
	if !im.IsActive(ActionThrustForward) {
		t.Error("action released while another bound key is still held")
	}
	im.HandleKeyEvent("up", false)
	if im.IsActive(ActionThrustForward) {
		t.Error("action still active with no keys held")
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	im := newTestManager()
	im.HandleKeyEvent("x", true)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Errorf("%v active after an unbound key", a)
		}
	}
	if im.IsActive(-1) || im.JustPressed(ActionCount) {
		t.Error("out of range actions must read false")
	}
}

func TestPoll(t *testing.T) {
	im := newTestManager()
	down := map[key]bool{"w": true}

	im.Poll(func(k key) bool { return down[k] })
	if !im.JustPressed(ActionThrustForward) {
		t.Error("poll did not report the press")
	}
	im.PostUpdate()

	down["w"] = false
	im.Poll(func(k key) bool { return down[k] })
	if !im.JustReleased(ActionThrustForward) {
		t.Error("poll did not report the release")
	}
}

func TestUnbindReleases(t *testing.T) {
	im := newTestManager()
	im.HandleKeyEvent("space", true)
	im.UnbindKey("space")
	if im.IsActive(ActionPause) {
		t.Error("unbinding a held key left its action active")
	}
	if len(im.BoundKeys()) != 2 {
		t.Errorf("BoundKeys() = %v", im.BoundKeys())
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleOrbits.String() != "toggle_orbits" {
		t.Errorf("String() = %q", ActionToggleOrbits.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("String() of invalid action = %q", Action(99).String())
	}
}

func TestBindLayout(t *testing.T) {
	im := NewInputManager[key]()
	im.BindLayout(Layout[key]{
		Forward: "w", Backward: "s", YawLeft: "a", YawRight: "d",
		PitchUp: "up", PitchDown: "down", Ascend: "q", Descend: "e",
		Pause: "space", ToggleOrbits: "o", ToggleProfiling: "v", Quit: "esc",
	})

	if got := len(im.BoundKeys()); got != 12 {
		t.Fatalf("bound keys = %d, want 12", got)
	}
	im.HandleKeyEvent("e", true)
	if !im.IsActive(ActionDescend) {
		t.Error("E does not descend")
	}
	im.HandleKeyEvent("esc", true)
	if !im.JustPressed(ActionQuit) {
		t.Error("Escape does not quit")
	}
}
