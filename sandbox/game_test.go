package sandbox

import (
	"testing"

	"github.com/halvorsen/crt6502/devices"
)

// Draw needs a live GPU-backed ebiten.Image, which isn't available in
// a headless test run, so only the pure-data Layout and Update
// contracts are checked here.
func TestGameLayoutMatchesFramebufferResolution(t *testing.T) {
	fb := devices.NewFramebuffer()
	g := &Game{fb: fb}

	w, h := g.Layout(999, 999)
	fbW, fbH := fb.Resolution()
	if w != fbW || h != fbH {
		t.Errorf("Layout() = (%d, %d), want framebuffer resolution (%d, %d)", w, h, fbW, fbH)
	}
}

func TestGameUpdateIsNoop(t *testing.T) {
	g := &Game{fb: devices.NewFramebuffer()}
	if err := g.Update(); err != nil {
		t.Errorf("Update() = %v, want nil", err)
	}
}
