// Package sandbox is the small graphical window that blits the
// framebuffer device's current image every frame.
package sandbox

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/halvorsen/crt6502/devices"
)

const windowScale = 8

// Game implements ebiten.Game. It owns no emulation state itself.
// system.Host.Run drives the CPU and devices in its own goroutine; Game
// only reads whatever the framebuffer device last rendered.
type Game struct {
	fb *devices.Framebuffer
}

// NewGame builds a Game that blits fb every Draw. ebiten's window is
// sized to fb's resolution scaled up, since a 32x32 window is too small
// to be usable at 1:1.
func NewGame(fb *devices.Framebuffer) *Game {
	w, h := fb.Resolution()
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle("crt6502")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return &Game{fb: fb}
}

// Layout returns the framebuffer's native resolution; ebiten scales the
// actual window around it, independent of whatever size the window
// manager reports.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Resolution()
}

// Update is a no-op: the CPU/device actors in system.Host.Run are the
// only driver of emulation state, not ebiten's frame callback.
func (g *Game) Update() error {
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	px := g.fb.GetPixels()
	bounds := px.Bounds()
	for x := 0; x < bounds.Dx(); x++ {
		for y := 0; y < bounds.Dy(); y++ {
			screen.Set(x, y, px.At(x, y))
		}
	}
}
