package devices

import (
	"image"
	"image/color"

	"github.com/halvorsen/crt6502/mos6502"
)

const (
	framebufferBase  = 0x0200
	framebufferWidth = 32
	framebufferSize  = framebufferWidth * framebufferWidth
)

// Framebuffer renders the 32x32 window at 0x0200-0x05FF into an
// *image.RGBA, one packed RRRGGGBB byte per pixel. It never writes to
// memory; it is a read-only observer of CPU-driven state.
type Framebuffer struct {
	img *image.RGBA
}

func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, framebufferWidth, framebufferWidth))}
	for i := 0; i < framebufferSize; i++ {
		fb.img.Set(i%framebufferWidth, i/framebufferWidth, color.RGBA{A: 0xFF})
	}
	return fb
}

func (fb *Framebuffer) Name() string { return "framebuffer" }

// Tick re-reads the whole window every cycle. At 32x32 this is cheap
// enough that there is no reason to track dirty cells.
func (fb *Framebuffer) Tick(mem *mos6502.Memory) {
	for y := 0; y < framebufferWidth; y++ {
		for x := 0; x < framebufferWidth; x++ {
			v := mem.Read8(framebufferBase + uint16(y*framebufferWidth+x))
			fb.img.Set(x, y, unpackColor(v))
		}
	}
}

func (fb *Framebuffer) GetPixels() *image.RGBA { return fb.img }

func (fb *Framebuffer) Resolution() (int, int) { return framebufferWidth, framebufferWidth }

// unpackColor splits an 8-bit RRRGGGBB byte into a 24-bit RGBA color:
// 3 bits red, 3 bits green, 2 bits blue, each linearly scaled to 0-255.
func unpackColor(v uint8) color.RGBA {
	r := (v >> 5) & 0x7
	g := (v >> 2) & 0x7
	b := v & 0x3
	return color.RGBA{
		R: uint8(uint16(r) * 255 / 7),
		G: uint8(uint16(g) * 255 / 7),
		B: uint8(uint16(b) * 255 / 3),
		A: 0xFF,
	}
}

var sharedFramebuffer = NewFramebuffer()

func init() {
	RegisterDevice("framebuffer", sharedFramebuffer)
}

// SharedFramebuffer returns the single Framebuffer instance registered
// for this process, so sandbox.NewGame can blit the same image the
// device actor is writing into.
func SharedFramebuffer() *Framebuffer {
	return sharedFramebuffer
}
