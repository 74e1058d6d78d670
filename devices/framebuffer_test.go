package devices

import (
	"testing"

	"github.com/halvorsen/crt6502/mos6502"
)

func TestFramebufferUnpacksRRRGGGBB(t *testing.T) {
	mem := mos6502.NewMemory()
	mem.Write8(framebufferBase, 0xFF) // r=7 g=7 b=3 -> white

	fb := NewFramebuffer()
	fb.Tick(mem)

	got := fb.GetPixels().At(0, 0)
	r, g, b, a := got.RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel(0,0) = %v, want opaque white", got)
	}
}

func TestFramebufferResolutionIs32x32(t *testing.T) {
	fb := NewFramebuffer()
	w, h := fb.Resolution()
	if w != 32 || h != 32 {
		t.Errorf("Resolution() = (%d, %d), want (32, 32)", w, h)
	}
}

func TestFramebufferIndexing(t *testing.T) {
	mem := mos6502.NewMemory()
	// row 1, col 2 -> offset 0x0200 + 1*32 + 2
	mem.Write8(framebufferBase+uint16(1*32+2), 0xE0) // r=7 g=0 b=0 -> pure red

	fb := NewFramebuffer()
	fb.Tick(mem)

	r, g, b, _ := fb.GetPixels().At(2, 1).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel(2,1) = (%d,%d,%d), want pure red", r>>8, g>>8, b>>8)
	}
}
