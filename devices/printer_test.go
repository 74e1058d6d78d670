package devices

import (
	"bytes"
	"testing"

	"github.com/halvorsen/crt6502/mos6502"
)

func TestPrinterPrintsAndResetsStrobe(t *testing.T) {
	mem := mos6502.NewMemory()
	mem.Write8(printerStrobe, 1)
	mem.Write8(printerLatch, 'A')

	var buf bytes.Buffer
	p := NewPrinter()
	p.SetOutput(&buf)
	p.Tick(mem)

	if got := buf.String(); got != "A" {
		t.Errorf("printed %q, want %q", got, "A")
	}
	if mem.Read8(printerStrobe) != 0 {
		t.Errorf("strobe cell = %d after print, want 0", mem.Read8(printerStrobe))
	}
}

func TestPrinterIdleWhenStrobeNotFired(t *testing.T) {
	mem := mos6502.NewMemory()
	mem.Write8(printerLatch, 'Z')

	var buf bytes.Buffer
	p := NewPrinter()
	p.SetOutput(&buf)
	p.Tick(mem)

	if buf.Len() != 0 {
		t.Errorf("printed %q with strobe clear, want nothing", buf.String())
	}
}

func TestPrinterDoesNotActOnSoftHaltValue(t *testing.T) {
	mem := mos6502.NewMemory()
	mem.Write8(printerStrobe, 127)

	var buf bytes.Buffer
	p := NewPrinter()
	p.SetOutput(&buf)
	p.Tick(mem)

	if buf.Len() != 0 {
		t.Errorf("printer acted on soft-halt value, want no-op")
	}
	if mem.Read8(printerStrobe) != 127 {
		t.Errorf("printer altered the soft-halt cell, want it left at 127")
	}
}

func TestSoftHalted(t *testing.T) {
	mem := mos6502.NewMemory()
	if SoftHalted(mem) {
		t.Fatalf("fresh memory reports soft-halted")
	}
	mem.Write8(printerStrobe, 127)
	if !SoftHalted(mem) {
		t.Errorf("SoftHalted false with strobe cell == 127")
	}
}
