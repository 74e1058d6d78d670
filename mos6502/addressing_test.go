package mos6502

import "testing"

func TestResolve(t *testing.T) {
	c := newTestCPU()

	c.mem.Write16(0x000F, 0x5544, false)
	c.mem.Write16(0x0064, 0x110F, false)
	c.mem.Write16(0x001F, 0x0055, false)
	c.mem.Write16(0x110F, 0xBBFA, false)
	c.mem.Write8(0xFF66, 0x82)
	c.x = 0x10
	c.y = 0xAC

	cases := []struct {
		pc   uint16 // address of the first operand byte
		mode AddressingMode
		want uint16
	}{
		{0x0064, Immediate, 0x0064},
		{0x0064, ZeroPage, 0x000F},
		{0x0064, ZeroPageX, 0x001F},
		{0x0064, ZeroPageY, 0x00BB},
		{0x0064, Absolute, 0x110F},
		{0x0064, AbsoluteX, 0x111F},
		{0x0064, AbsoluteY, 0x11BB},
		{0x0064, IndirectX, 0x0055},
		{0x0064, IndirectY, 0x55F0},
	}

	for i, tc := range cases {
		c.pc = tc.pc
		if got := c.resolve(tc.mode); got.addr != tc.want {
			t.Errorf("%d: resolve(%v) = 0x%04X, want 0x%04X", i, tc.mode, got.addr, tc.want)
		}
	}
}

func TestResolveRelative(t *testing.T) {
	c := newTestCPU()

	// Forward branch: operand byte at 0x0064, offset +0x10.
	c.mem.Write8(0x0064, 0x10)
	c.pc = 0x0064
	if got := c.resolve(Relative); got.addr != 0x0075 {
		t.Errorf("forward branch target = 0x%04X, want 0x0075", got.addr)
	}

	// Backward branch: operand byte at 0xFF66, offset -0x10 (0xF0).
	c.mem.Write8(0xFF66, 0xF0)
	c.pc = 0xFF66
	if got := c.resolve(Relative); got.addr != 0xFF57 {
		t.Errorf("backward branch target = 0x%04X, want 0xFF57", got.addr)
	}
}

func TestResolveAbsoluteIndexedPageCross(t *testing.T) {
	c := newTestCPU()
	c.x = 0xFF
	c.mem.Write16(0x0010, 0x00FF, false) // base = 0x00FF, +X = 0x01FE, crosses page
	c.pc = 0x0010

	op := c.resolve(AbsoluteX)
	if op.addr != 0x01FE {
		t.Fatalf("addr = 0x%04X, want 0x01FE", op.addr)
	}
	if !op.pageCrossed {
		t.Errorf("pageCrossed = false, want true for 0x00FF + 0xFF")
	}
}

func TestResolveZeroPageWraps(t *testing.T) {
	c := newTestCPU()
	c.x = 0x02
	c.mem.Write8(0xFF, 0x42)
	c.pc = 0x00
	c.mem.Write8(0x00, 0xFF) // operand byte names zero-page address 0xFF

	op := c.resolve(ZeroPageX)
	if op.addr != 0x0001 {
		t.Errorf("zero-page,X wraparound gave 0x%04X, want 0x0001", op.addr)
	}
}
