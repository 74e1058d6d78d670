package mos6502

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	deep "github.com/go-test/deep"
)

// cpuSnapshot is a plain-data copy of CPU's register file, used so
// go-test/deep can diff two points in time without touching the
// unexported *Memory pointer (which deep.Equal would otherwise also
// try to walk).
type cpuSnapshot struct {
	A, X, Y, SP uint8
	PC          uint16
	Status      uint8
}

func snapshot(c *CPU) cpuSnapshot {
	a, x, y, sp, status := c.Registers()
	return cpuSnapshot{A: a, X: x, Y: y, SP: sp, PC: c.PC(), Status: status}
}

// TestStepOnlyTouchesDocumentedRegisters uses go-test/deep to assert
// that a CLC (which only ever touches the carry flag) leaves every
// other register field identical to a before/after snapshot.
func TestStepOnlyTouchesDocumentedRegisters(t *testing.T) {
	c := newTestCPU()
	c.a, c.x, c.y, c.sp = 0x11, 0x22, 0x33, 0xF0
	c.status = FlagCarry | FlagNegative
	c.writeProgram(0x8000, 0x18) // CLC
	c.pc = 0x8000

	before := snapshot(c)
	c.Step()
	after := snapshot(c)

	before.PC = after.PC // PC always advances; not part of this check
	before.Status &^= FlagCarry
	after.Status &^= FlagCarry // carry is the one bit CLC is allowed to change

	if diff := deep.Equal(before, after); diff != nil {
		t.Errorf("CLC changed more than the carry flag: %v", diff)
	}
}

// TestSnapshotDumpIncludesAllRegisters spot-checks that the debug dump
// spew produces for a CPU snapshot mentions every register name.
// Guards against the snapshot silently dropping a field.
func TestSnapshotDumpIncludesAllRegisters(t *testing.T) {
	c := newTestCPU()
	c.a, c.x, c.y, c.sp, c.pc = 0xAA, 0xBB, 0xCC, 0xDD, 0x1234

	dump := spew.Sdump(snapshot(c))
	for _, field := range []string{"A:", "X:", "Y:", "SP:", "PC:", "Status:"} {
		if !strings.Contains(dump, field) {
			t.Errorf("spew dump missing field %q:\n%s", field, dump)
		}
	}
}
