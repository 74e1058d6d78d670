package mos6502

// AddressingMode identifies how an opcode's operand byte(s) are turned
// into an effective address.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type AddressingMode uint8

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP only; carries the page-boundary fetch bug
	IndirectX
	IndirectY
	Relative
)

var modeNames = map[AddressingMode]string{
	Implied:     "IMPLIED",
	Accumulator: "ACCUMULATOR",
	Immediate:   "IMMEDIATE",
	ZeroPage:    "ZERO_PAGE",
	ZeroPageX:   "ZERO_PAGE_X",
	ZeroPageY:   "ZERO_PAGE_Y",
	Absolute:    "ABSOLUTE",
	AbsoluteX:   "ABSOLUTE_X",
	AbsoluteY:   "ABSOLUTE_Y",
	Indirect:    "INDIRECT",
	IndirectX:   "INDIRECT_X",
	IndirectY:   "INDIRECT_Y",
	Relative:    "RELATIVE",
}

// operand is the result of resolving an addressing mode: the effective
// address (meaningless for Implied/Accumulator) and whether computing it
// crossed a page boundary.
type operand struct {
	addr        uint16
	pageCrossed bool
}

func pageOf(addr uint16) uint16 {
	return addr & 0xFF00
}

// resolve computes the operand for mode. It assumes c.pc has already
// been advanced past the opcode byte to point at the first operand
// byte (or, for Implied/Accumulator, at whatever follows; the value is
// unused).
func (c *CPU) resolve(mode AddressingMode) operand {
	op := c.pc

	switch mode {
	case Implied, Accumulator:
		return operand{}
	case Immediate:
		return operand{addr: op}
	case ZeroPage:
		return operand{addr: uint16(c.mem.Read8(op))}
	case ZeroPageX:
		return operand{addr: uint16(c.mem.Read8(op) + c.x)}
	case ZeroPageY:
		return operand{addr: uint16(c.mem.Read8(op) + c.y)}
	case Absolute:
		return operand{addr: c.mem.Read16(op, false)}
	case AbsoluteX:
		base := c.mem.Read16(op, false)
		ea := base + uint16(c.x)
		return operand{addr: ea, pageCrossed: pageOf(base) != pageOf(ea)}
	case AbsoluteY:
		base := c.mem.Read16(op, false)
		ea := base + uint16(c.y)
		return operand{addr: ea, pageCrossed: pageOf(base) != pageOf(ea)}
	case IndirectX:
		ptr := uint16(c.mem.Read8(op) + c.x)
		return operand{addr: c.mem.Read16(ptr, true)}
	case IndirectY:
		ptr := uint16(c.mem.Read8(op))
		base := c.mem.Read16(ptr, true)
		ea := base + uint16(c.y)
		return operand{addr: ea, pageCrossed: pageOf(base) != pageOf(ea)}
	case Relative:
		// instrStart is the address of the branch opcode itself:
		// op (the operand byte) minus 1.
		instrStart := op - 1
		target := (op + 1) + uint16(int8(c.mem.Read8(op)))
		return operand{addr: target, pageCrossed: pageOf(target) != pageOf(instrStart)}
	case Indirect:
		ptr := c.mem.Read16(op, false)
		// JMP ($xxFF) famously fetches its high byte from $xx00
		// rather than crossing into the next page.
		hi := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		lo := c.mem.Read8(ptr)
		hiByte := c.mem.Read8(hi)
		return operand{addr: uint16(lo) | uint16(hiByte)<<8}
	}

	return operand{}
}
