package mos6502

// Instruction semantics. Each handler has signature
// func(c *CPU, mode AddressingMode, op operand) and is installed into
// opcodeTable by define() in opcodes.go. mode distinguishes
// Accumulator from a memory operand for the shift/rotate family; op
// carries the effective address resolve() already computed.

func (c *CPU) ADC(mode AddressingMode, op operand) {
	m := c.mem.Read8(op.addr)
	wide := uint16(c.a) + uint16(m) + uint16(c.getFlag(FlagCarry))
	result := uint8(wide)

	c.setFlag(FlagCarry, wide > 0xFF)
	c.setFlag(FlagOverflow, (c.a^result)&(m^result)&0x80 != 0)
	c.a = result
	c.setNZ(c.a)
}

// SBC is computed as a wide signed subtraction so the carry-out check
// (result >= 0) is correct before any truncation to 8 bits. Doing the
// comparison after truncating to uint8 would make every subtraction
// look non-negative.
func (c *CPU) SBC(mode AddressingMode, op operand) {
	m := c.mem.Read8(op.addr)
	borrow := int16(1) - int16(c.getFlag(FlagCarry))
	wide := int16(c.a) - int16(m) - borrow
	result := uint8(wide)

	c.setFlag(FlagCarry, wide >= 0)
	c.setFlag(FlagOverflow, (c.a^m)&(c.a^result)&0x80 != 0)
	c.a = result
	c.setNZ(c.a)
}

func (c *CPU) AND(mode AddressingMode, op operand) {
	c.a &= c.mem.Read8(op.addr)
	c.setNZ(c.a)
}

func (c *CPU) ORA(mode AddressingMode, op operand) {
	c.a |= c.mem.Read8(op.addr)
	c.setNZ(c.a)
}

func (c *CPU) EOR(mode AddressingMode, op operand) {
	c.a ^= c.mem.Read8(op.addr)
	c.setNZ(c.a)
}

func (c *CPU) BIT(mode AddressingMode, op operand) {
	m := c.mem.Read8(op.addr)
	c.setFlag(FlagZero, (c.a&m) == 0)
	c.setFlag(FlagNegative, m&0x80 != 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
}

func (c *CPU) CMP(mode AddressingMode, op operand) {
	c.compare(c.a, c.mem.Read8(op.addr))
}

func (c *CPU) CPX(mode AddressingMode, op operand) {
	c.compare(c.x, c.mem.Read8(op.addr))
}

func (c *CPU) CPY(mode AddressingMode, op operand) {
	c.compare(c.y, c.mem.Read8(op.addr))
}

func (c *CPU) LDA(mode AddressingMode, op operand) {
	c.a = c.mem.Read8(op.addr)
	c.setNZ(c.a)
}

func (c *CPU) LDX(mode AddressingMode, op operand) {
	c.x = c.mem.Read8(op.addr)
	c.setNZ(c.x)
}

func (c *CPU) LDY(mode AddressingMode, op operand) {
	c.y = c.mem.Read8(op.addr)
	c.setNZ(c.y)
}

func (c *CPU) STA(mode AddressingMode, op operand) {
	c.mem.Write8(op.addr, c.a)
}

func (c *CPU) STX(mode AddressingMode, op operand) {
	c.mem.Write8(op.addr, c.x)
}

func (c *CPU) STY(mode AddressingMode, op operand) {
	c.mem.Write8(op.addr, c.y)
}

func (c *CPU) INC(mode AddressingMode, op operand) {
	v := c.mem.Read8(op.addr) + 1
	c.mem.Write8(op.addr, v)
	c.setNZ(v)
}

func (c *CPU) DEC(mode AddressingMode, op operand) {
	v := c.mem.Read8(op.addr) - 1
	c.mem.Write8(op.addr, v)
	c.setNZ(v)
}

func (c *CPU) INX(mode AddressingMode, op operand) { c.x++; c.setNZ(c.x) }
func (c *CPU) INY(mode AddressingMode, op operand) { c.y++; c.setNZ(c.y) }
func (c *CPU) DEX(mode AddressingMode, op operand) { c.x--; c.setNZ(c.x) }
func (c *CPU) DEY(mode AddressingMode, op operand) { c.y--; c.setNZ(c.y) }

func (c *CPU) ASL(mode AddressingMode, op operand) {
	if mode == Accumulator {
		c.a = c.asl(c.a)
		c.setNZ(c.a)
		return
	}
	v := c.asl(c.mem.Read8(op.addr))
	c.mem.Write8(op.addr, v)
	c.setNZ(v)
}

func (c *CPU) LSR(mode AddressingMode, op operand) {
	if mode == Accumulator {
		c.a = c.lsr(c.a)
		c.setNZ(c.a)
		return
	}
	v := c.lsr(c.mem.Read8(op.addr))
	c.mem.Write8(op.addr, v)
	c.setNZ(v)
}

func (c *CPU) ROL(mode AddressingMode, op operand) {
	if mode == Accumulator {
		c.a = c.rol(c.a)
		c.setNZ(c.a)
		return
	}
	v := c.rol(c.mem.Read8(op.addr))
	c.mem.Write8(op.addr, v)
	c.setNZ(v)
}

func (c *CPU) ROR(mode AddressingMode, op operand) {
	if mode == Accumulator {
		c.a = c.ror(c.a)
		c.setNZ(c.a)
		return
	}
	v := c.ror(c.mem.Read8(op.addr))
	c.mem.Write8(op.addr, v)
	c.setNZ(v)
}

// branch moves PC to op.addr when taken, charging the extra cycles the
// base opcode-table entry doesn't already carry.
func (c *CPU) branch(taken bool, op operand) {
	if !taken {
		return
	}
	c.cyclesRemaining++
	if op.pageCrossed {
		c.cyclesRemaining++
	}
	c.pc = op.addr
}

func (c *CPU) BCC(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagCarry) == 0, op) }
func (c *CPU) BCS(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagCarry) == 1, op) }
func (c *CPU) BEQ(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagZero) == 1, op) }
func (c *CPU) BNE(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagZero) == 0, op) }
func (c *CPU) BMI(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagNegative) == 1, op) }
func (c *CPU) BPL(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagNegative) == 0, op) }
func (c *CPU) BVC(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagOverflow) == 0, op) }
func (c *CPU) BVS(mode AddressingMode, op operand) { c.branch(c.getFlag(FlagOverflow) == 1, op) }

func (c *CPU) JMP(mode AddressingMode, op operand) {
	c.pc = op.addr
}

func (c *CPU) JSR(mode AddressingMode, op operand) {
	c.pushAddress(c.pc + 1) // last byte of the 3-byte JSR instruction
	c.pc = op.addr
}

func (c *CPU) RTS(mode AddressingMode, op operand) {
	c.pc = c.popAddress() + 1
}

func (c *CPU) BRK(mode AddressingMode, op operand) {
	c.pushAddress(c.pc + 1)
	c.push(c.status | maskBreakUnused)
	c.setFlag(FlagInterrupt, true)
	c.pc = c.mem.Read16(vectorBRK, false)
}

func (c *CPU) RTI(mode AddressingMode, op operand) {
	popped := c.pop()
	c.status = (c.status & maskBreakUnused) | (popped &^ maskBreakUnused)
	c.pc = c.popAddress()
}

func (c *CPU) PHA(mode AddressingMode, op operand) { c.push(c.a) }
func (c *CPU) PHP(mode AddressingMode, op operand) { c.push(c.status | maskBreakUnused) }

func (c *CPU) PLA(mode AddressingMode, op operand) {
	c.a = c.pop()
	c.setNZ(c.a)
}

func (c *CPU) PLP(mode AddressingMode, op operand) {
	popped := c.pop()
	c.status = (c.status & maskBreakUnused) | (popped &^ maskBreakUnused)
}

func (c *CPU) TAX(mode AddressingMode, op operand) { c.x = c.a; c.setNZ(c.x) }
func (c *CPU) TAY(mode AddressingMode, op operand) { c.y = c.a; c.setNZ(c.y) }
func (c *CPU) TXA(mode AddressingMode, op operand) { c.a = c.x; c.setNZ(c.a) }
func (c *CPU) TYA(mode AddressingMode, op operand) { c.a = c.y; c.setNZ(c.a) }
func (c *CPU) TSX(mode AddressingMode, op operand) { c.x = c.sp; c.setNZ(c.x) }
func (c *CPU) TXS(mode AddressingMode, op operand) { c.sp = c.x }

func (c *CPU) CLC(mode AddressingMode, op operand) { c.setFlag(FlagCarry, false) }
func (c *CPU) SEC(mode AddressingMode, op operand) { c.setFlag(FlagCarry, true) }
func (c *CPU) CLD(mode AddressingMode, op operand) { c.setFlag(FlagDecimal, false) }
func (c *CPU) SED(mode AddressingMode, op operand) { c.setFlag(FlagDecimal, true) }
func (c *CPU) CLI(mode AddressingMode, op operand) { c.setFlag(FlagInterrupt, false) }
func (c *CPU) SEI(mode AddressingMode, op operand) { c.setFlag(FlagInterrupt, true) }
func (c *CPU) CLV(mode AddressingMode, op operand) { c.setFlag(FlagOverflow, false) }

func (c *CPU) NOP(mode AddressingMode, op operand) {}
