package mos6502

// Processor-status bit layout: N V 1 B D I Z C.
// https://www.nesdev.org/obelisk-6502-guide/registers.html#P
const (
	FlagCarry     uint8 = 1 << 0 // C
	FlagZero      uint8 = 1 << 1 // Z
	FlagInterrupt uint8 = 1 << 2 // I
	FlagDecimal   uint8 = 1 << 3 // D
	FlagBreak     uint8 = 1 << 4 // B - not an observable CPU flag, only a pushed image
	flagUnused    uint8 = 1 << 5 // always 1 in the pushed image
	FlagOverflow  uint8 = 1 << 6 // V
	FlagNegative  uint8 = 1 << 7 // N

	// maskBreakUnused covers the two bits PLP/RTI never touch.
	maskBreakUnused = FlagBreak | flagUnused
)

// getFlag returns 1 if all bits in mask are set, else 0.
func (c *CPU) getFlag(mask uint8) uint8 {
	if c.status&mask == mask {
		return 1
	}
	return 0
}

func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.status |= mask
	} else {
		c.status &^= mask
	}
}

// setNZ sets the Negative and Zero flags from v.
func (c *CPU) setNZ(v uint8) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

// compare implements CMP/CPX/CPY: carry set iff reg >= m (unsigned),
// zero/negative from the (wrapping) subtraction.
func (c *CPU) compare(reg, m uint8) {
	c.setFlag(FlagCarry, reg >= m)
	c.setNZ(reg - m)
}

// asl/lsr/rol/ror return the shifted/rotated value and set the carry
// flag from the bit shifted out; the caller sets N/Z from the result.
func (c *CPU) asl(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x80 != 0)
	return v << 1
}

func (c *CPU) lsr(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x01 != 0)
	return v >> 1
}

func (c *CPU) rol(v uint8) uint8 {
	carryIn := c.getFlag(FlagCarry)
	c.setFlag(FlagCarry, v&0x80 != 0)
	return (v << 1) | carryIn
}

func (c *CPU) ror(v uint8) uint8 {
	carryIn := c.getFlag(FlagCarry)
	c.setFlag(FlagCarry, v&0x01 != 0)
	return (v >> 1) | (carryIn << 7)
}
