package mos6502

import "fmt"

// Vectors. BRK and IRQ share $FFFE/$FFFF.
const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
	vectorBRK   uint16 = vectorIRQ
)

const stackPage uint16 = 0x0100

// InterruptKind selects which vector Interrupt loads PC from.
type InterruptKind int

const (
	IRQ InterruptKind = iota
	NMI
)

// CPU holds all state of the 6502: registers, flags, the pending-cycle
// counter, and a reference to the shared memory bus. step() and
// cycle() are its only mutators besides Reset and Interrupt.
type CPU struct {
	a, x, y         uint8
	sp              uint8
	pc              uint16
	status          uint8
	cyclesRemaining int
	mem             *Memory
}

// New creates a CPU wired to mem. Per power-up: A=X=Y=0, SP=0xFF, all
// flags clear, cycles_remaining=0, PC loaded from the reset vector.
func New(mem *Memory) *CPU {
	c := &CPU{mem: mem, sp: 0xFF}
	c.pc = c.mem.Read16(vectorReset, false)
	return c
}

// Reset reloads PC from the reset vector and sets the interrupt-disable
// flag, without otherwise disturbing registers. The real 6502's reset
// line behaves this way, unlike the full clear New performs at
// power-on.
func (c *CPU) Reset() {
	c.setFlag(FlagInterrupt, true)
	c.pc = c.mem.Read16(vectorReset, false)
}

// PC returns the current program counter.
func (c *CPU) PC() uint16 { return c.pc }

// CyclesRemaining returns the number of pending clock ticks owed before
// the next instruction fetch.
func (c *CPU) CyclesRemaining() int { return c.cyclesRemaining }

// Registers returns A, X, Y, SP and the packed status byte, for
// debugging and tests.
func (c *CPU) Registers() (a, x, y, sp, status uint8) {
	return c.a, c.x, c.y, c.sp, c.status
}

func (c *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%08b cyc=%d",
		c.a, c.x, c.y, c.sp, c.pc, c.status, c.cyclesRemaining)
}

func (c *CPU) push(v uint8) {
	c.mem.Write8(stackPage+uint16(c.sp), v)
	c.sp--
}

func (c *CPU) pop() uint8 {
	c.sp++
	return c.mem.Read8(stackPage + uint16(c.sp))
}

// pushAddress pushes addr high-byte-first so popAddress (low then high)
// round-trips it.
func (c *CPU) pushAddress(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr))
}

func (c *CPU) popAddress() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(lo) | uint16(hi)<<8
}

// Step decodes and fully executes one instruction: operand fetch,
// execution, writeback, PC advance and cycle accounting all happen
// before Step returns. Unknown opcodes are a defined 2-cycle, PC+1
// no-op, so the interpreter is total over all 256 opcode values.
func (c *CPU) Step() {
	pcStart := c.pc
	opByte := c.mem.Read8(pcStart)
	entry := opcodeTable[opByte]

	if entry.exec == nil {
		c.pc = pcStart + 1
		c.cyclesRemaining = 2
		return
	}

	c.pc = pcStart + 1 // points at the first operand byte, if any
	op := c.resolve(entry.mode)

	c.cyclesRemaining = int(entry.cycles)
	if entry.penalty && op.pageCrossed {
		c.cyclesRemaining++
	}

	entry.exec(c, entry.mode, op)

	// Branches, jumps, calls and returns move PC themselves; anything
	// that didn't touch it advances by the instruction's full length.
	if c.pc == pcStart+1 {
		c.pc = pcStart + uint16(entry.length)
	}
}

// Cycle is the cycle-paced entry point: if no cycles are owed it steps
// one instruction (which sets cyclesRemaining), then consumes one
// tick. N calls to Cycle elapse one N-cycle instruction.
func (c *CPU) Cycle() {
	if c.cyclesRemaining == 0 {
		c.Step()
	}
	if c.cyclesRemaining > 0 {
		c.cyclesRemaining--
	}
}

// Interrupt pushes PC and status (B=0, unused=1), sets the
// interrupt-disable flag, and loads PC from the NMI or IRQ/BRK vector.
// An IRQ is ignored while the interrupt-disable flag is set; NMI is
// unconditional. Nothing in this system drives this yet; it is
// provided as the documented extension point.
func (c *CPU) Interrupt(kind InterruptKind) {
	if kind == IRQ && c.getFlag(FlagInterrupt) == 1 {
		return
	}

	c.pushAddress(c.pc)
	c.push((c.status &^ FlagBreak) | flagUnused)
	c.setFlag(FlagInterrupt, true)

	vector := vectorIRQ
	if kind == NMI {
		vector = vectorNMI
	}
	c.pc = c.mem.Read16(vector, false)
}
