package mos6502

import "fmt"

// opcodeEntry is one row of the dense 256-entry dispatch table: the
// mnemonic (for debugging/disassembly), its addressing mode, the
// instruction's total length in bytes, its documented base cycle cost,
// whether a page-crossing indexed address charges one extra cycle, and
// the handler itself. A zero-value entry (exec == nil) is an unofficial
// opcode and Step treats it as a 2-cycle, PC+1 no-op: a single default
// rather than a fallthrough scattered through 256 cases.
type opcodeEntry struct {
	name    string
	mode    AddressingMode
	length  uint8
	cycles  uint8
	penalty bool
	exec    func(c *CPU, mode AddressingMode, op operand)
}

var opcodeTable [256]opcodeEntry

func define(code uint8, name string, mode AddressingMode, length, cycles uint8, penalty bool, exec func(*CPU, AddressingMode, operand)) {
	if opcodeTable[code].exec != nil {
		panic(fmt.Sprintf("opcode 0x%02X already registered to %s", code, opcodeTable[code].name))
	}
	opcodeTable[code] = opcodeEntry{name: name, mode: mode, length: length, cycles: cycles, penalty: penalty, exec: exec}
}

// The penalty-cycle rule applies only to the read-family instructions
// (loads, ADC, SBC, AND, ORA, EOR, CMP, BIT); read-modify-write and
// store variants of the indexed/indirect modes always charge their
// fixed higher cycle count, so penalty=true is set only on the rows
// that should have it.
func init() {
	define(0x69, "ADC", Immediate, 2, 2, false, (*CPU).ADC)
	define(0x65, "ADC", ZeroPage, 2, 3, false, (*CPU).ADC)
	define(0x75, "ADC", ZeroPageX, 2, 4, false, (*CPU).ADC)
	define(0x6D, "ADC", Absolute, 3, 4, false, (*CPU).ADC)
	define(0x7D, "ADC", AbsoluteX, 3, 4, true, (*CPU).ADC)
	define(0x79, "ADC", AbsoluteY, 3, 4, true, (*CPU).ADC)
	define(0x61, "ADC", IndirectX, 2, 6, false, (*CPU).ADC)
	define(0x71, "ADC", IndirectY, 2, 5, true, (*CPU).ADC)

	define(0x29, "AND", Immediate, 2, 2, false, (*CPU).AND)
	define(0x25, "AND", ZeroPage, 2, 3, false, (*CPU).AND)
	define(0x35, "AND", ZeroPageX, 2, 4, false, (*CPU).AND)
	define(0x2D, "AND", Absolute, 3, 4, false, (*CPU).AND)
	define(0x3D, "AND", AbsoluteX, 3, 4, true, (*CPU).AND)
	define(0x39, "AND", AbsoluteY, 3, 4, true, (*CPU).AND)
	define(0x21, "AND", IndirectX, 2, 6, false, (*CPU).AND)
	define(0x31, "AND", IndirectY, 2, 5, true, (*CPU).AND)

	define(0x0A, "ASL", Accumulator, 1, 2, false, (*CPU).ASL)
	define(0x06, "ASL", ZeroPage, 2, 5, false, (*CPU).ASL)
	define(0x16, "ASL", ZeroPageX, 2, 6, false, (*CPU).ASL)
	define(0x0E, "ASL", Absolute, 3, 6, false, (*CPU).ASL)
	define(0x1E, "ASL", AbsoluteX, 3, 7, false, (*CPU).ASL)

	define(0x90, "BCC", Relative, 2, 2, false, (*CPU).BCC)
	define(0xB0, "BCS", Relative, 2, 2, false, (*CPU).BCS)
	define(0xF0, "BEQ", Relative, 2, 2, false, (*CPU).BEQ)
	define(0x30, "BMI", Relative, 2, 2, false, (*CPU).BMI)
	define(0xD0, "BNE", Relative, 2, 2, false, (*CPU).BNE)
	define(0x10, "BPL", Relative, 2, 2, false, (*CPU).BPL)
	define(0x50, "BVC", Relative, 2, 2, false, (*CPU).BVC)
	define(0x70, "BVS", Relative, 2, 2, false, (*CPU).BVS)

	define(0x24, "BIT", ZeroPage, 2, 3, false, (*CPU).BIT)
	define(0x2C, "BIT", Absolute, 3, 4, false, (*CPU).BIT)

	define(0x00, "BRK", Implied, 2, 7, false, (*CPU).BRK)

	define(0x18, "CLC", Implied, 1, 2, false, (*CPU).CLC)
	define(0xD8, "CLD", Implied, 1, 2, false, (*CPU).CLD)
	define(0x58, "CLI", Implied, 1, 2, false, (*CPU).CLI)
	define(0xB8, "CLV", Implied, 1, 2, false, (*CPU).CLV)
	define(0x38, "SEC", Implied, 1, 2, false, (*CPU).SEC)
	define(0xF8, "SED", Implied, 1, 2, false, (*CPU).SED)
	define(0x78, "SEI", Implied, 1, 2, false, (*CPU).SEI)

	define(0xC9, "CMP", Immediate, 2, 2, false, (*CPU).CMP)
	define(0xC5, "CMP", ZeroPage, 2, 3, false, (*CPU).CMP)
	define(0xD5, "CMP", ZeroPageX, 2, 4, false, (*CPU).CMP)
	define(0xCD, "CMP", Absolute, 3, 4, false, (*CPU).CMP)
	define(0xDD, "CMP", AbsoluteX, 3, 4, true, (*CPU).CMP)
	define(0xD9, "CMP", AbsoluteY, 3, 4, true, (*CPU).CMP)
	define(0xC1, "CMP", IndirectX, 2, 6, false, (*CPU).CMP)
	define(0xD1, "CMP", IndirectY, 2, 5, true, (*CPU).CMP)

	define(0xE0, "CPX", Immediate, 2, 2, false, (*CPU).CPX)
	define(0xE4, "CPX", ZeroPage, 2, 3, false, (*CPU).CPX)
	define(0xEC, "CPX", Absolute, 3, 4, false, (*CPU).CPX)

	define(0xC0, "CPY", Immediate, 2, 2, false, (*CPU).CPY)
	define(0xC4, "CPY", ZeroPage, 2, 3, false, (*CPU).CPY)
	define(0xCC, "CPY", Absolute, 3, 4, false, (*CPU).CPY)

	define(0xC6, "DEC", ZeroPage, 2, 5, false, (*CPU).DEC)
	define(0xD6, "DEC", ZeroPageX, 2, 6, false, (*CPU).DEC)
	define(0xCE, "DEC", Absolute, 3, 6, false, (*CPU).DEC)
	define(0xDE, "DEC", AbsoluteX, 3, 7, false, (*CPU).DEC)
	define(0xCA, "DEX", Implied, 1, 2, false, (*CPU).DEX)
	define(0x88, "DEY", Implied, 1, 2, false, (*CPU).DEY)

	define(0xE6, "INC", ZeroPage, 2, 5, false, (*CPU).INC)
	define(0xF6, "INC", ZeroPageX, 2, 6, false, (*CPU).INC)
	define(0xEE, "INC", Absolute, 3, 6, false, (*CPU).INC)
	define(0xFE, "INC", AbsoluteX, 3, 7, false, (*CPU).INC)
	define(0xE8, "INX", Implied, 1, 2, false, (*CPU).INX)
	define(0xC8, "INY", Implied, 1, 2, false, (*CPU).INY)

	define(0x49, "EOR", Immediate, 2, 2, false, (*CPU).EOR)
	define(0x45, "EOR", ZeroPage, 2, 3, false, (*CPU).EOR)
	define(0x55, "EOR", ZeroPageX, 2, 4, false, (*CPU).EOR)
	define(0x4D, "EOR", Absolute, 3, 4, false, (*CPU).EOR)
	define(0x5D, "EOR", AbsoluteX, 3, 4, true, (*CPU).EOR)
	define(0x59, "EOR", AbsoluteY, 3, 4, true, (*CPU).EOR)
	define(0x41, "EOR", IndirectX, 2, 6, false, (*CPU).EOR)
	define(0x51, "EOR", IndirectY, 2, 5, true, (*CPU).EOR)

	define(0x4C, "JMP", Absolute, 3, 3, false, (*CPU).JMP)
	define(0x6C, "JMP", Indirect, 3, 5, false, (*CPU).JMP)
	define(0x20, "JSR", Absolute, 3, 6, false, (*CPU).JSR)
	define(0x60, "RTS", Implied, 1, 6, false, (*CPU).RTS)
	define(0x40, "RTI", Implied, 1, 6, false, (*CPU).RTI)

	define(0xA9, "LDA", Immediate, 2, 2, false, (*CPU).LDA)
	define(0xA5, "LDA", ZeroPage, 2, 3, false, (*CPU).LDA)
	define(0xB5, "LDA", ZeroPageX, 2, 4, false, (*CPU).LDA)
	define(0xAD, "LDA", Absolute, 3, 4, false, (*CPU).LDA)
	define(0xBD, "LDA", AbsoluteX, 3, 4, true, (*CPU).LDA)
	define(0xB9, "LDA", AbsoluteY, 3, 4, true, (*CPU).LDA)
	define(0xA1, "LDA", IndirectX, 2, 6, false, (*CPU).LDA)
	define(0xB1, "LDA", IndirectY, 2, 5, true, (*CPU).LDA)

	define(0xA2, "LDX", Immediate, 2, 2, false, (*CPU).LDX)
	define(0xA6, "LDX", ZeroPage, 2, 3, false, (*CPU).LDX)
	define(0xB6, "LDX", ZeroPageY, 2, 4, false, (*CPU).LDX)
	define(0xAE, "LDX", Absolute, 3, 4, false, (*CPU).LDX)
	define(0xBE, "LDX", AbsoluteY, 3, 4, true, (*CPU).LDX)

	define(0xA0, "LDY", Immediate, 2, 2, false, (*CPU).LDY)
	define(0xA4, "LDY", ZeroPage, 2, 3, false, (*CPU).LDY)
	define(0xB4, "LDY", ZeroPageX, 2, 4, false, (*CPU).LDY)
	define(0xAC, "LDY", Absolute, 3, 4, false, (*CPU).LDY)
	define(0xBC, "LDY", AbsoluteX, 3, 4, true, (*CPU).LDY)

	define(0x4A, "LSR", Accumulator, 1, 2, false, (*CPU).LSR)
	define(0x46, "LSR", ZeroPage, 2, 5, false, (*CPU).LSR)
	define(0x56, "LSR", ZeroPageX, 2, 6, false, (*CPU).LSR)
	define(0x4E, "LSR", Absolute, 3, 6, false, (*CPU).LSR)
	define(0x5E, "LSR", AbsoluteX, 3, 7, false, (*CPU).LSR)

	define(0xEA, "NOP", Implied, 1, 2, false, (*CPU).NOP)

	define(0x09, "ORA", Immediate, 2, 2, false, (*CPU).ORA)
	define(0x05, "ORA", ZeroPage, 2, 3, false, (*CPU).ORA)
	define(0x15, "ORA", ZeroPageX, 2, 4, false, (*CPU).ORA)
	define(0x0D, "ORA", Absolute, 3, 4, false, (*CPU).ORA)
	define(0x1D, "ORA", AbsoluteX, 3, 4, true, (*CPU).ORA)
	define(0x19, "ORA", AbsoluteY, 3, 4, true, (*CPU).ORA)
	define(0x01, "ORA", IndirectX, 2, 6, false, (*CPU).ORA)
	define(0x11, "ORA", IndirectY, 2, 5, true, (*CPU).ORA)

	define(0x48, "PHA", Implied, 1, 3, false, (*CPU).PHA)
	define(0x08, "PHP", Implied, 1, 3, false, (*CPU).PHP)
	define(0x68, "PLA", Implied, 1, 4, false, (*CPU).PLA)
	define(0x28, "PLP", Implied, 1, 4, false, (*CPU).PLP)

	define(0x2A, "ROL", Accumulator, 1, 2, false, (*CPU).ROL)
	define(0x26, "ROL", ZeroPage, 2, 5, false, (*CPU).ROL)
	define(0x36, "ROL", ZeroPageX, 2, 6, false, (*CPU).ROL)
	define(0x2E, "ROL", Absolute, 3, 6, false, (*CPU).ROL)
	define(0x3E, "ROL", AbsoluteX, 3, 7, false, (*CPU).ROL)

	define(0x6A, "ROR", Accumulator, 1, 2, false, (*CPU).ROR)
	define(0x66, "ROR", ZeroPage, 2, 5, false, (*CPU).ROR)
	define(0x76, "ROR", ZeroPageX, 2, 6, false, (*CPU).ROR)
	define(0x6E, "ROR", Absolute, 3, 6, false, (*CPU).ROR)
	define(0x7E, "ROR", AbsoluteX, 3, 7, false, (*CPU).ROR)

	define(0xE9, "SBC", Immediate, 2, 2, false, (*CPU).SBC)
	define(0xE5, "SBC", ZeroPage, 2, 3, false, (*CPU).SBC)
	define(0xF5, "SBC", ZeroPageX, 2, 4, false, (*CPU).SBC)
	define(0xED, "SBC", Absolute, 3, 4, false, (*CPU).SBC)
	define(0xFD, "SBC", AbsoluteX, 3, 4, true, (*CPU).SBC)
	define(0xF9, "SBC", AbsoluteY, 3, 4, true, (*CPU).SBC)
	define(0xE1, "SBC", IndirectX, 2, 6, false, (*CPU).SBC)
	define(0xF1, "SBC", IndirectY, 2, 5, true, (*CPU).SBC)

	define(0x85, "STA", ZeroPage, 2, 3, false, (*CPU).STA)
	define(0x95, "STA", ZeroPageX, 2, 4, false, (*CPU).STA)
	define(0x8D, "STA", Absolute, 3, 4, false, (*CPU).STA)
	define(0x9D, "STA", AbsoluteX, 3, 5, false, (*CPU).STA)
	define(0x99, "STA", AbsoluteY, 3, 5, false, (*CPU).STA)
	define(0x81, "STA", IndirectX, 2, 6, false, (*CPU).STA)
	define(0x91, "STA", IndirectY, 2, 6, false, (*CPU).STA)

	define(0x86, "STX", ZeroPage, 2, 3, false, (*CPU).STX)
	define(0x96, "STX", ZeroPageY, 2, 4, false, (*CPU).STX)
	define(0x8E, "STX", Absolute, 3, 4, false, (*CPU).STX)

	define(0x84, "STY", ZeroPage, 2, 3, false, (*CPU).STY)
	define(0x94, "STY", ZeroPageX, 2, 4, false, (*CPU).STY)
	define(0x8C, "STY", Absolute, 3, 4, false, (*CPU).STY)

	define(0xAA, "TAX", Implied, 1, 2, false, (*CPU).TAX)
	define(0xA8, "TAY", Implied, 1, 2, false, (*CPU).TAY)
	define(0xBA, "TSX", Implied, 1, 2, false, (*CPU).TSX)
	define(0x8A, "TXA", Implied, 1, 2, false, (*CPU).TXA)
	define(0x9A, "TXS", Implied, 1, 2, false, (*CPU).TXS)
	define(0x98, "TYA", Implied, 1, 2, false, (*CPU).TYA)
}

// Mnemonic returns the opcode's mnemonic, or "???" for an unofficial
// opcode, for disassembly/debugging.
func Mnemonic(opByte uint8) string {
	if e := opcodeTable[opByte]; e.exec != nil {
		return e.name
	}
	return "???"
}
