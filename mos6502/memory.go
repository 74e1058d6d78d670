// Package mos6502 implements the MOS Technology 6502 microprocessor.
// https://en.wikipedia.org/wiki/MOS_Technology_6502
package mos6502

// MemSize is the full 64 KiB address space of the 6502.
const MemSize = 0x10000

// Memory is a flat, byte-addressable 64 KiB address space shared by the
// CPU and any memory-mapped peripherals. There is no caching and no
// access logging; reads and writes never fail, addresses simply wrap.
type Memory struct {
	data [MemSize]byte
}

// NewMemory returns a zeroed 64 KiB address space.
func NewMemory() *Memory {
	return &Memory{}
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) uint8 {
	return m.data[addr]
}

// Write8 stores val at addr.
func (m *Memory) Write8(addr uint16, val uint8) {
	m.data[addr] = val
}

// Read16 returns the little-endian word at addr. When zeroPageWrap is
// true both bytes are fetched with their address masked to the zero
// page (0x00FF wraps to 0x0000, not 0x0100), the classic 6502 zero-page
// indirection quirk.
func (m *Memory) Read16(addr uint16, zeroPageWrap bool) uint16 {
	if zeroPageWrap {
		lo := m.data[uint8(addr)]
		hi := m.data[uint8(addr+1)]
		return uint16(lo) | uint16(hi)<<8
	}
	lo := m.data[addr]
	hi := m.data[addr+1]
	return uint16(lo) | uint16(hi)<<8
}

// Write16 stores val little-endian at addr, honoring zeroPageWrap
// symmetrically with Read16.
func (m *Memory) Write16(addr uint16, val uint16, zeroPageWrap bool) {
	lo := uint8(val)
	hi := uint8(val >> 8)
	if zeroPageWrap {
		m.data[uint8(addr)] = lo
		m.data[uint8(addr+1)] = hi
		return
	}
	m.data[addr] = lo
	m.data[addr+1] = hi
}

// LoadImage copies data into memory starting at offset 0. A short image
// (less than 64 KiB) is not an error; the remainder stays zeroed.
func (m *Memory) LoadImage(data []byte) {
	copy(m.data[:], data)
}
