package devices

import (
	"io"
	"os"

	"github.com/halvorsen/crt6502/mos6502"
)

const (
	printerStrobe = 0x00FE
	printerLatch  = 0x00FF
	printerFire   = 1
	softHaltValue = 127
)

// Printer implements the strobe/latch character-output protocol: when
// mem[0x00FE] == 1, mem[0x00FF] is printed as an ASCII byte and the
// strobe cell is reset to 0. The soft-halt value (0x00FE == 127) shares
// the same cell but is acted on by system.Host, not the printer; the
// printer only ever writes the strobe cell back to 0, never to 127.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stdout}
}

// SetOutput redirects printed characters, for tests.
func (p *Printer) SetOutput(w io.Writer) { p.out = w }

func (p *Printer) Name() string { return "printer" }

func (p *Printer) Tick(mem *mos6502.Memory) {
	if mem.Read8(printerStrobe) != printerFire {
		return
	}
	ch := mem.Read8(printerLatch)
	p.out.Write([]byte{ch})
	mem.Write8(printerStrobe, 0)
}

func init() {
	RegisterDevice("printer", NewPrinter())
}

// SoftHalted reports whether mem's strobe cell carries the shutdown
// value. system.Host's device actor polls this once per tick.
func SoftHalted(mem *mos6502.Memory) bool {
	return mem.Read8(printerStrobe) == softHaltValue
}
