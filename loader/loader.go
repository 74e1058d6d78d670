// Package loader reads a raw binary memory image from disk into a
// fresh mos6502.Memory. There is no header to parse: an image is just
// up to 64 KiB of bytes loaded straight into the address space
// starting at 0x0000.
package loader

import (
	"os"

	"github.com/pkg/errors"

	"github.com/halvorsen/crt6502/mos6502"
)

// Load reads path into a new Memory at offset 0. An image shorter than
// 64 KiB is legal; the remainder of memory stays zeroed. Anything past
// 64 KiB is truncated. Failures are wrapped with pkg/errors so callers
// can print a cause chain.
func Load(path string) (*mos6502.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't read memory image %q", path)
	}
	if len(data) > mos6502.MemSize {
		data = data[:mos6502.MemSize]
	}

	mem := mos6502.NewMemory()
	mem.LoadImage(data)
	return mem, nil
}
