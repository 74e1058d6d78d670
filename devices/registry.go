// Package devices implements the memory-mapped peripherals that poll
// the shared 6502 address space: the framebuffer and the printer.
package devices

import (
	"fmt"

	"github.com/halvorsen/crt6502/mos6502"
)

// Device is one memory-mapped peripheral, ticked once per host cycle.
// A device owns no persistent banked state beyond what it reads from
// mem each tick.
type Device interface {
	Name() string
	Tick(mem *mos6502.Memory)
}

var allDevices = map[string]Device{}

// RegisterDevice adds d to the global registry under name. Called from
// each device's init().
func RegisterDevice(name string, d Device) {
	if od, ok := allDevices[name]; ok {
		panic(fmt.Sprintf("can't re-register device %q: already registered to %T", name, od))
	}
	allDevices[name] = d
}

// Devices returns every registered device. Order is unspecified.
func Devices() []Device {
	out := make([]Device, 0, len(allDevices))
	for _, d := range allDevices {
		out = append(out, d)
	}
	return out
}
