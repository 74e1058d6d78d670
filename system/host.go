// Package system wires the CPU, memory and peripheral devices together
// and drives them as two cooperating actors: one running the CPU as
// fast as it can, the other ticking devices on a fixed schedule.
package system

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/halvorsen/crt6502/devices"
	"github.com/halvorsen/crt6502/mos6502"
)

// deviceTickHz bounds how often the device actor polls and ticks
// peripherals. The CPU actor runs as fast as it can; devices don't need
// to run faster than a human can perceive their output.
const deviceTickHz = 240

// Host owns one CPU, its shared memory, and the registered devices,
// and runs them to completion or soft-halt.
type Host struct {
	CPU     *mos6502.CPU
	Memory  *mos6502.Memory
	Devices []devices.Device
}

// NewHost builds a Host around mem, constructing its own CPU (so PC
// loads from the reset vector already present in mem) and picking up
// every device registered via devices.RegisterDevice.
func NewHost(mem *mos6502.Memory) *Host {
	return &Host{
		CPU:     mos6502.New(mem),
		Memory:  mem,
		Devices: devices.Devices(),
	}
}

// Run drives the CPU and device actors until ctx is canceled or the
// soft-halt cell (0x00FE == 127) is observed, then returns. Both actors
// share Memory directly with no locking; byte-level read/write
// atomicity is all either actor needs.
func (h *Host) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			default:
				h.CPU.Cycle()
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(time.Second / deviceTickHz)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				for _, d := range h.Devices {
					d.Tick(h.Memory)
				}
				if devices.SoftHalted(h.Memory) {
					cancel()
					return nil
				}
			}
		}
	})

	return g.Wait()
}
