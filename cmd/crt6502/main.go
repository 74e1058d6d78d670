// Command crt6502 loads a raw 6502 memory image and runs it against
// the framebuffer and printer peripherals in a small ebiten window.
package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/urfave/cli.v2"

	"github.com/halvorsen/crt6502/devices"
	"github.com/halvorsen/crt6502/loader"
	"github.com/halvorsen/crt6502/sandbox"
	"github.com/halvorsen/crt6502/system"
)

func main() {
	app := &cli.App{
		Name:      "crt6502",
		Usage:     "run a raw 6502 memory image against a framebuffer and printer",
		ArgsUsage: "<image>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("missing memory image path", 2)
	}

	mem, err := loader.Load(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	host := system.NewHost(mem)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- host.Run(ctx) }()

	game := sandbox.NewGame(devices.SharedFramebuffer())
	if err := ebiten.RunGame(game); err != nil {
		cancel()
		return cli.Exit(err.Error(), 1)
	}

	cancel()
	if err := <-runErr; err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
