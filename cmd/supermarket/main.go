package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/marketsim/supermarket-sim/supermarket"
)

func main() {
	app := &cli.App{
		Name:  "supermarket",
		Usage: "bounded-buffer supermarket simulation: cashiers scan products, packers bag them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load parameters from YAML `FILE` (flags override)",
			},
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "packing area slots",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  "producers",
				Usage: "number of cashiers",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  "consumers",
				Usage: "number of packers",
				Value: 2,
			},
			&cli.IntFlag{
				Name:  "duration",
				Usage: "simulation length in seconds",
				Value: 60,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "supermarket:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := supermarket.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = supermarket.LoadConfig(path)
		if err != nil {
			return err
		}
	}
	if c.IsSet("capacity") {
		cfg.Capacity = c.Int("capacity")
	}
	if c.IsSet("producers") {
		cfg.NumCashiers = c.Int("producers")
	}
	if c.IsSet("consumers") {
		cfg.NumPackers = c.Int("consumers")
	}
	if c.IsSet("duration") {
		cfg.Duration = time.Duration(c.Int("duration")) * time.Second
	}

	sim, err := supermarket.New(cfg, supermarket.NewEventLog(os.Stdout))
	if err != nil {
		return err
	}
	sim.Run()
	return nil
}
