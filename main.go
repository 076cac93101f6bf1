package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/mosure/octree-glass/cmd"
)

func paramFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "params, p",
			Usage: "YAML file with generation parameters",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed; defaults to the current time",
		},
		cli.IntFlag{
			Name:  "depth",
			Usage: "max recursion depth of the octree (1-10)",
		},
		cli.Float64Flag{
			Name:  "split-prob",
			Usage: "per-node chance of subdividing beyond the forced root split (0-1)",
		},
		cli.Float64Flag{
			Name:  "roughness",
			Usage: "leaf material roughness (0.1-2)",
		},
		cli.Float64Flag{
			Name:  "ior",
			Usage: "mean index of refraction (1-3)",
		},
		cli.Float64Flag{
			Name:  "ior-stdev",
			Usage: "IOR sampling spread (0-1)",
		},
		cli.Float64Flag{
			Name:  "encase-thickness",
			Usage: "padding added to the encasing shell",
		},
		cli.Float64Flag{
			Name:  "root-size",
			Usage: "edge length of the root cube",
		},
	}
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "octree-glass"
	app.Usage = "generate fractal glass cube assemblies"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "generate a glass octree assembly with lights and an orbiting camera",
			Description: `
Grow a stochastic octree of glass cubes, wrap it in an encasing shell sized
from the generated bounds, then place three sun lights and a camera orbiting
the assembly center. Previously generated assets are cleared first.`,
			Flags:  paramFlags(),
			Action: cmd.Generate,
		},
		{
			Name:   "stats",
			Usage:  "grow a tree and print its per-level leaf distribution",
			Flags:  paramFlags(),
			Action: cmd.Stats,
		},
		{
			Name:   "config",
			Usage:  "print the effective generation parameters as YAML",
			Flags:  paramFlags(),
			Action: cmd.ShowConfig,
		},
	}

	app.Run(os.Args)
}
