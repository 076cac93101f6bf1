package cmd

import (
	"github.com/mosure/octree-glass/log"
	"github.com/urfave/cli"
)

var logger = log.New("octree-glass")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
