package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/mosure/octree-glass/octree"
	"github.com/mosure/octree-glass/types"
)

// Stats grows a tree with the given parameters without authoring any scene
// assets and prints the per-level leaf distribution. With the same seed,
// generate produces exactly this tree.
func Stats(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	seed := seedFromCtx(ctx)
	origin := types.XYZ(cfg.RootOrigin[0], cfg.RootOrigin[1], cfg.RootOrigin[2])
	root := octree.NewRoot(origin, cfg.RootSize, cfg.Depth)
	matCfg := octree.MaterialConfig{
		Roughness: cfg.Roughness,
		IOR:       cfg.IOR,
		IORStdev:  cfg.IORStdev,
	}

	countLeaf := func(leaf *octree.Node, mat octree.Material) error {
		return nil
	}

	stats, err := octree.Build(root, cfg.SplitProbability, matCfg, octree.NewRand(seed), countLeaf)
	if err != nil {
		logger.Error(err)
		return err
	}

	min, max := root.Bounds()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Level", "Cell size", "Leaves"})
	size := cfg.RootSize
	for level, leaves := range stats.LeavesAtLevel {
		table.Append([]string{
			fmt.Sprintf("%d", level),
			fmt.Sprintf("%.4f", size),
			fmt.Sprintf("%d", leaves),
		})
		size /= 2
	}
	table.SetFooter([]string{"Total", fmtVec(min) + " .. " + fmtVec(max), fmt.Sprintf("%d", stats.Leaves)})
	table.Render()

	logger.Noticef("tree statistics for seed %d\n%s", seed, buf.String())
	return nil
}
