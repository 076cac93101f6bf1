package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/mosure/octree-glass/config"
	"github.com/mosure/octree-glass/octree"
	"github.com/mosure/octree-glass/scene"
	"github.com/mosure/octree-glass/types"
)

// Load generation parameters from the defaults, an optional YAML file and
// any command-line overrides, in that order.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	var cfg config.Config
	var err error

	if paramFile := ctx.String("params"); paramFile != "" {
		cfg, err = config.Load(paramFile)
		if err != nil {
			return cfg, err
		}
	} else {
		cfg = config.Default()
	}

	if ctx.IsSet("depth") {
		cfg.Depth = ctx.Int("depth")
	}
	if ctx.IsSet("split-prob") {
		cfg.SplitProbability = float32(ctx.Float64("split-prob"))
	}
	if ctx.IsSet("roughness") {
		cfg.Roughness = float32(ctx.Float64("roughness"))
	}
	if ctx.IsSet("ior") {
		cfg.IOR = float32(ctx.Float64("ior"))
	}
	if ctx.IsSet("ior-stdev") {
		cfg.IORStdev = float32(ctx.Float64("ior-stdev"))
	}
	if ctx.IsSet("encase-thickness") {
		cfg.EncaseThickness = float32(ctx.Float64("encase-thickness"))
	}
	if ctx.IsSet("root-size") {
		cfg.RootSize = float32(ctx.Float64("root-size"))
	}

	return cfg, cfg.Validate()
}

func seedFromCtx(ctx *cli.Context) int64 {
	if ctx.IsSet("seed") {
		return ctx.Int64("seed")
	}
	return time.Now().UnixNano()
}

// Generate a glass octree assembly and report what was built.
func Generate(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	seed := seedFromCtx(ctx)
	recorder := scene.NewRecorder()
	composer := scene.NewComposer(recorder, cfg, octree.NewRand(seed))

	summary, err := composer.Generate()
	if err != nil {
		logger.Error(err)
		return err
	}
	summary.Seed = seed

	displaySummary(summary)
	return nil
}

func displaySummary(summary *scene.Summary) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Stat", "Value"})
	table.Append([]string{"Seed", fmt.Sprintf("%d", summary.Seed)})
	table.Append([]string{"Nodes visited", fmt.Sprintf("%d", summary.Build.Nodes)})
	table.Append([]string{"Cubes (leaves + shell)", fmt.Sprintf("%d", summary.Cubes)})
	table.Append([]string{"Bounds min", fmtVec(summary.BoundsMin)})
	table.Append([]string{"Bounds max", fmtVec(summary.BoundsMax)})
	table.Append([]string{"Center", fmtVec(summary.Center)})
	table.Append([]string{"Extent", fmt.Sprintf("%.3f", summary.Extent)})
	table.Append([]string{"Lights", fmt.Sprintf("%d", summary.Lights)})
	table.Append([]string{"Orbit keyframes", fmt.Sprintf("%d", summary.Keyframes)})
	table.Append([]string{"Build time", summary.Build.BuildTime.String()})
	table.Render()

	logger.Noticef("generation summary\n%s", buf.String())
}

func fmtVec(v types.Vec3) string {
	return fmt.Sprintf("(%3.3f, %3.3f, %3.3f)", v[0], v[1], v[2])
}
