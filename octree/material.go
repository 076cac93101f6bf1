package octree

import (
	"github.com/mosure/octree-glass/types"
)

// Glass material parameters for a single cube. Sampled fresh per leaf and
// consumed immediately by the scene collaborator; never stored in the tree.
type Material struct {
	Color     types.Vec4
	Roughness float32
	IOR       float32
}

// MaterialConfig drives material sampling for a generation pass.
type MaterialConfig struct {
	Roughness float32
	IOR       float32
	IORStdev  float32
}

// The leaf color palette. White appears twice so it carries double the
// weight of the other entries; the 1:1:1:2 ratio is part of the look and
// must not be collapsed.
var palette = []types.Vec4{
	{0, 1, 1, 1},
	{1, 0, 1, 1},
	{1, 1, 0, 1},
	{1, 1, 1, 1},
	{1, 1, 1, 1},
}

// White is the color of the encasing shell.
var White = types.Vec4{1, 1, 1, 1}

// SampleMaterial draws one leaf material: a uniform palette pick and a
// gaussian IOR around the configured mean. Roughness passes through
// unchanged. Consumes exactly two draws from rng.
func SampleMaterial(cfg MaterialConfig, rng Rand) Material {
	color := palette[int(rng.Float32()*float32(len(palette)))]

	return Material{
		Color:     color,
		Roughness: cfg.Roughness,
		IOR:       rng.Gauss(cfg.IOR, cfg.IORStdev),
	}
}

// ShellMaterial returns the fixed material for the encasing shell: white,
// half the configured roughness, no IOR jitter.
func ShellMaterial(cfg MaterialConfig) Material {
	return Material{
		Color:     White,
		Roughness: cfg.Roughness / 2,
		IOR:       cfg.IOR,
	}
}
