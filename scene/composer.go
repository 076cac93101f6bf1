package scene

import (
	"math"

	"github.com/mosure/octree-glass/config"
	"github.com/mosure/octree-glass/log"
	"github.com/mosure/octree-glass/octree"
	"github.com/mosure/octree-glass/types"
)

const (
	// Light and camera distances from the assembly center, as multiples
	// of the assembly extent.
	lightDistanceScale  float32 = 3
	cameraDistanceScale float32 = 4

	lightIntensity float32 = 10

	// The orbit spans one revolution over 300 frames, keyframed every
	// 10th frame (31 samples including both endpoints).
	framesPerRevolution = 300
	keyframeStep        = 10
)

// Fixed assembly tilt: 45 degrees around X and atan(1/sqrt(2)) around Y
// lines a cube's body diagonal up with the view axis (the isometric look).
var (
	assemblyPitch = float32(math.Pi / 4)
	assemblyYaw   = float32(math.Atan(1 / math.Sqrt2))
)

// Summary describes what a generation pass produced.
type Summary struct {
	Build octree.Stats

	BoundsMin types.Vec3
	BoundsMax types.Vec3
	Center    types.Vec3
	Extent    float32

	Cubes     int
	Lights    int
	Keyframes int
	Seed      int64
}

// Composer runs a full generation pass against a host authoring surface:
// octree growth, the encasing shell, lights, camera and orbit animation,
// all derived from the generated geometry's bounds.
type Composer struct {
	authoring Authoring
	cfg       config.Config
	rng       octree.Rand
	logger    log.Logger
}

func NewComposer(authoring Authoring, cfg config.Config, rng octree.Rand) *Composer {
	return &Composer{
		authoring: authoring,
		cfg:       cfg,
		rng:       rng,
		logger:    log.New("composer"),
	}
}

// Generate clears previously generated assets and builds a fresh assembly.
// Any collaborator error aborts the pass immediately; assets created up to
// that point are left in place (the next run's clear removes them).
func (c *Composer) Generate() (*Summary, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := c.authoring.DeleteAllGenerated(); err != nil {
		return nil, err
	}

	origin := types.XYZ(c.cfg.RootOrigin[0], c.cfg.RootOrigin[1], c.cfg.RootOrigin[2])
	root := octree.NewRoot(origin, c.cfg.RootSize, c.cfg.Depth)

	matCfg := octree.MaterialConfig{
		Roughness: c.cfg.Roughness,
		IOR:       c.cfg.IOR,
		IORStdev:  c.cfg.IORStdev,
	}

	stats, err := octree.Build(root, c.cfg.SplitProbability, matCfg, c.rng, c.placeCube)
	if err != nil {
		return nil, err
	}

	min, max := root.Bounds()
	center := min.Add(max).Mul(0.5)
	extent := max.Sub(min).MaxComponent() + 2*c.cfg.EncaseThickness

	if err = c.placeShell(center, extent, matCfg); err != nil {
		return nil, err
	}
	if err = c.authoring.RotateAssembly(assemblyPitch, assemblyYaw); err != nil {
		return nil, err
	}
	if err = c.placeLights(center, extent); err != nil {
		return nil, err
	}
	keyframes, err := c.placeCamera(center, extent)
	if err != nil {
		return nil, err
	}

	c.logger.Infof("assembled %d cubes, extent %.3f", stats.Leaves+1, extent)

	return &Summary{
		Build:     stats,
		BoundsMin: min,
		BoundsMax: max,
		Center:    center,
		Extent:    extent,
		Cubes:     stats.Leaves + 1,
		Lights:    3,
		Keyframes: keyframes,
	}, nil
}

// placeCube is the leaf callback: one box and one material per leaf.
func (c *Composer) placeCube(leaf *octree.Node, mat octree.Material) error {
	return c.createGlassBox(leaf.Origin, leaf.Size, mat)
}

// placeShell encloses the assembly in a single white cube with half the
// configured roughness and no IOR jitter.
func (c *Composer) placeShell(center types.Vec3, extent float32, matCfg octree.MaterialConfig) error {
	return c.createGlassBox(center, extent, octree.ShellMaterial(matCfg))
}

func (c *Composer) createGlassBox(center types.Vec3, edge float32, mat octree.Material) error {
	geom, err := c.authoring.CreateBox(center, edge)
	if err != nil {
		return err
	}
	handle, err := c.authoring.CreateGlassMaterial(mat.Color, mat.Roughness, mat.IOR)
	if err != nil {
		return err
	}
	return c.authoring.AttachMaterial(geom, handle)
}

// placeLights surrounds the assembly with three suns: above it and off the
// -X and -Y sides, each aimed back at the center.
func (c *Composer) placeLights(center types.Vec3, extent float32) error {
	distance := extent * lightDistanceScale
	offsets := []types.Vec3{
		{0, 0, distance},
		{-distance, 0, 0},
		{0, -distance, 0},
	}

	for _, offset := range offsets {
		position := center.Add(offset)
		direction := center.Sub(position).Normalize()
		if _, err := c.authoring.CreateSunLight(position, direction, lightIntensity); err != nil {
			return err
		}
	}
	return nil
}

// placeCamera creates the tracking camera off the -Y side and keyframes a
// full circular orbit around the center at constant height. Returns the
// number of keyframes recorded.
func (c *Composer) placeCamera(center types.Vec3, extent float32) (int, error) {
	distance := extent * cameraDistanceScale

	cam, err := c.authoring.CreateCamera(center.Add(types.XYZ(0, -distance, 0)))
	if err != nil {
		return 0, err
	}
	if err = c.authoring.SetLookAt(cam, center); err != nil {
		return 0, err
	}

	keyframes := 0
	for frame := 0; frame <= framesPerRevolution; frame += keyframeStep {
		angle := float64(frame) / framesPerRevolution * 2 * math.Pi
		position := center.Add(types.XYZ(
			distance*float32(math.Cos(angle)),
			distance*float32(math.Sin(angle)),
			0,
		))
		if err = c.authoring.SetKeyframe(cam, frame, position); err != nil {
			return keyframes, err
		}
		keyframes++
	}

	return keyframes, nil
}
