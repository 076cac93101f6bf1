package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a generation pass. Zero values are not
// usable defaults; call Default() and override selectively.
type Config struct {
	// Max recursion depth of the octree. Leaf count is bounded by 8^Depth.
	Depth int `yaml:"depth"`

	// Per-node chance of subdividing beyond the forced root split.
	SplitProbability float32 `yaml:"split_probability"`

	// Leaf material roughness. The encasing shell uses half this value.
	Roughness float32 `yaml:"roughness"`

	// Mean index of refraction for leaf materials.
	IOR float32 `yaml:"ior"`

	// Standard deviation of the IOR draw.
	IORStdev float32 `yaml:"ior_stdev"`

	// Padding added around the assembly when sizing the encasing shell.
	EncaseThickness float32 `yaml:"encase_thickness"`

	// Edge length of the root cube.
	RootSize float32 `yaml:"root_size"`

	// Center of the root cube.
	RootOrigin [3]float32 `yaml:"root_origin"`
}

// A ValidationError describes a parameter that is outside its allowed range.
type ValidationError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid value %v for %q: %s", e.Value, e.Param, e.Reason)
}

// Default returns the parameter set the generator ships with. The values
// mirror the ranges exposed to users: a shallow tree with a low split
// probability and glass-like optics.
func Default() Config {
	return Config{
		Depth:            3,
		SplitProbability: 0.2,
		Roughness:        0.25,
		IOR:              1.45,
		IORStdev:         0.5,
		EncaseThickness:  0.3,
		RootSize:         2,
		RootOrigin:       [3]float32{0, 0, 0},
	}
}

// Load reads a YAML parameter file on top of the defaults, so partial files
// only override the keys they mention.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every parameter against its allowed range and reports the
// first violation.
func (c Config) Validate() error {
	switch {
	case c.Depth < 1 || c.Depth > 10:
		return &ValidationError{"depth", c.Depth, "must be in [1, 10]"}
	case c.SplitProbability < 0 || c.SplitProbability > 1:
		return &ValidationError{"split_probability", c.SplitProbability, "must be in [0, 1]"}
	case c.Roughness < 0.1 || c.Roughness > 2:
		return &ValidationError{"roughness", c.Roughness, "must be in [0.1, 2]"}
	case c.IOR < 1 || c.IOR > 3:
		return &ValidationError{"ior", c.IOR, "must be in [1, 3]"}
	case c.IORStdev < 0 || c.IORStdev > 1:
		return &ValidationError{"ior_stdev", c.IORStdev, "must be in [0, 1]"}
	case c.EncaseThickness < 0:
		return &ValidationError{"encase_thickness", c.EncaseThickness, "must be >= 0"}
	case c.RootSize <= 0:
		return &ValidationError{"root_size", c.RootSize, "must be > 0"}
	}
	return nil
}

// Marshal renders the config as YAML, suitable for seeding a parameter file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
