package octree

import (
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/mosure/octree-glass/types"
)

func TestPaletteWeights(t *testing.T) {
	const draws = 20000

	rng := NewRand(99)
	cfg := MaterialConfig{Roughness: 0.25, IOR: 1.45, IORStdev: 0}

	counts := make(map[types.Vec4]int)
	for i := 0; i < draws; i++ {
		mat := SampleMaterial(cfg, rng)
		counts[mat.Color]++
	}

	// cyan : magenta : yellow : white converge to 1:1:1:2.
	expected := map[types.Vec4]float64{
		{0, 1, 1, 1}: 0.2,
		{1, 0, 1, 1}: 0.2,
		{1, 1, 0, 1}: 0.2,
		{1, 1, 1, 1}: 0.4,
	}

	if len(counts) != len(expected) {
		t.Fatalf("expected %d distinct colors; got %d", len(expected), len(counts))
	}
	for color, want := range expected {
		got := float64(counts[color]) / draws
		if got < want-0.03 || got > want+0.03 {
			t.Fatalf("color %v: expected frequency near %.2f; got %.3f", color, want, got)
		}
	}
}

func TestIORDistribution(t *testing.T) {
	const draws = 20000

	rng := NewRand(42)
	cfg := MaterialConfig{Roughness: 0.25, IOR: 1.45, IORStdev: 0.5}

	samples := make([]float64, draws)
	for i := 0; i < draws; i++ {
		samples[i] = float64(SampleMaterial(cfg, rng).IOR)
	}

	mean := stat.Mean(samples, nil)
	stdev := stat.StdDev(samples, nil)

	if mean < 1.40 || mean > 1.50 {
		t.Fatalf("expected sample mean near 1.45; got %.4f", mean)
	}
	if stdev < 0.45 || stdev > 0.55 {
		t.Fatalf("expected sample stdev near 0.5; got %.4f", stdev)
	}
}

func TestIORUnclamped(t *testing.T) {
	// The normal draw has unbounded support; a wide spread must be able
	// to produce physically implausible values below 1.
	rng := NewRand(7)
	cfg := MaterialConfig{Roughness: 0.25, IOR: 1.0, IORStdev: 1}

	below := false
	for i := 0; i < 1000 && !below; i++ {
		below = SampleMaterial(cfg, rng).IOR < 1
	}
	if !below {
		t.Fatal("expected at least one IOR draw below 1")
	}
}

func TestRoughnessPassThrough(t *testing.T) {
	rng := NewRand(5)
	cfg := MaterialConfig{Roughness: 0.8, IOR: 1.45, IORStdev: 0.5}

	for i := 0; i < 100; i++ {
		if mat := SampleMaterial(cfg, rng); mat.Roughness != 0.8 {
			t.Fatalf("expected roughness to pass through unchanged; got %f", mat.Roughness)
		}
	}
}

func TestShellMaterial(t *testing.T) {
	mat := ShellMaterial(MaterialConfig{Roughness: 0.25, IOR: 1.45, IORStdev: 0.5})

	if mat.Color != White {
		t.Fatalf("expected the shell to be white; got %v", mat.Color)
	}
	if mat.Roughness != 0.125 {
		t.Fatalf("expected half the configured roughness; got %f", mat.Roughness)
	}
	if mat.IOR != 1.45 {
		t.Fatalf("expected the shell IOR to carry no jitter; got %f", mat.IOR)
	}
}

func TestGaussZeroStdev(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 10; i++ {
		if got := rng.Gauss(1.45, 0); got != 1.45 {
			t.Fatalf("expected zero-stdev draws to return the mean exactly; got %f", got)
		}
	}
}
