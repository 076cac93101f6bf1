package octree

import (
	"errors"
	"time"

	"github.com/mosure/octree-glass/log"
)

var (
	ErrNoLeafCallback = errors.New("octree: no leaf callback provided")
	ErrNoRandSource   = errors.New("octree: no random source provided")
)

// A callback invoked for every leaf the builder settles on, carrying the
// freshly sampled material for the cube at that cell. Returning an error
// aborts the rest of the generation pass.
type LeafCallback func(leaf *Node, mat Material) error

// Stats collected during a generation pass.
type Stats struct {
	// Total nodes visited, leaves included.
	Nodes int

	// Leaves reached, i.e. cubes requested.
	Leaves int

	// Leaf count per tree level (0 = root).
	LeavesAtLevel []int

	BuildTime time.Duration
}

type builder struct {
	logger log.Logger

	splitProb float32
	matCfg    MaterialConfig
	rng       Rand
	leafCb    LeafCallback

	stats Stats
}

// Build grows the octree below root, invoking leafCb once per leaf.
//
// Every node draws at most one uniform value to decide whether it splits;
// the root always splits while budget remains, so the result is never a
// single undivided cube. A node that does not split (or has exhausted its
// budget) becomes a leaf. Children are visited in the fixed octant order
// produced by Split, which makes the draw sequence - and therefore the
// whole tree - reproducible for a seeded Rand.
func Build(root *Node, splitProb float32, matCfg MaterialConfig, rng Rand, leafCb LeafCallback) (Stats, error) {
	if leafCb == nil {
		return Stats{}, ErrNoLeafCallback
	}
	if rng == nil {
		return Stats{}, ErrNoRandSource
	}

	b := &builder{
		logger:    log.New("builder"),
		splitProb: splitProb,
		matCfg:    matCfg,
		rng:       rng,
		leafCb:    leafCb,
		stats: Stats{
			LeavesAtLevel: make([]int, root.MaxDepth+1),
		},
	}

	start := time.Now()
	err := b.descend(root)
	b.stats.BuildTime = time.Since(start)
	b.logger.Debugf(
		"octree build time: %d ms, nodes: %d, leaves: %d\n",
		b.stats.BuildTime.Nanoseconds()/1e6,
		b.stats.Nodes, b.stats.Leaves,
	)
	return b.stats, err
}

func (b *builder) descend(n *Node) error {
	b.stats.Nodes++

	// The root is forced to split; everything below it splits with
	// probability splitProb. The short-circuit matters: the forced root
	// split must not consume a draw.
	doSplit := n.Depth == n.MaxDepth || b.rng.Float32() < b.splitProb

	if n.Depth == 0 || !doSplit {
		b.stats.Leaves++
		b.stats.LeavesAtLevel[n.MaxDepth-n.Depth]++
		return b.leafCb(n, SampleMaterial(b.matCfg, b.rng))
	}

	for _, child := range n.Split() {
		if err := b.descend(child); err != nil {
			return err
		}
	}
	return nil
}
