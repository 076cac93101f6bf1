package octree

import (
	"testing"

	"github.com/mosure/octree-glass/types"
)

func TestSplitProducesOctants(t *testing.T) {
	root := NewRoot(types.XYZ(1, 2, 3), 2, 3)

	children := root.Split()
	if len(children) != 8 {
		t.Fatalf("expected 8 children; got %d", len(children))
	}
	if len(root.Children()) != 8 {
		t.Fatalf("expected node to own its 8 children; got %d", len(root.Children()))
	}

	seen := make(map[[3]float32]bool)
	for _, child := range children {
		if child.Size != 1 {
			t.Fatalf("expected child size 1; got %f", child.Size)
		}
		if child.Depth != 2 {
			t.Fatalf("expected child depth 2; got %d", child.Depth)
		}
		if child.MaxDepth != 3 {
			t.Fatalf("expected child maxDepth 3; got %d", child.MaxDepth)
		}

		offset := child.Origin.Sub(root.Origin)
		for axis := 0; axis < 3; axis++ {
			if offset[axis] != 0.5 && offset[axis] != -0.5 {
				t.Fatalf("expected origin offset of +/- size/4 on axis %d; got %f", axis, offset[axis])
			}
		}
		seen[[3]float32(offset)] = true
	}

	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct octant offsets; got %d", len(seen))
	}
}

func TestSplitExhaustedBudget(t *testing.T) {
	node := NewRoot(types.XYZ(0, 0, 0), 2, 0)

	if children := node.Split(); children != nil {
		t.Fatalf("expected split of a depth-0 node to be a no-op; got %d children", len(children))
	}
	if !node.IsLeaf() {
		t.Fatal("expected depth-0 node to remain a leaf")
	}
}

func TestChildrenTileParentVolume(t *testing.T) {
	root := NewRoot(types.XYZ(0, 0, 0), 2, 1)
	children := root.Split()

	// Each octant must span exactly [-1, 0] or [0, 1] per axis; together
	// they cover [-1, 1] with no overlap.
	covered := make(map[[3]float32]int)
	for _, child := range children {
		min, max := child.Bounds()
		for axis := 0; axis < 3; axis++ {
			if !(min[axis] == -1 && max[axis] == 0) && !(min[axis] == 0 && max[axis] == 1) {
				t.Fatalf("expected octant span [-1,0] or [0,1] on axis %d; got [%f,%f]", axis, min[axis], max[axis])
			}
		}
		covered[[3]float32(min)]++
	}

	if len(covered) != 8 {
		t.Fatalf("expected 8 non-overlapping octants; got %d distinct", len(covered))
	}
	for corner, count := range covered {
		if count != 1 {
			t.Fatalf("expected octant at %v to be covered once; got %d", corner, count)
		}
	}
}

func TestLeafBounds(t *testing.T) {
	leaf := NewRoot(types.XYZ(3, -2, 0.5), 4, 0)

	min, max := leaf.Bounds()
	expMin := types.XYZ(1, -4, -1.5)
	expMax := types.XYZ(5, 0, 2.5)
	if min != expMin {
		t.Fatalf("expected min bound %v; got %v", expMin, min)
	}
	if max != expMax {
		t.Fatalf("expected max bound %v; got %v", expMax, max)
	}
}

func TestFullySplitTreeBounds(t *testing.T) {
	for depth := 1; depth <= 4; depth++ {
		root := NewRoot(types.XYZ(0, 0, 0), 2, depth)

		var splitAll func(n *Node)
		splitAll = func(n *Node) {
			for _, child := range n.Split() {
				splitAll(child)
			}
		}
		splitAll(root)

		min, max := root.Bounds()
		if min != types.XYZ(-1, -1, -1) || max != types.XYZ(1, 1, 1) {
			t.Fatalf("depth %d: expected bounds (-1,-1,-1)..(1,1,1); got %v..%v", depth, min, max)
		}
	}
}
