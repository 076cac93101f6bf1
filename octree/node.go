package octree

import (
	"github.com/mosure/octree-glass/types"
)

// A Node represents one cubic cell of the octree. Nodes either carry no
// children (a leaf that materializes as a visible cube) or exactly 8,
// one per octant of the parent volume.
type Node struct {
	// Center of the cube this node covers.
	Origin types.Vec3

	// Edge length of the cube.
	Size float32

	// Remaining subdivision budget. Decrements toward 0 along a branch.
	Depth int

	// Budget at the tree root, recorded on every node. The builder uses
	// it to force the root split.
	MaxDepth int

	children []*Node
}

// NewRoot creates the root node of a tree with the given subdivision budget.
func NewRoot(origin types.Vec3, size float32, maxDepth int) *Node {
	return &Node{
		Origin:   origin,
		Size:     size,
		Depth:    maxDepth,
		MaxDepth: maxDepth,
	}
}

// Children returns the node's child list: nil for a leaf, 8 entries otherwise.
func (n *Node) Children() []*Node {
	return n.children
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Split subdivides the node into its 8 octants. Each child has half the
// parent's edge length and an origin offset by a quarter edge along every
// axis, so the children tile the parent volume with no gaps or overlaps.
// The offset sign iteration is fixed (x outer, then y, then z) so that
// callers consuming random draws per child do so in a reproducible order.
//
// Splitting a node with an exhausted budget is a no-op; the node stays a
// leaf and nil is returned.
func (n *Node) Split() []*Node {
	if n.Depth == 0 {
		return nil
	}

	step := n.Size / 2.0
	n.children = make([]*Node, 0, 8)
	for _, dx := range []float32{-0.5, 0.5} {
		for _, dy := range []float32{-0.5, 0.5} {
			for _, dz := range []float32{-0.5, 0.5} {
				offset := types.XYZ(dx*step, dy*step, dz*step)
				n.children = append(n.children, &Node{
					Origin:   n.Origin.Add(offset),
					Size:     step,
					Depth:    n.Depth - 1,
					MaxDepth: n.MaxDepth,
				})
			}
		}
	}

	return n.children
}

// Bounds computes the axis-aligned bounding box enclosing the node and its
// subtree as a (min corner, max corner) pair. The reduction folds in the
// node's own half extent as well as the children's boxes; for a proper
// octant split the former never exceeds the latter's union, so the result
// equals the union of leaf boxes.
func (n *Node) Bounds() (types.Vec3, types.Vec3) {
	half := n.Size / 2.0
	min := n.Origin.Sub(types.XYZ(half, half, half))
	max := n.Origin.Add(types.XYZ(half, half, half))

	for _, child := range n.children {
		childMin, childMax := child.Bounds()
		min = types.MinVec3(min, childMin)
		max = types.MaxVec3(max, childMax)
	}

	return min, max
}
