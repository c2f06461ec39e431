package algorithms

import (
	"strconv"
	"strings"
)

// Leaf is the Vertex value of an internal dendrogram node.
const Leaf = -1

// Dendrogram is a binary tree of community splits. A leaf holds one vertex
// id; an internal node has Vertex == Leaf and two children.
type Dendrogram struct {
	Vertex int
	Left   *Dendrogram
	Right  *Dendrogram
}

// NewLeaf creates a leaf for vertex v.
func NewLeaf(v int) *Dendrogram {
	return &Dendrogram{Vertex: v}
}

// NewInternal joins two subtrees under a new internal node.
func NewInternal(left, right *Dendrogram) *Dendrogram {
	return &Dendrogram{Vertex: Leaf, Left: left, Right: right}
}

// IsLeaf reports whether d holds a single vertex.
func (d *Dendrogram) IsLeaf() bool {
	return d.Vertex != Leaf
}

// Leaves returns the vertex ids of d from left to right.
func (d *Dendrogram) Leaves() []int {
	if d == nil {
		return nil
	}

	var leaves []int
	stack := []*Dendrogram{d}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		if node.IsLeaf() {
			leaves = append(leaves, node.Vertex)
			continue
		}
		stack = append(stack, node.Right, node.Left)
	}
	return leaves
}

// Size returns the number of leaves.
func (d *Dendrogram) Size() int {
	return len(d.Leaves())
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (d *Dendrogram) Depth() int {
	if d == nil {
		return 0
	}

	type frame struct {
		node  *Dendrogram
		depth int
	}

	deepest := 0
	stack := []frame{{d, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > deepest {
			deepest = f.depth
		}
		if f.node.Left != nil {
			stack = append(stack, frame{f.node.Left, f.depth + 1})
		}
		if f.node.Right != nil {
			stack = append(stack, frame{f.node.Right, f.depth + 1})
		}
	}
	return deepest
}

// Communities cuts the tree into at most k communities by repeatedly
// splitting the shallowest internal node (leftmost on ties). Each community
// lists its vertices left to right.
func (d *Dendrogram) Communities(k int) [][]int {
	if d == nil || k < 1 {
		return nil
	}

	type cut struct {
		node  *Dendrogram
		depth int
	}

	frontier := []cut{{d, 0}}
	for len(frontier) < k {
		best := -1
		for i, c := range frontier {
			if c.node.IsLeaf() {
				continue
			}
			if best < 0 || c.depth < frontier[best].depth {
				best = i
			}
		}
		if best < 0 {
			break
		}

		split := frontier[best]
		children := []cut{
			{split.node.Left, split.depth + 1},
			{split.node.Right, split.depth + 1},
		}
		tail := append(children, frontier[best+1:]...)
		frontier = append(frontier[:best], tail...)
	}

	communities := make([][]int, len(frontier))
	for i, c := range frontier {
		communities[i] = c.node.Leaves()
	}
	return communities
}

// String renders the tree as an s-expression, e.g. "((0 1) (2 3))".
func (d *Dendrogram) String() string {
	if d == nil {
		return "()"
	}
	var b strings.Builder
	d.write(&b)
	return b.String()
}

func (d *Dendrogram) write(b *strings.Builder) {
	if d == nil {
		b.WriteString("()")
		return
	}
	if d.IsLeaf() {
		b.WriteString(strconv.Itoa(d.Vertex))
		return
	}
	b.WriteByte('(')
	d.Left.write(b)
	b.WriteByte(' ')
	d.Right.write(b)
	b.WriteByte(')')
}

// Release detaches every node of the tree so it can be collected in one
// pass.
func (d *Dendrogram) Release() {
	if d == nil {
		return
	}

	stack := []*Dendrogram{d}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.Left != nil {
			stack = append(stack, node.Left)
		}
		if node.Right != nil {
			stack = append(stack, node.Right)
		}
		node.Left, node.Right = nil, nil
	}
}
