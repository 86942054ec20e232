// Package subtreestats computes per-node aggregate statistics over a
// rooted.View: subtree size, the sum of distances to descendants
// (SumBelow), and the sum of distances to non-descendants (SumAbove).
//
// These three dense arrays are the only inputs classdist needs to build
// its preprocessing tables; no other traversal of the tree is required
// downstream.
//
// Complexity: O(n) time and space — one post-order pass for Size/SumBelow,
// one pre-order pass for SumAbove.
package subtreestats

import (
	"github.com/katalvlaran/sensortree/rooted"
	"github.com/katalvlaran/sensortree/tree"
)

// Stats holds dense, NodeID-indexed subtree aggregates.
type Stats struct {
	// Size[x] is the number of nodes in the subtree rooted at x.
	Size []int
	// SumBelow[x] is the sum of distances from x to every node in its
	// own subtree (including x itself, which contributes 0).
	SumBelow []int
	// SumAbove[x] is the sum of distances from x to every node outside
	// its subtree. SumAbove[root] == 0.
	SumAbove []int
}

// Compute fills Size, SumBelow (post-order) and SumAbove (pre-order, via
// the identity relating a node's SumAbove to its parent's) for every node
// in the view.
func Compute(t *tree.Tree, v *rooted.View) *Stats {
	n := t.N()
	st := &Stats{
		Size:     make([]int, n),
		SumBelow: make([]int, n),
		SumAbove: make([]int, n),
	}

	for _, x := range v.PostOrder() {
		size := 1
		sumBelow := 0
		for _, c := range v.Children(x) {
			size += st.Size[c]
			sumBelow += st.SumBelow[c] + t.Distance(x, c)*st.Size[c]
		}
		st.Size[x] = size
		st.SumBelow[x] = sumBelow
	}

	root := v.Root()
	st.SumAbove[root] = 0
	for _, x := range v.PreOrder() {
		if x == root {
			continue
		}
		p, _ := v.Parent(x)
		dxp := t.Distance(x, p)
		otherSiblings := st.SumBelow[p] - st.SumBelow[x] - dxp*st.Size[x]
		fromXToP := dxp * (n - st.Size[x])
		st.SumAbove[x] = st.SumAbove[p] + otherSiblings + fromXToP
	}

	return st
}
