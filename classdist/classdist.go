// Package classdist implements the ClassExpDist preprocessing stage: for
// every node x and every subset S of children(x), the (normalized,
// average) sum of pairwise distances inside the equivalence class
// {x} union (subtrees rooted at S), plus its "parent-inclusive" variant
// that additionally folds in every node outside subtree(x).
//
// Build runs two dense passes over the rooted.View:
//
//   - post-order: raw (unnormalized) W(x,S) for every child subset S,
//     bottom-up, since W(x,S) needs each selected child's own full-subset
//     W value (§4.4 recurrence, children side).
//   - pre-order: raw W+(x,S) for every child subset S, top-down, since
//     W+(x,S) needs the parent's W+ value at the sibling-complement
//     subset, which must already be known (§4.4, parent-inclusive side).
//
// Subsets are represented internally as bitmasks over each node's fixed
// Children() order rather than sorted node-id tuples; Lookup translates a
// caller-supplied slice of child ids (plus a boolean flag standing in for
// the "prefix p(x)" convention) into the corresponding mask.
//
// Complexity: O(sum_x 2^deg(x)) time and space, per §5's stated footprint.
package classdist

import (
	"sort"

	"github.com/katalvlaran/sensortree/rooted"
	"github.com/katalvlaran/sensortree/subtreestats"
	"github.com/katalvlaran/sensortree/tree"
)

// Table holds the preprocessed, unnormalized W(x,S) and W+(x,S) values for
// every node x and every subset S of children(x).
type Table struct {
	t  *tree.Tree
	v  *rooted.View
	st *subtreestats.Stats

	// wChildren[x][mask] is the raw W(x,S) for the subset S encoded by mask
	// over v.Children(x).
	wChildren [][]float64
	// wParent[x][mask] is the raw W+(x,S) for the same encoding.
	wParent [][]float64
}

// Build computes the full ClassExpDist table for t rooted according to v,
// using the subtree aggregates in st.
func Build(t *tree.Tree, v *rooted.View, st *subtreestats.Stats) *Table {
	tb := &Table{
		t:         t,
		v:         v,
		st:        st,
		wChildren: make([][]float64, t.N()),
		wParent:   make([][]float64, t.N()),
	}
	tb.buildChildrenSide()
	tb.buildParentSide()
	return tb
}

// buildChildrenSide computes wChildren bottom-up (post-order).
func (tb *Table) buildChildrenSide() {
	for _, x := range tb.v.PostOrder() {
		children := tb.v.Children(x)
		m := len(children)
		w := make([]float64, 1<<uint(m))
		if !tb.t.IsLeaf(x) {
			for mask := 1; mask < len(w); mask++ {
				w[mask] = tb.rawChildrenW(x, children, mask)
			}
		}
		tb.wChildren[x] = w
	}
}

// rawChildrenW evaluates the §4.4 children-side recurrence for W(x,S),
// where S is the subset of children (indices into children) set in mask.
func (tb *Table) rawChildrenW(x tree.NodeID, children []tree.NodeID, mask int) float64 {
	sizeBelowS := 0
	for i, c := range children {
		if mask&(1<<uint(i)) != 0 {
			sizeBelowS += tb.st.Size[c]
		}
	}

	var w float64
	for i, c := range children {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		fullC := fullMask(tb.v.Children(c))
		w += tb.wChildren[c][fullC]

		contrib := 2 * float64(tb.st.SumBelow[c]+tb.t.Distance(x, c)*tb.st.Size[c])
		w += contrib * float64(sizeBelowS-tb.st.Size[c])
		w += contrib
	}
	return w
}

// buildParentSide computes wParent top-down (pre-order).
func (tb *Table) buildParentSide() {
	root := tb.v.Root()
	for _, x := range tb.v.PreOrder() {
		children := tb.v.Children(x)
		m := len(children)
		wp := make([]float64, 1<<uint(m))

		constX := 0.0
		if x != root {
			p, _ := tb.v.Parent(x)
			idx := indexOf(tb.v.Children(p), x)
			siblingMask := fullMask(tb.v.Children(p)) &^ (1 << uint(idx))
			constX = tb.wParent[p][siblingMask]
		}
		sizeAbove := tb.t.N() - tb.st.Size[x]

		for mask := 0; mask < len(wp); mask++ {
			sizeBelowS := 0
			sumBelowSel := 0.0
			for i, c := range children {
				if mask&(1<<uint(i)) == 0 {
					continue
				}
				sizeBelowS += tb.st.Size[c]
				sumBelowSel += float64(tb.st.SumBelow[c] + tb.t.Distance(x, c)*tb.st.Size[c])
			}
			sizeBelowInclX := 1 + sizeBelowS
			wp[mask] = tb.wChildren[x][mask] + constX +
				2*(sumBelowSel*float64(sizeAbove)+float64(tb.st.SumAbove[x])*float64(sizeBelowInclX))
		}
		tb.wParent[x] = wp
	}
}

// Lookup returns the normalized (average pairwise distance) value for the
// equivalence class rooted at x, formed by the given subset of x's
// children, optionally including every node outside subtree(x) (the
// "parent-inclusive" variant, i.e. the class is further unioned with
// V \ subtree(x)).
//
// childSubset must be a subset of v.Children(x); order does not matter.
func (tb *Table) Lookup(x tree.NodeID, childSubset []tree.NodeID, includeParent bool) float64 {
	children := tb.v.Children(x)
	mask := maskOf(children, childSubset)

	sizeBelowS := 0
	for _, c := range childSubset {
		sizeBelowS += tb.st.Size[c]
	}

	if !includeParent {
		if len(childSubset) == 0 {
			return 0
		}
		card := 1 + sizeBelowS
		return tb.wChildren[x][mask] / float64(card)
	}

	sizeAbove := tb.t.N() - tb.st.Size[x]
	card := sizeAbove + 1 + sizeBelowS
	return tb.wParent[x][mask] / float64(card)
}

// fullMask returns the bitmask selecting every index of children.
func fullMask(children []tree.NodeID) int {
	if len(children) == 0 {
		return 0
	}
	return (1 << uint(len(children))) - 1
}

// indexOf returns the position of target within the ascending-sorted
// children slice.
func indexOf(children []tree.NodeID, target tree.NodeID) int {
	return sort.Search(len(children), func(i int) bool { return children[i] >= target })
}

// maskOf encodes subset as a bitmask over children's index order.
func maskOf(children []tree.NodeID, subset []tree.NodeID) int {
	mask := 0
	for _, s := range subset {
		mask |= 1 << uint(indexOf(children, s))
	}
	return mask
}
