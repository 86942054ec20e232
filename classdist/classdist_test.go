package classdist_test

import (
	"testing"

	"github.com/katalvlaran/sensortree/classdist"
	"github.com/katalvlaran/sensortree/rooted"
	"github.com/katalvlaran/sensortree/subtreestats"
	"github.com/katalvlaran/sensortree/tree"
	"github.com/stretchr/testify/require"
)

func totalPairwise(t *tree.Tree) int {
	sum := 0
	for u := tree.NodeID(0); u < tree.NodeID(t.N()); u++ {
		for v := u + 1; v < tree.NodeID(t.N()); v++ {
			sum += t.Distance(u, v)
		}
	}
	return sum
}

// TestLookup_RootFullSetMatchesPairwiseSum checks invariant 6: the root's
// full-children-set class spans the whole tree, so its raw (factor-of-2)
// value equals twice the total pairwise distance sum, divided by n once
// normalized.
func TestLookup_RootFullSetMatchesPairwiseSum(t *testing.T) {
	for _, tc := range []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"path5", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{"star14", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}},
		{"balancedBinary", 7, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}}},
		{"caterpillar", 5, [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 4}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := tree.New(tc.n, tc.edges)
			require.NoError(t, err)
			v, err := rooted.NewAuto(tr)
			require.NoError(t, err)
			st := subtreestats.Compute(tr, v)
			tb := classdist.Build(tr, v, st)

			want := 2 * float64(totalPairwise(tr)) / float64(tc.n)
			got := tb.Lookup(v.Root(), v.Children(v.Root()), false)
			require.InDelta(t, want, got, 1e-9)
		})
	}
}

// TestLookup_EmptySubsetIsZero checks the base case: a class with no
// selected children (and no parent) contains only x, trivially 0.
func TestLookup_EmptySubsetIsZero(t *testing.T) {
	tr, err := tree.New(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	v, err := rooted.NewAuto(tr)
	require.NoError(t, err)
	st := subtreestats.Compute(tr, v)
	tb := classdist.Build(tr, v, st)

	require.Equal(t, 0.0, tb.Lookup(v.Root(), nil, false))
}

// TestLookup_NonNegative checks invariant: w(x, key) >= 0 for every node
// and every subset, in both the children-only and parent-inclusive forms.
func TestLookup_NonNegative(t *testing.T) {
	tr, err := tree.New(7, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}})
	require.NoError(t, err)
	v, err := rooted.NewAuto(tr)
	require.NoError(t, err)
	st := subtreestats.Compute(tr, v)
	tb := classdist.Build(tr, v, st)

	for x := tree.NodeID(0); x < 7; x++ {
		children := v.Children(x)
		for mask := 0; mask < (1 << uint(len(children))); mask++ {
			var subset []tree.NodeID
			for i, c := range children {
				if mask&(1<<uint(i)) != 0 {
					subset = append(subset, c)
				}
			}
			require.GreaterOrEqual(t, tb.Lookup(x, subset, false), 0.0)
			require.GreaterOrEqual(t, tb.Lookup(x, subset, true), 0.0)
		}
	}
}

// TestLookup_RootParentInclusiveEqualsChildrenOnly checks the base case
// from §4.4: at the root, W+(root, S) == W(root, S) since there is
// nothing above the root (size_above == 0, sum_above == 0).
func TestLookup_RootParentInclusiveEqualsChildrenOnly(t *testing.T) {
	tr, err := tree.New(7, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}})
	require.NoError(t, err)
	v, err := rooted.NewAuto(tr)
	require.NoError(t, err)
	st := subtreestats.Compute(tr, v)
	tb := classdist.Build(tr, v, st)

	root := v.Root()
	children := v.Children(root)
	for mask := 0; mask < (1 << uint(len(children))); mask++ {
		var subset []tree.NodeID
		for i, c := range children {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, c)
			}
		}
		require.InDelta(t,
			tb.Lookup(root, subset, false),
			tb.Lookup(root, subset, true),
			1e-9)
	}
}
