package subtreestats_test

import (
	"testing"

	"github.com/katalvlaran/sensortree/rooted"
	"github.com/katalvlaran/sensortree/subtreestats"
	"github.com/katalvlaran/sensortree/tree"
	"github.com/stretchr/testify/require"
)

// TestCompute_BalancedBinary checks Size/SumBelow/SumAbove against hand
// computed values for the depth-2 balanced binary tree used in scenario S3.
func TestCompute_BalancedBinary(t *testing.T) {
	tr, err := tree.New(7, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}})
	require.NoError(t, err)
	v, err := rooted.NewAuto(tr)
	require.NoError(t, err)
	require.Equal(t, tree.NodeID(0), v.Root())

	st := subtreestats.Compute(tr, v)

	require.Equal(t, 7, st.Size[0])
	require.Equal(t, 3, st.Size[1])
	require.Equal(t, 1, st.Size[3])

	require.Equal(t, 0, st.SumAbove[0])

	// SumBelow(x) + SumAbove(x) is the sum of distances from x to every
	// node, so summing it over all x counts each unordered pair twice:
	// Sum_x (SumBelow(x) + SumAbove(x)) == 2 * Sum_{u<v} D[u][v] (96 here).
	totalPairwise := 0
	for u := tree.NodeID(0); u < 7; u++ {
		for v2 := u + 1; v2 < 7; v2++ {
			totalPairwise += tr.Distance(u, v2)
		}
	}
	distTotal := 0
	for x := range st.SumBelow {
		distTotal += st.SumBelow[x] + st.SumAbove[x]
	}
	require.Equal(t, 2*totalPairwise, distTotal)
	require.Equal(t, 7, st.Size[v.Root()])
}

// TestCompute_SumAboveIdentity verifies the §3 recurrence directly for a
// caterpillar tree (spine 0-1-2, leaves 3 on 1 and 4 on 2).
func TestCompute_SumAboveIdentity(t *testing.T) {
	tr, err := tree.New(5, [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 4}})
	require.NoError(t, err)
	v, err := rooted.NewAuto(tr)
	require.NoError(t, err)

	st := subtreestats.Compute(tr, v)
	for x := tree.NodeID(0); x < 5; x++ {
		if v.IsRoot(x) {
			continue
		}
		p, _ := v.Parent(x)
		dxp := tr.Distance(x, p)
		n := tr.N()
		expected := st.SumAbove[p] +
			(st.SumBelow[p] - st.SumBelow[x] - dxp*st.Size[x]) +
			dxp*(n-st.Size[x])
		require.Equal(t, expected, st.SumAbove[x])
	}
}
