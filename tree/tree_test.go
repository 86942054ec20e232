package tree_test

import (
	"testing"

	"github.com/katalvlaran/sensortree/tree"
	"github.com/stretchr/testify/require"
)

func TestNew_PathOf5(t *testing.T) {
	tr, err := tree.New(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 5, tr.N())
	require.Equal(t, []tree.NodeID{0, 4}, tr.Leaves())
	require.Equal(t, 4, tr.Distance(0, 4))
	require.Equal(t, 0, tr.Distance(2, 2))
}

func TestNew_SingleNodeIsLeaf(t *testing.T) {
	tr, err := tree.New(1, nil)
	require.NoError(t, err)
	require.True(t, tr.IsLeaf(0))
	require.Equal(t, []tree.NodeID{0}, tr.Leaves())
}

func TestNew_EmptyGraph(t *testing.T) {
	_, err := tree.New(0, nil)
	require.ErrorIs(t, err, tree.ErrEmptyGraph)
}

func TestNew_WrongEdgeCount(t *testing.T) {
	_, err := tree.New(3, [][2]int{{0, 1}})
	require.ErrorIs(t, err, tree.ErrNotATree)
}

func TestNew_SelfLoop(t *testing.T) {
	_, err := tree.New(2, [][2]int{{0, 0}})
	require.ErrorIs(t, err, tree.ErrNotATree)
}

func TestNew_ParallelEdge(t *testing.T) {
	_, err := tree.New(3, [][2]int{{0, 1}, {0, 1}})
	require.ErrorIs(t, err, tree.ErrNotATree)
}

func TestNew_Disconnected(t *testing.T) {
	// Triangle on {0,1,2} (a cycle, not a tree) leaves node 3 unreachable:
	// n-1=3 edges, no self-loop or parallel edge, but not connected.
	_, err := tree.New(4, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.ErrorIs(t, err, tree.ErrNotATree)
}

func TestStarK14(t *testing.T) {
	tr, err := tree.New(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	require.NoError(t, err)
	require.Equal(t, []tree.NodeID{1, 2, 3, 4}, tr.Leaves())
	require.Equal(t, 2, tr.Distance(1, 2))
	require.Equal(t, 1, tr.Distance(0, 1))
}

func TestBalancedBinaryDepth2(t *testing.T) {
	tr, err := tree.New(7, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}})
	require.NoError(t, err)
	require.Equal(t, []tree.NodeID{3, 4, 5, 6}, tr.Leaves())
	require.Equal(t, 4, tr.Distance(3, 5))
	require.Equal(t, 2, tr.Distance(3, 4))
}
