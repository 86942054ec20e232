package sensortree

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/sensortree/classdist"
	"github.com/katalvlaran/sensortree/edistdp"
	"github.com/katalvlaran/sensortree/oracle"
	"github.com/katalvlaran/sensortree/perrdp"
	"github.com/katalvlaran/sensortree/rooted"
	"github.com/katalvlaran/sensortree/subtreestats"
	"github.com/katalvlaran/sensortree/tree"
)

// ErrInvalidBudget is returned when budget < 2: a single sensor can never
// distinguish two distinct vertices on a tree with more than one leaf.
var ErrInvalidBudget = errors.New("sensortree: budget must be at least 2")

// roundScale controls final objective-value stabilization precision
// (1e-9), matching the dynamic programs' own tie-break tolerance.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision, keeping returned
// objective values stable across platforms without affecting optimality.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// sortedLeaves returns a copy of t's leaves in ascending NodeID order,
// the canonical witness for the saturation case (invariant 4).
func sortedLeaves(t *tree.Tree) []tree.NodeID {
	leaves := append([]tree.NodeID(nil), t.Leaves()...)
	sort.Slice(leaves, func(i, j int) bool { return leaves[i] < leaves[j] })
	return leaves
}

// ProbErrOptimal computes the minimum achievable P_err for placing budget
// sensors on the leaves of t, and a witness placement attaining it.
func ProbErrOptimal(t *tree.Tree, budget int) (perr float64, sensors []tree.NodeID, err error) {
	if budget < 2 {
		return 0, nil, ErrInvalidBudget
	}
	leaves := sortedLeaves(t)
	if budget >= len(leaves) {
		return 0, leaves, nil
	}

	v, err := rooted.NewAuto(t)
	if err != nil {
		return 0, nil, err
	}
	st := subtreestats.Compute(t, v)
	unresolved, sensors, err := perrdp.Solve(t, v, st, budget)
	if err != nil {
		return 0, nil, err
	}
	return round1e9(float64(unresolved) / float64(t.N())), sensors, nil
}

// ExpDistOptimal computes the minimum achievable E_dist for placing budget
// sensors on the leaves of t, and a witness placement attaining it.
func ExpDistOptimal(t *tree.Tree, budget int) (edist float64, sensors []tree.NodeID, err error) {
	if budget < 2 {
		return 0, nil, ErrInvalidBudget
	}
	leaves := sortedLeaves(t)
	if budget >= len(leaves) {
		return 0, leaves, nil
	}

	v, err := rooted.NewAuto(t)
	if err != nil {
		return 0, nil, err
	}
	st := subtreestats.Compute(t, v)
	cd := classdist.Build(t, v, st)
	cost, sensors, err := edistdp.Solve(t, v, st, cd, budget)
	if err != nil {
		return 0, nil, err
	}
	return round1e9(cost / float64(t.N())), sensors, nil
}

// ProbErrBrute computes the exact minimum P_err by exhaustively enumerating
// every sensor subset of size budget, for validation of ProbErrOptimal.
func ProbErrBrute(t *tree.Tree, budget int) (perr float64, sensors []tree.NodeID, err error) {
	if budget < 2 {
		return 0, nil, ErrInvalidBudget
	}
	perr, sensors, err = oracle.ProbErrBrute(t, budget)
	if err != nil {
		return 0, nil, err
	}
	return round1e9(perr), sensors, nil
}

// ExpDistBrute computes the exact minimum E_dist by exhaustively enumerating
// every sensor subset of size budget, for validation of ExpDistOptimal.
func ExpDistBrute(t *tree.Tree, budget int) (edist float64, sensors []tree.NodeID, err error) {
	if budget < 2 {
		return 0, nil, ErrInvalidBudget
	}
	edist, sensors, err = oracle.ExpDistBrute(t, budget)
	if err != nil {
		return 0, nil, err
	}
	return round1e9(edist), sensors, nil
}
