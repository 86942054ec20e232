// Package sensortree computes the optimal placement of a fixed budget of
// sensors on the leaves of an unweighted tree, under two objectives:
//
//   - ProbErrOptimal minimizes P_err, the probability that a uniformly
//     random source vertex cannot be uniquely identified from the vector
//     of distances to the placed sensors.
//   - ExpDistOptimal minimizes E_dist, the expected graph distance between
//     the true source and the representative of its equivalence class.
//
// Each reduces to a single tree dynamic program (perrdp, edistdp). The
// P_err program runs in O(n*budget^2) after O(n^2) preprocessing (tree,
// rooted, subtreestats); the E_dist program and its classdist tables also
// grow as 2^deg(x) at every node x. ProbErrBrute and ExpDistBrute expose the exponential
// reference oracle used to validate the DP engines; they exist for
// testing and for budgets small enough that exhaustive search is cheap.
//
// # What & Why
//
// Given n sensor-less leaves and a budget b < |leaves|, no placement can
// distinguish every pair of vertices in general: this package finds the
// placement that minimizes the chosen notion of residual ambiguity.
//
// # Input Requirements
//
//	t must be a valid tree.Tree (see package tree). budget must be >= 2;
//	ErrInvalidBudget is returned otherwise. When budget >= len(t.Leaves()),
//	every leaf is sensored and P_err = E_dist = 0 trivially (invariant 4).
//
// # Determinism & Stability
//
//   - No randomness. Ties between equal-cost placements are broken by
//     lexicographic order of the sensor tuple.
//   - Returned P_err/E_dist values are stabilized to 1e-9 absolute
//     precision via round1e9, matching the dynamic program's own
//     internal tie-break tolerance.
//
// # Non-goals
//
// Weighted edges, non-unit costs, forests, online updates, large-budget
// approximation, and internal-node sensors are out of scope; tree.New
// rejects anything that is not a connected, unweighted, n-1-edge tree.
package sensortree
