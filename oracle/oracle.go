// Package oracle implements BruteOracle, the specification-and-test
// reference for both objectives: it enumerates every C(|leaves|, budget)
// sensor subset, partitions nodes into equivalence classes from the
// distance table, and evaluates the chosen objective directly, with no
// dynamic programming at all.
//
// It exists purely to validate perrdp and edistdp (testable properties
// 1 and 2 in the specification) and is never meant to be fast: its cost
// is exponential in budget.
//
// Complexity: O(C(|leaves|, budget) * n * budget) time for ProbErrBrute,
// O(C(|leaves|, budget) * n^2) for ExpDistBrute (pairwise sums per class).
package oracle

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/sensortree/tree"
	"gonum.org/v1/gonum/stat/combin"
)

// EquivalenceClasses partitions every node of t into classes sharing the
// same signature with respect to sensors, per the specification's
// signature definition: the vector (D[v][s_i] - D[v][s_0])_{i=1..k-1}.
//
// sensors must be non-empty. The returned classes are in first-seen order
// over node ids 0..n-1 and together partition every node of t.
func EquivalenceClasses(t *tree.Tree, sensors []tree.NodeID) [][]tree.NodeID {
	base := sensors[0]
	bucketOf := make(map[string]int, t.N())
	var classes [][]tree.NodeID

	for v := 0; v < t.N(); v++ {
		nv := tree.NodeID(v)
		var key strings.Builder
		for _, s := range sensors[1:] {
			fmt.Fprintf(&key, "%d,", t.Distance(nv, s)-t.Distance(nv, base))
		}
		k := key.String()
		idx, ok := bucketOf[k]
		if !ok {
			idx = len(classes)
			bucketOf[k] = idx
			classes = append(classes, nil)
		}
		classes[idx] = append(classes[idx], nv)
	}
	return classes
}

// probErrFromClasses computes (n - #classes) / n, equal to
// Sum(|C_i| - 1) / n.
func probErrFromClasses(classes [][]tree.NodeID, n int) float64 {
	return float64(n-len(classes)) / float64(n)
}

// expDistFromClasses computes Sum_C (2/|C|) * Sum_{u<v in C} D[u][v],
// divided by n.
func expDistFromClasses(t *tree.Tree, classes [][]tree.NodeID) float64 {
	var total float64
	for _, c := range classes {
		var pairSum int
		for i := 0; i < len(c); i++ {
			for j := i + 1; j < len(c); j++ {
				pairSum += t.Distance(c[i], c[j])
			}
		}
		total += 2 * float64(pairSum) / float64(len(c))
	}
	return total / float64(t.N())
}

// lexLess reports whether a precedes b in lexicographic order.
func lexLess(a, b []tree.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// better reports whether (cost, sensors) should replace (bestCost,
// bestSensors) as the current optimum: strictly lower cost always wins;
// on a tie (within 1e-9), the lexicographically smaller sensor tuple wins.
// This reproduces the reference implementation's tie-break regardless of
// enumeration order.
func better(cost float64, sensors []tree.NodeID, bestCost float64, bestSensors []tree.NodeID) bool {
	const eps = 1e-9
	if cost < bestCost-eps {
		return true
	}
	if cost > bestCost+eps {
		return false
	}
	return bestSensors == nil || lexLess(sensors, bestSensors)
}

// sensorsFromCombo builds the sorted sensor tuple for a combination of
// indices into leaves.
func sensorsFromCombo(leaves []tree.NodeID, combo []int) []tree.NodeID {
	sensors := make([]tree.NodeID, len(combo))
	for i, idx := range combo {
		sensors[i] = leaves[idx]
	}
	return sensors
}

// ProbErrBrute enumerates all C(|leaves|, budget) sensor subsets and
// returns the one minimizing P_err, tie-broken lexicographically.
func ProbErrBrute(t *tree.Tree, budget int) (float64, []tree.NodeID, error) {
	leaves := t.Leaves()
	if budget >= len(leaves) {
		return 0, append([]tree.NodeID(nil), leaves...), nil
	}

	best := math.Inf(1)
	var bestSensors []tree.NodeID
	for _, combo := range combin.Combinations(len(leaves), budget) {
		sensors := sensorsFromCombo(leaves, combo)
		classes := EquivalenceClasses(t, sensors)
		err := probErrFromClasses(classes, t.N())
		if better(err, sensors, best, bestSensors) {
			best = err
			bestSensors = sensors
		}
	}
	return best, bestSensors, nil
}

// ExpDistBrute enumerates all C(|leaves|, budget) sensor subsets and
// returns the one minimizing E_dist, tie-broken lexicographically.
func ExpDistBrute(t *tree.Tree, budget int) (float64, []tree.NodeID, error) {
	leaves := t.Leaves()
	if budget >= len(leaves) {
		return 0, append([]tree.NodeID(nil), leaves...), nil
	}

	best := math.Inf(1)
	var bestSensors []tree.NodeID
	for _, combo := range combin.Combinations(len(leaves), budget) {
		sensors := sensorsFromCombo(leaves, combo)
		classes := EquivalenceClasses(t, sensors)
		dist := expDistFromClasses(t, classes)
		if better(dist, sensors, best, bestSensors) {
			best = dist
			bestSensors = sensors
		}
	}
	return best, bestSensors, nil
}
