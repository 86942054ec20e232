// Package perrdp implements PErrDP, the tree dynamic program that computes
// the placement of budget sensors on leaves minimizing the total count of
// unresolved nodes (and hence P_err = unresolved / n).
//
// Solve assumes its caller (package sensortree) has already validated
// budget >= 2 and handled the saturation edge case (budget >= |leaves|);
// it operates on an already-rooted view with precomputed subtree sizes.
//
// Complexity: O(n * budget^2) time in the worst case (each node's
// children-suffix DP considers O(budget) splits per child), O(n * budget)
// memo entries. All memo tables are owned by one Solve call and discarded
// on return; there is no cross-call state (§5 Concurrency & Resource
// Model).
package perrdp

import (
	"fmt"

	"github.com/katalvlaran/sensortree/rooted"
	"github.com/katalvlaran/sensortree/subtreestats"
	"github.com/katalvlaran/sensortree/tree"
)

// result is the DP's internal (cost, witness) pair. feasible distinguishes
// a genuine zero-cost result from the infeasible sentinel, so arithmetic
// never has to reason about +Inf (per the design notes' tagged-variant
// preference).
type result struct {
	unresolved int
	sensors    []tree.NodeID
	feasible   bool
}

var infeasible = result{feasible: false}

// better reports whether candidate strictly improves upon current,
// breaking ties by lexicographic order of the witness tuple.
func better(candidate, current result) bool {
	if !current.feasible {
		return candidate.feasible
	}
	if !candidate.feasible {
		return false
	}
	if candidate.unresolved != current.unresolved {
		return candidate.unresolved < current.unresolved
	}
	return lexLess(candidate.sensors, current.sensors)
}

func lexLess(a, b []tree.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func concat(a, b []tree.NodeID) []tree.NodeID {
	out := make([]tree.NodeID, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// solver owns the per-call memo tables.
type solver struct {
	t      *tree.Tree
	v      *rooted.View
	st     *subtreestats.Stats
	budget int

	opt  map[optKey]result
	optc map[optcKey]result
}

type optKey struct {
	x tree.NodeID
	k int
}

// optcKey identifies the state of optc(x, k, children(x)[fromIdx:]):
// fromIdx is the position of the first not-yet-processed child.
type optcKey struct {
	x       tree.NodeID
	k       int
	fromIdx int
}

// Solve computes the minimum unresolved-node count for placing exactly
// budget sensors in subtree(root), and returns the (unscaled) unresolved
// count together with a witness sensor tuple. The caller divides by n to
// obtain P_err.
func Solve(t *tree.Tree, v *rooted.View, st *subtreestats.Stats, budget int) (unresolved int, sensors []tree.NodeID, err error) {
	s := &solver{
		t:      t,
		v:      v,
		st:     st,
		budget: budget,
		opt:    make(map[optKey]result),
		optc:   make(map[optcKey]result),
	}
	res := s.opt_(v.Root(), budget)
	if !res.feasible {
		panic(fmt.Sprintf("perrdp: no feasible placement for budget %d", budget))
	}
	return res.unresolved, res.sensors, nil
}

// opt_ computes opt(x, k) per §4.5.
func (s *solver) opt_(x tree.NodeID, k int) result {
	key := optKey{x, k}
	if r, ok := s.opt[key]; ok {
		return r
	}

	var r result
	switch {
	case k == 0:
		r = result{unresolved: s.st.Size[x], sensors: nil, feasible: true}
	case s.st.Size[x] == 1:
		if k >= 2 {
			r = infeasible
		} else {
			r = result{unresolved: 0, sensors: []tree.NodeID{x}, feasible: true}
		}
	default:
		r = s.optc_(x, k, 0)
		if !s.v.IsRoot(x) && k == s.budget && r.feasible {
			r = result{unresolved: r.unresolved + 1, sensors: r.sensors, feasible: true}
		}
	}

	s.opt[key] = r
	return r
}

// optc_ computes optc(x, k, children(x)[fromIdx:]) per §4.5.
func (s *solver) optc_(x tree.NodeID, k int, fromIdx int) result {
	key := optcKey{x, k, fromIdx}
	if r, ok := s.optc[key]; ok {
		return r
	}

	children := s.v.Children(x)
	var r result
	switch {
	case fromIdx >= len(children):
		if k > 0 {
			r = infeasible
		} else {
			r = result{unresolved: 0, sensors: nil, feasible: true}
		}
	case k == 0:
		total := 0
		for _, c := range children[fromIdx:] {
			total += s.st.Size[c]
		}
		r = result{unresolved: total, sensors: nil, feasible: true}
	default:
		first := children[fromIdx]
		best := infeasible
		for l := 0; l <= k; l++ {
			left := s.opt_(first, l)
			if !left.feasible {
				continue
			}
			right := s.optc_(x, k-l, fromIdx+1)
			if !right.feasible {
				continue
			}
			cand := result{
				unresolved: left.unresolved + right.unresolved,
				sensors:    concat(left.sensors, right.sensors),
				feasible:   true,
			}
			if better(cand, best) {
				best = cand
			}
		}
		r = best
	}

	s.optc[key] = r
	return r
}
