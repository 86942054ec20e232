// Package edistdp implements EDistDP, the tree dynamic program that
// computes the placement of budget sensors on leaves minimizing the total
// (unscaled) expected graph-distance between the true source and its
// equivalence-class representative.
//
// Solve assumes its caller (package sensortree) has already validated
// budget >= 2, handled the saturation edge case, and built the
// classdist.Table feeding this DP's leaf lookups.
//
// Complexity: O(n * budget^2) dominant DP work, same shape as perrdp, plus
// O(1) amortized classdist.Table lookups at each k == 0 leaf of the
// recursion.
package edistdp

import (
	"fmt"

	"github.com/katalvlaran/sensortree/classdist"
	"github.com/katalvlaran/sensortree/rooted"
	"github.com/katalvlaran/sensortree/subtreestats"
	"github.com/katalvlaran/sensortree/tree"
)

// result is the DP's internal (cost, witness) pair, with feasible standing
// in for the +Inf sentinel (see perrdp for the same convention).
type result struct {
	cost     float64
	sensors  []tree.NodeID
	feasible bool
}

var infeasible = result{feasible: false}

func better(candidate, current result) bool {
	const eps = 1e-9
	if !current.feasible {
		return candidate.feasible
	}
	if !candidate.feasible {
		return false
	}
	if candidate.cost < current.cost-eps {
		return true
	}
	if candidate.cost > current.cost+eps {
		return false
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

// solver owns the per-call memo tables and the shared ClassExpDist table.
type solver struct {
	t      *tree.Tree
	v      *rooted.View
	st     *subtreestats.Stats
	cd     *classdist.Table
	budget int

	opt  map[optKey]result
	optc map[optcKey]result
}

type optKey struct {
	x tree.NodeID
	k int
}

// optcKey identifies optc(x, k, children(x)[fromIdx:], nonSensoredMask,
// fromParent): nonSensoredMask is the bitmask (over children(x)'s index
// order) of children strictly before fromIdx that were explicitly skipped
// (received zero sensors); fromParent records whether the class at k == 0
// also absorbs everything outside subtree(x) (the "(p(x),)" seed of §4.6).
type optcKey struct {
	x               tree.NodeID
	k               int
	fromIdx         int
	nonSensoredMask int
	fromParent      bool
}

// Solve computes the minimum unscaled expected-distance contribution for
// placing exactly budget sensors in subtree(root), together with a
// witness sensor tuple. The caller divides by n to obtain E_dist.
func Solve(t *tree.Tree, v *rooted.View, st *subtreestats.Stats, cd *classdist.Table, budget int) (cost float64, sensors []tree.NodeID, err error) {
	s := &solver{
		t:      t,
		v:      v,
		st:     st,
		cd:     cd,
		budget: budget,
		opt:    make(map[optKey]result),
		optc:   make(map[optcKey]result),
	}
	res := s.opt_(v.Root(), budget)
	if !res.feasible {
		panic(fmt.Sprintf("edistdp: no feasible placement for budget %d", budget))
	}
	return res.cost, res.sensors, nil
}

// opt_ computes opt(x, k) per §4.6, including the special case where x is
// not the root and receives its entire undivided budget: besides the
// normal children decomposition, each child is independently tried as the
// sole recipient of all k sensors, deferring the cost of everything else
// around x (siblings, x itself, and everything above x) to wherever that
// child's own recursion eventually resolves into a real split or a leaf -
// it is picked up there by sum_above/size_above, which already aggregate
// the entire ancestor chain, not just x's immediate surroundings.
func (s *solver) opt_(x tree.NodeID, k int) result {
	key := optKey{x, k}
	if r, ok := s.opt[key]; ok {
		return r
	}

	var r result
	if s.t.IsLeaf(x) {
		switch {
		case k == 0, k == 1:
			var sensors []tree.NodeID
			if k == 1 {
				sensors = []tree.NodeID{x}
			}
			r = result{cost: 0, sensors: sensors, feasible: true}
		default:
			r = infeasible
		}
	} else {
		fromParent := !s.v.IsRoot(x) && k == s.budget
		r = s.optc_(x, k, 0, 0, fromParent)

		if fromParent {
			for _, c := range s.v.Children(x) {
				cand := s.opt_(c, k)
				if better(cand, r) {
					r = cand
				}
			}
		}
	}

	s.opt[key] = r
	return r
}

// optc_ computes optc(x, k, children(x)[fromIdx:], nonSensored, fromParent)
// per §4.6: split the budget between children(x)[fromIdx] ("first") and
// the rest, or skip "first" entirely (it joins x's equivalence class).
func (s *solver) optc_(x tree.NodeID, k int, fromIdx int, nonSensoredMask int, fromParent bool) result {
	key := optcKey{x, k, fromIdx, nonSensoredMask, fromParent}
	if r, ok := s.optc[key]; ok {
		return r
	}

	children := s.v.Children(x)

	if fromIdx >= len(children) && k > 0 {
		s.optc[key] = infeasible
		return infeasible
	}

	var r result
	if k == 0 {
		// Every not-yet-processed child (children[fromIdx:]) necessarily
		// receives zero sensors too: fold them into the lookup alongside
		// whatever was already explicitly marked skipped.
		combined := nonSensoredMask | rangeMask(fromIdx, len(children))
		subset := subsetFromMask(children, combined)
		r = result{cost: s.cd.Lookup(x, subset, fromParent), sensors: nil, feasible: true}
	} else {
		first := children[fromIdx]
		best := infeasible

		skip := s.optc_(x, k, fromIdx+1, nonSensoredMask|(1<<uint(fromIdx)), fromParent)
		if better(skip, best) {
			best = skip
		}

		h := k
		if s.budget-1 < h {
			h = s.budget - 1
		}
		for l := 1; l <= h; l++ {
			left := s.opt_(first, l)
			if !left.feasible {
				continue
			}
			right := s.optc_(x, k-l, fromIdx+1, nonSensoredMask, fromParent)
			if !right.feasible {
				continue
			}
			cand := result{
				cost:     left.cost + right.cost,
				sensors:  concat(left.sensors, right.sensors),
				feasible: true,
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

// rangeMask sets bits [from, to).
func rangeMask(from, to int) int {
	mask := 0
	for i := from; i < to; i++ {
		mask |= 1 << uint(i)
	}
	return mask
}

// subsetFromMask decodes a bitmask over children's index order back into
// the corresponding NodeID slice.
func subsetFromMask(children []tree.NodeID, mask int) []tree.NodeID {
	if mask == 0 {
		return nil
	}
	subset := make([]tree.NodeID, 0, len(children))
	for i, c := range children {
		if mask&(1<<uint(i)) != 0 {
			subset = append(subset, c)
		}
	}
	return subset
}
