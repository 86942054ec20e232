// Package sensortree is your toolkit for placing a fixed budget of
// sensors on the leaves of an unweighted tree to best identify an unknown
// source vertex.
//
// 🚀 What is sensortree?
//
//	A small, dependency-light library that brings together:
//
//	  • Tree primitives: validate adjacency-list input, root it, derive
//	    subtree statistics (tree/, rooted/, subtreestats/)
//	  • Preprocessing: per-node, per-child-subset expected-distance tables
//	    (classdist/)
//	  • Two tree dynamic programs: minimize P_err (probability of a
//	    misidentified source) or E_dist (expected distance to the source)
//	    (perrdp/, edistdp/)
//	  • A brute-force oracle for testing both engines against exhaustive
//	    enumeration (oracle/)
//
// ✨ Why choose sensortree?
//
//   - Exact     — no heuristics; both objectives are solved optimally
//   - Fast      — P_err in O(n*budget^2) after O(n^2) preprocessing; the
//     E_dist tables and program also grow as 2^deg(x) per node x
//   - Testable  — every preprocessing stage is independently verifiable
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	tree/         — TreeModel: validated adjacency list + all-pairs distances
//	rooted/       — RootedView: parent/children/traversal orders over a root
//	subtreestats/ — per-node subtree size and distance aggregates
//	classdist/    — ClassExpDist: per-node, per-child-subset distance tables
//	perrdp/       — PErrDP: optimal placement minimizing P_err
//	edistdp/      — EDistDP: optimal placement minimizing E_dist
//	oracle/       — BruteOracle: exhaustive reference used by the test suite
//	sensortree/   — the four public entry points tying it all together
//
// Quick ASCII example, path of five nodes with sensors at both ends:
//
//	0───1───2───3───4
//	▲                ▲
//	sensor         sensor
//
// placing sensors at {0,4} with budget 2 fully resolves every source:
// P_err = E_dist = 0.
//
//	go get github.com/katalvlaran/sensortree/sensortree
package sensortree
