// Package rooted orients a tree.Tree from a chosen non-leaf root, exposing
// stable parent/children relations and deterministic pre-/post-order
// traversals.
//
// A View is built once (New or NewAuto) and never mutated: Children(x)
// returns the identical ordered slice for the lifetime of the View, which
// is what lets subtreestats and classdist memoize on (NodeID, ...) keys
// without worrying about orientation changing underneath them.
//
// Complexity: construction is O(n) (one BFS from the root).
package rooted

import (
	"errors"

	"github.com/katalvlaran/sensortree/tree"
)

// ErrRootIsLeaf indicates the requested root has degree <= 1 in a tree of
// more than one node, which would make children/parent relations that
// collapse the whole rest of the tree into a single branch undefined for
// the DP engines' purposes.
var ErrRootIsLeaf = errors.New("rooted: root must not be a leaf")

// ErrNoNonLeafRoot indicates every node in the tree is a leaf (n <= 2),
// so no valid non-leaf root exists; callers should short-circuit via the
// saturation edge case (budget >= len(leaves)) before constructing a View.
var ErrNoNonLeafRoot = errors.New("rooted: tree has no non-leaf node")

// View is an orientation of a tree.Tree from a fixed non-leaf root.
type View struct {
	t        *tree.Tree
	root     tree.NodeID
	parent   []tree.NodeID // parent[root] is meaningless; hasParent marks validity
	hasParent []bool
	children [][]tree.NodeID
	pre      []tree.NodeID
	post     []tree.NodeID
}

// New builds a View rooted at root. root must not be a leaf unless t has
// exactly one node.
func New(t *tree.Tree, root tree.NodeID) (*View, error) {
	if t.N() > 1 && t.IsLeaf(root) {
		return nil, ErrRootIsLeaf
	}

	n := t.N()
	v := &View{
		t:         t,
		root:      root,
		parent:    make([]tree.NodeID, n),
		hasParent: make([]bool, n),
		children:  make([][]tree.NodeID, n),
	}

	visited := make([]bool, n)
	queue := make([]tree.NodeID, 0, n)
	queue = append(queue, root)
	visited[root] = true
	for head := 0; head < len(queue); head++ {
		x := queue[head]
		for _, nbr := range t.Neighbors(x) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			v.parent[nbr] = x
			v.hasParent[nbr] = true
			v.children[x] = append(v.children[x], nbr)
			queue = append(queue, nbr)
		}
	}
	// BFS order already yields ascending-by-discovery children per node
	// because Neighbors(x) is sorted; children(x) is therefore ascending.
	v.pre = queue
	v.post = postOrderFrom(v.children, root)

	return v, nil
}

// NewAuto builds a View rooted at the smallest-id non-leaf node, realizing
// the deterministic root-selection knob required by the specification.
func NewAuto(t *tree.Tree) (*View, error) {
	for id := 0; id < t.N(); id++ {
		if !t.IsLeaf(tree.NodeID(id)) {
			return New(t, tree.NodeID(id))
		}
	}
	return nil, ErrNoNonLeafRoot
}

// postOrderFrom produces a post-order traversal (children fully visited
// before their parent) using an explicit stack, avoiding recursion depth
// concerns on deep trees per the design notes.
func postOrderFrom(children [][]tree.NodeID, root tree.NodeID) []tree.NodeID {
	n := len(children)
	order := make([]tree.NodeID, 0, n)
	type frame struct {
		node tree.NodeID
		next int
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := children[top.node]
		if top.next < len(kids) {
			child := kids[top.next]
			top.next++
			stack = append(stack, frame{node: child})
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}

// Root returns the view's root node.
func (v *View) Root() tree.NodeID { return v.root }

// IsRoot reports whether x is the view's root.
func (v *View) IsRoot(x tree.NodeID) bool { return x == v.root }

// Parent returns the parent of x and true, or the zero value and false if
// x is the root.
func (v *View) Parent(x tree.NodeID) (tree.NodeID, bool) {
	return v.parent[x], v.hasParent[x]
}

// Children returns x's children in ascending node-id order. The returned
// slice must not be mutated by callers; it is shared and stable for the
// lifetime of the View.
func (v *View) Children(x tree.NodeID) []tree.NodeID { return v.children[x] }

// PreOrder returns all nodes in an order where every node appears before
// its children (root first).
func (v *View) PreOrder() []tree.NodeID { return v.pre }

// PostOrder returns all nodes in an order where every node appears after
// all of its descendants (root last).
func (v *View) PostOrder() []tree.NodeID { return v.post }

// Tree returns the underlying tree.Tree.
func (v *View) Tree() *tree.Tree { return v.t }
