package filetree

// WalkControl tells a traversal whether to keep going.
type WalkControl int

const (
	// Continue proceeds to the next node.
	Continue WalkControl = iota
	// Stop aborts the whole traversal. No further nodes are visited, including
	// siblings and the remaining children of ancestors.
	Stop
)

// Visitor is called once per visited node.
type Visitor[T any] func(n *Node[T]) WalkControl

// Walk visits every node in pre-order, starting at the root.
func (t *Tree[T]) Walk(visit Visitor[T]) {
	walkPreOrder(t.root, visit)
}

// WalkDepthFirst visits every node in post-order: all descendants of a node
// before the node itself, with the root last.
func (t *Tree[T]) WalkDepthFirst(visit Visitor[T]) {
	walkPostOrder(t.root, visit)
}

// WalkLeaf visits only leaf nodes, in document order.
func (t *Tree[T]) WalkLeaf(visit Visitor[T]) {
	walkPreOrder(t.root, func(n *Node[T]) WalkControl {
		if !n.IsLeaf() {
			return Continue
		}
		return visit(n)
	})
}

// Map applies fn to every node in Walk order and collects the results.
func Map[T, R any](t *Tree[T], fn func(n *Node[T]) R) []R {
	var out []R
	t.Walk(func(n *Node[T]) WalkControl {
		out = append(out, fn(n))
		return Continue
	})
	return out
}

// MapLeaf applies fn to every leaf in WalkLeaf order and collects the results.
func MapLeaf[T, R any](t *Tree[T], fn func(n *Node[T]) R) []R {
	var out []R
	t.WalkLeaf(func(n *Node[T]) WalkControl {
		out = append(out, fn(n))
		return Continue
	})
	return out
}

// walkPreOrder returns false once the visitor asked to stop.
func walkPreOrder[T any](n *Node[T], visit Visitor[T]) bool {
	if visit(n) == Stop {
		return false
	}
	for _, c := range n.children {
		if !walkPreOrder(c, visit) {
			return false
		}
	}
	return true
}

func walkPostOrder[T any](n *Node[T], visit Visitor[T]) bool {
	for _, c := range n.children {
		if !walkPostOrder(c, visit) {
			return false
		}
	}
	return visit(n) != Stop
}
