package filetree

// Node is a single path segment in a Tree. Nodes are created by Tree.Add and
// live as long as they are reachable from the tree's root; lookups return the
// live node, not a copy.
type Node[T any] struct {
	name     string
	path     string
	parent   *Node[T]
	children []*Node[T]
	data     T
	hasData  bool
}

// Name returns the segment this node represents. After a fold it may hold
// several segments joined with "/".
func (n *Node[T]) Name() string {
	return n.name
}

// Path returns the slash-joined path from the root to this node. The root's
// path is ".".
func (n *Node[T]) Path() string {
	return n.path
}

// Parent returns the node's parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the node's children in insertion (or sorted) order. The
// returned slice must not be modified.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// IsRoot reports whether the node is the root of its tree.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// Data returns the payload attached to the node and whether one was set.
func (n *Node[T]) Data() (T, bool) {
	return n.data, n.hasData
}

// SetData attaches a payload to the node, replacing any previous one.
func (n *Node[T]) SetData(v T) {
	n.data = v
	n.hasData = true
}

// ClearData removes the node's payload.
func (n *Node[T]) ClearData() {
	var zero T
	n.data = zero
	n.hasData = false
}

// IsLast reports whether the node is the last of its siblings. The root counts
// as last.
func (n *Node[T]) IsLast() bool {
	if n.parent == nil {
		return true
	}
	siblings := n.parent.children
	return len(siblings) > 0 && siblings[len(siblings)-1] == n
}

// child returns the first child with the given name.
func (n *Node[T]) child(name string) *Node[T] {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *Node[T]) appendChild(name string) *Node[T] {
	path := n.path + "/" + name
	if n.parent == nil && n.path == rootPath {
		path = name
	}

	c := &Node[T]{
		name:   name,
		path:   path,
		parent: n,
	}
	n.children = append(n.children, c)
	return c
}

// lasts returns the last-sibling flags of the node and its ancestors, ordered
// from the first level below the root down to the node itself.
func (n *Node[T]) lasts() []bool {
	var flags []bool
	for cur := n; cur.parent != nil; cur = cur.parent {
		flags = append(flags, cur.IsLast())
	}
	for i, j := 0, len(flags)-1; i < j; i, j = i+1, j-1 {
		flags[i], flags[j] = flags[j], flags[i]
	}
	return flags
}
