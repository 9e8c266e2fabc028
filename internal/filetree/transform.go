package filetree

import "sort"

// Filter removes, at every level, each subtree whose root fails keep. A
// removed node takes its whole subtree with it, whatever its descendants
// would have returned. The root itself is never removed.
func (t *Tree[T]) Filter(keep func(n *Node[T]) bool) *Tree[T] {
	filterChildren(t.root, keep)
	return t
}

// Reject is Filter with the predicate inverted.
func (t *Tree[T]) Reject(drop func(n *Node[T]) bool) *Tree[T] {
	return t.Filter(func(n *Node[T]) bool {
		return !drop(n)
	})
}

// FoldRoot collapses the chain of single children directly below the root
// into the root, so that a common prefix such as "common/part" becomes the
// root label. Deeper chains are left alone.
func (t *Tree[T]) FoldRoot() *Tree[T] {
	for len(t.root.children) == 1 {
		merge(t.root)
	}
	return t
}

// Fold collapses every chain of single children into one node labelled with
// the joined segments. Afterwards no node has exactly one child.
func (t *Tree[T]) Fold() *Tree[T] {
	foldNode(t.root)
	return t
}

// Sort orders the children of every node by name. Sorting is stable, so
// sorting an already sorted tree changes nothing.
func (t *Tree[T]) Sort() *Tree[T] {
	sortNode(t.root)
	return t
}

func filterChildren[T any](n *Node[T], keep func(n *Node[T]) bool) {
	kept := make([]*Node[T], 0, len(n.children))
	for _, c := range n.children {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	n.children = kept

	for _, c := range n.children {
		filterChildren(c, keep)
	}
}

func foldNode[T any](n *Node[T]) {
	for len(n.children) == 1 {
		merge(n)
	}
	for _, c := range n.children {
		foldNode(c)
	}
}

// merge absorbs the only child of n into n. The node keeps its position in
// the tree and takes over the child's path, payload and children.
func merge[T any](n *Node[T]) {
	child := n.children[0]

	if n.parent == nil && n.name == rootPath {
		n.name = child.name
	} else {
		n.name = n.name + "/" + child.name
	}
	n.path = child.path
	n.data = child.data
	n.hasData = child.hasData
	n.children = child.children
	for _, c := range n.children {
		c.parent = n
	}
}

func sortNode[T any](n *Node[T]) {
	sort.SliceStable(n.children, func(i, j int) bool {
		return n.children[i].name < n.children[j].name
	})
	for _, c := range n.children {
		sortNode(c)
	}
}
