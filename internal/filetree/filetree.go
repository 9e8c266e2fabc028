// Package filetree builds a tree of path segments from a flat list of
// slash-delimited paths. The tree keeps insertion order, carries an arbitrary
// payload on every node, and can be traversed, filtered, folded, sorted and
// rendered as a box-drawing diagram such as:
//
//	.
//	└─ common
//	     └─ part
//	          ├─ foo
//	          │   └─ baz.txt
//	          └─ bar.txt
//
// A Tree is not safe for concurrent use.
package filetree

import "strings"

const rootPath = "."

// Tree owns a root node named "." and every node reachable from it.
type Tree[T any] struct {
	root *Node[T]
}

// New creates a root-only tree and adds each of the given paths in order.
func New[T any](paths ...string) *Tree[T] {
	tree := &Tree[T]{
		root: &Node[T]{name: rootPath, path: rootPath},
	}
	tree.AddPaths(paths)
	return tree
}

// Root returns the tree's root node.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Add inserts path into the tree and returns its terminal node. Each segment
// reuses an existing child with the same name, so adding a path twice is a
// no-op. Paths are split on "/" without any normalization.
func (t *Tree[T]) Add(path string) *Node[T] {
	current := t.root

	for _, part := range strings.Split(path, "/") {
		next := current.child(part)
		if next == nil {
			next = current.appendChild(part)
		}
		current = next
	}

	return current
}

// AddPaths adds every path and returns the terminal nodes in input order.
func (t *Tree[T]) AddPaths(paths []string) []*Node[T] {
	nodes := make([]*Node[T], 0, len(paths))
	for _, path := range paths {
		nodes = append(nodes, t.Add(path))
	}
	return nodes
}

// Get returns the node at path, or nil if any segment is missing.
func (t *Tree[T]) Get(path string) *Node[T] {
	current := t.root

	for _, part := range strings.Split(path, "/") {
		current = current.child(part)
		if current == nil {
			return nil
		}
	}

	return current
}
