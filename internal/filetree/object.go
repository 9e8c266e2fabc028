package filetree

// Object is a nested mapping from node names to the objects of their
// children. Leaves map to an empty Object.
type Object map[string]any

// ObjectOptions controls ToObject.
type ObjectOptions struct {
	// DataKey, when set, adds the node payload (nil when unset) under this key
	// at every level, root included.
	DataKey string
}

// ToObject converts the tree into nested Objects keyed by node name. The
// returned value is the root's object.
func (t *Tree[T]) ToObject(opts ObjectOptions) Object {
	return toObject(t.root, opts)
}

func toObject[T any](n *Node[T], opts ObjectOptions) Object {
	obj := make(Object, len(n.children)+1)
	if opts.DataKey != "" {
		if data, ok := n.Data(); ok {
			obj[opts.DataKey] = data
		} else {
			obj[opts.DataKey] = nil
		}
	}
	for _, c := range n.children {
		obj[c.name] = toObject(c, opts)
	}
	return obj
}
