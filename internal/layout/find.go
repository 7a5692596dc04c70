package layout

// FindNodeByID searches tree depth-first, pre-order, and returns the first
// node whose ID equals id, or nil. Windows are leaves, so a window that does
// not match ends its branch.
func FindNodeByID(tree *Node, id string) *Node {
	if tree == nil {
		return nil
	}
	if tree.ID == id {
		return tree
	}
	if tree.Type == TypeWindow {
		return nil
	}
	for _, child := range tree.Children {
		if found := FindNodeByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the container holding the node with id, and the node's
// index in that container's children. It returns nil, -1 when id is the root
// or absent.
func FindParent(tree *Node, id string) (*Node, int) {
	if tree == nil || tree.Type == TypeWindow {
		return nil, -1
	}
	for i, child := range tree.Children {
		if child.ID == id {
			return tree, i
		}
		if parent, idx := FindParent(child, id); parent != nil {
			return parent, idx
		}
	}
	return nil, -1
}

// Walk visits every node of tree in pre-order. Returning false from fn skips
// the node's children.
func Walk(tree *Node, fn func(n *Node) bool) {
	if tree == nil {
		return
	}
	if !fn(tree) {
		return
	}
	for _, child := range tree.Children {
		Walk(child, fn)
	}
}

// Windows returns every window node under tree in pre-order.
func Windows(tree *Node) []*Node {
	var out []*Node
	Walk(tree, func(n *Node) bool {
		if n.Type == TypeWindow {
			out = append(out, n)
		}
		return true
	})
	return out
}
