package splay

// accessPath is the sequence of nodes visited on the way down from the root
// of a (sub-)tree, in root-to-target order. It is built fresh for every
// operation and dropped afterwards.
type accessPath[K any] []*node[K]

// last returns the deepest node on the path.
func (p accessPath[K]) last() *node[K] {
	assert(len(p) > 0, "accessPath: path is empty")
	return p[len(p)-1]
}

// split separates the deepest node from its ancestors.
func (p accessPath[K]) split() (*node[K], accessPath[K]) {
	return p.last(), p[:len(p)-1]
}

// findPath walks from root towards key. If a node with an equal key exists,
// it is returned as found and is the last entry of the path. Otherwise found
// is nil and the last entry of the path is the node where the search fell
// off the tree.
func (t *Tree[K]) findPath(root *node[K], key K) (found *node[K], path accessPath[K]) {
	path = make(accessPath[K], 0, 2*t.depthHint())
	for n := root; n != nil; {
		path = append(path, n)
		switch c := t.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, path
		}
	}
	return nil, path
}

// maxPath descends rightward from root and returns the path to the node
// holding the maximum key of the subtree.
func maxPath[K any](root *node[K]) accessPath[K] {
	var path accessPath[K]
	for n := root; n != nil; n = n.right {
		path = append(path, n)
	}
	return path
}

// depthHint estimates log2 of the tree size, for pre-allocating paths.
func (t *Tree[K]) depthHint() int {
	h := 1
	for n := t.size; n > 1; n >>= 1 {
		h++
	}
	return h
}
