package splay

// Clone returns a deep copy of t. The copy shares no nodes with t and has
// the same shape, so t.Equals(t.Clone()) holds. Restructuring counters are
// not copied.
func (t *Tree[K]) Clone() *Tree[K] {
	if t == nil {
		return nil
	}
	return &Tree[K]{
		root: cloneNodes(t.root),
		size: t.size,
		cmp:  t.cmp,
	}
}

// cloneNodes copies a subtree pre-order, using an explicit stack so that
// degenerated (list-like) trees do not need deep recursion.
func cloneNodes[K any](src *node[K]) *node[K] {
	if src == nil {
		return nil
	}
	type copying struct{ from, to *node[K] }
	dst := &node[K]{key: src.key}
	stack := []copying{{src, dst}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := top.from.left; l != nil {
			top.to.left = &node[K]{key: l.key}
			stack = append(stack, copying{l, top.to.left})
		}
		if r := top.from.right; r != nil {
			top.to.right = &node[K]{key: r.key}
			stack = append(stack, copying{r, top.to.right})
		}
	}
	return dst
}

// Equals reports whether t and other are structurally identical: both
// trees must have the same shape and equal keys at every position.
//
// This is not set equality. As splaying depends on the access history, two
// trees holding the same keys are in general not equal.
// Keys are compared with the comparison function of t.
func (t *Tree[K]) Equals(other *Tree[K]) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.size != other.size {
		return false
	}
	type pair struct{ a, b *node[K] }
	stack := []pair{{t.root, other.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.a == nil || top.b == nil {
			if top.a != top.b {
				return false
			}
			continue
		}
		if t.cmp(top.a.key, top.b.key) != 0 {
			return false
		}
		stack = append(stack, pair{top.a.left, top.b.left}, pair{top.a.right, top.b.right})
	}
	return true
}
