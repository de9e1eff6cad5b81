package splay

import "iter"

// ForEach walks the keys of t in ascending order. It does not splay.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t.Empty() || fn == nil {
		return
	}
	var stack []*node[K]
	n := t.root
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key) {
			return
		}
		n = n.right
	}
}

// InOrder returns an iterator over all keys of t in ascending order.
// Iterating does not splay, and the iterator may be ranged over repeatedly.
// The tree must not be modified while an iteration is in progress.
func (t *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(yield)
	}
}
