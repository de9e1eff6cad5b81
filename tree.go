package splay

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is a self-adjusting binary search tree holding keys of type K.
//
// A tree has to be created by New or NewOrdered; the zero value lacks a
// comparison function and will panic on the first insertion.
//
// All operations except the read-only walks (InOrder, ForEach, Min, Max,
// Height, Root) splay the accessed node to the root, and therefore modify
// the tree. Amortized costs are
//
//	Operation     |   Amortized
//	--------------+------------
//	Insert        |   O(log n)
//	Contains      |   O(log n)
//	Remove        |   O(log n)
//	Clone         |   O(n)
//	Equals        |   O(n)
//	Size, Empty   |   O(1)
type Tree[K any] struct {
	root  *node[K]
	size  int
	cmp   func(a, b K) int
	stats Stats
}

// MakeEmpty drops all keys from t.
func (t *Tree[K]) MakeEmpty() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
}

// Empty reports whether t holds no keys.
func (t *Tree[K]) Empty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of keys in t.
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Root returns the key at the root of t, i.e. the key accessed most recently
// or its nearest neighbour for a failed lookup.
func (t *Tree[K]) Root() (key K, ok bool) {
	if t.Empty() {
		return key, false
	}
	return t.root.key, true
}

// Insert adds key to t and splays it to the root. If key is already present,
// no node is created, but the existing node is splayed to the root all the
// same. Insert returns true if a new key has been added.
func (t *Tree[K]) Insert(key K) bool {
	assert(t.cmp != nil, "splay: tree is not initialized, use New or NewOrdered")
	if t.root == nil {
		t.root = &node[K]{key: key}
		t.size = 1
		return true
	}
	found, path := t.findPath(t.root, key)
	if found != nil {
		T().Debugf("splay: key %v already present", key)
		t.root = t.splay(path.split())
		return false
	}
	n := &node[K]{key: key}
	if parent := path.last(); t.cmp(key, parent.key) < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.root = t.splay(n, path)
	t.size++
	return true
}

// Contains reports whether key is present in t. If it is, its node is
// splayed to the root. If it is not, the last node visited during the search
// is splayed to the root instead.
func (t *Tree[K]) Contains(key K) bool {
	if t.Empty() {
		return false
	}
	found, path := t.findPath(t.root, key)
	t.root = t.splay(path.split())
	return found != nil
}

// Remove deletes key from t. It returns false if key has not been present,
// in which case the tree is left with its contents unchanged (though
// restructured by the failed search).
//
// The node for key is splayed to the root and dropped. The maximum of its
// left subtree is then splayed to the top of that subtree, where it has no
// right child, and the right subtree is attached to it. If there is no left
// subtree, the right subtree becomes the tree.
func (t *Tree[K]) Remove(key K) bool {
	if !t.Contains(key) {
		return false
	}
	removed := t.root
	left, right := removed.left, removed.right
	removed.left, removed.right = nil, nil
	if left == nil {
		t.root = right
	} else {
		top := t.splay(maxPath(left).split())
		assert(top.right == nil, "Remove: maximum of left subtree has a right child")
		top.right = right
		t.root = top
		T().Debugf("splay: joined subtrees of %v below %v", key, top.key)
	}
	t.size--
	return true
}

// Min returns the smallest key in t. It does not splay.
func (t *Tree[K]) Min() (key K, ok bool) {
	if t.Empty() {
		return key, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the largest key in t. It does not splay.
func (t *Tree[K]) Max() (key K, ok bool) {
	if t.Empty() {
		return key, false
	}
	return maxPath(t.root).last().key, true
}

// Height returns the number of levels of t, where 0 means empty and 1 means
// a single root node.
func (t *Tree[K]) Height() int {
	if t.Empty() {
		return 0
	}
	type level struct {
		n     *node[K]
		depth int
	}
	height := 0
	stack := []level{{t.root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > height {
			height = top.depth
		}
		if top.n.left != nil {
			stack = append(stack, level{top.n.left, top.depth + 1})
		}
		if top.n.right != nil {
			stack = append(stack, level{top.n.right, top.depth + 1})
		}
	}
	return height
}
