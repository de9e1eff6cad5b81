package splay

import (
	"slices"
	"testing"
)

func TestCloneIsEqualAndIndependent(t *testing.T) {
	tree := buildTree(t, 50, 30, 70, 20, 40, 60, 80)
	tree.Contains(40)
	cloned := tree.Clone()
	if !tree.Equals(cloned) || !cloned.Equals(tree) {
		t.Fatalf("clone is not equal to its source")
	}
	if !slices.Equal(keysOf(tree), keysOf(cloned)) {
		t.Errorf("clone has different keys")
	}
	if err := cloned.Check(); err != nil {
		t.Error(err)
	}
	before := keysOf(tree)
	cloned.Insert(45)
	cloned.Remove(20)
	cloned.Contains(80)
	if !slices.Equal(keysOf(tree), before) {
		t.Errorf("mutating the clone changed the source to %v", keysOf(tree))
	}
	if tree.Equals(cloned) {
		t.Errorf("trees should differ after mutating the clone")
	}
	if rootKey(t, tree) != 40 {
		t.Errorf("source root moved, is %d", rootKey(t, tree))
	}
}

func TestCloneSharesNoNodes(t *testing.T) {
	tree := buildTree(t, 8, 4, 12, 2, 6, 10, 14)
	cloned := tree.Clone()
	src := make(map[*node[int]]bool)
	var collect func(n *node[int], into map[*node[int]]bool)
	collect = func(n *node[int], into map[*node[int]]bool) {
		if n != nil {
			into[n] = true
			collect(n.left, into)
			collect(n.right, into)
		}
	}
	collect(tree.root, src)
	dst := make(map[*node[int]]bool)
	collect(cloned.root, dst)
	for n := range dst {
		if src[n] {
			t.Fatalf("clone shares node %d with source", n.key)
		}
	}
	if len(dst) != len(src) {
		t.Errorf("clone has %d nodes, source has %d", len(dst), len(src))
	}
}

func TestCloneEmpty(t *testing.T) {
	tree := NewOrdered[string]()
	cloned := tree.Clone()
	if !cloned.Empty() || !tree.Equals(cloned) {
		t.Errorf("empty tree should clone to an equal empty tree")
	}
	cloned.Insert("x")
	if !tree.Empty() {
		t.Errorf("insert into clone leaked into source")
	}
}

func TestEqualsIsShapeSensitive(t *testing.T) {
	a := buildTree(t, 1, 2, 3) // (3 (2 1 .) .)
	b := buildTree(t, 3, 2, 1) // (1 . (2 . 3))
	if !slices.Equal(keysOf(a), keysOf(b)) {
		t.Fatalf("trees should hold the same keys")
	}
	if a.Equals(b) {
		t.Errorf("trees of different shape must not be equal: %s vs %s", shape(a.root), shape(b.root))
	}
	b.Contains(3)
	b.Contains(2) // brings b into some other shape; equality follows shape only
	if a.Equals(b) != (shape(a.root) == shape(b.root)) {
		t.Errorf("Equals disagrees with shapes %s and %s", shape(a.root), shape(b.root))
	}
}

func TestEqualsNil(t *testing.T) {
	var a, b *Tree[int]
	if !a.Equals(b) {
		t.Errorf("two nil trees should be equal")
	}
	if a.Equals(NewOrdered[int]()) || NewOrdered[int]().Equals(nil) {
		t.Errorf("nil tree should not equal an allocated tree")
	}
}
