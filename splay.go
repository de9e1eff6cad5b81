package splay

// Stats collects counters about restructuring work done by a tree.
type Stats struct {
	Splays    int // number of splay operations
	Rotations int // number of single rotations
	LastDepth int // depth of the target of the most recent splay
	LastSteps int // zig, zig-zig and zig-zag steps of the most recent splay
}

// splay moves target to the top of the subtree rooted at ancestors[0],
// consuming the access path bottom-up. ancestors must hold every node from
// the subtree root down to target's parent, in this order. splay returns
// target, which is the new root of the subtree; re-linking it into whatever
// held the subtree is left to the caller.
//
// Each step lifts target by two levels, apart from a final zig if the depth
// is odd, so a splay takes exactly ⌈depth/2⌉ steps.
func (t *Tree[K]) splay(target *node[K], ancestors accessPath[K]) *node[K] {
	depth := len(ancestors)
	steps := 0
	for len(ancestors) > 0 {
		steps++
		parent := ancestors[len(ancestors)-1]
		if len(ancestors) == 1 { // zig
			t.zig(parent, target)
			ancestors = ancestors[:0]
			break
		}
		grand := ancestors[len(ancestors)-2]
		switch {
		case grand.left == parent && parent.left == target: // zig-zig
			rotateRight(rotateRight(grand))
		case grand.right == parent && parent.right == target: // zig-zig
			rotateLeft(rotateLeft(grand))
		case grand.left == parent && parent.right == target: // zig-zag
			grand.left = rotateLeft(parent)
			rotateRight(grand)
		case grand.right == parent && parent.left == target: // zig-zag
			grand.right = rotateRight(parent)
			rotateLeft(grand)
		default:
			panic("splay: access path inconsistent with tree shape")
		}
		t.stats.Rotations += 2
		ancestors = ancestors[:len(ancestors)-2]
		if len(ancestors) > 0 {
			relink(ancestors[len(ancestors)-1], grand, target)
		}
	}
	t.stats.Splays++
	t.stats.LastDepth = depth
	t.stats.LastSteps = steps
	T().Debugf("splay: lifted %v from depth %d in %d steps", target.key, depth, steps)
	return target
}

// zig rotates target, a child of the subtree root parent, to the top.
func (t *Tree[K]) zig(parent, target *node[K]) {
	switch target {
	case parent.left:
		rotateRight(parent)
	case parent.right:
		rotateLeft(parent)
	default:
		panic("splay: access path inconsistent with tree shape")
	}
	t.stats.Rotations++
}

// relink replaces child old of parent by repl.
func relink[K any](parent, old, repl *node[K]) {
	switch old {
	case parent.left:
		parent.left = repl
	case parent.right:
		parent.right = repl
	default:
		panic("splay: access path inconsistent with tree shape")
	}
}

// Stats returns the restructuring counters of t.
func (t *Tree[K]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.stats
}
