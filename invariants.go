package splay

import "fmt"

// Check validates structural tree invariants:
// keys are in strict binary search tree order, every node is reachable
// exactly once, and the size counter matches the number of nodes.
//
// Check is meant for tests and debugging.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.cmp == nil {
		return fmt.Errorf("%w: non-empty tree without comparison function", ErrInvariant)
	}
	count, err := t.checkNodes()
	if err != nil {
		T().Errorf("splay: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size %d)", ErrInvariant, count, t.size)
	}
	return nil
}

// checkNodes walks the tree in-order, checking that keys strictly ascend and
// that no node is visited twice.
func (t *Tree[K]) checkNodes() (int, error) {
	seen := make(map[*node[K]]struct{}, t.size)
	var stack []*node[K]
	var prev *node[K]
	count := 0
	n := t.root
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			if _, dup := seen[n]; dup {
				return count, fmt.Errorf("%w: node %v is referenced more than once", ErrInvariant, n.key)
			}
			seen[n] = struct{}{}
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if prev != nil && t.cmp(prev.key, n.key) >= 0 {
			return count, fmt.Errorf("%w: keys out of order (%v before %v)", ErrInvariant, prev.key, n.key)
		}
		prev = n
		count++
		n = n.right
	}
	return count, nil
}
