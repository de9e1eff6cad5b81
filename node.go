package splay

// node holds a single key and exclusively owns its two subtrees.
// There is no link back to the parent; ancestry is recorded per operation
// on an access path.
type node[K any] struct {
	left  *node[K]
	right *node[K]
	key   K
}

// rotateRight lifts the left child of p into p's position and returns it as
// the new root of the subtree. The caller has to re-link the returned node
// into whatever held p before.
//
//	    p          q
//	   / \        / \
//	  q   c  =>  a   p
//	 / \            / \
//	a   b          b   c
func rotateRight[K any](p *node[K]) *node[K] {
	q := p.left
	assert(q != nil, "rotateRight: node has no left child")
	p.left = q.right
	q.right = p
	return q
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft[K any](p *node[K]) *node[K] {
	q := p.right
	assert(q != nil, "rotateLeft: node has no right child")
	p.right = q.left
	q.left = p
	return q
}
