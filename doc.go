/*
Package splay implements a self-adjusting binary search tree (splay tree).

# Splay Trees

A splay tree restructures itself on every access: the node touched by a
lookup, an insertion or a deletion is rotated up to the root. Keys which have
been used recently therefore stay close to the root, and any sequence of m
operations on a tree of n keys costs O(m log n) in total, even though a single
operation may be linear in the worst case.

From Sleator and Tarjan, "Self-Adjusting Binary Search Trees", 1985:

The splay tree, a self-adjusting form of binary search tree, is developed and
analyzed. The binary search tree is a data structure for representing tables
and lists so that accessing, inserting, and deleting items is easy. On an
n-node splay tree, all the standard search tree operations have an amortized
time bound of O(log n) per operation, where by "amortized time" is meant the
time per operation averaged over a worst-case sequence of operations. [...]

_________________________________________________________________________

Nodes of this implementation carry no parent links. Every operation records
the path it walks down from the root and consumes that path bottom-up while
splaying, two levels at a time (zig-zig or zig-zag), with a single rotation
(zig) for an odd remainder.

Every operation changes the shape of the tree, lookups included. A Tree must
therefore be used by a single goroutine at a time; package synced wraps a
tree behind a mutex for shared use.

Equality of trees is structural: two trees are equal if they have the same
shape and the same keys at the same places. Two trees holding the same set of
keys, but with different access histories, will usually not be equal.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package splay

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
