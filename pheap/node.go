// SPDX-License-Identifier: MIT

package pheap

import "math/rand"

// node is one sidetrack candidate plus the heap rooted at it.
// A node is never modified after it becomes reachable from a slot.
type node struct {
	curr      int
	next      int
	sidetrack float64
	child     [2]*node
}

// leaf allocates a childless node.
func leaf(curr, next int, sidetrack float64) *node {
	return &node{curr: curr, next: next, sidetrack: sidetrack}
}

// clone returns a shallow copy of n sharing n's children, or nil for nil.
func clone(n *node) *node {
	if n == nil {
		return nil
	}
	c := *n

	return &c
}

// merge melds a and b and returns the new root.
//
// Neither operand is written: the root of the result is a fresh clone of the
// smaller operand, and the recursion only ever assigns into that clone.
// Subtrees that are not on the merge path are shared with the inputs.
func merge(a, b *node, r *rand.Rand) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.sidetrack > b.sidetrack {
		a, b = b, a
	}

	idx := randomSide(r)
	root := clone(a)
	root.child[idx] = merge(a.child[idx], b, r)

	return root
}
