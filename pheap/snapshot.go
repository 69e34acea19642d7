// SPDX-License-Identifier: MIT

package pheap

import "fmt"

// Node is a read-only snapshot of one heap node.
//
// The exported fields are copies; changing them has no effect on the heap.
// Children are reached through Child, which returns further snapshots.
type Node struct {
	// Curr is the tail vertex of the sidetrack edge.
	Curr int

	// Next is the head vertex of the sidetrack edge.
	Next int

	// Sidetrack is the extra cost of taking this edge instead of the tree edge.
	Sidetrack float64

	ref *node
}

// Absent is the snapshot returned where no node exists.
var Absent = Node{Curr: -1, Next: -1, Sidetrack: -1}

// snapshot converts an internal node into its boundary value.
func snapshot(n *node) Node {
	if n == nil {
		return Absent
	}

	return Node{Curr: n.curr, Next: n.next, Sidetrack: n.sidetrack, ref: n}
}

// IsAbsent reports whether n stands for a missing node.
func (n Node) IsAbsent() bool { return n.ref == nil }

// Child returns the snapshot of child nth (0 = left, 1 = right), or Absent.
// Absent itself has no children.
//
// Errors: ErrChildIndex if nth is not 0 or 1.
func (n Node) Child(nth int) (Node, error) {
	if nth != 0 && nth != 1 {
		return Absent, fmt.Errorf("%w: got %d", ErrChildIndex, nth)
	}
	if n.ref == nil {
		return Absent, nil
	}

	return snapshot(n.ref.child[nth]), nil
}

// Children returns both child snapshots, Absent where missing.
func (n Node) Children() [2]Node {
	if n.ref == nil {
		return [2]Node{Absent, Absent}
	}

	return [2]Node{snapshot(n.ref.child[0]), snapshot(n.ref.child[1])}
}

// String renders the node as (curr→next +sidetrack).
func (n Node) String() string {
	if n.IsAbsent() {
		return "(absent)"
	}

	return fmt.Sprintf("(%d→%d +%g)", n.Curr, n.Next, n.Sidetrack)
}
