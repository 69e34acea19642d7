// SPDX-License-Identifier: MIT

package pheap

import "container/heap"

// Ascend calls fn for every candidate in slot idx in non-decreasing Sidetrack
// order, stopping early when fn returns false.
//
// The walk keeps a frontier of nodes whose parents have been visited; since
// every node is no smaller than its parent, popping the frontier minimum
// yields the global order. Visiting k nodes costs O(k log k).
//
// Errors: ErrIndexOutOfRange if idx is not a slot.
func (h *Heap) Ascend(idx int, fn func(Node) bool) error {
	if err := h.checkSlot(idx); err != nil {
		return err
	}
	if h.table[idx] == nil {
		return nil
	}

	fr := frontier{h.table[idx]}
	for fr.Len() > 0 {
		n := heap.Pop(&fr).(*node)
		if !fn(snapshot(n)) {
			return nil
		}
		for _, c := range n.child {
			if c != nil {
				heap.Push(&fr, c)
			}
		}
	}

	return nil
}

// frontier is a binary min-heap of nodes keyed by sidetrack.
type frontier []*node

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].sidetrack < f[j].sidetrack }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*node)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
