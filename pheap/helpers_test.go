package pheap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ksp/pheap"
)

// tree is a fully materialised copy of a heap reachable from one snapshot.
type tree struct {
	Curr      int
	Next      int
	Sidetrack float64
	Kids      [2]*tree
}

// capture walks n recursively; nil stands for Absent.
func capture(n pheap.Node) *tree {
	if n.IsAbsent() {
		return nil
	}
	kids := n.Children()

	return &tree{
		Curr:      n.Curr,
		Next:      n.Next,
		Sidetrack: n.Sidetrack,
		Kids:      [2]*tree{capture(kids[0]), capture(kids[1])},
	}
}

// captureAll snapshots every slot of h.
func captureAll(t *testing.T, h *pheap.Heap) []*tree {
	t.Helper()
	out := make([]*tree, h.Size())
	for i := range out {
		root, err := h.Root(i)
		require.NoError(t, err)
		out[i] = capture(root)
	}

	return out
}

// assertHeapOrder fails if any node is larger than one of its children.
func assertHeapOrder(t *testing.T, tr *tree) {
	t.Helper()
	if tr == nil {
		return
	}
	for _, k := range tr.Kids {
		if k == nil {
			continue
		}
		require.LessOrEqual(t, tr.Sidetrack, k.Sidetrack, "heap order violated at (%d→%d)", tr.Curr, tr.Next)
		assertHeapOrder(t, k)
	}
}

// size counts nodes in tr.
func size(tr *tree) int {
	if tr == nil {
		return 0
	}

	return 1 + size(tr.Kids[0]) + size(tr.Kids[1])
}

// depth returns the height of tr (0 for empty).
func depth(tr *tree) int {
	if tr == nil {
		return 0
	}

	return 1 + max(depth(tr.Kids[0]), depth(tr.Kids[1]))
}
