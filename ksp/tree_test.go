package ksp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ksp/ksp"
	"github.com/katalvlaran/ksp/pheap"
	"github.com/katalvlaran/ksp/wgraph"
)

func TestShortestTree_Diamond(t *testing.T) {
	g := build(t, 5, diamond)
	tr, err := ksp.ShortestTree(g.Reverse(), 4)
	require.NoError(t, err)

	require.Equal(t, 4, tr.Sink)
	require.Equal(t, []float64{4, 3, 2, 1, 0}, tr.Dist)
	require.Equal(t, []int{2, 2, 3, 4, -1}, tr.Next)
	require.Equal(t, []int{1, 2, 4, 6, -1}, tr.NextEdge)
	require.Equal(t, []int{4, 3, 2, 1, 0}, tr.Order)
	require.Equal(t, []int{0, 2, 3, 4}, tr.PathToSink(0))
	require.Equal(t, []int{4}, tr.PathToSink(4))
}

func TestShortestTree_Unreachable(t *testing.T) {
	g := build(t, 4, []arc{{0, 1, 2}, {2, 3, 1}})
	tr, err := ksp.ShortestTree(g.Reverse(), 1)
	require.NoError(t, err)

	require.True(t, tr.Reachable(0))
	require.False(t, tr.Reachable(2))
	require.False(t, tr.Reachable(3))
	require.False(t, tr.Reachable(-1))
	require.True(t, math.IsInf(tr.Dist[2], 1))
	require.Equal(t, -1, tr.Next[2])
	require.Equal(t, -1, tr.NextEdge[3])
	require.Nil(t, tr.PathToSink(3))
	require.Equal(t, []int{1, 0}, tr.Order)
}

func TestShortestTree_Errors(t *testing.T) {
	_, err := ksp.ShortestTree(nil, 0)
	require.ErrorIs(t, err, ksp.ErrNilGraph)

	g := build(t, 3, []arc{{0, 1, 1}})
	_, err = ksp.ShortestTree(g, 3)
	require.ErrorIs(t, err, ksp.ErrIndexOutOfRange)
	_, err = ksp.ShortestTree(g, -1)
	require.ErrorIs(t, err, ksp.ErrIndexOutOfRange)

	neg := build(t, 3, []arc{{0, 1, 1}, {1, 2, -0.5}})
	_, err = ksp.ShortestTree(neg.Reverse(), 2)
	require.ErrorIs(t, err, ksp.ErrNegativeWeight)

	nan := build(t, 2, []arc{{0, 1, math.NaN()}})
	_, err = ksp.ShortestTree(nan.Reverse(), 1)
	require.ErrorIs(t, err, ksp.ErrNegativeWeight)
}

func TestBuildSidetrackHeap_Diamond(t *testing.T) {
	g := build(t, 5, diamond)
	tr, err := ksp.ShortestTree(g.Reverse(), 4)
	require.NoError(t, err)

	h, err := ksp.BuildSidetrackHeap(g, tr)
	require.NoError(t, err)
	require.Equal(t, 5, h.Size())

	type cand struct {
		curr, next int
		cost       float64
	}
	list := func(slot int) []cand {
		var out []cand
		require.NoError(t, h.Ascend(slot, func(n pheap.Node) bool {
			out = append(out, cand{n.Curr, n.Next, n.Sidetrack})
			return true
		}))
		return out
	}

	require.Empty(t, list(4))
	require.Empty(t, list(3))
	require.Equal(t, []cand{{2, 4, 2}}, list(2))
	require.Equal(t, []cand{{1, 3, 1}, {2, 4, 2}, {1, 4, 3}}, list(1))
	require.Equal(t, []cand{{0, 1, 0}, {2, 4, 2}, {0, 4, 6}}, list(0))

	// bounded build drops sidetracks costing 2 or more
	h, err = ksp.BuildSidetrackHeap(g, tr, ksp.WithMaxSidetrack(2))
	require.NoError(t, err)
	require.Empty(t, list(2))
	require.Equal(t, []cand{{1, 3, 1}}, list(1))
	require.Equal(t, []cand{{0, 1, 0}}, list(0))
}

func TestBuildSidetrackHeap_Errors(t *testing.T) {
	g := build(t, 5, diamond)
	tr, err := ksp.ShortestTree(g.Reverse(), 4)
	require.NoError(t, err)

	_, err = ksp.BuildSidetrackHeap(nil, tr)
	require.ErrorIs(t, err, ksp.ErrNilGraph)
	_, err = ksp.BuildSidetrackHeap(g, nil)
	require.ErrorIs(t, err, ksp.ErrNilGraph)

	small, err := wgraph.New(3)
	require.NoError(t, err)
	_, err = ksp.BuildSidetrackHeap(small, tr)
	require.ErrorIs(t, err, ksp.ErrSizeMismatch)

	_, err = ksp.BuildSidetrackHeap(g, tr, ksp.WithMaxSidetrack(-1))
	require.ErrorIs(t, err, ksp.ErrBadMaxSidetrack)
	_, err = ksp.BuildSidetrackHeap(g, tr, ksp.WithMaxSidetrack(math.NaN()))
	require.ErrorIs(t, err, ksp.ErrBadMaxSidetrack)
}

func TestSidetrackCost(t *testing.T) {
	dist := []float64{4, 3, 2}
	require.Equal(t, 0.0, ksp.SidetrackCost(dist, 0, 1, 1))
	require.Equal(t, 5.0, ksp.SidetrackCost(dist, 1, 2, 6))
}
