package ksp_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ksp/ksp"
	"github.com/katalvlaran/ksp/wgraph"
)

// arc is a test edge description.
type arc struct {
	u, v int
	w    float64
}

// diamond is the five-vertex fixture used across ksp tests (source 0, sink 4).
//
//	0→1 (1)  0→2 (2)  1→2 (1)  1→3 (3)  2→3 (1)
//	2→4 (4)  3→4 (1)  1→4 (6)  0→4 (10)
var diamond = []arc{
	{0, 1, 1}, {0, 2, 2}, {1, 2, 1}, {1, 3, 3}, {2, 3, 1},
	{2, 4, 4}, {3, 4, 1}, {1, 4, 6}, {0, 4, 10},
}

// build creates an n-vertex graph from arcs, in order.
func build(t testing.TB, n int, arcs []arc) *wgraph.Graph {
	t.Helper()
	g, err := wgraph.New(n)
	require.NoError(t, err)
	for _, a := range arcs {
		_, err = g.AddDirectedEdge(a.u, a.v, a.w)
		require.NoError(t, err)
	}

	return g
}

// keyed renders paths as sortable "cost:v0,v1,..." strings.
func keyed(paths []ksp.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = fmt.Sprintf("%08.2f:%v", p.Cost, p.Vertices)
	}
	sort.Strings(out)

	return out
}

// allPaths lists every simple source→sink path of a DAG by DFS, counting
// parallel edges separately.
func allPaths(t testing.TB, g *wgraph.Graph, source, sink int) []ksp.Path {
	t.Helper()
	var out []ksp.Path
	var dfs func(v int, cost float64, seq []int)
	dfs = func(v int, cost float64, seq []int) {
		if v == sink {
			out = append(out, ksp.Path{Cost: cost, Vertices: append([]int(nil), seq...)})
			return
		}
		edges, err := g.Edges(v)
		require.NoError(t, err)
		for _, e := range edges {
			dfs(e.To, cost+e.Weight, append(seq, e.To))
		}
	}
	dfs(source, 0, []int{source})

	return out
}

// requireNonDecreasing checks path costs never go down.
func requireNonDecreasing(t testing.TB, paths []ksp.Path) {
	t.Helper()
	for i := 1; i < len(paths); i++ {
		require.LessOrEqual(t, paths[i-1].Cost, paths[i].Cost, "cost decreased at %d", i)
	}
}
