// SPDX-License-Identifier: MIT

package ksp

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/ksp/wgraph"
)

// Tree is a shortest-path tree toward a single sink.
//
// For a vertex v that can reach Sink, Dist[v] is the cost of its shortest
// path, Next[v] its successor on that path and NextEdge[v] the ID of the edge
// v→Next[v]. Unreachable vertices have Dist +Inf and Next/NextEdge -1, as does
// Sink for Next/NextEdge. Order lists reachable vertices in the order their
// distance became final, Sink first.
type Tree struct {
	Sink     int
	Dist     []float64
	Next     []int
	NextEdge []int
	Order    []int
}

// Reachable reports whether v has a path to the sink.
func (t *Tree) Reachable(v int) bool {
	return v >= 0 && v < len(t.Dist) && !math.IsInf(t.Dist[v], 1)
}

// PathToSink follows Next from v and returns the vertices visited, v and the
// sink included. It returns nil if v cannot reach the sink.
func (t *Tree) PathToSink(v int) []int {
	if !t.Reachable(v) {
		return nil
	}
	out := []int{v}
	for v != t.Sink {
		v = t.Next[v]
		out = append(out, v)
	}

	return out
}

// ShortestTree runs Dijkstra on rev, the reverse of the graph of interest,
// starting at sink. Edge IDs in rev name edges of the forward graph (see
// wgraph.Graph.Reverse), so NextEdge can be compared with forward edge IDs.
//
// Errors (in order):
//  1. ErrNilGraph if rev is nil.
//  2. ErrIndexOutOfRange if sink is not a vertex.
//  3. ErrNegativeWeight if any edge weight is negative or NaN.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestTree(rev *wgraph.Graph, sink int) (*Tree, error) {
	if rev == nil {
		return nil, ErrNilGraph
	}
	n := rev.Size()
	if sink < 0 || sink >= n {
		return nil, fmt.Errorf("%w: sink %d not in [0,%d)", ErrIndexOutOfRange, sink, n)
	}

	// Pre-scan to fail fast before any state is built.
	adj := make([][]wgraph.Edge, n)
	for u := 0; u < n; u++ {
		edges, err := rev.Edges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if !(e.Weight >= 0) {
				return nil, fmt.Errorf("%w: edge %d (%d→%d) weight=%g", ErrNegativeWeight, e.ID, e.To, u, e.Weight)
			}
		}
		adj[u] = edges
	}

	r := &runner{
		adj:     adj,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
		tree: &Tree{
			Sink:     sink,
			Dist:     make([]float64, n),
			Next:     make([]int, n),
			NextEdge: make([]int, n),
			Order:    make([]int, 0, n),
		},
	}
	r.init(sink)
	r.process()

	return r.tree, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     [][]wgraph.Edge // reverse adjacency
	visited []bool          // distance finalized
	pq      nodePQ          // lazy decrease-key queue
	tree    *Tree
}

// init marks every vertex unreachable and seeds the queue with the sink.
func (r *runner) init(sink int) {
	t := r.tree
	for v := range t.Dist {
		t.Dist[v] = math.Inf(1)
		t.Next[v] = -1
		t.NextEdge[v] = -1
	}
	t.Dist[sink] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: sink, dist: 0})
}

// process settles vertices in order of distance and relaxes their edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.tree.Order = append(r.tree.Order, u)
		r.relax(u)
	}
}

// relax follows reverse edges out of u, i.e. forward edges v→u, and records
// u as v's successor whenever the path through u is strictly shorter.
func (r *runner) relax(u int) {
	t := r.tree
	for _, e := range r.adj[u] {
		v := e.To
		if r.visited[v] {
			continue
		}
		newDist := t.Dist[u] + e.Weight
		if newDist >= t.Dist[v] {
			continue
		}
		t.Dist[v] = newDist
		t.Next[v] = u
		t.NextEdge[v] = e.ID
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a vertex with a tentative distance to the sink.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
