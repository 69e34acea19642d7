// SPDX-License-Identifier: MIT

package wgraph

import (
	"fmt"
	"sort"
)

// New creates a graph with n isolated vertices.
//
// Errors: ErrNegativeSize if n < 0.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	g := &Graph{}
	if err := g.Assign(n); err != nil {
		return nil, err
	}

	return g, nil
}

// Assign resets g to n isolated vertices and restarts the edge counter at 0.
// All previously added edges are discarded.
//
// Errors: ErrNegativeSize if n < 0 (g is left unchanged).
// Complexity: O(n).
func (g *Graph) Assign(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSize, n)
	}
	g.adj = make([][]Edge, n)
	g.nextEdgeID = 0

	return nil
}

// Expand grows g to n vertices. Existing adjacency lists and the edge counter
// are preserved; n-Size() empty lists are appended. Expand(Size()) is a no-op.
//
// Errors: ErrShrink if n < Size() (g is left unchanged).
// Complexity: amortized O(n - Size()).
func (g *Graph) Expand(n int) error {
	if n < len(g.adj) {
		return fmt.Errorf("%w: size %d, requested %d", ErrShrink, len(g.adj), n)
	}
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}

	return nil
}

// AddDirectedEdge appends the edge u→v with weight w to u's adjacency list and
// returns the ID assigned to it. No other adjacency list is touched.
//
// Errors: ErrIndexOutOfRange if u or v is not a vertex of g. On error the edge
// counter does not advance.
// Complexity: amortized O(1).
func (g *Graph) AddDirectedEdge(u, v int, w float64) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return -1, err
	}
	if err := g.checkVertex(v); err != nil {
		return -1, err
	}

	id := g.nextEdgeID
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w, ID: id})
	g.nextEdgeID++

	return id, nil
}

// Edges returns a copy of v's outgoing edges in insertion order.
// Mutating the returned slice does not affect g.
//
// Errors: ErrIndexOutOfRange if v is not a vertex of g.
// Complexity: O(deg(v)).
func (g *Graph) Edges(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Size returns the number of vertices.
func (g *Graph) Size() int { return len(g.adj) }

// EdgeCount returns the number of edges added since the last Assign,
// which is also the ID the next edge will receive.
func (g *Graph) EdgeCount() int { return g.nextEdgeID }

// Clone returns a deep copy of g, including its edge counter.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adj:        make([][]Edge, len(g.adj)),
		nextEdgeID: g.nextEdgeID,
	}
	for u, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		c.adj[u] = append([]Edge(nil), list...)
	}

	return c
}

// Reverse returns a new graph of the same size in which every edge u→v of g
// appears as v→u with the same weight.
//
// Edges are re-inserted in ascending ID order, so each reversed edge carries
// the same ID as its original. A shortest-path tree computed on the reverse
// graph can therefore name tree edges by ID and be matched against g.
//
// Complexity: O(V + E log E).
func (g *Graph) Reverse() *Graph {
	type arc struct {
		from int
		e    Edge
	}
	arcs := make([]arc, 0, g.nextEdgeID)
	for u, list := range g.adj {
		for _, e := range list {
			arcs = append(arcs, arc{from: u, e: e})
		}
	}
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].e.ID < arcs[j].e.ID })

	r := &Graph{adj: make([][]Edge, len(g.adj))}
	for _, a := range arcs {
		r.adj[a.e.To] = append(r.adj[a.e.To], Edge{To: a.from, Weight: a.e.Weight, ID: a.e.ID})
	}
	r.nextEdgeID = g.nextEdgeID

	return r
}

// checkVertex validates that v is a vertex index of g.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, v, len(g.adj))
	}

	return nil
}
