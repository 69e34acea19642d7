// SPDX-License-Identifier: MIT

package ksp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ksp/pheap"
	"github.com/katalvlaran/ksp/wgraph"
)

// SidetrackCost is the extra cost of leaving u by the edge u→v of weight w
// instead of by u's tree edge: w + dist[v] - dist[u].
func SidetrackCost(dist []float64, u, v int, w float64) float64 {
	return w + dist[v] - dist[u]
}

// BuildSidetrackHeap fills one persistent heap slot per vertex of g.
//
// Slot u ends up holding every sidetrack available on the tree path from u to
// the sink. Vertices are processed in t.Order, so Next[u] is always complete
// before u branches from it. Tree edges, edges into vertices that cannot
// reach the sink and sidetracks costing Options.MaxSidetrack or more are
// skipped. Rounding noise below zero is clamped to 0.
//
// Errors: ErrNilGraph, ErrSizeMismatch, ErrBadMaxSidetrack.
// Complexity: expected O(E log E) time and space.
func BuildSidetrackHeap(g *wgraph.Graph, t *Tree, opts ...Option) (*pheap.Heap, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if g == nil || t == nil {
		return nil, ErrNilGraph
	}
	if len(t.Dist) != g.Size() {
		return nil, fmt.Errorf("%w: tree has %d vertices, graph %d", ErrSizeMismatch, len(t.Dist), g.Size())
	}

	h, err := pheap.New(g.Size(), pheap.WithSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}

	for _, u := range t.Order {
		if t.Next[u] != -1 {
			if err = h.CopyTo(t.Next[u], u); err != nil {
				return nil, err
			}
		}

		var edges []wgraph.Edge
		if edges, err = g.Edges(u); err != nil {
			return nil, err
		}
		for _, e := range edges {
			if e.ID == t.NextEdge[u] || math.IsInf(t.Dist[e.To], 1) {
				continue
			}
			cost := SidetrackCost(t.Dist, u, e.To, e.Weight)
			if cost >= cfg.MaxSidetrack {
				continue
			}
			if cost < 0 {
				cost = 0
			}
			if err = h.InsertAt(u, u, e.To, cost); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}
