// SPDX-License-Identifier: MIT

package wgraph

import "errors"

// Sentinel errors for weighted graph operations.
var (
	// ErrIndexOutOfRange indicates a vertex index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("wgraph: vertex index out of range")

	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("wgraph: vertex count must be non-negative")

	// ErrShrink indicates an attempt to reduce the vertex count via Expand.
	ErrShrink = errors.New("wgraph: expansion cannot shrink the graph")
)

// Edge is one directed, weighted connection stored in the adjacency list of
// its source vertex.
type Edge struct {
	// To is the head vertex of the edge.
	To int

	// Weight is the traversal cost of the edge.
	Weight float64

	// ID is the per-graph insertion counter value at the time the edge was added.
	ID int
}

// Graph is an append-only directed multigraph with integer vertices.
//
// adj[u] holds the outgoing edges of u in insertion order.
// nextEdgeID is the ID that the next AddDirectedEdge call will assign.
type Graph struct {
	adj        [][]Edge
	nextEdgeID int
}
