// SPDX-License-Identifier: MIT

// Package ksp enumerates source→sink walks of a wgraph.Graph in
// non-decreasing total cost, using the sidetrack representation on top of a
// persistent heap.
//
// Pipeline:
//
//  1. ShortestTree runs Dijkstra on the reversed graph from the sink. Every
//     vertex that can reach the sink gets Dist (cost to sink), Next (successor
//     toward the sink) and NextEdge (ID of the tree edge it leaves by).
//  2. BuildSidetrackHeap walks vertices in settlement order. Vertex u first
//     branches the heap of Next[u] with CopyTo and then inserts each of its own
//     non-tree edges u→v with cost w + Dist[v] - Dist[u]. The heap of u thus
//     holds every sidetrack on u's tree path while sharing almost all nodes
//     with its successor.
//  3. Enumerator pops candidates best-first. A candidate is a heap node plus
//     the list of sidetracks already taken. Popping it yields one walk and
//     pushes (a) its heap children in place of it and (b) the root of the heap
//     at the sidetrack's head, extending the walk by one more deviation.
//
// The first walk returned is the shortest path itself. Walks may revisit
// vertices when the graph has cycles; bound the enumeration with Take.
//
// Errors:
//
//	ErrNilGraph        – a nil graph or tree was passed.
//	ErrIndexOutOfRange – source or sink is not a vertex.
//	ErrNegativeWeight  – an edge weight is negative or NaN.
//	ErrSizeMismatch    – tree and graph disagree on the vertex count.
//	ErrBadMaxSidetrack – WithMaxSidetrack received NaN or a negative bound.
package ksp
