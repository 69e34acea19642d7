// SPDX-License-Identifier: MIT

// Package wgraph provides an append-only directed weighted multigraph over
// dense integer vertex indices.
//
// Vertices are the integers 0..Size()-1. Each vertex owns an ordered outgoing
// adjacency list; AddDirectedEdge appends to it and stamps the new edge with the
// next value of a per-graph counter, so the edge IDs ever handed out by a graph
// are exactly 0..EdgeCount()-1 in insertion order.
//
// Lifecycle:
//
//	New(n) / Assign(n)   – reset to n vertices, zero edges, counter 0
//	Expand(n)            – grow to n vertices, existing lists untouched
//	AddDirectedEdge      – append u→v with weight w, returns the edge ID
//	Edges(v) / Size()    – read access (Edges returns a detached copy)
//
// There is no deletion primitive. Shrinking through Expand is rejected with
// ErrShrink.
//
// Errors:
//
//	ErrIndexOutOfRange – a vertex index outside [0, Size()).
//	ErrNegativeSize    – Assign/New with n < 0.
//	ErrShrink          – Expand with n < Size().
//
// A failing call never mutates the graph.
//
// Concurrency: a Graph is not safe for concurrent mutation. It is meant to be
// built and consumed by a single query session.
package wgraph
