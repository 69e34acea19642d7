// SPDX-License-Identifier: MIT

// Package pheap implements a persistent randomized meldable heap of sidetrack
// candidates, organised as a table of independently evolvable slots.
//
// Each slot holds the root of a min-heap ordered by Sidetrack. Slots may share
// substructure: CopyTo makes a new branch whose nodes are initially all shared
// with its source, and later InsertAt calls on either slot never disturb the
// other. This is what lets a k-shortest-path search derive the heap of a vertex
// from the heap of its successor on the shortest-path tree without copying it.
//
// Merge discipline:
//
//	merge(a, b):
//	  nil operand          → the other operand
//	  a.Sidetrack > b.Sidetrack → swap (ties keep a on top)
//	  idx := rng.Intn(2)
//	  root := shallow clone of a
//	  root.child[idx] = merge(a.child[idx], b)
//
// Merge only writes into the clone it has just allocated, so a node, once
// reachable from any slot, is never modified again. Expected depth is
// O(log n); there is no worst-case balance bound.
//
// Determinism: every Heap owns one *rand.Rand seeded once at construction
// (DefaultSeed unless WithSeed is given). Replaying the same sequence of calls
// on a fresh Heap with the same seed yields structurally identical heaps.
//
// Read access goes through Node snapshots. Root and Node.Child return detached
// values; a missing node is reported as Absent (Curr, Next and Sidetrack all -1).
//
// Errors:
//
//	ErrIndexOutOfRange – slot index outside [0, Size()).
//	ErrNegativeSize    – New/Assign with a negative table size.
//	ErrChildIndex      – Child(nth) with nth not in {0, 1}.
//
// Superseded nodes are never reclaimed; reset the table with Assign between
// query sessions.
//
// Concurrency: a Heap is single-threaded. math/rand.Rand is not goroutine-safe
// and neither is the slot table.
package pheap
