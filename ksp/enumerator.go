// SPDX-License-Identifier: MIT

package ksp

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ksp/pheap"
	"github.com/katalvlaran/ksp/wgraph"
)

// Enumerator yields the source→sink walks of a graph cheapest first.
// It is not safe for concurrent use.
type Enumerator struct {
	source  int
	tree    *Tree
	heap    *pheap.Heap
	started bool
	done    bool
	pq      candidatePQ
}

// taken is a persistent list of the sidetracks a walk has committed to,
// newest first. Candidates branching from the same walk share their tails.
type taken struct {
	curr, next int
	prev       *taken
}

// candidate is a pending walk: the sidetracks in prefix plus node.
type candidate struct {
	cost   float64
	node   pheap.Node
	prefix *taken
}

// NewEnumerator builds the reverse shortest-path tree to sink and the
// sidetrack heap of g, ready to enumerate walks from source.
//
// g is read during construction only; later changes to g are not observed.
//
// Errors: ErrNilGraph, ErrIndexOutOfRange, ErrNegativeWeight, ErrBadMaxSidetrack.
func NewEnumerator(g *wgraph.Graph, source, sink int, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.Size() {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrIndexOutOfRange, source, g.Size())
	}

	t, err := ShortestTree(g.Reverse(), sink)
	if err != nil {
		return nil, err
	}
	h, err := BuildSidetrackHeap(g, t, opts...)
	if err != nil {
		return nil, err
	}

	return &Enumerator{source: source, tree: t, heap: h}, nil
}

// Tree returns the shortest-path tree the enumerator walks along.
func (en *Enumerator) Tree() *Tree { return en.tree }

// Next returns the next walk in non-decreasing cost order. The boolean is
// false once no walk remains; it stays false on every later call.
func (en *Enumerator) Next() (Path, bool) {
	if en.done {
		return Path{}, false
	}
	if !en.started {
		en.started = true
		if !en.tree.Reachable(en.source) {
			en.done = true
			return Path{}, false
		}
		base := en.tree.Dist[en.source]
		en.pushRoot(en.source, base, nil)

		return en.materialize(base, nil), true
	}
	if en.pq.Len() == 0 {
		en.done = true
		return Path{}, false
	}

	c := heap.Pop(&en.pq).(*candidate)

	// Same prefix, with the popped sidetrack swapped for one of its heap children.
	for _, child := range c.node.Children() {
		if child.IsAbsent() {
			continue
		}
		heap.Push(&en.pq, &candidate{
			cost:   c.cost - c.node.Sidetrack + child.Sidetrack,
			node:   child,
			prefix: c.prefix,
		})
	}

	// Commit to the popped sidetrack and allow one more deviation after it.
	p := &taken{curr: c.node.Curr, next: c.node.Next, prev: c.prefix}
	en.pushRoot(c.node.Next, c.cost, p)

	return en.materialize(c.cost, p), true
}

// Take returns up to k further walks.
func (en *Enumerator) Take(k int) []Path {
	out := make([]Path, 0, max(k, 0))
	for len(out) < k {
		p, ok := en.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}

	return out
}

// pushRoot queues the cheapest deviation available from vertex v.
func (en *Enumerator) pushRoot(v int, cost float64, prefix *taken) {
	root, err := en.heap.Root(v)
	if err != nil || root.IsAbsent() {
		return
	}
	heap.Push(&en.pq, &candidate{cost: cost + root.Sidetrack, node: root, prefix: prefix})
}

// materialize expands a sidetrack list into the vertex sequence of the walk:
// follow the tree to each sidetrack tail, cross the sidetrack, and finally
// follow the tree to the sink.
func (en *Enumerator) materialize(cost float64, last *taken) Path {
	var steps []*taken
	for p := last; p != nil; p = p.prev {
		steps = append(steps, p)
	}

	t := en.tree
	v := en.source
	verts := []int{v}
	walk := func(to int) {
		for v != to && t.Next[v] != -1 {
			v = t.Next[v]
			verts = append(verts, v)
		}
	}
	for i := len(steps) - 1; i >= 0; i-- {
		walk(steps[i].curr)
		v = steps[i].next
		verts = append(verts, v)
	}
	walk(t.Sink)

	return Path{Cost: cost, Vertices: verts, Sidetracks: len(steps)}
}

// candidatePQ is a min-heap of candidates by cost.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int            { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
