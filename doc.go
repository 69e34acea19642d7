// Package ksp is an in-memory toolkit for ranking paths by cost: the data
// structures behind a k-shortest-path enumeration and the enumeration itself.
//
// It is organised into three subpackages:
//
//	wgraph/ — append-only directed weighted multigraph with sequential edge IDs
//	pheap/  — persistent randomized meldable heap: a table of slots that branch
//	          with CopyTo and never disturb one another
//	ksp/    — reverse shortest-path tree, per-vertex sidetrack heaps and an
//	          enumerator yielding source→sink walks cheapest first
//
// A typical session:
//
//	g, _ := wgraph.New(n)
//	g.AddDirectedEdge(u, v, w) // …
//	en, _ := ksp.NewEnumerator(g, source, sink)
//	for _, p := range en.Take(10) {
//	    fmt.Println(p.Cost, p.Vertices)
//	}
//
// Everything is single-threaded and lives for one query. Heap versions are
// never reclaimed individually; drop the Heap (or Assign it) between queries.
//
//	go get github.com/katalvlaran/ksp
package ksp
