// SPDX-License-Identifier: MIT

package ksp

import (
	"errors"
	"math"

	"github.com/katalvlaran/ksp/pheap"
)

// Sentinel errors returned by the ksp package.
var (
	// ErrNilGraph indicates a nil *wgraph.Graph or *Tree.
	ErrNilGraph = errors.New("ksp: graph is nil")

	// ErrIndexOutOfRange indicates a source or sink outside the graph.
	ErrIndexOutOfRange = errors.New("ksp: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight that is negative or NaN.
	ErrNegativeWeight = errors.New("ksp: negative edge weight encountered")

	// ErrSizeMismatch indicates a tree built for a graph of another size.
	ErrSizeMismatch = errors.New("ksp: tree does not match graph size")

	// ErrBadMaxSidetrack indicates a NaN or negative sidetrack bound.
	ErrBadMaxSidetrack = errors.New("ksp: MaxSidetrack must be a non-negative number")
)

// Options configures sidetrack heap construction and enumeration.
//
// Seed         – seed of the persistent heap generator (0 ⇒ pheap.DefaultSeed).
// MaxSidetrack – sidetracks costing MaxSidetrack or more are never inserted.
//
//	Default is +Inf (keep everything).
type Options struct {
	Seed         int64
	MaxSidetrack float64
}

// Option is a functional option for BuildSidetrackHeap and NewEnumerator.
type Option func(*Options)

// WithSeed sets the persistent heap seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxSidetrack drops sidetracks whose extra cost is ≥ bound.
// The original generator used this to skip edges that would make a walk
// effectively infinite.
func WithMaxSidetrack(bound float64) Option {
	return func(o *Options) { o.MaxSidetrack = bound }
}

// DefaultOptions returns the defaults: pheap.DefaultSeed, no sidetrack bound.
func DefaultOptions() Options {
	return Options{
		Seed:         pheap.DefaultSeed,
		MaxSidetrack: math.Inf(1),
	}
}

// validate checks option values that functional options cannot reject early.
func (o Options) validate() error {
	if math.IsNaN(o.MaxSidetrack) || o.MaxSidetrack < 0 {
		return ErrBadMaxSidetrack
	}

	return nil
}

// Path is one enumerated source→sink walk.
type Path struct {
	// Cost is the total weight of the walk.
	Cost float64

	// Vertices lists the walk from source to sink inclusive.
	Vertices []int

	// Sidetracks is the number of non-tree edges the walk uses.
	Sidetracks int
}
