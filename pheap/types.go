// SPDX-License-Identifier: MIT

package pheap

import "errors"

// Sentinel errors for persistent heap operations.
var (
	// ErrIndexOutOfRange indicates a slot index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("pheap: slot index out of range")

	// ErrNegativeSize indicates a negative table size.
	ErrNegativeSize = errors.New("pheap: table size must be non-negative")

	// ErrChildIndex indicates a child selector other than 0 or 1.
	ErrChildIndex = errors.New("pheap: child index must be 0 or 1")
)

// DefaultSeed is the generator seed used when no WithSeed option is given.
const DefaultSeed int64 = 0x69420

// Options configures a Heap at construction time.
type Options struct {
	// Seed initialises the heap's private generator. Zero selects DefaultSeed.
	Seed int64
}

// Option is a functional option for New.
type Option func(*Options)

// WithSeed overrides the generator seed. Seed 0 falls back to DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the options used by New when none are supplied.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed}
}
