// SPDX-License-Identifier: MIT

package pheap

import (
	"fmt"
	"math/rand"
)

// Heap is a fixed-size table of persistent heap roots sharing one generator.
type Heap struct {
	table []*node
	rng   *rand.Rand
}

// New creates a Heap with tableSize empty slots.
//
// The generator is seeded here, once; Assign does not reseed it.
//
// Errors: ErrNegativeSize if tableSize < 0.
func New(tableSize int, opts ...Option) (*Heap, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Heap{rng: rngFromSeed(cfg.Seed)}
	if err := h.Assign(tableSize); err != nil {
		return nil, err
	}

	return h, nil
}

// Assign resets every slot to empty and fixes the table size.
//
// Errors: ErrNegativeSize if tableSize < 0 (h is left unchanged).
func (h *Heap) Assign(tableSize int) error {
	if tableSize < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSize, tableSize)
	}
	h.table = make([]*node, tableSize)

	return nil
}

// Size returns the number of slots.
func (h *Heap) Size() int { return len(h.table) }

// InsertAt adds the candidate (curr→next, sidetrack) to slot idx.
// Only slot idx is rebound; slots sharing nodes with it keep their contents.
//
// Errors: ErrIndexOutOfRange if idx is not a slot.
// Complexity: expected O(log n) time and allocations.
func (h *Heap) InsertAt(idx, curr, next int, sidetrack float64) error {
	if err := h.checkSlot(idx); err != nil {
		return err
	}
	h.table[idx] = merge(h.table[idx], leaf(curr, next, sidetrack), h.rng)

	return nil
}

// CopyTo makes slot dst a new branch of slot src. The root is cloned and all
// other nodes are shared; dst is empty if src is empty. Whatever dst held
// before is dropped.
//
// Errors: ErrIndexOutOfRange if src or dst is not a slot.
// Complexity: O(1).
func (h *Heap) CopyTo(src, dst int) error {
	if err := h.checkSlot(src); err != nil {
		return err
	}
	if err := h.checkSlot(dst); err != nil {
		return err
	}
	h.table[dst] = clone(h.table[src])

	return nil
}

// Meld merges the contents of slot src into slot dst. Slot src is unchanged.
// Meld(i, i) is allowed and leaves every candidate in slot i twice.
//
// Errors: ErrIndexOutOfRange if src or dst is not a slot.
// Complexity: expected O(log n + log m).
func (h *Heap) Meld(dst, src int) error {
	if err := h.checkSlot(src); err != nil {
		return err
	}
	if err := h.checkSlot(dst); err != nil {
		return err
	}
	h.table[dst] = merge(h.table[dst], h.table[src], h.rng)

	return nil
}

// Root returns a snapshot of slot idx's root, or Absent if the slot is empty.
//
// Errors: ErrIndexOutOfRange if idx is not a slot.
func (h *Heap) Root(idx int) (Node, error) {
	if err := h.checkSlot(idx); err != nil {
		return Absent, err
	}

	return snapshot(h.table[idx]), nil
}

// checkSlot validates a slot index.
func (h *Heap) checkSlot(idx int) error {
	if idx < 0 || idx >= len(h.table) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, len(h.table))
	}

	return nil
}
