// SPDX-License-Identifier: MIT

package pheap

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// randomSide draws the child slot a merge descends into.
func randomSide(r *rand.Rand) int {
	return r.Intn(2)
}
