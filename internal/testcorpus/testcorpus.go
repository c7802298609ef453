// Copyright (C) 2026 The Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package testcorpus generates deterministic pseudo-random byte strings
// for property-style tests that need many distinct prefixes without
// depending on math/rand's global state or a seed threaded through every
// test. Generation is keyed so two calls with the same (seed, index) for
// the same length always agree, which keeps table-driven tests
// reproducible across runs and across -shuffle orderings.
package testcorpus

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Prefix deterministically derives a byte string of length n from seed
// and index. Different indices under the same seed are independent in
// practice (siphash is a PRF), so callers can generate as many distinct
// fixtures as they need just by counting up index.
func Prefix(seed uint64, index int, n int) []byte {
	out := make([]byte, n)
	k0, k1 := seed, uint64(index)
	counter := uint64(0)
	var ctr [8]byte
	for i := 0; i < n; i += 8 {
		binary.LittleEndian.PutUint64(ctr[:], counter)
		h := siphash.Hash(k0, k1, ctr[:])
		counter++
		for j := 0; j < 8 && i+j < n; j++ {
			out[i+j] = byte(h >> (8 * uint(j)))
		}
	}
	return out
}

// Lengths returns a spread of prefix byte-lengths chosen to exercise
// every boundary the solvers care about: the empty prefix, the no-filler
// and filler-needed sides of the single-block threshold, both edges of
// the double-block constructibility window, and a couple of lengths well
// past one full absorbed block.
func Lengths() []int {
	return []int{0, 1, 20, 46, 47, 54, 55, 63, 64, 65, 100, 118, 119, 130}
}
