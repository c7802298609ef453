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

package solver

import "math/bits"

// ComputeTarget maps a difficulty factor to the 128-bit acceptance
// threshold target = 2^128 - 1 - floor((2^128 - 1) / difficulty), returned
// as four big-endian 32-bit words (most significant first). A digest is
// an acceptable proof of work iff its top 128 bits, read the same way,
// strictly exceed target.
//
// difficulty must be >= 1; difficulty 1 yields target 0, so every digest
// wins, the degenerate case used by tests that only care about proof
// correctness, not search cost.
func ComputeTarget(difficulty uint32) [4]uint32 {
	// (2^128 - 1) / difficulty via 128-bit long division, difficulty fits
	// in a uint32 so the divisor never needs more than one limb.
	quotient, _ := divMax128(uint64(difficulty))
	var q [4]uint32
	q[0] = uint32(quotient[0] >> 32)
	q[1] = uint32(quotient[0])
	q[2] = uint32(quotient[1] >> 32)
	q[3] = uint32(quotient[1])

	var target [4]uint32
	borrow := uint32(0)
	for i := 3; i >= 0; i-- {
		v, b := bits.Sub32(0xFFFFFFFF, q[i], borrow)
		target[i] = v
		borrow = b
	}
	return target
}

// divMax128 divides 2^128-1 (all bits set) by d, returning the quotient
// as two 64-bit limbs, most significant first, and the remainder.
func divMax128(d uint64) (quotient [2]uint64, remainder uint64) {
	hi, rem := bits.Div64(0, ^uint64(0), d)
	lo, rem := bits.Div64(rem, ^uint64(0), d)
	return [2]uint64{hi, lo}, rem
}
