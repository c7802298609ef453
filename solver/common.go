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

import (
	"github.com/p16pow/p16solver/internal/lane16"
	"github.com/p16pow/p16solver/internal/simd"
)

// Solver is the uniform capability both search strategies expose: given a
// 128-bit target (as four big-endian 32-bit words), find a nonce whose
// digest beats it. ok is false only on keyspace exhaustion, a normal,
// expected outcome for legitimate difficulty settings, not an error.
type Solver interface {
	Solve(target [4]uint32) (nonce uint64, digest128 [16]byte, ok bool)
}

// putByte writes v into msg at byte position pos, msg being the
// big-endian-word encoding of a 64-byte block (word i holds bytes
// [4i, 4i+4) in big-endian order).
func putByte(msg *[16]uint32, pos int, v byte) {
	word := pos / 4
	shift := uint(3-(pos%4)) * 8
	msg[word] = msg[word]&^(0xFF<<shift) | uint32(v)<<shift
}

// digitsToBytes decodes n's decimal digits (most significant first) into
// exactly len(dst) bytes, left-padding with '0'. It panics if n does not
// fit in len(dst) decimal digits: every call site here sizes dst to the
// field width of the key space it decodes, so overflow would indicate a
// keyspace bug, not a runtime input error.
func digitsToBytes(n uint64, dst []byte) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(n%10) + '0'
		n /= 10
	}
	if n != 0 {
		panic("p16pow/solver: value does not fit in the requested digit width")
	}
}

// laneIDDigits returns the ASCII tens and units digit bytes of prefix
// set p's lane-th lane-ID value, where lane-ID values run 10, 11, ..., 89
// across p=0..5, lane=0..16.
func laneIDDigits(p, lane int) (tens, units byte) {
	v := 10 + 16*p + lane
	return byte(v/10) + '0', byte(v%10) + '0'
}

// broadcastBlock widens a scalar 16-word block to 16 identical lanes.
func broadcastBlock(scalar *[16]uint32) lane16.Block {
	var b lane16.Block
	for i, w := range scalar {
		b[i] = simd.Broadcast16(w)
	}
	return b
}

// broadcastState widens a scalar 8-word chaining state to 16 identical
// lanes.
func broadcastState(scalar *[8]uint32) lane16.State {
	var s lane16.State
	for i, w := range scalar {
		s[i] = simd.Broadcast16(w)
	}
	return s
}

// digest128 packs the first four words (A, B, C, D) of a finished SHA-256
// state into the big-endian 128-bit digest the solvers return.
func digest128(state *[8]uint32) [16]byte {
	var d [16]byte
	for i := 0; i < 4; i++ {
		d[i*4+0] = byte(state[i] >> 24)
		d[i*4+1] = byte(state[i] >> 16)
		d[i*4+2] = byte(state[i] >> 8)
		d[i*4+3] = byte(state[i])
	}
	return d
}
