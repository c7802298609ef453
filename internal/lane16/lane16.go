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

// Package lane16 evaluates 16 independent SHA-256 compressions in
// lockstep, each against its own 64-byte block, sharing the same 64
// rounds of control flow. It is built entirely on internal/simd's
// emulated lane arithmetic: there is no real AVX-512 here, only the
// 16-wide data layout and round structure a real back-end would share.
//
// Both entry points deliberately omit the end-of-round feedback add: the
// caller always already holds the pre-round state as eight plain uint32
// scalars (it came from internal/sha256ref or a previous feedback add),
// so re-broadcasting once after the call is cheaper than carrying eight
// extra live Word16 values across the loop boundary for an add the
// caller may not even need (the single-block solver compares the raw
// post-round A against a broadcast target and only re-adds for A).
package lane16

import "github.com/p16pow/p16solver/internal/simd"

// State is the 8-word SHA-256 chaining state, widened to 16 lanes.
type State = [8]simd.Word16

// Block is a 16-word SHA-256 message block, widened to 16 lanes: each
// element holds one block word for each of the 16 candidate messages.
type Block = [16]simd.Word16

// Compress runs 64 rounds of SHA-256 compression across all 16 lanes of
// block against state, in place, without adding the pre-round state back
// in (see package doc).
func Compress(state *State, block *Block) {
	var w [64]simd.Word16
	copy(w[:16], block[:])
	expandSchedule(&w)
	round(state, &w)
}

// CompressPrecomputedSchedule is Compress for the case where the message
// schedule is identical across all 16 lanes (the double-block solver's
// terminal, padding-only block never varies by lane). schedule is broadcast
// once per word instead of being recomputed per lane.
func CompressPrecomputedSchedule(state *State, schedule *[64]uint32) {
	var w [64]simd.Word16
	for i, word := range schedule {
		w[i] = simd.Broadcast16(word)
	}
	round(state, &w)
}

// expandSchedule is internal/sha256ref.ExpandSchedule lifted to 16 lanes:
// the sigma functions are pure bitwise/shift ops, so they commute with
// the lane-wise VPxxx primitives exactly like the scalar version.
func expandSchedule(w *[64]simd.Word16) {
	for i := 16; i < 64; i++ {
		s0 := simd.VPXORD(simd.VPXORD(simd.VPRORD(w[i-15], 7), simd.VPRORD(w[i-15], 18)), simd.VPSRLD(w[i-15], 3))
		s1 := simd.VPXORD(simd.VPXORD(simd.VPRORD(w[i-2], 17), simd.VPRORD(w[i-2], 19)), simd.VPSRLD(w[i-2], 10))
		w[i] = simd.VPADDD(simd.VPADDD(w[i-16], s0), simd.VPADDD(w[i-7], s1))
	}
}

const (
	choose    = 0xCA // Ch(e,f,g) = (e&f) ^ (~e&g)
	majority  = 0xE8 // Maj(a,b,c) = (a&b) ^ (a&c) ^ (b&c)
	numRounds = 64
)

func round(state *State, w *[64]simd.Word16) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < numRounds; i++ {
		s1 := simd.VPXORD(simd.VPXORD(simd.VPRORD(e, 6), simd.VPRORD(e, 11)), simd.VPRORD(e, 25))
		ch := simd.VPTERNLOGD(choose, e, f, g)
		t1 := simd.VPADDD(simd.VPADDD(h, s1), simd.VPADDD(ch, simd.VPADDD(simd.Broadcast16(kTable[i]), w[i])))

		s0 := simd.VPXORD(simd.VPXORD(simd.VPRORD(a, 2), simd.VPRORD(a, 13)), simd.VPRORD(a, 22))
		maj := simd.VPTERNLOGD(majority, a, b, c)
		t2 := simd.VPADDD(s0, maj)

		h, g, f = g, f, e
		e = simd.VPADDD(d, t1)
		d, c, b = c, b, a
		a = simd.VPADDD(t1, t2)
	}

	state[0], state[1], state[2], state[3] = a, b, c, d
	state[4], state[5], state[6], state[7] = e, f, g, h
}

var kTable = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}
