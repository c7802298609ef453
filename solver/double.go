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
	"math/bits"

	"github.com/p16pow/p16solver/internal/lane16"
	"github.com/p16pow/p16solver/internal/prefixcond"
	"github.com/p16pow/p16solver/internal/sha256ref"
	"github.com/p16pow/p16solver/internal/simd"
)

// digitIdx is the fixed byte offset of the 9-digit mutable window in the
// double-block strategy's first block.
const digitIdx = 54

// DoubleBlock solves the mCaptcha challenge with the 9-digit nonce window
// at byte offset 54 of the first block, leaving no room there for the
// length trailer, so a second, otherwise padding-only block follows. It
// covers tails of 47..54 bytes, including the 47..52 range the
// single-block strategy cannot construct. Roughly half
// the throughput of SingleBlock, since every iteration runs two 16-way
// compressions instead of one.
type DoubleBlock struct {
	prefixState      [8]uint32
	message          [16]uint32 // first block; bytes 54/55 (lane ID) and 56..62 (inner key) start at 0
	terminalSchedule [64]uint32 // pre-expanded schedule for the lane-independent, padding-only second block
	nonceAddend      uint64
}

// NewDoubleBlock conditions prefix for the double-block strategy. Unlike
// the single-block filler, this strategy pads the tail with ASCII '1'
// only until it reaches a fixed 8-byte alignment boundary (so that the
// lane-ID digits land byte-aligned inside one 32-bit word); it then
// requires the result to land exactly at byte offset 54. Prefixes whose
// tail doesn't reach exactly there are not constructible this way;
// NewSingleBlock (with its full 1-block filler) covers them instead.
func NewDoubleBlock(prefix []byte) (*DoubleBlock, bool) {
	state, tail, blocksBefore := prefixcond.Absorb(prefix)

	ptr := len(tail)
	var addend uint64
	for (ptr+2)%8 != 0 {
		addend = addend*10 + 1
		ptr++
	}
	if ptr != digitIdx {
		return nil, false
	}
	addend *= 1_000_000_000

	var message [16]uint32
	for i, b := range tail {
		putByte(&message, i, b)
	}
	for i := len(tail); i < ptr; i++ {
		putByte(&message, i, '1')
	}
	ptr += prefixcond.DigitWindow // now 63: the digit window (54..62) plus the pad marker byte
	putByte(&message, ptr, 0x80)

	messageLength := blocksBefore*prefixcond.BlockSize + uint64(ptr)
	var terminalSchedule [64]uint32
	terminalSchedule[14] = uint32((messageLength * 8) >> 32)
	terminalSchedule[15] = uint32(messageLength * 8)
	sha256ref.ExpandSchedule(&terminalSchedule)

	return &DoubleBlock{
		prefixState:      state,
		message:          message,
		terminalSchedule: terminalSchedule,
		nonceAddend:      addend,
	}, true
}

// Solve implements Solver.
func (s *DoubleBlock) Solve(target [4]uint32) (nonce uint64, digest128out [16]byte, ok bool) {
	// Bytes 54 and 55 (the lane-ID digits) are both byte offsets 2 and 3
	// of word 13, adjacent and word-aligned, so one combined OR mask per
	// prefix set suffices, same trick as the single-block solver's
	// same-word case.
	var laneMask [5]simd.Word16
	for p := 0; p < 5; p++ {
		var m simd.Word16
		for lane := 0; lane < 16; lane++ {
			tens, units := laneIDDigits(p, lane)
			m[lane] = uint32(tens)<<8 | uint32(units)
		}
		laneMask[p] = m
	}

	var blk2 [16]uint32
	copy(blk2[:], s.terminalSchedule[:16])

	msg := s.message
	prefixBroadcast := broadcastState(&s.prefixState)
	targetA := simd.Broadcast16(target[0])

	for p := 0; p < 5; p++ {
		for innerKey := uint64(0); innerKey < innerKeySpace; innerKey++ {
			var digits [7]byte
			digitsToBytes(innerKey, digits[:])
			for i, d := range digits {
				putByte(&msg, digitIdx+2+i, d)
			}

			block := broadcastBlock(&msg)
			block[13] = simd.VPORD(block[13], laneMask[p])

			state := prefixBroadcast
			lane16.Compress(&state, &block)
			for i := range state {
				state[i] = simd.VPADDD(state[i], prefixBroadcast[i])
			}
			saveA := state[0]

			lane16.CompressPrecomputedSchedule(&state, &s.terminalSchedule)
			a := simd.VPADDD(state[0], saveA)

			hit := simd.VPCMPGTUD(a, targetA)
			if hit == 0 {
				continue
			}

			lane := bits.TrailingZeros16(hit)
			noncePrefix := uint64(10 + 16*p + lane)
			tens, units := laneIDDigits(p, lane)
			putByte(&msg, digitIdx, tens)
			putByte(&msg, digitIdx+1, units)

			final := s.prefixState
			sha256ref.CompressBlock(&final, &msg)
			sha256ref.CompressBlock(&final, &blk2)

			nonce = noncePrefix*innerKeySpace + innerKey + s.nonceAddend
			return nonce, digest128(&final), true
		}
	}

	return 0, [16]byte{}, false
}
