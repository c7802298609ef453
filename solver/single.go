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

// innerKeySpace is the number of distinct 7-digit inner keys, 0..10^7.
const innerKeySpace = 10_000_000

// SingleBlock solves the mCaptcha challenge when the 9-digit nonce window
// fits in the prefix's final SHA-256 block alongside standard padding.
type SingleBlock struct {
	prefixState [8]uint32
	message     [16]uint32 // final block template; digitIndex and digitIndex+1 are 0 until a hit
	digitIndex  int
	nonceAddend uint64
}

// NewSingleBlock conditions prefix for the single-block strategy. It
// returns ok=false only if a filler block would be needed and its
// addend would overflow a uint64; everything else about a prefix is
// compatible with this strategy once filler is applied.
func NewSingleBlock(prefix []byte) (*SingleBlock, bool) {
	state, tail, blocksBefore := prefixcond.Absorb(prefix)

	var nonceAddend uint64
	if prefixcond.NeedsFiller(len(tail)) {
		addend, nb, ok := prefixcond.Fill(&state, tail, blocksBefore)
		if !ok {
			return nil, false
		}
		nonceAddend = addend
		blocksBefore = nb
		tail = nil
	}

	var message [16]uint32
	for i, b := range tail {
		putByte(&message, i, b)
	}
	digitIndex := len(tail)
	ptr := digitIndex + prefixcond.DigitWindow
	putByte(&message, ptr, 0x80)

	bitLen := (blocksBefore*prefixcond.BlockSize + uint64(ptr)) * 8
	for i := 0; i < 8; i++ {
		putByte(&message, prefixcond.BlockSize-8+i, byte(bitLen>>uint(56-8*i)))
	}

	return &SingleBlock{
		prefixState: state,
		message:     message,
		digitIndex:  digitIndex,
		nonceAddend: nonceAddend,
	}, true
}

// Solve implements Solver. In outline: for each of the 5 prefix sets, OR
// a precomputed per-lane two-digit mask onto the message template's
// lane-ID word(s), then for each of 10^7 inner keys, stamp the remaining
// 7 digits in and run one 16-way compression, comparing the post-round A
// word (broadcast-added back to the real pre-round A) against the
// target's top word.
func (s *SingleBlock) Solve(target [4]uint32) (nonce uint64, digest128out [16]byte, ok bool) {
	digitIndex := s.digitIndex
	wordIdx0, byteIdx0 := digitIndex/4, digitIndex%4
	wordIdx1, byteIdx1 := (digitIndex+1)/4, (digitIndex+1)%4
	sameWord := wordIdx0 == wordIdx1
	shift0 := uint(3-byteIdx0) * 8
	shift1 := uint(3-byteIdx1) * 8

	var mask0, mask1 [5]simd.Word16
	for p := 0; p < 5; p++ {
		var m0, m1 simd.Word16
		for lane := 0; lane < 16; lane++ {
			tens, units := laneIDDigits(p, lane)
			m0[lane] = uint32(tens) << shift0
			if sameWord {
				m0[lane] |= uint32(units) << shift1
			} else {
				m1[lane] = uint32(units) << shift1
			}
		}
		mask0[p], mask1[p] = m0, m1
	}

	wordLo := wordIdx0
	wordHi := (digitIndex + prefixcond.DigitWindow - 1) / 4

	msg := s.message
	prefixBroadcast := simd.Broadcast16(s.prefixState[0])
	targetA := simd.Broadcast16(target[0])

	for p := 0; p < 5; p++ {
		block := broadcastBlock(&msg)
		block[wordIdx0] = simd.VPORD(block[wordIdx0], mask0[p])
		if !sameWord {
			block[wordIdx1] = simd.VPORD(block[wordIdx1], mask1[p])
		}

		for innerKey := uint64(0); innerKey < innerKeySpace; innerKey++ {
			var digits [7]byte
			digitsToBytes(innerKey, digits[:])
			for i, d := range digits {
				putByte(&msg, digitIndex+2+i, d)
			}
			for w := wordLo; w <= wordHi; w++ {
				block[w] = simd.Broadcast16(msg[w])
			}
			block[wordIdx0] = simd.VPORD(block[wordIdx0], mask0[p])
			if !sameWord {
				block[wordIdx1] = simd.VPORD(block[wordIdx1], mask1[p])
			}

			state := broadcastState(&s.prefixState)
			lane16.Compress(&state, &block)

			a := simd.VPADDD(state[0], prefixBroadcast)
			hit := simd.VPCMPGTUD(a, targetA)
			if hit == 0 {
				continue
			}

			lane := bits.TrailingZeros16(hit)
			noncePrefix := uint64(10 + 16*p + lane)
			tens, units := laneIDDigits(p, lane)
			putByte(&msg, digitIndex, tens)
			putByte(&msg, digitIndex+1, units)

			final := s.prefixState
			sha256ref.CompressBlock(&final, &msg)

			nonce = noncePrefix*innerKeySpace + innerKey + s.nonceAddend
			return nonce, digest128(&final), true
		}
	}

	return 0, [16]byte{}, false
}
