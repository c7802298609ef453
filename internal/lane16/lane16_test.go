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

package lane16

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/p16pow/p16solver/internal/sha256ref"
	"github.com/p16pow/p16solver/internal/simd"
)

func blockFor(msg string) [16]uint32 {
	var buf [64]byte
	copy(buf[:], msg)
	buf[len(msg)] = 0x80
	binary.BigEndian.PutUint64(buf[56:], uint64(len(msg))*8)
	var block [16]uint32
	for i := range block {
		block[i] = binary.BigEndian.Uint32(buf[i*4 : i*4+4])
	}
	return block
}

// TestCompressAgainstIndependentLanesMatchesStdlib drives 16 distinct
// single-block messages through one Compress call and checks each lane's
// feedback-added digest against crypto/sha256.
func TestCompressAgainstIndependentLanesMatchesStdlib(t *testing.T) {
	msgs := []string{
		"", "a", "ab", "abc", "abcd", "hello", "world", "p16pow",
		"lane0", "lane1", "lane2", "lane3", "lane4", "lane5", "lane6", "lane7",
	}
	if len(msgs) != 16 {
		t.Fatalf("need exactly 16 messages, got %d", len(msgs))
	}

	var state State
	for i := range state {
		state[i] = simd.Broadcast16(sha256ref.IV[i])
	}
	var block Block
	blocks := make([][16]uint32, 16)
	for lane, m := range msgs {
		blocks[lane] = blockFor(m)
	}
	for word := 0; word < 16; word++ {
		var lanes simd.Word16
		for lane := 0; lane < 16; lane++ {
			lanes[lane] = blocks[lane][word]
		}
		block[word] = lanes
	}

	Compress(&state, &block)

	for lane, m := range msgs {
		scalarState := sha256ref.IV
		scalarBlock := blockFor(m)
		sha256ref.CompressBlock(&scalarState, &scalarBlock)

		want := sha256.Sum256([]byte(m))
		for word := 0; word < 4; word++ {
			got := state[word][lane] + sha256ref.IV[word]
			wantWord := binary.BigEndian.Uint32(want[word*4 : word*4+4])
			if got != wantWord {
				t.Errorf("lane %d (%q) word %d: feedback-added = %#x, want %#x (scalar ref gave %#x)",
					lane, m, word, got, wantWord, scalarState[word])
			}
		}
	}
}

func TestCompressPrecomputedScheduleMatchesCompress(t *testing.T) {
	msg := "terminal block test"
	block := blockFor(msg)

	var schedule [64]uint32
	copy(schedule[:16], block[:])
	sha256ref.ExpandSchedule(&schedule)

	var viaPrecomputed State
	for i := range viaPrecomputed {
		viaPrecomputed[i] = simd.Broadcast16(sha256ref.IV[i])
	}
	CompressPrecomputedSchedule(&viaPrecomputed, &schedule)

	var viaCompress State
	for i := range viaCompress {
		viaCompress[i] = simd.Broadcast16(sha256ref.IV[i])
	}
	var wideBlock Block
	for i, w := range block {
		wideBlock[i] = simd.Broadcast16(w)
	}
	Compress(&viaCompress, &wideBlock)

	for i := range viaPrecomputed {
		if viaPrecomputed[i] != viaCompress[i] {
			t.Fatalf("word %d: precomputed-schedule path = %v, compress path = %v", i, viaPrecomputed[i], viaCompress[i])
		}
	}
}
