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

package prefixcond

import (
	"crypto/sha256"
	"encoding"
	"encoding/binary"
	"strings"
	"testing"
)

func TestAbsorbMatchesStdlibOnFullBlocks(t *testing.T) {
	prefix := []byte(strings.Repeat("x", 64*3+10))
	state, tail, blocksBefore := Absorb(prefix)

	if blocksBefore != 3 {
		t.Fatalf("blocksBefore = %d, want 3", blocksBefore)
	}
	if len(tail) != 10 {
		t.Fatalf("tail len = %d, want 10", len(tail))
	}

	// Absorb returns the unfinalized chaining state, so compare against the
	// stdlib digest's internal state after the same three blocks rather
	// than against its padded Sum. The marshaled form starts with a 4-byte
	// magic followed by the eight chaining words, big-endian.
	h := sha256.New()
	h.Write(prefix[:64*3])
	full, err := h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	full = full[4:]
	for i := 0; i < 8; i++ {
		if state[i] != binary.BigEndian.Uint32(full[i*4:]) {
			t.Fatalf("state[%d] = %#x, want %#x (Absorb must equal the chaining state after the complete blocks alone)", i, state[i], binary.BigEndian.Uint32(full[i*4:]))
		}
	}
}

func TestNeedsFillerBoundary(t *testing.T) {
	for l := 0; l <= 64; l++ {
		want := l+DigitWindow+MinPadding > BlockSize
		if got := NeedsFiller(l); got != want {
			t.Errorf("NeedsFiller(%d) = %v, want %v", l, got, want)
		}
	}
}

func TestFillMatchesHashingRepeatedOnes(t *testing.T) {
	prefix := []byte(strings.Repeat("a", 55)) // tail len 55 triggers filler (55+9+9=73>64)
	state, tail, blocksBefore := Absorb(prefix)
	if !NeedsFiller(len(tail)) {
		t.Fatalf("expected tail len %d to need a filler block", len(tail))
	}

	addend, newBlocksBefore, ok := Fill(&state, tail, blocksBefore)
	if !ok {
		t.Fatal("Fill reported overflow unexpectedly")
	}
	if newBlocksBefore != blocksBefore+1 {
		t.Fatalf("newBlocksBefore = %d, want %d", newBlocksBefore, blocksBefore+1)
	}

	fillerLen := BlockSize - len(tail)
	wantAddend := uint64(0)
	for i := 0; i < fillerLen; i++ {
		wantAddend = wantAddend*10 + 1
	}
	wantAddend *= 1_000_000_000
	if addend != wantAddend {
		t.Fatalf("addend = %d, want %d", addend, wantAddend)
	}

	// The round-trip law: absorbing prefix then the filler block must equal
	// absorbing prefix followed by fillerLen '1' bytes directly.
	expanded := append(append([]byte{}, prefix...), strings.Repeat("1", fillerLen)...)
	full, fullTail, _ := Absorb(expanded)
	if len(fullTail) != 0 {
		t.Fatalf("expanded message should align exactly on a block boundary, tail len = %d", len(fullTail))
	}
	if full != state {
		t.Fatalf("chaining state after Fill = %v, want %v (equal to absorbing prefix+fillerLen '1's directly)", state, full)
	}
}

func TestFillOverflowDetection(t *testing.T) {
	// Every tail that needs a filler (47..63 bytes) yields a run of 17..1
	// '1's. Eleven ones times 10^9 (about 1.1e19) still fits a uint64
	// (max about 1.8e19); twelve or more do not, so tails of 47..52 bytes
	// must report overflow and tails of 53..63 bytes must not.
	for tailLen := 47; tailLen < 64; tailLen++ {
		state := [8]uint32{}
		tail := make([]byte, tailLen)
		_, _, ok := Fill(&state, tail, 0)
		wantOK := BlockSize-tailLen <= 11
		if ok != wantOK {
			t.Errorf("Fill with tailLen=%d reported ok=%v, want %v", tailLen, ok, wantOK)
		}
	}
}
