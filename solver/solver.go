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

// Package solver implements the 16-way SIMD proof-of-work search for the
// mCaptcha challenge. Callers construct a Solver for a given prefix with
// New, then drive it with a target produced by ComputeTarget.
package solver

// New picks whichever strategy fits prefix and constructs a Solver for
// it. The double-block strategy is tried first: for the narrow band of
// tail lengths where it applies (it needs the tail to land exactly at
// byte offset 54 after at most 7 bytes of alignment padding), it avoids
// absorbing an entire extra filler block, even though its search loop
// runs two 16-way compressions per candidate instead of one. Everywhere
// else, NewSingleBlock covers it, absorbing a filler block first if the
// tail is too long to leave room for the digit window directly, and
// running a single compression per candidate. ok is false only if
// neither constructor succeeds. The single-block filler addend
// overflows a uint64 for tails of 47..52 bytes, but those tails all fall
// in the double-block band (47..54), so every prefix byte length is
// constructible.
func New(prefix []byte) (Solver, bool) {
	if s, ok := NewDoubleBlock(prefix); ok {
		return s, true
	}
	if s, ok := NewSingleBlock(prefix); ok {
		return s, true
	}
	return nil, false
}
