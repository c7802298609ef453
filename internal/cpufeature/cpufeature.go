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

// Package cpufeature reports whether the host CPU carries the AVX-512
// feature set a real assembly back-end for internal/lane16 would want.
//
// internal/lane16 itself is a portable, assembly-free emulation (see its
// package doc), so nothing here gates correctness: Level is informational,
// surfaced by cmd/p16bench so a user can tell whether their hardware would
// actually benefit from a future vector back-end, the same way the host's
// solver selection is otherwise oblivious to the underlying machine.
package cpufeature

import (
	"golang.org/x/sys/cpu"
)

// Level describes how much of the AVX-512 instruction set the host CPU
// implements, from the perspective of a 16-lane doubleword compression
// loop (VPADDD/VPXORD/VPTERNLOGD/VPRORD, all AVX-512F).
type Level uint8

const (
	// LevelNone means the host lacks AVX-512F entirely; a real vector
	// back-end could not run here at all.
	LevelNone Level = iota
	// LevelFoundation means the host has AVX-512F, enough for every
	// instruction internal/simd emulates.
	LevelFoundation
	// LevelExtended means the host additionally has the full set of
	// later AVX-512 extensions (VBMI, VBMI2, VPOPCNTDQ, IFMA, BITALG,
	// VAES, GFNI, VPCLMULQDQ), which a more aggressive back-end could
	// exploit but lane16 does not need.
	LevelExtended
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelFoundation:
		return "foundation"
	case LevelExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// Detect inspects the current process's CPU feature bits.
func Detect() Level {
	if !cpu.X86.HasAVX512F {
		return LevelNone
	}
	if cpu.X86.HasAVX512VBMI &&
		cpu.X86.HasAVX512VBMI2 &&
		cpu.X86.HasAVX512VPOPCNTDQ &&
		cpu.X86.HasAVX512IFMA &&
		cpu.X86.HasAVX512BITALG &&
		cpu.X86.HasAVX512VAES &&
		cpu.X86.HasAVX512GFNI &&
		cpu.X86.HasAVX512VPCLMULQDQ {
		return LevelExtended
	}
	return LevelFoundation
}
