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

package cpufeature

import "testing"

func TestDetectReturnsKnownLevel(t *testing.T) {
	switch l := Detect(); l {
	case LevelNone, LevelFoundation, LevelExtended:
	default:
		t.Fatalf("Detect returned unknown level %v", l)
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelNone:        "none",
		LevelFoundation:  "foundation",
		LevelExtended:    "extended",
		Level(255):       "unknown",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
