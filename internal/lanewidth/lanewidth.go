// Copyright (C) 2024 The Rescue-Prime Authors.
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

// Package lanewidth reports which lane-parallel width this host's SIMD
// facility can plausibly exploit, the way the teacher's avx512level.go
// reports an AVX512 feature tier - except the field and rescue packages are
// portable Go, so the report is informational only: it never gates which
// code path actually runs.
package lanewidth

import "golang.org/x/sys/cpu"

// Width is a candidate lane-parallel width for the permutation state (§9:
// "the source contains two nearly identical implementations: one over a
// single 16-wide vector..., one over three 4-wide vectors").
type Width int

const (
	// Width4 groups the 12-element state into three width-4 vectors, the
	// layout package rescue actually uses.
	Width4 Width = 4
	// Width16 would pack the state into one 16-wide vector with four
	// padding lanes, the spec's other admissible layout.
	Width16 Width = 16
)

// Report describes the host's recommended lane width alongside the raw
// feature bits that justify it.
type Report struct {
	Recommended Width
	HasAVX512   bool
	HasAVX2     bool
}

// Detect inspects the host CPU and recommends the widest lane count a
// portable-SIMD facility on this machine could plausibly fill. It never
// changes behavior - package rescue always runs the width-4 layout - it's
// purely diagnostic output for cmd/rpbench.
func Detect() Report {
	return Report{
		Recommended: recommend(),
		HasAVX512:   cpu.X86.HasAVX512F,
		HasAVX2:     cpu.X86.HasAVX2,
	}
}

func recommend() Width {
	if cpu.X86.HasAVX512F {
		return Width16
	}
	return Width4
}
