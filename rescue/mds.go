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

package rescue

import "github.com/itzmeanjan/rescue-prime/field"

// Matrix is the 12x12 MDS matrix, already canonical and consumed as-is.
type Matrix [StateWidth][StateWidth]uint64

// applyMDS returns s' where s'[i] = sum_j m[i][j]*s[j] mod p, each row
// reduced with a balanced tree of 2-element mod-p adds (§4.6).
func applyMDS(s State, m Matrix) State {
	var out State
	for i := 0; i < StateWidth; i++ {
		var row [StateWidth]uint64
		for j := 0; j < StateWidth; j++ {
			row[j] = field.MulScalar(m[i][j], s.Get(j))
		}
		out.Set(i, sumTree12(row))
	}
	return out
}

// sumTree12 reduces 12 lane values to one via a balanced binary tree of
// mod-p adds: 12 -> 6 -> 3, then folds the odd leftover in at the end. No
// heap allocation - every level lives in a fixed-size array.
func sumTree12(v [StateWidth]uint64) uint64 {
	var l1 [6]uint64
	for i := 0; i < 6; i++ {
		l1[i] = field.AddScalar(v[2*i], v[2*i+1])
	}
	var l2 [3]uint64
	for i := 0; i < 3; i++ {
		l2[i] = field.AddScalar(l1[2*i], l1[2*i+1])
	}
	l3 := field.AddScalar(l2[0], l2[1])
	return field.AddScalar(l3, l2[2])
}
