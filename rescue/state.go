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

const (
	// StateWidth is the total permutation width: rate + capacity.
	StateWidth = 12
	// Rate is the number of lanes input is absorbed into / output squeezed
	// from.
	Rate = 8
	// Capacity is the security-margin portion of the state.
	Capacity = 4
	// NumRounds is the fixed number of permutation rounds (§4.8).
	NumRounds = 7
)

// State is the 12-lane permutation state, laid out as three width-4 lanes
// (lanes[0] holds elements 0-3, lanes[1] holds 4-7, lanes[2] holds 8-11).
// Lanes 0-7 are the rate; lanes 8-11 are the capacity.
type State [3]field.Lanes

// Get returns state lane i (0-11).
func (s State) Get(i int) uint64 {
	return s[i/4][i%4]
}

// Set writes state lane i (0-11).
func (s *State) Set(i int, v uint64) {
	s[i/4][i%4] = v
}

// fromArray packs a flat 12-element array into State's 3x4 layout.
func fromArray(a [StateWidth]uint64) State {
	var s State
	for i := 0; i < StateWidth; i++ {
		s.Set(i, a[i])
	}
	return s
}

// mulState applies field.Mul group-wise: every one of the 12 lanes is
// multiplied independently, in lockstep across the three width-4 groups.
func mulState(a, b State) State {
	return State{
		field.Mul(a[0], b[0]),
		field.Mul(a[1], b[1]),
		field.Mul(a[2], b[2]),
	}
}

// addState applies field.Add group-wise, lane by lane.
func addState(a, b State) State {
	return State{
		field.Add(a[0], b[0]),
		field.Add(a[1], b[1]),
		field.Add(a[2], b[2]),
	}
}
