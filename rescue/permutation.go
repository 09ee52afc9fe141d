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

// RoundConstants is one of the two round-constant tables (ark1 or ark2):
// seven vectors of 12 field elements, one per round.
type RoundConstants [NumRounds][StateWidth]uint64

// permute runs the full 7-round Rescue-Prime permutation on a copy of s and
// returns the result. Each
// round is six fixed sub-steps (§4.8); there is no early exit and no
// data-dependent branching.
func permute(s State, mds Matrix, ark1, ark2 RoundConstants) State {
	for r := 0; r < NumRounds; r++ {
		s = applySBox(s)
		s = applyMDS(s, mds)
		s = addState(s, fromArray(ark1[r]))

		s = applyInvSBox(s)
		s = applyMDS(s, mds)
		s = addState(s, fromArray(ark2[r]))
	}
	return s
}
