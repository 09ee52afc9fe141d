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

// Digest is the canonical 4-element sponge output.
type Digest [4]uint64

// HashElements absorbs a variable-length sequence of field elements and
// squeezes a 4-element digest (§4.9).
//
// The state is initialized with lane 11 (the last capacity lane) set to
// len(input) mod p, the domain separator Rescue-Prime requires. If input is
// empty, that initialized state is squeezed directly - no permutation call
// is made, so the domain separator never actually influences the digest of
// an empty input. See DESIGN.md for why this is preserved rather than
// "fixed".
func HashElements(input []uint64, mds Matrix, ark1, ark2 RoundConstants) Digest {
	var s State
	s.Set(11, field.ToCanonicalScalar(uint64(len(input))))

	i := 0
	for _, e := range input {
		s.Set(i, field.AddScalar(s.Get(i), e))
		i++
		if i == Rate {
			s = permute(s, mds, ark1, ark2)
			i = 0
		}
	}
	if i > 0 {
		s = permute(s, mds, ark1, ark2)
	}
	return squeeze(s)
}

// Merge is the fixed 8-into-4 Merkle-node primitive: absorb exactly one
// rate block, permute once, squeeze (§4.10). Merge(x) == HashElements(x[:])
// for every 8-element x.
func Merge(input [Rate]uint64, mds Matrix, ark1, ark2 RoundConstants) Digest {
	var s State
	for i, e := range input {
		s.Set(i, e)
	}
	s.Set(11, Rate)

	s = permute(s, mds, ark1, ark2)
	return squeeze(s)
}

func squeeze(s State) Digest {
	return Digest{
		field.ToCanonicalScalar(s.Get(0)),
		field.ToCanonicalScalar(s.Get(1)),
		field.ToCanonicalScalar(s.Get(2)),
		field.ToCanonicalScalar(s.Get(3)),
	}
}
