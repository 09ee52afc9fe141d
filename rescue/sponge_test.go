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

import (
	"testing"

	"github.com/itzmeanjan/rescue-prime/field"
	"github.com/itzmeanjan/rescue-prime/rescueconstants"
)

func testConstants() (Matrix, RoundConstants, RoundConstants) {
	return Matrix(rescueconstants.PrepareMDS()),
		RoundConstants(rescueconstants.PrepareARK1()),
		RoundConstants(rescueconstants.PrepareARK2())
}

func TestEmptyInputSkipsPermutation(t *testing.T) {
	mds, ark1, ark2 := testConstants()
	got := HashElements(nil, mds, ark1, ark2)
	if got != (Digest{}) {
		t.Fatalf("HashElements(nil) = %v, want zero digest", got)
	}
}

func TestSinglePermutationOnOneElement(t *testing.T) {
	mds, ark1, ark2 := testConstants()

	var s State
	s.Set(11, 1)
	s.Set(0, field.AddScalar(0, 42))
	want := squeeze(permute(s, mds, ark1, ark2))

	got := HashElements([]uint64{42}, mds, ark1, ark2)
	if got != want {
		t.Fatalf("HashElements([42]) = %v, want %v", got, want)
	}
}

func TestFullBlockTriggersExactlyOnePermutation(t *testing.T) {
	mds, ark1, ark2 := testConstants()
	input := []uint64{0, 1, 2, 3, 4, 5, 6, 7}

	var s State
	s.Set(11, uint64(len(input)))
	for i, e := range input {
		s.Set(i, field.AddScalar(0, e))
	}
	want := squeeze(permute(s, mds, ark1, ark2))

	got := HashElements(input, mds, ark1, ark2)
	if got != want {
		t.Fatalf("HashElements(8 elements) = %v, want %v", got, want)
	}
}

func TestPartialBlockTriggersTrailingPermutation(t *testing.T) {
	mds, ark1, ark2 := testConstants()
	input := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 99}

	var s State
	s.Set(11, uint64(len(input)))
	for i := 0; i < 8; i++ {
		s.Set(i, field.AddScalar(0, input[i]))
	}
	mid := permute(s, mds, ark1, ark2)
	mid.Set(0, field.AddScalar(mid.Get(0), input[8]))
	want := squeeze(permute(mid, mds, ark1, ark2))

	got := HashElements(input, mds, ark1, ark2)
	if got != want {
		t.Fatalf("HashElements(9 elements) = %v, want %v", got, want)
	}
}

func TestMergeEqualsHashElements(t *testing.T) {
	mds, ark1, ark2 := testConstants()
	cases := [][Rate]uint64{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{1, 2, 4, 8, 16, 32, 64, 128},
		{},
	}
	for _, x := range cases {
		merge := Merge(x, mds, ark1, ark2)
		hash := HashElements(x[:], mds, ark1, ark2)
		if merge != hash {
			t.Fatalf("Merge(%v) = %v, HashElements(%v) = %v, want equal", x, merge, x, hash)
		}
	}
}

func TestDigestIsCanonical(t *testing.T) {
	mds, ark1, ark2 := testConstants()
	d := HashElements([]uint64{1, 2, 3, 4, 5}, mds, ark1, ark2)
	for i, v := range d {
		if v >= field.Modulus {
			t.Fatalf("digest lane %d = %d is not canonical", i, v)
		}
	}
}
