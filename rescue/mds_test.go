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
	"math/rand"
	"testing"

	"github.com/itzmeanjan/rescue-prime/field"
)

func randomState(r *rand.Rand) State {
	var s State
	for g := range s {
		for i := range s[g] {
			s[g][i] = field.ToCanonicalScalar(r.Uint64())
		}
	}
	return s
}

func TestMDSOfZeroIsZero(t *testing.T) {
	mds, _, _ := testConstants()
	got := canonicalArray(applyMDS(State{}, mds))
	if got != [StateWidth]uint64{} {
		t.Fatalf("applyMDS(0) = %v, want zero", got)
	}
}

func TestMDSIsLinear(t *testing.T) {
	mds, _, _ := testConstants()
	r := rand.New(rand.NewSource(13))
	a := randomState(r)
	b := randomState(r)

	lhs := canonicalArray(applyMDS(addState(a, b), mds))
	rhs := canonicalArray(addState(applyMDS(a, mds), applyMDS(b, mds)))
	if lhs != rhs {
		t.Fatalf("MDS(a+b) = %v, MDS(a)+MDS(b) = %v, want equal", lhs, rhs)
	}
}

func TestSumTree12MatchesLinearFold(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	var v [StateWidth]uint64
	for i := range v {
		v[i] = r.Uint64()
	}
	want := uint64(0)
	for _, x := range v {
		want = field.AddScalar(want, x)
	}
	got := sumTree12(v)
	if field.ToCanonicalScalar(got) != field.ToCanonicalScalar(want) {
		t.Fatalf("sumTree12 = %d, linear fold = %d", got, want)
	}
}
